package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9090"
database:
  host: localhost
  port: 5432
  user: cafe
  dbname: cafe
  sslmode: disable
jwt:
  secret: test-secret
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, AuthModePostgres, cfg.Auth.Mode)
	assert.Equal(t, 24, cfg.JWT.ExpiresIn)
	assert.Equal(t, 12, cfg.Tables.Count)
	assert.Equal(t, 60, cfg.Tables.LookaheadMinutes)
	assert.Equal(t, 5, cfg.Auth.LoginMaxAttempts)
}

func TestLoad_DemoFallbackWithoutSecret(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, AuthModeDemo, cfg.Auth.Mode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  host: filehost
  port: 5432
jwt:
  secret: file-secret
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "envhost", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoad_RejectsUnknownAuthMode(t *testing.T) {
	path := writeConfig(t, `
auth:
  mode: ldap
jwt:
  secret: s
`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	assert.Error(t, err)
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Auth modes. Demo mode replaces the postgres identity provider with two
// fixed local accounts; the data stores still require the database.
const (
	AuthModePostgres = "postgres"
	AuthModeDemo     = "demo"
)

type Config struct {
	Server Server `yaml:"server"`

	Database Database `yaml:"database"`

	JWT JWT `yaml:"jwt"`

	Auth Auth `yaml:"auth"`

	Tables Tables `yaml:"tables"`
}

type Server struct {
	Address string `yaml:"address"`
	Mode    string `yaml:"mode"`
}

type JWT struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // In Hours
}

type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type Auth struct {
	Mode             string `yaml:"mode"`
	SessionFile      string `yaml:"session_file"`       // demo mode session storage
	LoginMaxAttempts int    `yaml:"login_max_attempts"` // per window, per identifier
	LoginWindowSec   int    `yaml:"login_window_sec"`
}

type Tables struct {
	Count            int `yaml:"count"`
	LookaheadMinutes int `yaml:"lookahead_minutes"` // reservation hold window
}

// Lookahead returns the reservation look-ahead window as a duration.
func (t Tables) Lookahead() time.Duration {
	return time.Duration(t.LookaheadMinutes) * time.Minute
}

// LoginWindow returns the login throttle window as a duration.
func (a Auth) LoginWindow() time.Duration {
	return time.Duration(a.LoginWindowSec) * time.Second
}

func Load() (*Config, error) {
	configPath := "configs/development.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overrides file settings from the environment, so deployments can
// keep credentials out of the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.DBName = v
	}
	if v := os.Getenv("DB_SSL_MODE"); v != "" {
		c.Database.SSLMode = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	if v := os.Getenv("AUTH_MODE"); v != "" {
		c.Auth.Mode = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.JWT.ExpiresIn <= 0 {
		c.JWT.ExpiresIn = 24
	}
	if c.Auth.Mode == "" {
		// Without a token secret there is no way to run real auth; fall
		// back to the demo accounts.
		if c.JWT.Secret == "" {
			c.Auth.Mode = AuthModeDemo
		} else {
			c.Auth.Mode = AuthModePostgres
		}
	}
	if c.Auth.SessionFile == "" {
		c.Auth.SessionFile = "demo_sessions.json"
	}
	if c.Auth.LoginMaxAttempts <= 0 {
		c.Auth.LoginMaxAttempts = 5
	}
	if c.Auth.LoginWindowSec <= 0 {
		c.Auth.LoginWindowSec = 60
	}
	if c.Tables.Count <= 0 {
		c.Tables.Count = 12
	}
	if c.Tables.LookaheadMinutes <= 0 {
		c.Tables.LookaheadMinutes = 60
	}
}

func (c *Config) validate() error {
	switch c.Auth.Mode {
	case AuthModePostgres, AuthModeDemo:
	default:
		return fmt.Errorf("unknown auth mode %q", c.Auth.Mode)
	}
	if c.Auth.Mode == AuthModePostgres && c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required in postgres auth mode")
	}
	return nil
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cafe-nour/cafe-service/internal/config"
	"github.com/cafe-nour/cafe-service/internal/db"
	"github.com/cafe-nour/cafe-service/internal/db/repository"
	"github.com/cafe-nour/cafe-service/internal/router"
	"github.com/cafe-nour/cafe-service/internal/service"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	database, err := db.NewPostgres(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(cfg.Database); err != nil {
		logger.Fatal("failed to run database migrations", zap.Error(err))
	}

	repos := repository.NewRepositories(database)

	// The identity provider is selected once at startup: real auth over
	// Postgres, or the demo fallback accounts.
	var identity service.Identity
	switch cfg.Auth.Mode {
	case config.AuthModeDemo:
		logger.Warn("running with demo identity provider")
		identity = service.NewDemoAuth(cfg.Auth.SessionFile, logger)
	default:
		identity = service.NewAuthService(
			repos.User,
			service.JWTConfig{Secret: cfg.JWT.Secret, ExpiresIn: cfg.JWT.ExpiresIn},
			service.ThrottleConfig{MaxAttempts: cfg.Auth.LoginMaxAttempts, Window: cfg.Auth.LoginWindow()},
			logger,
		)
	}

	r := router.New(repos, identity, database, cfg, logger)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited properly")
}

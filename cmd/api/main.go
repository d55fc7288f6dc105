// Package main is the entry point for the Salon Manager API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/salon-manager/backend/config"
	"github.com/salon-manager/backend/internal/infra/db"
	"github.com/salon-manager/backend/internal/infra/dependency"
	"github.com/salon-manager/backend/internal/integration/adapters"
	"github.com/salon-manager/backend/internal/integration/entrypoint/controller"
	"github.com/salon-manager/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Salon Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.ClientModel{},
		&model.ServiceModel{},
		&model.AppointmentModel{},
		&model.TechnicalSheetModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis connection (optional, used for login rate limiting)
	var redisClient *redis.Client
	var redisHealthChecker func() bool
	if cfg.Redis.Enabled {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Error("Invalid Redis URL", "error", err)
			os.Exit(1)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		opts.DB = cfg.Redis.DB

		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("Redis connection failed, falling back to in-memory rate limiting",
				"error", err,
			)
			redisClient = nil
		} else {
			slog.Info("Redis connection established")
			redisHealthChecker = func() bool {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return redisClient.Ping(ctx).Err() == nil
			}
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close Redis connection", "error", err)
				}
			}()
		}
	}

	// Create the salon clock for day and time bucketing
	clock, err := adapters.NewSalonClock(cfg.Salon.Timezone)
	if err != nil {
		slog.Error("Failed to initialize salon clock", "error", err)
		os.Exit(1)
	}

	// Wire dependencies and set up the router
	healthController := controller.NewHealthController(database.HealthCheck, redisHealthChecker)
	injector := dependency.NewInjector(cfg, database.DB(), redisClient, clock, healthController)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

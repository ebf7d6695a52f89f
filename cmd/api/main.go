package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hawkins/simpletimeclock/internal/api"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
	"github.com/hawkins/simpletimeclock/internal/core/service"
	"github.com/hawkins/simpletimeclock/internal/infrastructure/config"
	"github.com/hawkins/simpletimeclock/internal/infrastructure/db/file"
	mongodb "github.com/hawkins/simpletimeclock/internal/infrastructure/db/mongo"
	redisdb "github.com/hawkins/simpletimeclock/internal/infrastructure/db/redis"
	"github.com/hawkins/simpletimeclock/internal/infrastructure/http/handlers"
	"github.com/hawkins/simpletimeclock/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Simple Time Clock API
// @version      1.0
// @description  Employee time tracking service with shifts, breaks and admin activity reports.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		userRepo  ports.UserRepository
		credsRepo ports.CredentialsRepository
		checks    = map[string]handlers.Check{}
	)

	switch cfg.StorageDriver {
	case "file":
		store, err := file.NewStore(cfg.File.UsersPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.File.UsersPath).Msg("opening user store")
		}
		credsStore, err := file.NewCredentialsStore(cfg.File.CredentialsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.File.CredentialsPath).Msg("opening credentials store")
		}
		userRepo = store
		credsRepo = credsStore
		checks["file"] = store.Ping

	case "mongo":
		client, database, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connecting to mongodb")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				log.Error().Err(err).Msg("disconnecting from mongodb")
			}
		}()

		users := mongodb.NewUserRepository(database)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensuring user indexes")
		}
		creds := mongodb.NewCredentialsRepository(database)
		if err := creds.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensuring credentials indexes")
		}
		userRepo = users
		credsRepo = creds
		checks["mongo"] = func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		}

	default:
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("unknown storage driver")
	}

	var locker ports.UserLocker
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connecting to redis")
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error().Err(err).Msg("closing redis client")
			}
		}()
		locker = redisdb.NewUserLock(redisClient)
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		log.Fatal().Msg("AUTH_ENABLED requires JWT_SECRET to be set")
	}

	timeclockService := service.NewTimeclockService(userRepo, service.SystemClock(), locker, log)
	authService := service.NewAuthService(credsRepo, userRepo, service.SystemClock(), cfg.JWTSecret, 24*time.Hour)

	e := api.NewRouter(api.RouterConfig{
		Timeclock:    timeclockService,
		Auth:         authService,
		AuthEnabled:  cfg.AuthEnabled,
		JWTSecret:    cfg.JWTSecret,
		HealthChecks: checks,
		Logger:       log,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("driver", cfg.StorageDriver).
			Bool("auth", cfg.AuthEnabled).
			Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

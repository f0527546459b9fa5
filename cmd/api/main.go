package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orderdesk/orders-admin/internal/api"
	"github.com/orderdesk/orders-admin/internal/core/domain"
	mongodb "github.com/orderdesk/orders-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/orderdesk/orders-admin/internal/infrastructure/db/redis"
	"github.com/orderdesk/orders-admin/internal/pkg/config"
	"github.com/orderdesk/orders-admin/internal/pkg/hash"
	"github.com/orderdesk/orders-admin/pkg/logger"
)

// @title        Orders Admin API
// @version      1.0
// @description  User registration/authentication and admin-style managers for orders and users.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := bootstrapAdmin(ctx, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg.BcryptCost, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// bootstrapAdmin creates the configured administrator account when it does
// not exist yet. A concurrent replica winning the insert race is fine; the
// duplicate error just means the account is already there.
func bootstrapAdmin(ctx context.Context, db *mongo.Database, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil
	}

	repo := mongodb.NewAccountRepository(db)
	if _, err := repo.FindByUsername(ctx, cfg.Admin.Username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	digest, err := hash.NewBcryptHasher(cfg.BcryptCost).Hash(cfg.Admin.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.Account{
		Username:     cfg.Admin.Username,
		PasswordHash: digest,
		Role:         domain.RoleAdmin,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrDuplicateUsername) {
		return nil
	}
	if err == nil {
		log.Info().Str("username", cfg.Admin.Username).Msg("bootstrap admin created")
	}
	return err
}

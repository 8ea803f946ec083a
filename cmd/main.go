package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"movo-ads/internal/adapter/amqp"
	"movo-ads/internal/adapter/cache"
	"movo-ads/internal/adapter/http"
	"movo-ads/internal/adapter/postgres"
	"movo-ads/internal/adapter/usecase"
	"movo-ads/internal/auth"
	"movo-ads/internal/config"
	"movo-ads/internal/core/matching"
	"movo-ads/internal/core/port"
	"movo-ads/internal/db"
)

// main is the entry point of the matching service. It loads configuration,
// optionally runs database migrations and seeds demo campaigns, wires the
// repositories, cache and event publisher, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	campaignTZ, err := cfg.Matching.Location()
	if err != nil {
		logger.Error("invalid matching config", slog.Any("error", err))
		return
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo campaigns seeded")
	}

	var campaigns port.CampaignRepository = postgres.NewCampaignRepository(pool, logger)
	if cfg.Redis.Enabled() {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()
		campaigns = cache.NewCampaignCache(campaigns, rdb, cfg.Redis, logger)
		logger.Info("campaign cache enabled", slog.Duration("ttl", cfg.Redis.TTL))
	}

	// A nil publisher disables ad.played events.
	var events port.PlayEventPublisher
	if cfg.MQ.Enabled() {
		pub, err := amqpadapter.Dial(cfg.MQ, logger)
		if err != nil {
			logger.Error("rabbitmq connection error", slog.Any("error", err))
			return
		}
		defer pub.Close()
		events = pub
	}

	ads := usecase.NewAdUseCase(
		campaigns,
		postgres.NewPlayLogRepository(pool),
		events,
		usecase.Config{
			Matching: matching.Options{UnconditionalFallback: cfg.Matching.UnconditionalFallback},
			Location: campaignTZ,
		},
		logger,
	)
	profiles := usecase.NewProfileUseCase(postgres.NewProfileRepository(pool))

	handler := httpadapter.NewHandler(ads, profiles, auth.NewJWTService(cfg.Auth), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
	}
	exitCode = 0

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

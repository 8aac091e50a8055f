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

	"orbit-ads/internal/adapter/cache"
	httpadapter "orbit-ads/internal/adapter/http"
	"orbit-ads/internal/adapter/postgres"
	redisadapter "orbit-ads/internal/adapter/redis"
	"orbit-ads/internal/adapter/usecase"
	"orbit-ads/internal/config"
	"orbit-ads/internal/db"
)

// main is the entry point of the ad delivery service. It loads
// configuration, optionally runs database migrations and seeding,
// initializes the database pool, the Redis fraud signal store and the
// repositories, starts the ad cache and retention sweeper, then serves
// HTTP. On receiving a termination signal it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load a local .env when present, then configuration from the
	// environment.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	if err = rdb.Ping(ctx).Err(); err != nil {
		// Fraud signals degrade without Redis; the service still runs.
		logger.Warn("redis unreachable, fraud signals degraded", slog.Any("error", err))
	}

	adRepo := postgres.NewAdRepository(pool)
	interactionRepo := postgres.NewInteractionRepository(pool)
	profileRepo := postgres.NewUserProfileRepository(pool)
	signals := redisadapter.NewFraudSignalStore(rdb)

	adCache := cache.NewAdCache(adRepo, logger, cfg.Engine.CacheRefresh)
	adCache.Start(ctx)
	defer adCache.Stop()

	sweeper := usecase.NewRetentionSweeper(interactionRepo, logger,
		cfg.Engine.RetentionSweep, cfg.Engine.InteractionTTL, cfg.Engine.DeliveryLogTTL)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	delivery := usecase.NewDeliveryUseCase(adRepo, interactionRepo, profileRepo, adCache,
		cfg.Engine.ScoreWeights(), cfg.Engine.DeliveryTimeout, logger)
	interactions := usecase.NewInteractionUseCase(adRepo, interactionRepo, signals,
		cfg.Engine.FraudConfig(), cfg.Engine.BatchConcurrency, logger)

	handler := httpadapter.NewHandler(delivery, interactions, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/ledgerpost/internal/adapter/http"
	"github.com/iho/ledgerpost/internal/adapter/http/handler"
	"github.com/iho/ledgerpost/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/ledgerpost/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/ledgerpost/internal/adapter/repository/redis"
	"github.com/iho/ledgerpost/internal/definition"
	"github.com/iho/ledgerpost/internal/infrastructure/config"
	"github.com/iho/ledgerpost/internal/infrastructure/logger"
	"github.com/iho/ledgerpost/internal/infrastructure/metrics"
	"github.com/iho/ledgerpost/internal/infrastructure/postgres"
	"github.com/iho/ledgerpost/internal/infrastructure/redis"
	"github.com/iho/ledgerpost/internal/usecase"
)

const (
	rateLimitPerSecond = 100
	rateLimitBurst     = 200
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	registry, err := definition.LoadFile(cfg.ChartPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ChartPath).Msg("failed to load chart of accounts")
	}
	log.Info().Str("path", cfg.ChartPath).Msg("loaded chart of accounts")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	lineRepo := postgresRepo.NewLineRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)

	// Use cases
	executor := usecase.NewEntryExecutor(txManager, entryRepo, lineRepo, idGen, retrier)
	ledgerUC := usecase.NewLedgerUseCase(registry, entryRepo, lineRepo)

	// Handlers
	postingHandler := handler.NewPostingHandler(registry, executor, cache, m)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC, cache)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PostingHandler:   postingHandler,
		LedgerHandler:    ledgerHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      middleware.NewRateLimiter(rateLimitPerSecond, rateLimitBurst),
		Logging:          middleware.NewLoggingMiddleware(log.Logger),
	})

	server := newHTTPServer(cfg, router)

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// newHTTPServer builds the HTTP server with the configured timeouts.
func newHTTPServer(cfg *config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}

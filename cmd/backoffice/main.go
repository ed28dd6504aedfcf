package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/taxi_coop_backoffice/internal/core/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/cron"
	"github.com/SscSPs/taxi_coop_backoffice/internal/handlers"
	"github.com/SscSPs/taxi_coop_backoffice/internal/middleware"
	"github.com/SscSPs/taxi_coop_backoffice/internal/platform/config"
	"github.com/SscSPs/taxi_coop_backoffice/internal/platform/metrics"
	"github.com/SscSPs/taxi_coop_backoffice/internal/repositories/database/pgsql"
	"github.com/SscSPs/taxi_coop_backoffice/internal/validation"
	"github.com/SscSPs/taxi_coop_backoffice/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 15 * time.Second

// @title Taxi Cooperative Back Office API
// @version 1.0
// @description Ledger of member, subscriber and vehicle accounts and the cooperative's cash register.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if err := validation.RegisterGinValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	cronService, closeLock, err := newCronService(cfg, logger, dbPool, repos.AccountRepo, repos.AccountHistoryRepo, metrics.NewCronJobMetrics(registry))
	if err != nil {
		logger.Error("Failed to create cron service", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeLock()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	r.Use(cors.New(corsConfig))

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter), middleware.HTTPMetrics(metrics.NewHTTPMetrics(registry)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, registry)

	cronDone := make(chan struct{})
	go func() {
		defer close(cronDone)
		if err := cronService.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Cron service stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
		}
		stop()
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	<-cronDone
	logger.Info("Server stopped gracefully")
}

// newCronService builds the snapshot scheduler. Runs are coordinated through Redis when
// REDIS_URL is set and through a Postgres advisory lock otherwise.
func newCronService(
	cfg *config.Config,
	logger *slog.Logger,
	dbPool *pgxpool.Pool,
	accounts portsrepo.AccountReader,
	history portsrepo.AccountHistoryRepositoryFacade,
	cronMetrics *metrics.CronJobMetrics,
) (*cron.Service, func(), error) {
	var (
		lock    cron.Lock
		closeFn = func() {}
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		client := redis.NewClient(opts)
		closeFn = func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing redis", slog.String("error", err.Error()))
			}
		}
		redisLock, err := cron.NewRedisLock(cron.RedisClientStore{Client: client}, cfg.SnapshotLockKey, cfg.SnapshotLockTTL)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		lock = redisLock
	} else {
		pgLock, err := cron.NewPgAdvisoryLock(dbPool, cfg.SnapshotLockKey)
		if err != nil {
			return nil, nil, err
		}
		lock = pgLock
	}

	snapshotJob, err := cron.NewAccountSnapshotJob(logger, accounts, history)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logger,
		Registry: cron.NewRegistry(snapshotJob),
		Lock:     lock,
		Metrics:  cronMetrics,
		Interval: cfg.SnapshotInterval,
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return service, closeFn, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/bond_catalog/internal/adapters/external/exchangerate"
	"github.com/SscSPs/bond_catalog/internal/adapters/external/worldbank"
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	"github.com/SscSPs/bond_catalog/internal/core/services"
	"github.com/SscSPs/bond_catalog/internal/handlers"
	"github.com/SscSPs/bond_catalog/internal/middleware"
	"github.com/SscSPs/bond_catalog/internal/platform/config"
	"github.com/SscSPs/bond_catalog/internal/platform/metrics"
	"github.com/SscSPs/bond_catalog/internal/repositories/cache/memory"
	rediscache "github.com/SscSPs/bond_catalog/internal/repositories/cache/redis"
	"github.com/SscSPs/bond_catalog/internal/repositories/database/pgsql"
	"github.com/SscSPs/bond_catalog/internal/repositories/database/sqlite"
	"github.com/SscSPs/bond_catalog/pkg/database"
)

// @title Bond Catalog API
// @version 1.0
// @description Fixed-income bond catalog with search, summary statistics and FX/macro enrichment.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, health, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize bond store", slog.String("driver", cfg.DBDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	appMetrics := metrics.New()

	rateCache, cacheHealth, closeCache, err := openRateCache(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize FX rate cache", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeCache()
	repos.RateCache = rateCache

	upstreams := services.Upstreams{
		ExchangeRates: exchangerate.NewClient(cfg.ExchangeAPIURL, cfg.ExchangeAPIKey, cfg.ExchangeAPITimeout,
			exchangerate.WithMetrics(appMetrics)),
		Indicators: worldbank.NewClient(cfg.WorldBankAPIURL, cfg.WorldBankAPITimeout,
			worldbank.WithMetrics(appMetrics)),
	}
	svcs := services.NewServiceContainer(cfg, repos, upstreams, appMetrics)

	if cfg.SeedData {
		if err := svcs.StaticData.InitializeStaticData(ctx); err != nil {
			logger.Error("Failed to load sample bonds", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(appMetrics),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"X-Message", middleware.RequestIDHeader, "X-RateLimit-Remaining"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, svcs, appMetrics, handlers.AllHealthy(health, cacheHealth)); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// openStore migrates and opens the configured database and returns its repositories,
// a health check and a close function.
func openStore(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, handlers.HealthCheck, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		sqliteCfg := sqlite.DefaultConfig(cfg.SQLitePath)
		if err := database.RunMigrations(config.DriverSQLite, sqliteCfg.DSN()); err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		db, err := sqlite.Open(ctx, sqliteCfg)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				slog.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		}
		return sqlite.NewRepositoryProvider(db), db.PingContext, closeFn, nil

	default:
		if err := database.RunMigrations(config.DriverPostgres, cfg.DatabaseURL); err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		base := &pgsql.BaseRepository{Pool: pool}
		return pgsql.NewRepositoryProvider(pool), base.Ping, func() { database.ClosePgxPool(pool) }, nil
	}
}

// openRateCache returns the shared Redis cache when REDIS_URL is set, else an in-process one.
// Only the Redis cache has a health check.
func openRateCache(ctx context.Context, cfg *config.Config) (portsrepo.RateCache, handlers.HealthCheck, func(), error) {
	if cfg.RedisURL == "" {
		slog.Info("Using in-memory FX rate cache", slog.Duration("ttl", cfg.FXCacheTTL))
		return memory.NewRateCache(memory.DefaultSize, cfg.FXCacheTTL), nil, func() {}, nil
	}

	cache, err := rediscache.New(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}
	slog.Info("Using Redis FX rate cache", slog.Duration("ttl", cfg.FXCacheTTL))
	return cache, cache.Ping, func() {
		if err := cache.Close(); err != nil {
			slog.Error("Error closing Redis connection", slog.String("error", err.Error()))
		}
	}, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

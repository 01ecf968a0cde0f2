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
	"time"

	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_ledger_app/internal/core/services"
	"github.com/SscSPs/debt_ledger_app/internal/handlers"
	"github.com/SscSPs/debt_ledger_app/internal/middleware"
	"github.com/SscSPs/debt_ledger_app/internal/platform/config"
	"github.com/SscSPs/debt_ledger_app/internal/repositories/database/gormstore"
	"github.com/SscSPs/debt_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/debt_ledger_app/pkg/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @title Debt Ledger API
// @version 1.0
// @description Back office API for tracking client debts and the payments made against them.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.DBDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("Storage ready", slog.String("driver", cfg.DBDriver))

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(repos))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
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

// openStore connects the configured storage driver, brings its schema up to date
// and returns the repositories together with a close function.
func openStore(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	debug := cfg.LogLevel <= slog.LevelDebug

	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath, debug)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return gormProvider(db)

	case config.DriverGormPostgres:
		db, err := database.OpenGormPostgres(cfg.DatabaseURL, debug)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return gormProvider(db)

	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		slog.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}
}

func gormProvider(db *gorm.DB) (portsrepo.RepositoryProvider, func(), error) {
	if err := gormstore.AutoMigrate(db); err != nil {
		database.CloseGorm(db)
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return gormstore.NewRepositoryProvider(db), func() { database.CloseGorm(db) }, nil
}

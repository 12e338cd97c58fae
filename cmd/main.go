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

	"golang.org/x/time/rate"

	"quickcamp/internal/adapter/cache"
	"quickcamp/internal/adapter/http"
	"quickcamp/internal/adapter/postgres"
	"quickcamp/internal/adapter/remote"
	"quickcamp/internal/adapter/usecase"
	"quickcamp/internal/config"
	"quickcamp/internal/core/port"
	"quickcamp/internal/db"
	"quickcamp/internal/session"
)

// main is the entry point of the campaign wizard service. It loads
// configuration, wires the remote service clients, the reference cache and
// the optional submission ledger, then serves the wizard API until a
// termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var ledger port.LedgerRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo := postgres.NewLedgerRepository(pool)
		ledger = repo

		if cfg.Psql.SeedAccount != "" {
			if err = db.Seed(ctx, repo, cfg.Psql.SeedAccount); err != nil {
				logger.Warn("seed ledger", slog.Any("error", err))
			}
		}
	} else {
		logger.Info("submission ledger disabled")
	}

	var refCache port.ReferenceCache
	if cfg.Redis.Enabled {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()
		refCache = cache.NewRedis(rdb, cfg.Redis.CacheTTL)
	} else {
		refCache = cache.NewMemory(cfg.Redis.CacheTTL)
	}

	base, err := remote.ParseBaseURL(cfg.Remote.BaseURL)
	if err != nil {
		logger.Error("invalid remote base url", slog.Any("error", err))
		return
	}
	hc := &http.Client{Timeout: cfg.Remote.Timeout}
	auth := remote.NewAuthClient(hc, base)

	clientOpts := []session.Option{session.WithLogger(logger)}
	if cfg.Remote.RPS > 0 {
		clientOpts = append(clientOpts, session.WithLimiter(rate.NewLimiter(rate.Limit(cfg.Remote.RPS), cfg.Remote.Burst)))
	}

	if err = os.MkdirAll(cfg.Wizard.SpoolPath(), 0o700); err != nil {
		logger.Error("spool directory", slog.Any("error", err))
		return
	}

	svc := usecase.NewWizardUseCase(usecase.Deps{
		Auth:      auth,
		Campaigns: remote.NewCampaignClient(base),
		Catalog:   remote.NewCatalogClient(base),
		Clients:   session.NewFactory(hc, auth, clientOpts...),
		Cache:     refCache,
		Ledger:    ledger,
	}, usecase.Options{
		MaxUploadBytes:     cfg.Wizard.MaxUploadBytes,
		StrictReferences:   cfg.Wizard.StrictReferences,
		SpoolDir:           cfg.Wizard.SpoolPath(),
		LedgerLimit:        cfg.Wizard.LedgerLimit,
		SessionIdleTimeout: cfg.Wizard.SessionIdleTimeout,
	}, logger)
	defer svc.Close()
	go svc.Run(ctx)

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.RequestTimeout)
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:     handler.Router(),
		ReadTimeout: cfg.HTTP.ReadTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("remote", base.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

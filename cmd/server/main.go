// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/dhandiary-stats/internal/api"
	"github.com/tomtom215/dhandiary-stats/internal/auth"
	"github.com/tomtom215/dhandiary-stats/internal/config"
	"github.com/tomtom215/dhandiary-stats/internal/database"
	"github.com/tomtom215/dhandiary-stats/internal/logging"
	"github.com/tomtom215/dhandiary-stats/internal/metrics"
	"github.com/tomtom215/dhandiary-stats/internal/ratelimit"
	"github.com/tomtom215/dhandiary-stats/internal/stats"
	"github.com/tomtom215/dhandiary-stats/internal/supervisor"
	"github.com/tomtom215/dhandiary-stats/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.FromConfig(cfg.Logging))
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Bool("production", cfg.IsProduction()).
		Str("rate_limit_store", cfg.Security.RateLimitStore).
		Msg("Starting DhanDiary stats server")

	warnAboutConfig(cfg)

	mgr := database.NewManager(&cfg.Database)
	defer mgr.Shutdown()

	limiter, memLimiter, err := ratelimit.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create rate limiter")
	}

	handler := api.NewHandler(cfg,
		stats.NewService(mgr),
		limiter,
		auth.NewAuthenticator(cfg.Security.AdminAPIKey),
	)
	router := api.NewRouter(handler, mgr, cfg.Security.AllowedOrigins)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		// Leave room past the service timeout for the 500 response itself.
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if memLimiter != nil {
		tree.AddDataService(ratelimit.NewSweeper(memLimiter, cfg.Security.RateLimitSweep))
	}
	tree.AddDataService(services.NewPoolMonitorService(mgr, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, "", cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, stopping supervisor tree")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("DhanDiary stats server stopped")
}

// warnAboutConfig logs settings that leave the server running but degraded.
func warnAboutConfig(cfg *config.Config) {
	if cfg.Database.URL == "" {
		logging.Warn().Msg("DATABASE_URL is not set; stats requests will fail until it is configured")
	}
	if cfg.Security.AdminAPIKey == "" {
		logging.Warn().Msg("ADMIN_API_KEY is not set; every stats request will be rejected with 401")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("allowed_origins", cfg.Security.AllowedOrigins).
			Msg("Production deployment allows any CORS origin; set ALLOWED_ORIGINS")
	}
}

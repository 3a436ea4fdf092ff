// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/dhandiary-stats/internal/config"
	"github.com/tomtom215/dhandiary-stats/internal/logging"
	"github.com/tomtom215/dhandiary-stats/internal/middleware"
	"github.com/tomtom215/dhandiary-stats/internal/models"
	"github.com/tomtom215/dhandiary-stats/internal/ratelimit"
)

// StatsService computes the aggregates served by the endpoints.
// *stats.Service implements it.
type StatsService interface {
	Global(ctx context.Context) (*models.GlobalStats, error)
	UserMetrics(ctx context.Context) (*models.UserMetrics, error)
	TransactionMetrics(ctx context.Context) (*models.TransactionMetrics, error)
	FinancialMetrics(ctx context.Context) (*models.FinancialMetrics, error)
	TimeSeries(ctx context.Context) (*models.TimeSeriesStats, error)
	SystemHealth(ctx context.Context) (*models.SystemHealthMetrics, error)
}

// DefaultRequestTimeout bounds a service call when none is configured.
const DefaultRequestTimeout = 30 * time.Second

// Endpoint describes one stats route.
type Endpoint struct {
	// Name is the route name, e.g. "stats-users". It labels metrics and
	// the path is derived from it.
	Name string
	// Subject names the data in the error log: "Error fetching <Subject> stats".
	Subject string
	// CacheControl is sent on successful responses.
	CacheControl string
	// Validate adds the query parameter validation step.
	Validate bool

	fetch func(ctx context.Context, s StatsService) (any, error)
}

// Path returns the route path relative to the mount point.
func (e Endpoint) Path() string {
	return "/" + e.Name
}

// Endpoints lists the stats routes in registration order.
func Endpoints() []Endpoint {
	return []Endpoint{
		{
			Name: "stats-global", Subject: "global", CacheControl: "public, max-age=60",
			fetch: func(ctx context.Context, s StatsService) (any, error) { return s.Global(ctx) },
		},
		{
			Name: "stats-users", Subject: "user", CacheControl: "public, max-age=60",
			fetch: func(ctx context.Context, s StatsService) (any, error) { return s.UserMetrics(ctx) },
		},
		{
			Name: "stats-transactions", Subject: "transaction", CacheControl: "public, max-age=60",
			fetch: func(ctx context.Context, s StatsService) (any, error) { return s.TransactionMetrics(ctx) },
		},
		{
			Name: "stats-finance", Subject: "financial", CacheControl: "public, max-age=120",
			fetch: func(ctx context.Context, s StatsService) (any, error) { return s.FinancialMetrics(ctx) },
		},
		{
			Name: "stats-timeseries", Subject: "time-series", CacheControl: "public, max-age=300", Validate: true,
			fetch: func(ctx context.Context, s StatsService) (any, error) { return s.TimeSeries(ctx) },
		},
		{
			Name: "stats-health", Subject: "system health", CacheControl: "public, max-age=30",
			fetch: func(ctx context.Context, s StatsService) (any, error) { return s.SystemHealth(ctx) },
		},
	}
}

// Handler serves the stats endpoints.
type Handler struct {
	service    StatsService
	cors       *middleware.CORS
	admission  middleware.Pipeline
	production bool
	timeout    time.Duration
	now        func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithClock overrides the clock used for response timestamps.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = now
	}
}

// NewHandler creates a Handler. Requests are admitted by limiter, then
// authenticator; the store name labels rate-limit store errors.
func NewHandler(cfg *config.Config, service StatsService, limiter ratelimit.Limiter, authenticator middleware.RequestAuthenticator, opts ...HandlerOption) *Handler {
	store := cfg.Security.RateLimitStore
	if store == "" {
		store = ratelimit.StoreMemory
	}

	h := &Handler{
		service: service,
		cors:    middleware.NewCORS(cfg.Security.AllowedOrigins),
		admission: middleware.Pipeline{
			middleware.RateLimit(limiter, nil, store),
			middleware.Authenticate(authenticator),
		},
		production: cfg.IsProduction(),
		timeout:    cfg.Server.RequestTimeout,
		now:        time.Now,
	}
	if h.timeout <= 0 {
		h.timeout = DefaultRequestTimeout
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// pipeline returns the admission steps for ep.
func (h *Handler) pipeline(ep Endpoint) middleware.Pipeline {
	if !ep.Validate {
		return h.admission
	}
	p := make(middleware.Pipeline, 0, len(h.admission)+1)
	p = append(p, h.admission...)
	return append(p, middleware.ValidateQuery())
}

// Serve returns the http.HandlerFunc for ep.
func (h *Handler) Serve(ep Endpoint) http.HandlerFunc {
	steps := h.pipeline(ep)

	return func(w http.ResponseWriter, r *http.Request) {
		h.cors.Apply(w.Header(), r.Header.Get("Origin"))

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET, OPTIONS")
			writeJSON(w, http.StatusMethodNotAllowed, models.ErrorEnvelope(MsgMethodNotAllowed, ""))
			return
		}

		if rej := steps.Run(&middleware.Context{Request: r, Endpoint: ep.Name}); rej != nil {
			for k, v := range rej.Headers {
				w.Header().Set(k, v)
			}
			writeJSON(w, rej.Status, models.ErrorEnvelope(rej.Message, ""))
			return
		}

		data, err := h.call(r.Context(), ep)
		if err != nil {
			logging.CtxErr(r.Context(), err).
				Str("endpoint", ep.Name).
				Msg("Error fetching " + ep.Subject + " stats")
			writeJSON(w, http.StatusInternalServerError,
				models.ErrorEnvelope(SanitizeError(err, h.production), h.timestamp()))
			return
		}

		w.Header().Set("Cache-Control", ep.CacheControl)
		writeJSON(w, http.StatusOK, models.SuccessEnvelope(data, h.timestamp()))
	}
}

// call runs the endpoint's service method under the request timeout and
// turns a panic into a *PanicError.
func (h *Handler) call(ctx context.Context, ep Endpoint) (data any, err error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	defer func() {
		if v := recover(); v != nil {
			data, err = nil, &PanicError{Value: v}
		}
	}()

	return ep.fetch(ctx, h.service)
}

func (h *Handler) timestamp() string {
	return models.FormatTimestamp(h.now())
}

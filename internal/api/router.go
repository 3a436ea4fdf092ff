// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/dhandiary-stats/internal/middleware"
)

// LegacyPrefix is the serverless functions base path the stats routes are
// also mounted under.
const LegacyPrefix = "/.netlify/functions"

// ProbeRateLimit is the per-IP limit on /healthz and /readyz.
var ProbeRateLimit = struct {
	Requests int
	Window   time.Duration
}{Requests: 1000, Window: time.Minute}

// Router wires the stats handler and the operational probes onto chi.
type Router struct {
	handler        *Handler
	readiness      Readiness
	allowedOrigins []string
}

// NewRouter creates a Router. readiness may be nil, in which case /readyz
// always reports ready.
func NewRouter(handler *Handler, readiness Readiness, allowedOrigins []string) *Router {
	return &Router{
		handler:        handler,
		readiness:      readiness,
		allowedOrigins: allowedOrigins,
	}
}

// Setup builds the http.Handler for the whole service.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Compress(5, "application/json"))

	// Stats endpoints. Method and CORS handling live in the handler so that
	// OPTIONS and unsupported methods get the stats response shape.
	rt.mountStats(r)
	r.Route(LegacyPrefix, rt.mountStats)

	// Operational endpoints
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.probeOrigins(),
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			MaxAge:         86400,
		}))
		r.Use(httprate.LimitByIP(ProbeRateLimit.Requests, ProbeRateLimit.Window))
		r.Get("/healthz", rt.healthz)
		r.Get("/readyz", rt.readyz)
		// Routed so preflights reach the cors middleware instead of a chi 405.
		r.Options("/healthz", noContent)
		r.Options("/readyz", noContent)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (rt *Router) mountStats(r chi.Router) {
	for _, ep := range Endpoints() {
		r.HandleFunc(ep.Path(), rt.handler.Serve(ep))
	}
}

func (rt *Router) probeOrigins() []string {
	if len(rt.allowedOrigins) == 0 {
		return []string{"*"}
	}
	return rt.allowedOrigins
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

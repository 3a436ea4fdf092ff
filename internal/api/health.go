// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/dhandiary-stats/internal/logging"
)

// Readiness reports whether the database can serve queries.
// *database.Manager implements it.
type Readiness interface {
	Ping(ctx context.Context) error
	BreakerState() string
}

// readinessTimeout bounds the pool ping of /readyz.
const readinessTimeout = 2 * time.Second

// ProbeStatus is the body of /healthz and /readyz.
type ProbeStatus struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Breaker  string `json:"breaker,omitempty"`
	Error    string `json:"error,omitempty"`
}

// healthz is the liveness probe. It never touches the database.
func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, ProbeStatus{Status: "ok"})
}

// readyz is the readiness probe. It pings the pool.
func (rt *Router) readyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if rt.readiness == nil {
		writeJSON(w, http.StatusOK, ProbeStatus{Status: "ready"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := ProbeStatus{Status: "ready", Database: "connected", Breaker: rt.readiness.BreakerState()}
	if err := rt.readiness.Ping(ctx); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Readiness check failed")
		status.Status = "not_ready"
		status.Database = "unavailable"
		status.Error = SanitizeError(err, rt.handler.production)
		writeJSON(w, http.StatusServiceUnavailable, status)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/dhandiary-stats/internal/logging"
)

// DefaultShutdownTimeout bounds the drain of in-flight stats requests.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer is satisfied by *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService is the api-layer service that owns the listener.
//
//	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.Setup()}
//	tree.AddAPIService(services.NewHTTPServerService(srv, "", cfg.Server.ShutdownTimeout))
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration
}

// NewHTTPServerService wraps server. An empty addr is taken from
// *http.Server; it only appears in logs.
func NewHTTPServerService(server HTTPServer, addr string, shutdownTimeout time.Duration) *HTTPServerService {
	svc := &HTTPServerService{server: server, addr: addr, shutdownTimeout: shutdownTimeout}
	if svc.shutdownTimeout <= 0 {
		svc.shutdownTimeout = DefaultShutdownTimeout
	}
	if hs, ok := server.(*http.Server); ok && svc.addr == "" {
		svc.addr = hs.Addr
	}
	return svc
}

// Serve listens until the server fails, which suture answers with a
// restart, or until ctx ends, which drains the server and returns ctx.Err().
func (s *HTTPServerService) Serve(ctx context.Context) error {
	stopped := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", s.addr).Msg("HTTP server listening")
		stopped <- s.server.ListenAndServe()
	}()

	select {
	case err := <-stopped:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	if err := s.drain(); err != nil {
		return err
	}
	<-stopped
	return ctx.Err()
}

// drain runs Shutdown on a fresh context; ctx is already done.
func (s *HTTPServerService) drain() error {
	logging.Info().Dur("timeout", s.shutdownTimeout).Msg("Draining HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

func (s *HTTPServerService) String() string { return "http-server" }

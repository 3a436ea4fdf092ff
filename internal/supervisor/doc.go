// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

/*
Package supervisor runs the long-lived parts of the stats service under a
suture v4 supervisor tree.

# Overview

	dhandiary-stats
	├── data-layer
	│   ├── ratelimit-sweeper  (RATE_LIMIT_STORE=memory)
	│   └── pool-monitor
	└── api-layer
	    └── http-server

Each layer counts failures on its own. A sweeper that keeps crashing backs
off inside data-layer while the HTTP server keeps answering.

# Usage

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(ratelimit.NewSweeper(mem, cfg.Security.RateLimitSweep))
	tree.AddDataService(services.NewPoolMonitorService(mgr, 0))
	tree.AddAPIService(services.NewHTTPServerService(srv, "", cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err := tree.Serve(ctx)

# Logging

Supervisor events (service failures, restarts, backoff, stop timeouts) go
through sutureslog into the slog bridge of the logging package, so they
land in the same zerolog stream as request logs.
*/
package supervisor

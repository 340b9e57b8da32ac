// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dash-Industry-Forum/gcd/internal"
	"github.com/Dash-Industry-Forum/gcd/pkg/logging"
)

// SetupServer sets up router, middleware, and server, given the configuration.
func SetupServer(ctx context.Context, cfg *ServerConfig) (*Server, error) {
	logger := slog.Default()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.SlogMiddleWare(logger))
	r.Use(middleware.Recoverer)
	r.Use(responseHeaders(cfg.CORSOrigin))
	r.Use(NewPrometheusMiddleware())

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	if cfg.TimeoutS > 0 {
		r.Use(middleware.Timeout(time.Duration(cfg.TimeoutS) * time.Second))
	}

	r.Mount("/metrics", promhttp.Handler())

	server := Server{
		Router: r,
		Cfg:    cfg,
		logger: logger,
	}

	if cfg.MaxRequests > 0 {
		server.reqLimiter = NewIPRequestLimiter(cfg.MaxRequests, time.Duration(cfg.ReqLimitInt)*time.Second, time.Now())
	}

	if err := server.Routes(ctx); err != nil {
		return nil, fmt.Errorf("routes: %w", err)
	}

	logger.Info("gcdserver starting", "version", internal.GetVersion(), "port", cfg.Port)
	return &server, nil
}

// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/Dash-Industry-Forum/gcd/pkg/logging"
)

// Routes defines dispatches for all routes.
func (s *Server) Routes(ctx context.Context) error {
	for _, route := range logging.LogRoutes {
		s.Router.MethodFunc(route.Method, route.Path, route.Handler)
	}
	s.Router.MethodFunc("GET", "/healthz", s.healthzHandlerFunc)
	s.Router.MethodFunc("GET", "/config", s.configHandlerFunc)
	s.Router.MethodFunc("GET", "/reqcount", s.reqCountHandlerFunc)
	s.Router.Route("/api", func(r chi.Router) {
		if s.reqLimiter != nil {
			r.Use(NewLimiterMiddleware("Gcd-Requests", s.reqLimiter))
		}
		createRouteAPI(s)(r)
	})
	return nil
}

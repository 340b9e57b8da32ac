// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	Router     *chi.Mux
	Cfg        *ServerConfig
	logger     *slog.Logger
	reqLimiter *IPRequestLimiter
}

func (s *Server) healthzHandlerFunc(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, true, http.StatusOK)
}

// configHandlerFunc returns the server config.
func (s *Server) configHandlerFunc(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, s.Cfg, http.StatusOK)
}

// reqCountHandlerFunc returns the request count for the calling IP address.
func (s *Server) reqCountHandlerFunc(w http.ResponseWriter, r *http.Request) {
	if s.reqLimiter == nil {
		s.jsonResponse(w, map[string]any{"limited": false}, http.StatusOK)
		return
	}
	ip, err := getIP(r)
	if err != nil {
		http.Error(w, "could not read client IP", http.StatusBadRequest)
		return
	}
	s.jsonResponse(w, map[string]any{
		"limited": true,
		"count":   s.reqLimiter.Count(ip),
		"max":     s.reqLimiter.maxNrRequests,
		"resetAt": s.reqLimiter.EndTime(),
	}, http.StatusOK)
}

// jsonResponse marshals message and give response with code
//
// Don't add any more content after this since Content-Length is set
func (s *Server) jsonResponse(w http.ResponseWriter, message any, code int) {
	raw, err := json.Marshal(message)
	if err != nil {
		http.Error(w, fmt.Sprintf("{message: %q}", err), http.StatusInternalServerError)
		s.logger.Error("json marshal", "err", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(raw)))
	w.WriteHeader(code)
	if _, err = w.Write(raw); err != nil {
		s.logger.Error("could not write HTTP response", "err", err)
	}
}

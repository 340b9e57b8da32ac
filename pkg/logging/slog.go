// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package logging sets up the global slog logger and provides HTTP helpers for it.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dusted-go/logging/prettylog"
	"github.com/go-chi/chi/v5/middleware"
)

// Different types of logging
const (
	LogText    string = "text"
	LogJSON    string = "json"
	LogPretty  string = "pretty"
	LogDiscard string = "discard"
)

var logLevel = new(slog.LevelVar)

// LogFormats returns the allowed log formats.
var LogFormats = []string{LogText, LogJSON, LogPretty, LogDiscard}

// LogLevels returns the allowed log levels.
var LogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

// InitSlog initializes the global slog logger writing to w.
//
// The pretty format always writes to stdout.
func InitSlog(w io.Writer, level string, logFormat string) error {
	var logger *slog.Logger
	opts := &slog.HandlerOptions{Level: logLevel}

	switch logFormat {
	case LogText:
		logger = slog.New(slog.NewTextHandler(w, opts))
	case LogJSON:
		logger = slog.New(slog.NewJSONHandler(w, opts))
	case LogPretty:
		logger = slog.New(prettylog.NewHandler(opts))
	case LogDiscard:
		logger = slog.New(slog.NewTextHandler(io.Discard, opts))
	default:
		return fmt.Errorf("logFormat %q not known", logFormat)
	}
	if err := SetLogLevel(level); err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// LogLevel returns the current log level.
func LogLevel() string {
	return logLevel.Level().String()
}

// parseLevel parses a log level string. If the string is empty, INFO is assumed.
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelDebug, fmt.Errorf("log level %q not known", level)
	}
}

// SetLogLevel sets the global log level
func SetLogLevel(level string) error {
	l, err := parseLevel(level)
	if err != nil {
		return err
	}
	logLevel.Set(l)
	return nil
}

// SlogMiddleWare logs access and converts panic to stack traces.
func SlogMiddleWare(l *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				if rec := recover(); rec != nil {
					l.Error("Runtime error (panic)",
						"request_id", GetRequestID(r),
						"recover_info", rec,
						"debug_stack", string(debug.Stack()))
					http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
				latencyMS := fmt.Sprintf("%.3f", float64(time.Since(start).Nanoseconds())/1e6)
				l2 := l.With(
					"request_id", GetRequestID(r),
					"remote_ip", r.RemoteAddr,
					"method", r.Method,
					"url", r.URL.Path,
					"status", ww.Status(),
					"latency_ms", latencyMS,
					"bytes_out", ww.BytesWritten())
				if bytesIn := r.Header.Get("Content-Length"); bytesIn != "" {
					l2 = l2.With("bytes_in", bytesIn)
				}
				l2.Info("request")
			}()
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

// GetRequestID returns the request ID.
func GetRequestID(r *http.Request) string {
	requestID, ok := r.Context().Value(middleware.RequestIDKey).(string)
	if !ok {
		requestID = "-"
	}
	return requestID
}

// SubLoggerWithRequestID creates a new sub-logger with request_id field.
func SubLoggerWithRequestID(l *slog.Logger, r *http.Request) *slog.Logger {
	return l.With(slog.String("request_id", GetRequestID(r)))
}

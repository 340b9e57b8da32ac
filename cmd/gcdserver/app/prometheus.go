// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	defaultBuckets = []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500}
	prometheusMW   prometheusMiddleware
	computations   *prometheus.CounterVec
)

const (
	reqsName         = "http_requests_total"
	latencyName      = "http_request_duration_milliseconds"
	computationsName = "gcd_computations_total"
	service          = "gcdserver"
)

// prometheusMiddleware provides a handler that exposes prometheus metrics for all requests
type prometheusMiddleware struct {
	reqs    *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

func init() {
	prometheusMW.reqs = newCounter(reqsName,
		"Number of HTTP requests processed, partitioned by status code.", service, "code")
	prometheusMW.latency = newHistogram(latencyName,
		"HTTP response latency.", service, defaultBuckets)
	computations = newCounter(computationsName,
		"Number of GCD computations, partitioned by algorithm and width.", service, "algorithm", "width")
}

// NewPrometheusMiddleware returns a new prometheus Middleware handler.
func NewPrometheusMiddleware() func(next http.Handler) http.Handler {
	return prometheusMW.handler
}

func (mw prometheusMiddleware) handler(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := strconv.Itoa(ww.Status())
		latencyMS := float64(time.Since(start).Nanoseconds()) * 1e-6
		mw.reqs.WithLabelValues(status).Inc()
		mw.latency.WithLabelValues(status).Observe(latencyMS)
	}
	return http.HandlerFunc(fn)
}

func countComputation(algorithm, width string) {
	computations.WithLabelValues(algorithm, width).Inc()
}

func newCounter(counterName, help, serviceName string, labels ...string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        counterName,
			Help:        help,
			ConstLabels: prometheus.Labels{"service": serviceName},
		},
		labels,
	)
	prometheus.MustRegister(cv)
	return cv
}

func newHistogram(histogramName, help, serviceName string, buckets []float64) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        histogramName,
		Help:        help,
		ConstLabels: prometheus.Labels{"service": serviceName},
		Buckets:     buckets,
	},
		[]string{"code"},
	)
	prometheus.MustRegister(h)
	return h
}

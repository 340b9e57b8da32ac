// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// IPRequestLimiter limits the number of requests per IP address and interval.
type IPRequestLimiter struct {
	maxNrRequests int
	interval      time.Duration
	resetTime     time.Time
	counters      map[string]int
	mux           sync.Mutex
}

// NewIPRequestLimiter returns a limiter whose first interval starts at start.
func NewIPRequestLimiter(maxNrRequests int, interval time.Duration, start time.Time) *IPRequestLimiter {
	return &IPRequestLimiter{
		maxNrRequests: maxNrRequests,
		interval:      interval,
		resetTime:     start,
		counters:      make(map[string]int),
	}
}

// NewLimiterMiddleware returns a middleware that responds 429 Too Many Requests when
// the limit is exceeded. If hdrName is not empty, the count is set in that header.
func NewLimiterMiddleware(hdrName string, il *IPRequestLimiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ip, err := getIP(r)
			if err != nil {
				http.Error(w, "could not read client IP", http.StatusBadRequest)
				return
			}
			count, ok := il.Inc(time.Now(), ip)
			if hdrName != "" {
				w.Header().Set(hdrName, fmt.Sprintf("%d (max %d)", count, il.maxNrRequests))
			}
			if !ok {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// Inc increments the number of requests and returns number and ok value
func (il *IPRequestLimiter) Inc(now time.Time, key string) (int, bool) {
	il.mux.Lock()
	defer il.mux.Unlock()
	il.resetIfExpired(now)
	il.counters[key]++
	val := il.counters[key]
	return val, val <= il.maxNrRequests
}

// Count returns the current count for key.
func (il *IPRequestLimiter) Count(key string) int {
	il.mux.Lock()
	defer il.mux.Unlock()
	il.resetIfExpired(time.Now())
	return il.counters[key]
}

// EndTime returns the end of the current interval.
func (il *IPRequestLimiter) EndTime() time.Time {
	il.mux.Lock()
	defer il.mux.Unlock()
	return il.resetTime.Add(il.interval)
}

func (il *IPRequestLimiter) resetIfExpired(now time.Time) {
	if now.Sub(il.resetTime) > il.interval {
		il.counters = make(map[string]int)
		il.resetTime = now
	}
}

func getIP(req *http.Request) (string, error) {
	forwardIP := req.Header.Get("X-Forwarded-For")
	if forwardIP != "" {
		return forwardIP, nil
	}
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return "", err
	}
	userIP := net.ParseIP(ip)
	if userIP == nil {
		return "", fmt.Errorf("no IP found")
	}
	return userIP.String(), nil
}

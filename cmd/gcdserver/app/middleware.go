// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"net/http"

	"github.com/Dash-Industry-Forum/gcd/internal"
)

const versionHeader = "Gcdserver-Version"

// responseHeaders sets the version header on every response, and the
// CORS allow-origin header unless corsOrigin is empty.
func responseHeaders(corsOrigin string) func(http.Handler) http.Handler {
	version := internal.GetVersion()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(versionHeader, version)
			if corsOrigin != "" {
				h.Set("Access-Control-Allow-Origin", corsOrigin)
				if corsOrigin != "*" {
					h.Add("Vary", "Origin")
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package logging

import (
	"fmt"
	"net/http"
)

type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

var LogRoutes = [2]Route{
	{http.MethodGet, "/loglevel", LogLevelGet},
	{http.MethodPost, "/loglevel", LogLevelSet},
}

// LogLevelGet handles loglevel GET request
func LogLevelGet(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, LogLevel())
}

// LogLevelSet sets the loglevel from a posted form.
// Can be triggered like curl -F level=debug <server>/loglevel
// or curl -d level=debug <server>/loglevel
func LogLevelSet(w http.ResponseWriter, r *http.Request) {
	currentLevel := LogLevel()
	newLevel := r.FormValue("level")
	if newLevel == "" {
		http.Error(w, "Missing level in form data", http.StatusBadRequest)
		return
	}
	if err := SetLogLevel(newLevel); err != nil {
		http.Error(w, fmt.Sprintf("Incorrect log level %q", newLevel), http.StatusBadRequest)
		return
	}
	fmt.Fprintf(w, "%q -> %q\n", currentLevel, LogLevel())
}

// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package internal

import (
	"fmt"
	"strconv"
	"time"
)

var (
	commitVersion string = "v0.1.0-dev" // Should be updated during build
	commitDate    string = "1697500800" // commitDate in Epoch seconds (can be filled/updated in during build)
)

// GetVersion - get version and commitDate depending on what is inserted
func GetVersion() string {
	msg := commitVersion
	if seconds, err := strconv.Atoi(commitDate); err == nil && commitDate != "" {
		t := time.Unix(int64(seconds), 0).UTC()
		msg += fmt.Sprintf(", date: %s", t.Format("2006-01-02"))
	}
	return msg
}

// PrintVersion prints the version to stdout.
func PrintVersion() {
	fmt.Printf("%s\n", GetVersion())
}

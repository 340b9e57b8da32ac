// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Dash-Industry-Forum/gcd/internal"
	"github.com/Dash-Industry-Forum/gcd/pkg/calc"
	"github.com/Dash-Industry-Forum/gcd/pkg/logging"
)

// Run computes the GCD described by opts and writes the result to w.
// Logs go to stderr so they never mix with the result.
func Run(opts *Options, w io.Writer) error {
	if opts.Version {
		_, err := fmt.Fprintln(w, internal.GetVersion())
		return err
	}
	if err := logging.InitSlog(os.Stderr, opts.LogLevel, opts.LogFormat); err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	req := calc.Request{
		Width:     calc.Width(opts.Width),
		Algorithm: calc.Algorithm(opts.Algorithm),
		NonZero:   opts.NonZero,
		Verify:    opts.Verify,
		Values:    opts.Values,
	}
	slog.Debug("computing", "width", req.Width, "algorithm", req.Algorithm, "values", req.Values)
	res, err := calc.Compute(req)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	slog.Debug("computed", "gcd", res.GCD, "verified", res.Verified)
	return res.Write(w, opts.Output)
}

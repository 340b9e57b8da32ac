// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/Dash-Industry-Forum/gcd/pkg/calc"
	"github.com/Dash-Industry-Forum/gcd/pkg/logging"
)

var usg = `Usage of %s:

%s computes the greatest common divisor of two or more unsigned integers.

The values are parsed as decimal numbers of the chosen width (8, 16, 32, 64, 128,
uint or uintptr bits). With more than two values, the GCD is folded left to right.
The default algorithm is the binary (Stein's) algorithm; euclid selects the
Euclidean algorithm. With --verify both are run and must agree.

Example:

$ %s -w 32 2024 748
gcd(2024, 748) = 44
`

// Options for the gcd command line tool.
type Options struct {
	Width     string
	Algorithm string
	NonZero   bool
	Verify    bool
	Output    string
	LogLevel  string
	LogFormat string
	Version   bool
	Values    []string
}

const (
	defaultWidth     = string(calc.Width64)
	defaultAlgorithm = string(calc.AlgDefault)
	defaultLogLevel  = "warn"
	defaultLogFormat = logging.LogText
)

func joinStrings[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// ParseOptions parses the command line args (including the program name).
func ParseOptions(args []string) (*Options, error) {
	parts := strings.Split(args[0], "/")
	name := parts[len(parts)-1]

	o := Options{}
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.StringVarP(&o.Width, "width", "w", defaultWidth, fmt.Sprintf("integer width [%s]", joinStrings(calc.Widths)))
	f.StringVarP(&o.Algorithm, "algorithm", "a", defaultAlgorithm,
		fmt.Sprintf("algorithm [%s]", joinStrings(calc.Algorithms)))
	f.BoolVar(&o.NonZero, "nonzero", false, "use the non-zero refinement (zero values are rejected)")
	f.BoolVar(&o.Verify, "verify", false, "cross-check the result with the other algorithm")
	f.StringVarP(&o.Output, "output", "o", calc.OutText, fmt.Sprintf("output format [%s]", joinStrings(calc.OutFormats)))
	f.StringVar(&o.LogLevel, "loglevel", defaultLogLevel, fmt.Sprintf("log level [%s]", joinStrings(logging.LogLevels)))
	f.StringVar(&o.LogFormat, "logformat", defaultLogFormat, fmt.Sprintf("log format [%s]", joinStrings(logging.LogFormats)))
	f.BoolVarP(&o.Version, "version", "v", false, "print version and date")
	f.SortFlags = false

	f.Usage = func() {
		fmt.Fprintf(os.Stderr, usg, name, name, name)
		fmt.Fprintf(os.Stderr, "\nRun as %s [options] value value [value ...]\n\n", name)
		f.PrintDefaults()
	}

	if err := f.Parse(args[1:]); err != nil {
		return nil, err
	}
	o.Values = f.Args()
	if !o.Version && len(o.Values) < 2 {
		f.Usage()
		return nil, fmt.Errorf("need at least two values, got %d", len(o.Values))
	}
	return &o, nil
}

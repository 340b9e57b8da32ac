// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Dash-Industry-Forum/gcd/pkg/calc"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]string{"/usr/bin/gcd", "-w", "8", "-a", "euclid", "--verify", "255", "85"})
	require.NoError(t, err)
	require.Equal(t, "8", opts.Width)
	require.Equal(t, "euclid", opts.Algorithm)
	require.True(t, opts.Verify)
	require.False(t, opts.NonZero)
	require.Equal(t, []string{"255", "85"}, opts.Values)
	require.Equal(t, defaultLogLevel, opts.LogLevel)

	opts, err = ParseOptions([]string{"gcd", "--version"})
	require.NoError(t, err)
	require.True(t, opts.Version)

	_, err = ParseOptions([]string{"gcd", "10"})
	require.Error(t, err)

	_, err = ParseOptions([]string{"gcd", "--fish", "10", "20"})
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	cases := []struct {
		desc string
		args []string
		want string
	}{
		{"default", []string{"gcd", "2024", "748"}, "gcd(2024, 748) = 44\n"},
		{"8-bit euclid", []string{"gcd", "-w", "8", "-a", "euclid", "255", "85"}, "gcd(255, 85) = 85\n"},
		{"zeros", []string{"gcd", "0", "0"}, "gcd(0, 0) = 0\n"},
		{"three values", []string{"gcd", "--nonzero", "12", "18", "30"}, "gcd(12, 18, 30) = 6\n"},
		{"128-bit", []string{"gcd", "-w", "128", "--verify", "340282366920938463463374607431768211455", "255"},
			"gcd(340282366920938463463374607431768211455, 255) = 255\n"},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			opts, err := ParseOptions(c.args)
			require.NoError(t, err)
			opts.LogFormat = "discard"
			buf := bytes.Buffer{}
			require.NoError(t, Run(opts, &buf))
			require.Equal(t, c.want, buf.String())
		})
	}
}

func TestRunJSON(t *testing.T) {
	opts, err := ParseOptions([]string{"gcd", "-o", "json", "-w", "16", "--verify", "60000", "48000"})
	require.NoError(t, err)
	opts.LogFormat = "discard"
	buf := bytes.Buffer{}
	require.NoError(t, Run(opts, &buf))
	var res calc.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.Equal(t, "12000", res.GCD)
	require.True(t, res.Verified)
	require.Equal(t, calc.Width16, res.Width)
}

func TestRunXML(t *testing.T) {
	opts, err := ParseOptions([]string{"gcd", "-o", "xml", "10", "20"})
	require.NoError(t, err)
	opts.LogFormat = "discard"
	buf := bytes.Buffer{}
	require.NoError(t, Run(opts, &buf))
	require.True(t, strings.Contains(buf.String(), "<Result>10</Result>"))
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		desc string
		args []string
		want error
	}{
		{"zero nonzero", []string{"gcd", "--nonzero", "0", "2"}, calc.ErrZeroValue},
		{"bad width", []string{"gcd", "-w", "12", "1", "2"}, calc.ErrUnknownWidth},
		{"bad algorithm", []string{"gcd", "-a", "lehmer", "1", "2"}, calc.ErrUnknownAlgorithm},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			opts, err := ParseOptions(c.args)
			require.NoError(t, err)
			opts.LogFormat = "discard"
			err = Run(opts, &bytes.Buffer{})
			require.ErrorIs(t, err, c.want)
		})
	}

	opts, err := ParseOptions([]string{"gcd", "-w", "8", "256", "2"})
	require.NoError(t, err)
	opts.LogFormat = "discard"
	var pErr *calc.ParseError
	require.ErrorAs(t, Run(opts, &bytes.Buffer{}), &pErr)
	require.Equal(t, "256", pErr.Value)

	opts, err = ParseOptions([]string{"gcd", "-o", "yaml", "1", "2"})
	require.NoError(t, err)
	opts.LogFormat = "discard"
	require.Error(t, Run(opts, &bytes.Buffer{}))
}

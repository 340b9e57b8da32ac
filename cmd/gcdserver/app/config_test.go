// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadConfig([]string{"/path/gcdserver"})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, *cfg)
}

func TestConfigFile(t *testing.T) {
	cfgFile := "./testdata/testvalues.json"
	cfg, err := LoadConfig([]string{"/path/gcdserver", "--cfg", cfgFile})
	require.NoError(t, err)
	extCfg := DefaultConfig
	data, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &extCfg))
	assert.Equal(t, extCfg, *cfg)
}

func TestYAMLConfigFile(t *testing.T) {
	cfg, err := LoadConfig([]string{"/path/gcdserver", "--cfg", "./testdata/testvalues.yaml"})
	require.NoError(t, err)
	c := DefaultConfig
	c.LogFormat = "json"
	c.LogLevel = "WARN"
	c.Port = 7777
	c.MaxValues = 4
	assert.Equal(t, c, *cfg)
}

func TestCommandLine(t *testing.T) {
	osArgs := []string{"/path/gcdserver", "--loglevel", "debug", "--domains", "gcd.example.com", "--maxvalues", "3"}
	cfg, err := LoadConfig(osArgs)
	require.NoError(t, err)
	c := DefaultConfig
	c.LogLevel = "debug"
	c.Port = 443
	c.Domains = "gcd.example.com"
	c.MaxValues = 3
	assert.Equal(t, c, *cfg)
}

func TestEnv(t *testing.T) {
	t.Setenv("GCDSERVER_LOGLEVEL", "warn")
	t.Setenv("GCDSERVER_PORT", "8080")
	cfg, err := LoadConfig([]string{"/path/gcdserver", "--loglevel", "debug"})
	require.NoError(t, err)
	c := DefaultConfig
	c.LogLevel = "warn"
	c.Port = 8080
	assert.Equal(t, c, *cfg)
}

func TestBadConfig(t *testing.T) {
	cases := [][]string{
		{"gcdserver", "--cfg", "./testdata/missing.json"},
		{"gcdserver", "--cfg", "./testdata/testvalues.toml"},
		{"gcdserver", "--certpath", "cert.pem"},
		{"gcdserver", "--maxvalues", "0"},
		{"gcdserver", "--port", "fish"},
	}
	for _, args := range cases {
		_, err := LoadConfig(args)
		require.Error(t, err, "args %v", args)
	}
}

// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/spf13/pflag"

	"github.com/Dash-Industry-Forum/gcd/pkg/logging"
)

const (
	envPrefix = "GCDSERVER_"
	httpsPort = 443
)

type ServerConfig struct {
	LogFormat string `json:"logformat"`
	LogLevel  string `json:"loglevel"`
	Port      int    `json:"port"`
	// TimeoutS is the timeout for all requests in seconds. 0 means no timeout.
	TimeoutS int `json:"timeout"`
	// MaxRequests is the max number of requests per IP address and ReqLimitInt. 0 means no limit.
	MaxRequests int `json:"maxrequests"`
	ReqLimitInt int `json:"reqlimitint"`
	// MaxValues limits the number of values in one API request.
	MaxValues int `json:"maxvalues"`
	// Domains is a comma-separated list of domains for ACME certificates (port is set to 443).
	Domains  string `json:"domains"`
	CertPath string `json:"certpath"`
	KeyPath  string `json:"keypath"`
	// CORSOrigin is sent as Access-Control-Allow-Origin. Empty disables the header.
	CORSOrigin string `json:"corsorigin"`
}

var DefaultConfig = ServerConfig{
	LogFormat:   logging.LogText,
	LogLevel:    "INFO",
	Port:        8888,
	TimeoutS:    60,
	MaxRequests: 0,
	ReqLimitInt: 24 * 3600,
	MaxValues:   64,
	CORSOrigin:  "*",
}

// LoadConfig loads defaults, config file, command line, and finally applies environment variables.
//
// The config file can be JSON or YAML, decided by its extension.
func LoadConfig(args []string) (*ServerConfig, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultConfig, "json"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	parts := strings.Split(args[0], "/")
	name := parts[len(parts)-1]
	f := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Run as %s [options]:\n", name)
		f.PrintDefaults()
	}
	cfgFile := f.String("cfg", "", "path to a JSON or YAML config file")
	f.Int("port", k.Int("port"), "HTTP port")
	lf := strings.Join(logging.LogFormats, ", ")
	f.String("logformat", k.String("logformat"), fmt.Sprintf("log format [%s]", lf))
	ll := strings.Join(logging.LogLevels, ", ")
	f.String("loglevel", k.String("loglevel"), fmt.Sprintf("log level [%s]", ll))
	f.Int("timeout", k.Int("timeout"), "timeout for all requests (seconds)")
	f.Int("maxrequests", k.Int("maxrequests"), "max nr of requests per IP address per reqlimitint (0 is no limit)")
	f.Int("reqlimitint", k.Int("reqlimitint"), "interval for request limit (seconds)")
	f.Int("maxvalues", k.Int("maxvalues"), "max nr of values in one request")
	f.String("domains", k.String("domains"), "comma-separated list of domains for Let's Encrypt certificates")
	f.String("certpath", k.String("certpath"), "path to TLS certificate file (for HTTPS)")
	f.String("keypath", k.String("keypath"), "path to TLS private key file (for HTTPS)")
	f.String("corsorigin", k.String("corsorigin"), "Access-Control-Allow-Origin value (empty disables CORS)")
	if err := f.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("command line parse: %w", err)
	}

	if *cfgFile != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(*cfgFile)); ext {
		case ".json":
			parser = json.Parser()
		case ".yaml", ".yml":
			parser = yaml.Parser()
		default:
			return nil, fmt.Errorf("config file %q: unknown extension %q", *cfgFile, ext)
		}
		if err := k.Load(file.Provider(*cfgFile), parser); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Possibly override config file with commandline parameters
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("parsing cli: %w", err)
	}

	// Overload with environment variables
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg ServerConfig
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if cfg.Domains != "" {
		cfg.Port = httpsPort
	}
	if (cfg.CertPath == "") != (cfg.KeyPath == "") {
		return nil, fmt.Errorf("both certpath and keypath must be set for HTTPS")
	}
	if cfg.MaxValues < 1 {
		return nil, fmt.Errorf("maxvalues must be at least 1, got %d", cfg.MaxValues)
	}
	return &cfg, nil
}

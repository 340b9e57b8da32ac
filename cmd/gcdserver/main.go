// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caddyserver/certmagic"
	"github.com/spf13/pflag"

	"github.com/Dash-Industry-Forum/gcd/cmd/gcdserver/app"
	"github.com/Dash-Industry-Forum/gcd/pkg/logging"
)

const (
	gracefulShutdownWait = 2 * time.Second
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	cfg, err := app.LoadConfig(os.Args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error loading config: %s\n", err.Error())
		return 1
	}

	if err := logging.InitSlog(os.Stdout, cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %s\n", err.Error())
		return 1
	}

	stopSignal := make(chan os.Signal, 1)
	signal.Notify(stopSignal, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	startIssue := make(chan struct{}, 1)
	stopServer := make(chan struct{}, 1)

	ctx, cancelBkg := context.WithCancel(context.Background())

	go func() {
		select {
		case <-startIssue:
		case <-stopSignal:
		}
		cancelBkg()
		stopServer <- struct{}{}
	}()

	server, err := app.SetupServer(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up server: %s\n", err.Error())
		return 1
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", server.Cfg.Port),
		Handler:           server.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		switch {
		case cfg.Domains != "": // HTTPS with ACME certificates
			certmagic.DefaultACME.Agreed = true
			domains := strings.Split(cfg.Domains, ",")
			srv.TLSConfig, err = certmagic.TLS(domains)
			if err == nil {
				err = srv.ListenAndServeTLS("", "")
			}
		case cfg.CertPath != "": // HTTPS with given certificate
			err = srv.ListenAndServeTLS(cfg.CertPath, cfg.KeyPath)
		default:
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			exitCode = 1
			startIssue <- struct{}{}
		}
	}()

	<-stopServer // Wait here for stop signal
	slog.Info("Server to be stopped")

	timeoutCtx, cancelTimeout := context.WithTimeout(context.Background(), 5*time.Second)
	defer func() {
		slog.Info("Server stopped")
		cancelTimeout()
		time.Sleep(gracefulShutdownWait)
	}()

	if err := srv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Server shutdown failed", "err", err)
	}
	return exitCode
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"crypto/tls"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oneclick/waitlist/admin"
	"github.com/oneclick/waitlist/pkg/buntdbprefs"
	"github.com/oneclick/waitlist/pkg/waitlist"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	httpAddr  = flag.String("http.addr", ":8080", "HTTP listen address")
	adminAddr = flag.String("admin.addr", ":9090", "Admin HTTP listen address")

	// Metrics
	signups = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "waitlist_signups",
		Help: "Count of waitlist signup attempts by outcome",
	}, []string{"user_type", "result"})

	internalServerErrors = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "http_internal_server_errors",
		Help: "Count of how many 5xx errors we send out",
	}, nil)
)

const Version = "0.1.0-dev"

//go:embed static
var staticFS embed.FS

func main() {
	flag.Parse()

	// Setup logging, default to stderr
	var logger log.Logger
	logger = log.NewLogfmtLogger(os.Stderr)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	logger = log.With(logger, "caller", log.DefaultCaller)
	logger.Log("startup", fmt.Sprintf("Starting waitlist server version %s", Version))

	cfg := loadConfig(logger)
	if err := admin.Init(); err != nil {
		logger.Log("admin", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, err := setupRepository(ctx, logger, cfg)
	if err != nil {
		logger.Log("store", err)
		os.Exit(1)
	}
	defer repo.Close()

	prefs, err := buntdbprefs.New(cfg.PreferencesPath)
	if err != nil {
		logger.Log("preferences", err)
		os.Exit(1)
	}
	defer prefs.Close()

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		logger.Log("static", err)
		os.Exit(1)
	}

	// Listen for application termination.
	errs := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	joiner := instrument(waitlist.NewService(repo), signups)
	v := &visitors{
		store:  prefs,
		logger: logger,
		domain: cfg.Domain,
		secure: cfg.SecureCookies,
	}
	handler := newRouter(logger, joiner, v, static)

	serve := &http.Server{
		Addr:    *httpAddr,
		Handler: handler,
		TLSConfig: &tls.Config{
			InsecureSkipVerify: false,
			MinVersion:         tls.VersionTLS12,
		},
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	shutdownServer := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := serve.Shutdown(ctx); err != nil {
			logger.Log("shutdown", err)
		}
	}

	adminService := admin.SetupServer(*adminAddr)
	adminService.AddLivenessCheck("signups", func() error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return repo.Ping(ctx)
	})
	go func() {
		logger.Log("admin", fmt.Sprintf("Starting admin service on %s", adminService.BindAddress()))
		if err := adminService.Listen(); err != nil {
			logger.Log("admin", "shutting down", "error", err)
		}
	}()

	go func() {
		logger.Log("transport", "HTTP", "addr", *httpAddr)
		errs <- serve.ListenAndServe()
	}()

	if err := <-errs; err != nil {
		adminService.Shutdown()
		shutdownServer()
		logger.Log("exit", err)
	}
}

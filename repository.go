// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/oneclick/waitlist/pkg/waitlist"

	"github.com/go-kit/kit/log"
	kitprom "github.com/go-kit/kit/metrics/prometheus"
	stdprom "github.com/prometheus/client_golang/prometheus"
)

var (
	connections = kitprom.NewGaugeFrom(stdprom.GaugeOpts{
		Name: "store_connections",
		Help: "How many signup store connections and what status they're in.",
	}, []string{"state"})
)

// signupRepository is a waitlist.Repository the server owns the lifecycle of.
type signupRepository interface {
	waitlist.Repository

	Ping(ctx context.Context) error
	Close() error
}

// setupRepository connects to Postgres when DATABASE_URL is set and falls
// back to a local sqlite file otherwise.
func setupRepository(ctx context.Context, logger log.Logger, cfg config) (signupRepository, error) {
	if cfg.DatabaseURL != "" {
		logger.Log("store", "using postgres")
		return newPostgresRepository(ctx, logger, cfg.DatabaseURL, cfg.DatabaseKey)
	}
	logger.Log("store", "using sqlite", "path", cfg.SqlitePath)
	return newSqliteRepository(ctx, logger, cfg.SqlitePath)
}

// storeError carries the store's own message, which is shown to callers.
type storeError struct {
	msg string
	err error
}

func (e *storeError) Error() string { return e.msg }
func (e *storeError) Unwrap() error { return e.err }

// nullableUserType stores an absent user type as NULL.
func nullableUserType(u waitlist.UserType) *string {
	if u == "" {
		return nil
	}
	s := string(u)
	return &s
}

type connectionStats struct {
	idle, inUse, open int
}

// sampleConnections publishes connection pool stats until ctx is done.
func sampleConnections(ctx context.Context, interval time.Duration, stats func() connectionStats) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		s := stats()
		connections.With("state", "idle").Set(float64(s.idle))
		connections.With("state", "inuse").Set(float64(s.inUse))
		connections.With("state", "open").Set(float64(s.open))

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oneclick/waitlist/pkg/waitlist"

	"github.com/go-kit/kit/log"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is SQLSTATE 23505 (Class 23, Integrity Constraint Violation).
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgUniqueViolation = "23505"

// postgresRepository inserts into a waitlist table owned outside of this
// service:
//
//	create table waitlist (
//	  email text not null unique,
//	  user_type text,
//	  created_at timestamptz not null default now()
//	);
type postgresRepository struct {
	pool   *pgxpool.Pool
	logger log.Logger

	cancel context.CancelFunc
}

// newPostgresRepository connects to databaseURL. When serviceKey is set it
// replaces the password from the URL.
func newPostgresRepository(ctx context.Context, logger log.Logger, databaseURL, serviceKey string) (*postgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("problem parsing DATABASE_URL: %v", err)
	}
	if serviceKey != "" {
		cfg.ConnConfig.Password = serviceKey
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("problem connecting to postgres: %v", err)
	}
	logger.Log("postgres", "connected", "host", cfg.ConnConfig.Host, "database", cfg.ConnConfig.Database)

	ctx, cancel := context.WithCancel(ctx)
	go sampleConnections(ctx, 10*time.Second, func() connectionStats {
		stats := pool.Stat()
		return connectionStats{
			idle:  int(stats.IdleConns()),
			inUse: int(stats.AcquiredConns()),
			open:  int(stats.TotalConns()),
		}
	})

	return &postgresRepository{pool: pool, logger: logger, cancel: cancel}, nil
}

func (r *postgresRepository) Insert(ctx context.Context, rec waitlist.Record) error {
	_, err := r.pool.Exec(ctx, `insert into waitlist (email, user_type) values ($1, $2)`, rec.Email, nullableUserType(rec.UserType))
	if err != nil {
		return postgresError(err)
	}
	return nil
}

// postgresError turns a unique violation into waitlist.ErrDuplicate and
// keeps the server's message for every other PgError.
func postgresError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", waitlist.ErrDuplicate, pgErr.ConstraintName)
	}
	return &storeError{msg: pgErr.Message, err: err}
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *postgresRepository) Close() error {
	r.cancel()
	r.pool.Close()
	return nil
}

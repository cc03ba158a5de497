// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oneclick/waitlist/pkg/waitlist"

	"github.com/go-kit/kit/log"
	"github.com/mattn/go-sqlite3"
)

var (
	// migrations holds all our SQL migrations to be done (in order)
	migrations = []string{
		`create table if not exists waitlist(email text not null unique, user_type text, created_at timestamp not null default current_timestamp);`,
	}
)

func getSqlitePath() string {
	path := os.Getenv("SQLITE_DB_PATH")
	if path == "" || strings.Contains(path, "..") {
		// set default if empty or trying to escape
		// don't filepath.ABS to avoid full-fs reads
		path = "waitlist.db"
	}
	return path
}

type sqliteRepository struct {
	db     *sql.DB
	logger log.Logger

	cancel context.CancelFunc
}

// newSqliteRepository opens the sqlite database at path and runs our
// migrations over it.
//
// https://github.com/mattn/go-sqlite3/blob/master/_example/simple/simple.go
func newSqliteRepository(ctx context.Context, logger log.Logger, path string) (*sqliteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		err = fmt.Errorf("problem opening sqlite3 file: %v", err)
		logger.Log("sqlite", err)
		return nil, err
	}
	// sqlite serializes writers anyway, and each :memory: connection
	// would otherwise be its own database.
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, logger, db); err != nil {
		db.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	go sampleConnections(ctx, 10*time.Second, func() connectionStats {
		stats := db.Stats()
		return connectionStats{idle: stats.Idle, inUse: stats.InUse, open: stats.OpenConnections}
	})

	return &sqliteRepository{db: db, logger: logger, cancel: cancel}, nil
}

// migrate runs our database migrations (defined at the top of this file).
func migrate(ctx context.Context, logger log.Logger, db *sql.DB) error {
	logger.Log("sqlite", "starting migrations")
	for i := range migrations {
		row := migrations[i]
		res, err := db.ExecContext(ctx, row)
		if err != nil {
			return fmt.Errorf("migration #%d [%s] had problem: %v", i, truncate(row, 40), err)
		}
		n, err := res.RowsAffected()
		if err == nil {
			logger.Log("sqlite", fmt.Sprintf("migration #%d [%s] changed %d rows", i, truncate(row, 40), n))
		}
	}
	logger.Log("sqlite", "finished migrations")
	return nil
}

func (r *sqliteRepository) Insert(ctx context.Context, rec waitlist.Record) error {
	_, err := r.db.ExecContext(ctx, `insert into waitlist (email, user_type) values (?, ?);`, rec.Email, nullableUserType(rec.UserType))
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return waitlist.ErrDuplicate
	}
	return err
}

// lookup returns the record for email, or nil when there isn't one.
func (r *sqliteRepository) lookup(ctx context.Context, email string) (*waitlist.Record, error) {
	var (
		rec      waitlist.Record
		userType sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `select email, user_type, created_at from waitlist where email = ?;`, email).Scan(&rec.Email, &userType, &rec.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	rec.UserType = waitlist.UserType(userType.String)
	return &rec, nil
}

func (r *sqliteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *sqliteRepository) Close() error {
	r.cancel()
	return r.db.Close()
}

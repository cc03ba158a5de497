// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/joho/godotenv"
)

type config struct {
	// DatabaseURL points at the hosted Postgres signup store. When empty
	// a local sqlite file (SqlitePath) is used instead.
	DatabaseURL string
	// DatabaseKey is the privileged credential for DatabaseURL.
	DatabaseKey string

	SqlitePath      string
	PreferencesPath string

	// Domain is the domain to publish cookies under.
	// If empty "localhost" is used.
	Domain        string
	SecureCookies bool
}

// loadConfig reads .env (when present) and then the environment.
func loadConfig(logger log.Logger, envFiles ...string) config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			logger.Log("config", "problem reading env file", "path", path, "error", err)
		}
	}

	cfg := config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DatabaseKey:     os.Getenv("DATABASE_SERVICE_KEY"),
		SqlitePath:      getSqlitePath(),
		PreferencesPath: os.Getenv("PREFERENCES_DB_PATH"),
		Domain:          os.Getenv("DOMAIN"),
		SecureCookies:   strings.EqualFold(os.Getenv("SECURE_COOKIES"), "yes"),
	}
	if cfg.PreferencesPath == "" || strings.Contains(cfg.PreferencesPath, "..") {
		cfg.PreferencesPath = "preferences.db"
	}
	if cfg.Domain == "" {
		cfg.Domain = "localhost"
	}
	return cfg
}

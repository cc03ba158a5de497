// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig__defaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "DATABASE_SERVICE_KEY", "SQLITE_DB_PATH", "PREFERENCES_DB_PATH", "DOMAIN", "SECURE_COOKIES"} {
		t.Setenv(k, "")
	}

	cfg := loadConfig(log.NewNopLogger(), filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "waitlist.db", cfg.SqlitePath)
	assert.Equal(t, "preferences.db", cfg.PreferencesPath)
	assert.Equal(t, "localhost", cfg.Domain)
	assert.False(t, cfg.SecureCookies)
}

func TestConfig__envFile(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "DATABASE_SERVICE_KEY", "DOMAIN", "SECURE_COOKIES"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), ".env")
	contents := "DATABASE_URL=postgres://waitlist@db.example.com:5432/waitlist\nDATABASE_SERVICE_KEY=secret\nDOMAIN=oneclick.example\nSECURE_COOKIES=yes\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	cfg := loadConfig(log.NewNopLogger(), path)
	assert.Equal(t, "postgres://waitlist@db.example.com:5432/waitlist", cfg.DatabaseURL)
	assert.Equal(t, "secret", cfg.DatabaseKey)
	assert.Equal(t, "oneclick.example", cfg.Domain)
	assert.True(t, cfg.SecureCookies)
}

func TestConfig__envWins(t *testing.T) {
	t.Setenv("DOMAIN", "from-env.example")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOMAIN=from-file.example\n"), 0600))

	cfg := loadConfig(log.NewNopLogger(), path)
	assert.Equal(t, "from-env.example", cfg.Domain)
}

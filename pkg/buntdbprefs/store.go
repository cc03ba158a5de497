// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// buntdbprefs implements settings.Store using BuntDB
// (https://github.com/tidwall/buntdb).
package buntdbprefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oneclick/waitlist/pkg/settings"

	"github.com/tidwall/buntdb"
)

var (
	// DefaultTTL is the value used as TTL on buntdb.SetOptions
	DefaultTTL time.Duration = 365 * 24 * time.Hour
)

// New opens (or creates) the BuntDB file at path. ":memory:" keeps
// everything in memory.
func New(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("buntdbprefs: opening %s: %v", path, err)
	}
	return &Store{
		db: db,
	}, nil
}

type Store struct {
	db *buntdb.DB
}

var _ settings.Store = (*Store)(nil)

func (s *Store) Close() error {
	return s.db.Close()
}

func key(visitorID string) string {
	return fmt.Sprintf("prefs:%s", visitorID)
}

// Get returns settings.ErrNotFound for unknown (or expired) visitors.
func (s *Store) Get(visitorID string) (settings.Preferences, error) {
	var prefs settings.Preferences
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key(visitorID))
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(v), &prefs)
	})
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return settings.Preferences{}, settings.ErrNotFound
		}
		return settings.Preferences{}, fmt.Errorf("problem reading %s: %v", visitorID, err)
	}
	return prefs, nil
}

// Put replaces the visitor's preferences and refreshes their TTL.
func (s *Store) Put(visitorID string, prefs settings.Preferences) error {
	if visitorID == "" {
		return errors.New("buntdbprefs: empty visitor id")
	}
	bs, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *buntdb.Tx) error {
		opts := &buntdb.SetOptions{
			Expires: DefaultTTL > 0,
			TTL:     DefaultTTL,
		}
		_, _, err := tx.Set(key(visitorID), string(bs), opts)
		return err
	})
	if err != nil {
		return fmt.Errorf("problem updating %s: %v", visitorID, err)
	}
	return nil
}

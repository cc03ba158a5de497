// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package settings tracks a visitor's display preferences: dark mode and
// the user segment selecting which copy the landing page shows.
package settings

import (
	"errors"
	"fmt"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

// ErrNotFound is returned by a Store without preferences for a visitor.
var ErrNotFound = errors.New("settings: preferences not found")

// DefaultSegment is shown to visitors who haven't picked one.
const DefaultSegment = waitlist.Business

// Preferences is what a Store persists. A nil DarkMode means the visitor
// never chose a theme explicitly.
type Preferences struct {
	DarkMode *bool             `json:"dark_mode,omitempty"`
	Segment  waitlist.UserType `json:"segment,omitempty"`
}

type Store interface {
	Get(visitorID string) (Preferences, error)
	Put(visitorID string, prefs Preferences) error
}

// Settings is one visitor's resolved display state.
type Settings struct {
	DarkMode bool
	Segment  waitlist.UserType

	explicitDark bool

	store     Store
	visitorID string
}

// Load reads the stored preferences for visitorID. Without a stored theme
// preference the system signal decides dark mode.
func Load(store Store, visitorID string, systemDark bool) (*Settings, error) {
	s := &Settings{
		Segment:   DefaultSegment,
		store:     store,
		visitorID: visitorID,
	}
	defer s.FollowSystem(systemDark)

	if store == nil || visitorID == "" {
		return s, nil
	}
	prefs, err := store.Get(visitorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return s, nil
		}
		return s, fmt.Errorf("settings: loading %s: %w", visitorID, err)
	}
	if prefs.DarkMode != nil {
		s.DarkMode = *prefs.DarkMode
		s.explicitDark = true
	}
	if prefs.Segment != "" && prefs.Segment.Valid() {
		s.Segment = prefs.Segment
	}
	return s, nil
}

// Explicit reports if the visitor picked a theme themselves.
func (s *Settings) Explicit() bool {
	return s.explicitDark
}

// FollowSystem applies a new system signal, but only while no explicit
// theme preference has been recorded.
func (s *Settings) FollowSystem(systemDark bool) {
	if s.explicitDark {
		return
	}
	s.DarkMode = systemDark
}

// ToggleDarkMode flips the theme, records it as explicit and persists it.
func (s *Settings) ToggleDarkMode() error {
	s.DarkMode = !s.DarkMode
	s.explicitDark = true
	return s.persist()
}

// SetSegment changes the user segment and persists it.
func (s *Settings) SetSegment(seg waitlist.UserType) error {
	if seg == "" || !seg.Valid() {
		return fmt.Errorf("settings: unknown segment %q", seg)
	}
	s.Segment = seg
	return s.persist()
}

func (s *Settings) persist() error {
	if s.store == nil || s.visitorID == "" {
		return nil
	}
	prefs := Preferences{Segment: s.Segment}
	if s.explicitDark {
		dark := s.DarkMode
		prefs.DarkMode = &dark
	}
	if err := s.store.Put(s.visitorID, prefs); err != nil {
		return fmt.Errorf("settings: saving %s: %w", s.visitorID, err)
	}
	return nil
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package settings

import (
	"errors"
	"testing"

	"github.com/oneclick/waitlist/pkg/waitlist"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	prefs map[string]Preferences
	err   error
}

func (m *mapStore) Get(id string) (Preferences, error) {
	if m.err != nil {
		return Preferences{}, m.err
	}
	p, ok := m.prefs[id]
	if !ok {
		return Preferences{}, ErrNotFound
	}
	return p, nil
}

func (m *mapStore) Put(id string, p Preferences) error {
	if m.err != nil {
		return m.err
	}
	m.prefs[id] = p
	return nil
}

func TestSettings__defaults(t *testing.T) {
	store := &mapStore{prefs: make(map[string]Preferences)}

	s, err := Load(store, "visitor", true)
	require.NoError(t, err)
	require.True(t, s.DarkMode)
	require.False(t, s.Explicit())
	require.Equal(t, waitlist.Business, s.Segment)

	s, err = Load(nil, "", false)
	require.NoError(t, err)
	require.False(t, s.DarkMode)
}

func TestSettings__followSystem(t *testing.T) {
	store := &mapStore{prefs: make(map[string]Preferences)}
	s, err := Load(store, "visitor", false)
	require.NoError(t, err)

	s.FollowSystem(true)
	require.True(t, s.DarkMode)

	// once toggled the system signal is ignored
	require.NoError(t, s.ToggleDarkMode())
	require.False(t, s.DarkMode)
	require.True(t, s.Explicit())
	s.FollowSystem(true)
	require.False(t, s.DarkMode)

	// and a reload keeps the explicit choice
	s, err = Load(store, "visitor", true)
	require.NoError(t, err)
	require.False(t, s.DarkMode)
	require.True(t, s.Explicit())
}

func TestSettings__segment(t *testing.T) {
	store := &mapStore{prefs: make(map[string]Preferences)}
	s, _ := Load(store, "visitor", false)

	require.NoError(t, s.SetSegment(waitlist.Personal))
	require.Error(t, s.SetSegment("enterprise"))
	require.Error(t, s.SetSegment(""))
	require.Equal(t, waitlist.Personal, s.Segment)

	s, _ = Load(store, "visitor", true)
	require.Equal(t, waitlist.Personal, s.Segment)
	require.True(t, s.DarkMode, "segment alone doesn't pin the theme")
	require.False(t, s.Explicit())
}

func TestSettings__storeErrors(t *testing.T) {
	store := &mapStore{err: errors.New("disk full")}

	s, err := Load(store, "visitor", true)
	require.Error(t, err)
	require.NotNil(t, s)
	require.True(t, s.DarkMode)

	require.Error(t, s.ToggleDarkMode())
	require.False(t, s.DarkMode, "in-memory state still updates")
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package waitlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type joinFunc func(ctx context.Context, req Request) error

func (f joinFunc) Join(ctx context.Context, req Request) error { return f(ctx, req) }

// countingJoiner records calls and returns err.
type countingJoiner struct {
	calls []Request
	err   error
}

func (j *countingJoiner) Join(_ context.Context, req Request) error {
	j.calls = append(j.calls, req)
	return j.err
}

func TestForm__emptyEmail(t *testing.T) {
	for _, email := range []string{"", "   "} {
		j := &countingJoiner{}
		f := NewForm(Business, nil)
		f.Open()
		f.SetEmail(email)

		require.False(t, f.Submit(context.Background(), j))
		require.Equal(t, MsgEmailRequired, f.ErrorMessage())
		require.Equal(t, StateIdle, f.State())
		require.Empty(t, j.calls, "no request for empty email")
	}
}

func TestForm__invalidEmail(t *testing.T) {
	j := &countingJoiner{}
	f := NewForm(Business, nil)
	f.SetEmail("not-an-email")

	require.False(t, f.Submit(context.Background(), j))
	require.Equal(t, MsgEmailInvalid, f.ErrorMessage())
	require.Empty(t, j.calls)
}

func TestForm__transitions(t *testing.T) {
	var seen []State
	var loading bool

	f := NewForm(Personal, nil)
	f.OnTransition = func(from, to State) {
		seen = append(seen, to)
		if to == StateSubmitting {
			loading = f.Loading()
		}
	}
	f.Open()
	f.SetEmail("alice@example.com")

	j := joinFunc(func(_ context.Context, req Request) error {
		require.Equal(t, "alice@example.com", req.Email)
		require.Equal(t, Personal, req.UserType)
		return nil
	})
	require.True(t, f.Submit(context.Background(), j))
	require.Equal(t, []State{StateValidating, StateSubmitting, StateSubmitted}, seen)
	require.True(t, loading)
	require.True(t, f.Submitted())
	require.False(t, f.Loading())
	require.Empty(t, f.ErrorMessage())
}

func TestForm__submittedIgnoresInput(t *testing.T) {
	j := &countingJoiner{}
	f := NewForm(Business, nil)
	f.SetEmail("alice@example.com")
	require.True(t, f.Submit(context.Background(), j))

	f.SetEmail("bob@example.com")
	require.Equal(t, "alice@example.com", f.Email())

	require.True(t, f.Submit(context.Background(), j))
	require.Len(t, j.calls, 1)
}

func TestForm__serverMessage(t *testing.T) {
	j := &countingJoiner{err: ErrAlreadyJoined}
	f := NewForm(Business, nil)
	f.SetEmail("alice@example.com")

	require.False(t, f.Submit(context.Background(), j))
	require.Equal(t, "This email is already on the waitlist.", f.ErrorMessage())
	require.Equal(t, StateIdle, f.State())
	require.True(t, f.AcceptsInput(), "form is re-enabled after an error")

	// editing clears the error without a resubmission
	f.SetEmail("alice2@example.com")
	require.Empty(t, f.ErrorMessage())

	j.err = nil
	require.True(t, f.Submit(context.Background(), j))
	require.Len(t, j.calls, 2)
}

func TestForm__fallbackMessage(t *testing.T) {
	cases := []error{
		errors.New("dial tcp: connection refused"),
		&Error{Kind: KindTransport},
	}
	for i := range cases {
		f := NewForm(Business, nil)
		f.SetEmail("alice@example.com")
		require.False(t, f.Submit(context.Background(), &countingJoiner{err: cases[i]}))
		require.Equal(t, MsgFallback, f.ErrorMessage())
	}
}

func TestForm__closeResets(t *testing.T) {
	f := NewForm(Business, nil)
	f.Open()
	f.SetEmail("alice@example.com")
	require.True(t, f.Submit(context.Background(), &countingJoiner{}))

	f.Close()
	f.Open()
	require.True(t, f.IsOpen())
	require.Empty(t, f.Email())
	require.Empty(t, f.ErrorMessage())
	require.False(t, f.Submitted())
	require.False(t, f.Loading())

	// and after an error
	f.SetEmail("nope")
	f.Submit(context.Background(), &countingJoiner{})
	require.NotEmpty(t, f.ErrorMessage())
	f.Close()
	require.Empty(t, f.ErrorMessage())
	require.False(t, f.IsOpen())
}

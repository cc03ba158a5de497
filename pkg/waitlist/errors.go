// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package waitlist

import (
	"errors"
)

// ErrDuplicate is returned by a Repository when the email already exists.
var ErrDuplicate = errors.New("waitlist: email already exists")

// Kind classifies an Error.
type Kind int

const (
	// KindValidation is a client-caused error which never reaches the store.
	KindValidation Kind = iota + 1
	// KindConflict is the expected outcome for an email submitted twice.
	KindConflict
	// KindStore is a failure from the persistence layer.
	KindStore
	// KindTransport is a network or response decoding failure seen by a client.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	case KindTransport:
		return "transport"
	}
	return "unknown"
}

// Error is a user-facing signup failure. Message is safe to show to visitors.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind and Message so callers can compare against the
// package-level errors below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrInvalidEmail   = &Error{Kind: KindValidation, Message: "Invalid email address"}
	ErrInvalidRequest = &Error{Kind: KindValidation, Message: "Invalid request"}
	ErrAlreadyJoined  = &Error{Kind: KindConflict, Message: "This email is already on the waitlist."}
)

// KindOf returns the Kind of err, or zero when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

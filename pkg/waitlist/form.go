// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package waitlist

import (
	"context"
	"errors"
	"strings"

	"github.com/go-kit/kit/log"
)

// State is a step of the signup form.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	}
	return "unknown"
}

const (
	MsgEmailRequired = "Please enter your email address"
	MsgEmailInvalid  = "Please enter a valid email address"
	MsgFallback      = "Something went wrong. Please try again."
)

// Form is the signup dialog's state: idle -> validating -> submitting ->
// submitted, or back to idle with an error message set.
//
// A Form is not safe for concurrent use.
type Form struct {
	UserType UserType

	// OnTransition, when set, is called after every state change.
	OnTransition func(from, to State)

	logger log.Logger

	open  bool
	email string
	state State
	err   string
}

// NewForm returns an idle, closed form. A nil logger discards diagnostics.
func NewForm(userType UserType, logger log.Logger) *Form {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Form{
		UserType: userType,
		logger:   logger,
	}
}

func (f *Form) Open() {
	f.open = true
}

// Close hides the dialog and resets the form to its initial values.
func (f *Form) Close() {
	f.open = false
	f.email = ""
	f.err = ""
	f.setState(StateIdle)
}

func (f *Form) IsOpen() bool { return f.open }
func (f *Form) Email() string { return f.email }
func (f *Form) State() State { return f.state }
func (f *Form) ErrorMessage() string { return f.err }
func (f *Form) Loading() bool { return f.state == StateSubmitting }
func (f *Form) Submitted() bool { return f.state == StateSubmitted }
func (f *Form) AcceptsInput() bool { return f.state == StateIdle }

// SetEmail edits the email field. Any displayed error is cleared. Edits are
// ignored while submitting or after a successful submission.
func (f *Form) SetEmail(email string) {
	if !f.AcceptsInput() {
		return
	}
	f.email = email
	f.err = ""
}

// Submit runs validation and, when it passes, sends the email through j.
// It returns true only when the signup was accepted.
func (f *Form) Submit(ctx context.Context, j Joiner) bool {
	if !f.AcceptsInput() {
		return f.Submitted()
	}

	f.setState(StateValidating)
	if strings.TrimSpace(f.email) == "" {
		f.fail(MsgEmailRequired)
		return false
	}
	if !ValidEmail(f.email) {
		f.fail(MsgEmailInvalid)
		return false
	}

	f.setState(StateSubmitting)
	err := j.Join(ctx, Request{Email: f.email, UserType: f.UserType})
	if err != nil {
		f.fail(f.messageFor(err))
		return false
	}
	f.setState(StateSubmitted)
	return true
}

func (f *Form) messageFor(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	f.logger.Log("waitlist", "signup request failed", "error", err)
	return MsgFallback
}

func (f *Form) fail(msg string) {
	f.err = msg
	f.setState(StateIdle)
}

func (f *Form) setState(to State) {
	from := f.state
	f.state = to
	if f.OnTransition != nil && from != to {
		f.OnTransition(from, to)
	}
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package waitlist holds the signup domain shared by the HTTP endpoint,
// the landing page and the Go client.
package waitlist

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// UserType tags what a visitor intends to use OneClick for.
type UserType string

const (
	Personal UserType = "personal"
	Business UserType = "business"
)

// Valid reports if u is empty or one of the known segments.
func (u UserType) Valid() bool {
	switch u {
	case "", Personal, Business:
		return true
	}
	return false
}

// Request is the body accepted by POST /api/waitlist
type Request struct {
	Email    string   `json:"email"`
	UserType UserType `json:"userType,omitempty"`
}

// Record is a persisted signup. Records are append-only.
type Record struct {
	Email     string
	UserType  UserType
	CreatedAt time.Time
}

// Repository stores signup records.
//
// Insert must return an error matching ErrDuplicate (via errors.Is) when
// the store rejects the record because of its unique constraint on email.
type Repository interface {
	Insert(ctx context.Context, rec Record) error
}

// Joiner adds a request to the waitlist.
type Joiner interface {
	Join(ctx context.Context, req Request) error
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks for a local@domain.tld shape with no whitespace.
func ValidEmail(email string) bool {
	if strings.IndexFunc(email, isSpace) >= 0 {
		return false
	}
	return emailPattern.MatchString(email)
}

// isSpace matches what browsers treat as whitespace in patterns, which
// includes the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

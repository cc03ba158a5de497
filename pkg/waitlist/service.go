// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package waitlist

import (
	"context"
	"errors"
)

// Service validates signup requests and appends them to a Repository.
// It holds no mutable state; concurrent signups for the same email are
// settled by the store's unique constraint.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Join implements Joiner.
//
// Returned errors are always *Error. Validation errors never reach the
// Repository.
func (s *Service) Join(ctx context.Context, req Request) error {
	if req.Email == "" || !ValidEmail(req.Email) {
		return ErrInvalidEmail
	}
	if !req.UserType.Valid() {
		return ErrInvalidRequest
	}

	err := s.repo.Insert(ctx, Record{
		Email:    req.Email,
		UserType: req.UserType,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDuplicate):
		return ErrAlreadyJoined
	default:
		return &Error{Kind: KindStore, Message: err.Error(), Err: err}
	}
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oneclick/waitlist/pkg/waitlist"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"
	"github.com/gorilla/mux"
)

func addSignupRoutes(router *mux.Router, logger log.Logger, joiner waitlist.Joiner) {
	router.Methods("POST").Path("/api/waitlist").HandlerFunc(signupRoute(logger, joiner))
}

func signupRoute(logger log.Logger, joiner waitlist.Joiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil {
			encodeError(w, waitlist.ErrInvalidRequest)
			return
		}
		bs, err := read(r.Body)
		if err != nil {
			encodeError(w, waitlist.ErrInvalidRequest)
			return
		}

		req, err := decodeSignup(bs)
		if err != nil {
			encodeError(w, waitlist.ErrInvalidRequest)
			return
		}

		if err := joiner.Join(r.Context(), req); err != nil {
			if errorStatus(err) == http.StatusInternalServerError {
				internalServerErrors.Add(1)
				logger.Log("signup", "store failure", "error", err)
			}
			encodeError(w, err)
			return
		}
		encodeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// decodeSignup reads a signup body. Only unparsable JSON and a literal null
// are errors. Any other shape becomes a Request, where a missing or
// non-string email is empty and a non-string userType is kept as its raw
// JSON text so that validation rejects it after the email check.
func decodeSignup(bs []byte) (waitlist.Request, error) {
	var body interface{}
	if err := json.Unmarshal(bs, &body); err != nil {
		return waitlist.Request{}, err
	}
	if body == nil {
		return waitlist.Request{}, errors.New("null signup body")
	}

	var req waitlist.Request
	fields, ok := body.(map[string]interface{})
	if !ok {
		return req, nil
	}
	req.Email, _ = fields["email"].(string)

	switch v := fields["userType"].(type) {
	case nil:
	case string:
		req.UserType = waitlist.UserType(v)
	default:
		raw, _ := json.Marshal(v)
		req.UserType = waitlist.UserType(raw)
	}
	return req, nil
}

// instrumentedJoiner counts signup outcomes by user type.
type instrumentedJoiner struct {
	next    waitlist.Joiner
	counter metrics.Counter
}

func instrument(next waitlist.Joiner, counter metrics.Counter) waitlist.Joiner {
	return &instrumentedJoiner{next: next, counter: counter}
}

func (j *instrumentedJoiner) Join(ctx context.Context, req waitlist.Request) error {
	err := j.next.Join(ctx, req)

	userType := string(req.UserType)
	if !req.UserType.Valid() || userType == "" {
		userType = "unknown"
	}
	j.counter.With("user_type", userType, "result", signupResult(err)).Add(1)
	return err
}

func signupResult(err error) string {
	if err == nil {
		return "success"
	}
	switch waitlist.KindOf(err) {
	case waitlist.KindValidation:
		return "invalid"
	case waitlist.KindConflict:
		return "duplicate"
	}
	return "error"
}

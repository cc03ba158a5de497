// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
	"io/fs"
	"net/http"

	"github.com/oneclick/waitlist/pkg/waitlist"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
)

const (
	// maxReadBytes is the number of bytes to read
	// from a request body. It's intended to be used
	// with an io.LimitReader
	maxReadBytes = 1 * 1024 * 1024
)

// read consumes an io.Reader (wrapping with io.LimitReader)
// and returns either the resulting bytes or a non-nil error.
func read(r io.Reader) ([]byte, error) {
	r = io.LimitReader(r, maxReadBytes)
	return io.ReadAll(r)
}

// newRouter wires every public route onto one gorilla/mux router.
func newRouter(logger log.Logger, joiner waitlist.Joiner, visitors *visitors, static fs.FS) *mux.Router {
	r := mux.NewRouter()
	addSignupRoutes(r, logger, joiner)
	addPageRoutes(r, logger, joiner, visitors)
	addPreferenceRoutes(r, logger, visitors)

	r.Methods("GET").Path("/health").HandlerFunc(healthRoute)
	if static != nil {
		r.Methods("GET").PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}
	return r
}

func healthRoute(w http.ResponseWriter, _ *http.Request) {
	encodeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func encodeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorStatus picks the HTTP status for err. Validation and conflict errors
// are the client's, anything else is ours.
func errorStatus(err error) int {
	switch waitlist.KindOf(err) {
	case waitlist.KindValidation, waitlist.KindConflict:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// encodeError JSON encodes the supplied error as {"error": "..."}
// with the status from errorStatus.
func encodeError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	encodeJSON(w, errorStatus(err), map[string]interface{}{
		"error": err.Error(),
	})
}

func internalError(logger log.Logger, w http.ResponseWriter, err error, component string) {
	internalServerErrors.Add(1)
	logger.Log(component, err)
	w.WriteHeader(http.StatusInternalServerError)
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/oneclick/waitlist/pkg/settings"
	"github.com/oneclick/waitlist/pkg/waitlist"

	"github.com/go-kit/kit/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	cookieName = "oneclick_visitor"
	cookieTTL  = 365 * 24 * time.Hour // days * hours/day

	// colorSchemeHint is the client hint carrying the system dark mode signal.
	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

// visitors identifies browsers by cookie and resolves their settings.
type visitors struct {
	store  settings.Store
	logger log.Logger

	domain string
	secure bool
}

// extractCookie attempts to pull out our cookie from the incoming request.
func extractCookie(r *http.Request) *http.Cookie {
	if r == nil {
		return nil
	}
	cs := r.Cookies()
	for i := range cs {
		if cs[i].Name == cookieName {
			return cs[i]
		}
	}
	return nil
}

// createCookie generates a new visitor cookie.
func (v *visitors) createCookie() *http.Cookie {
	return &http.Cookie{
		Domain:   v.domain,
		Expires:  time.Now().Add(cookieTTL),
		HttpOnly: true,
		Name:     cookieName,
		Path:     "/",
		Secure:   v.secure,
		SameSite: http.SameSiteLaxMode,
		Value:    uuid.New().String(),
	}
}

// visitorID returns the id from the request's cookie, issuing a new cookie
// when the request has none (or a malformed one).
func (v *visitors) visitorID(w http.ResponseWriter, r *http.Request) string {
	if c := extractCookie(r); c != nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	c := v.createCookie()
	http.SetCookie(w, c)
	return c.Value
}

// systemPrefersDark reads the Sec-CH-Prefers-Color-Scheme client hint.
func systemPrefersDark(r *http.Request) bool {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(colorSchemeHint)), `"`)
	return strings.EqualFold(v, "dark")
}

// settings loads the visitor's settings. Store failures are logged and
// the defaults are used.
func (v *visitors) settings(w http.ResponseWriter, r *http.Request) *settings.Settings {
	w.Header().Set("Accept-CH", colorSchemeHint)
	w.Header().Add("Vary", colorSchemeHint)

	s, err := settings.Load(v.store, v.visitorID(w, r), systemPrefersDark(r))
	if err != nil {
		v.logger.Log("preferences", "problem loading settings", "error", err)
	}
	return s
}

func addPreferenceRoutes(router *mux.Router, logger log.Logger, v *visitors) {
	router.Methods("POST").Path("/preferences/theme").HandlerFunc(toggleThemeRoute(logger, v))
	router.Methods("POST").Path("/preferences/segment").HandlerFunc(segmentRoute(logger, v))
}

func toggleThemeRoute(logger log.Logger, v *visitors) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := v.settings(w, r)
		if err := s.ToggleDarkMode(); err != nil {
			internalError(logger, w, err, "preferences")
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func segmentRoute(logger log.Logger, v *visitors) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxReadBytes)
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		seg := waitlist.UserType(r.PostFormValue("segment"))
		if seg == "" || !seg.Valid() {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s := v.settings(w, r)
		if err := s.SetSegment(seg); err != nil {
			internalError(logger, w, err, "preferences")
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

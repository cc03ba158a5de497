// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"net/http"

	"github.com/oneclick/waitlist/components"
	"github.com/oneclick/waitlist/pkg/waitlist"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
)

func addPageRoutes(router *mux.Router, logger log.Logger, joiner waitlist.Joiner, v *visitors) {
	router.Methods("GET").Path("/").HandlerFunc(landingRoute(logger, v))
	router.Methods("POST").Path("/waitlist").HandlerFunc(waitlistFormRoute(logger, joiner, v))
}

func landingRoute(logger log.Logger, v *visitors) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := v.settings(w, r)

		form := waitlist.NewForm(s.Segment, logger)
		if r.URL.Query().Get("waitlist") == "open" {
			form.Open()
		}
		renderPage(logger, w, components.Page{
			DarkMode: s.DarkMode,
			Segment:  s.Segment,
			Form:     form,
		})
	}
}

// waitlistFormRoute handles the dialog's form post. It drives the same
// state machine a scripted client would and renders the outcome.
func waitlistFormRoute(logger log.Logger, joiner waitlist.Joiner, v *visitors) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxReadBytes)
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s := v.settings(w, r)

		userType := waitlist.UserType(r.PostFormValue("userType"))
		if userType == "" || !userType.Valid() {
			userType = s.Segment
		}
		form := waitlist.NewForm(userType, logger)
		form.Open()
		form.SetEmail(r.PostFormValue("email"))
		form.Submit(r.Context(), joiner)

		renderPage(logger, w, components.Page{
			DarkMode: s.DarkMode,
			Segment:  s.Segment,
			Form:     form,
		})
	}
}

func renderPage(logger log.Logger, w http.ResponseWriter, p components.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := components.Landing(p).Render(w); err != nil {
		logger.Log("pages", "problem rendering page", "error", err)
	}
}

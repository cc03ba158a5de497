// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestAdmin__live(t *testing.T) {
	svc := SetupServer("")
	if addr := svc.BindAddress(); addr != ":9090" {
		t.Errorf("got %q", addr)
	}

	svc.AddLivenessCheck("signups", func() error { return nil })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/live", nil)
	svc.handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("got %d", w.Code)
	}

	svc.AddLivenessCheck("preferences", func() error { return errors.New("closed") })

	w = httptest.NewRecorder()
	svc.handler().ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("got %d", w.Code)
	}
	var results map[string]string
	if err := json.NewDecoder(w.Body).Decode(&results); err != nil {
		t.Fatal(err)
	}
	if results["signups"] != "good" || results["preferences"] != "closed" {
		t.Errorf("got %#v", results)
	}
}

func TestAdmin__metrics(t *testing.T) {
	svc := SetupServer(":0")

	w := httptest.NewRecorder()
	svc.handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Errorf("got %d", w.Code)
	}
}

func TestAdmin__pprofProfileEnabled(t *testing.T) {
	if !pprofProfileEnabled("heap", true) {
		t.Error("expected default")
	}

	os.Setenv("PPROF_HEAP", "no")
	defer os.Unsetenv("PPROF_HEAP")
	if pprofProfileEnabled("heap", true) {
		t.Error("expected PPROF_HEAP=no to disable")
	}

	os.Setenv("PPROF_TRACE", "yes")
	defer os.Unsetenv("PPROF_TRACE")
	if !pprofProfileEnabled("trace", false) {
		t.Error("expected PPROF_TRACE=yes to enable")
	}
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package client talks to the waitlist HTTP endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 64 * 1024

type Client struct {
	baseURL string
	http    *http.Client
}

var _ waitlist.Joiner = (*Client)(nil)

// New returns a Client for the server at baseURL (i.e. http://localhost:8080).
// A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

type response struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Join posts req to /api/waitlist.
//
// Errors returned are *waitlist.Error. Server-provided messages are kept;
// network and decoding failures come back as KindTransport with no Message.
func (c *Client) Join(ctx context.Context, req waitlist.Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return &waitlist.Error{Kind: waitlist.KindTransport, Err: err}
	}
	r, err := http.NewRequest("POST", c.baseURL+"/api/waitlist", bytes.NewReader(body))
	if err != nil {
		return &waitlist.Error{Kind: waitlist.KindTransport, Err: err}
	}
	r = r.WithContext(ctx)
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(r)
	if err != nil {
		return &waitlist.Error{Kind: waitlist.KindTransport, Err: err}
	}
	defer resp.Body.Close()

	var out response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return &waitlist.Error{
			Kind: waitlist.KindTransport,
			Err:  fmt.Errorf("decoding %s response: %v", resp.Status, err),
		}
	}
	if resp.StatusCode/100 == 2 && out.Success {
		return nil
	}
	return &waitlist.Error{
		Kind:    kindFor(resp.StatusCode, out.Error),
		Message: out.Error,
		Err:     fmt.Errorf("unexpected response: %s", resp.Status),
	}
}

func kindFor(status int, msg string) waitlist.Kind {
	switch {
	case msg == waitlist.ErrAlreadyJoined.Message:
		return waitlist.KindConflict
	case status >= 500:
		return waitlist.KindStore
	case status >= 400:
		return waitlist.KindValidation
	}
	return waitlist.KindTransport
}

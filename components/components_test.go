// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package components

import (
	"context"
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/oneclick/waitlist/pkg/waitlist"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

type okJoiner struct{}

func (okJoiner) Join(context.Context, waitlist.Request) error { return nil }

type errJoiner struct{ err error }

func (j errJoiner) Join(context.Context, waitlist.Request) error { return j.err }

func TestLanding__segments(t *testing.T) {
	cases := []struct {
		seg      waitlist.UserType
		expected []string
	}{
		{waitlist.Business, []string{
			"Ready to accelerate your business?",
			"All-in-one infrastructure for scaling your payment system",
			"Compliance-Ready from Day One",
			"$4,892,617.29",
		}},
		{waitlist.Personal, []string{
			"Ready to start saving?",
			"Instant savings every time you pay",
			"Express Checkout",
			"Salary Deposit",
		}},
	}
	for i := range cases {
		out := render(t, Landing(Page{Segment: cases[i].seg}))
		for _, s := range cases[i].expected {
			if !strings.Contains(out, s) {
				t.Errorf("segment=%s missing %q", cases[i].seg, s)
			}
		}
		require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		require.NotContains(t, out, `id="waitlist"`, "dialog is closed by default")
	}
}

func TestLanding__darkMode(t *testing.T) {
	out := render(t, Landing(Page{DarkMode: true}))
	require.Contains(t, out, `data-theme="dark"`)
	require.Contains(t, out, "Switch to light mode")

	out = render(t, Landing(Page{}))
	require.Contains(t, out, `data-theme="light"`)
	require.Contains(t, out, "Switch to dark mode")
	require.Contains(t, out, "Ready to accelerate your business?", "business is the default segment")
}

func TestWaitlistDialog(t *testing.T) {
	f := waitlist.NewForm(waitlist.Personal, nil)
	require.Nil(t, WaitlistDialog(f))

	f.Open()
	out := render(t, WaitlistDialog(f))
	require.Contains(t, out, `action="/waitlist"`)
	require.Contains(t, out, `value="personal"`)
	require.NotContains(t, out, "form-error")

	// error state keeps the typed email and shows the message
	f.SetEmail("not-an-email")
	f.Submit(context.Background(), okJoiner{})
	out = render(t, WaitlistDialog(f))
	require.Contains(t, out, "Please enter a valid email address")
	require.Contains(t, out, `value="not-an-email"`)
	require.Contains(t, out, `aria-invalid="true"`)

	f.SetEmail("alice@example.com")
	f.Submit(context.Background(), errJoiner{waitlist.ErrAlreadyJoined})
	out = render(t, WaitlistDialog(f))
	require.Contains(t, out, "This email is already on the waitlist.")

	f.SetEmail("alice@example.com")
	f.Submit(context.Background(), okJoiner{})
	out = render(t, WaitlistDialog(f))
	require.Contains(t, out, "You&#39;re on the list!")
	require.NotContains(t, out, `action="/waitlist"`)

	f.Close()
	require.Nil(t, WaitlistDialog(f))
}

func TestWaitlistDialog__loading(t *testing.T) {
	f := waitlist.NewForm(waitlist.Business, nil)
	f.Open()
	f.SetEmail("alice@example.com")

	var out string
	f.OnTransition = func(_, to waitlist.State) {
		if to == waitlist.StateSubmitting {
			out = render(t, WaitlistDialog(f))
		}
	}
	f.Submit(context.Background(), okJoiner{})

	require.Contains(t, out, "Joining...")
	require.Contains(t, out, " disabled")
}

func TestDashboardFor(t *testing.T) {
	require.Equal(t, "OneClick Business", DashboardFor("").Product)
	require.Equal(t, "OneClick Personal", DashboardFor(waitlist.Personal).Product)
	require.Len(t, FeaturesFor(waitlist.Personal), 3)
	require.Len(t, FeaturesFor("unknown"), 3)
}

func TestLayout__ogImage(t *testing.T) {
	out := render(t, Layout(PageConfig{}))
	require.NotContains(t, out, "og:image")
	require.Contains(t, out, `property="og:title"`)

	out = render(t, Layout(PageConfig{OGImage: "https://cdn.example.com/og.png"}))
	require.Contains(t, out, `property="og:image" content="https://cdn.example.com/og.png"`)
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

// WaitlistDialog renders the signup form in whatever state f is in. Nothing
// is rendered while the dialog is closed. Closing is a link back to "/",
// which starts over with a fresh form.
func WaitlistDialog(f *waitlist.Form) g.Node {
	if f == nil || !f.IsOpen() {
		return nil
	}

	var body g.Node
	if f.Submitted() {
		body = Div(
			Class("dialog-success"),
			Span(Class("success-icon"), Icon("check", "Success")),
			P(Class("dialog-success-title"), g.Text("You're on the list!")),
			P(Class("muted"), g.Text("We'll notify you as soon as OneClick is ready.")),
		)
	} else {
		body = waitlistForm(f)
	}

	return g.El("dialog",
		ID("waitlist"),
		Class("dialog"),
		g.Attr("open", ""),
		g.Attr("aria-labelledby", "waitlist-title"),
		Div(
			Class("dialog-panel"),
			A(Href("/"), Class("dialog-close"), Icon("x", "Close")),
			H2(ID("waitlist-title"), g.Text("Join the Waitlist")),
			P(Class("muted"), g.Text("Be the first to know when OneClick launches. We'll notify you as soon as we're ready.")),
			body,
		),
	)
}

func waitlistForm(f *waitlist.Form) g.Node {
	loading := f.Loading()
	msg := f.ErrorMessage()

	inputClass := "input"
	if msg != "" {
		inputClass += " input-error"
	}

	return g.El("form",
		Method("post"),
		Action("/waitlist"),
		Class("dialog-form"),
		g.Attr("novalidate", ""),
		Input(Type("hidden"), Name("userType"), Value(string(f.UserType))),
		Label(g.Attr("for", "waitlist-email"), Class("sr-only"), g.Text("Email")),
		Input(
			ID("waitlist-email"),
			Type("email"),
			Name("email"),
			Placeholder("Enter your email address"),
			Value(f.Email()),
			Class(inputClass),
			g.If(loading, Disabled()),
			g.If(msg != "", g.Attr("aria-invalid", "true")),
		),
		g.If(msg != "", P(Class("form-error"), g.Attr("role", "alert"), g.Text(msg))),
		Button(
			Type("submit"),
			Class("btn btn-primary btn-block"),
			g.If(loading, Disabled()),
			g.If(loading, g.Group([]g.Node{Span(Class("spinner")), g.Text("Joining...")})),
			g.If(!loading, g.Group([]g.Node{g.Text("Join Waitlist"), Icon("arrow-right", "")})),
		),
	)
}

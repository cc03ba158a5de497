// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

func PageHeader(seg waitlist.UserType, darkMode bool) g.Node {
	themeIcon, themeLabel := "moon", "Switch to dark mode"
	if darkMode {
		themeIcon, themeLabel = "sun", "Switch to light mode"
	}

	return Header(
		Class("site-header"),
		Div(
			Class("container header-row"),
			Logo(),

			Nav(
				Class("header-nav"),
				SegmentSwitch(seg, "nav-link"),
				A(Class("nav-link"), Href("#developers"), g.Text("Developer")),
				A(Class("nav-link"), Href("#help"), g.Text("Help")),
			),

			Div(
				Class("header-actions"),
				g.El("form",
					Method("post"),
					Action("/preferences/theme"),
					Button(
						Type("submit"),
						Class("btn btn-ghost btn-icon"),
						g.Attr("title", themeLabel),
						Icon(themeIcon, themeLabel),
					),
				),
				JoinButton(""),
			),
		),
	)
}

// SegmentSwitch posts the visitor's segment choice. The active segment is
// marked with aria-pressed.
func SegmentSwitch(seg waitlist.UserType, classes string) g.Node {
	option := func(value waitlist.UserType, label string) g.Node {
		return Button(
			Type("submit"),
			Name("segment"),
			Value(string(value)),
			Class(classes),
			g.Attr("aria-pressed", boolAttr(seg == value)),
			g.Text(label),
		)
	}
	return g.El("form",
		Method("post"),
		Action("/preferences/segment"),
		Class("segment-switch"),
		option(waitlist.Business, "Business"),
		option(waitlist.Personal, "Personal"),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

func Hero(seg waitlist.UserType) g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-copy"),
			H1(
				Class("hero-title"),
				g.Text("The way payments"),
				Br(),
				Span(Class("hero-title-accent"), g.Text("should be")),
			),
			P(
				Class("hero-lead"),
				g.Text(pick(seg,
					"OneClick simplifies stablecoin payments for businesses—offering low fees, easy integration, and built-in compliance",
					"OneClick lets you save up to 2% instantly on every purchase—built for modern spending",
				)),
			),
			Div(
				Class("hero-actions"),
				JoinButton("btn-lg"),
				SegmentSwitch(seg, "pill"),
			),
		),
		Div(
			Class("container"),
			Dashboard(seg),
			P(Class("disclaimer"), g.Text("OneClick is a financial technology company, not a bank.")),
		),
	)
}

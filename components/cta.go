// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

func CTA(seg waitlist.UserType) g.Node {
	return Section(
		ID("get-started"),
		Class("cta container"),
		Badge("Get Started"),
		H2(g.Text(pick(seg,
			"Ready to accelerate your business?",
			"Ready to start saving?",
		))),
		P(Class("lead"), g.Text(pick(seg,
			"Join the next wave of businesses building smarter payments with OneClick",
			"Join OneClick to start saving up to 2% on every purchase",
		))),
		Div(Class("cta-actions"), JoinButton("btn-lg")),
	)
}

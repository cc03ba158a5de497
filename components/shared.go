// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

// JoinHref opens the waitlist dialog.
const JoinHref = "/?waitlist=open#waitlist"

func Logo() g.Node {
	return A(
		Href("/"),
		Class("logo"),
		Span(Class("logo-mark"), Icon("zap", "")),
		Span(Class("logo-text"), g.Text("OneClick")),
	)
}

// Icon renders a glyph from the sprite sheet shipped in /static.
func Icon(name, ariaLabel string) g.Node {
	use := g.El("use", g.Attr("href", fmt.Sprintf("/static/icons.svg#%s", name)))
	if ariaLabel != "" {
		return g.El("svg",
			Class("icon icon-"+name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
			use,
		)
	}
	return g.El("svg",
		Class("icon icon-"+name),
		g.Attr("aria-hidden", "true"),
		use,
	)
}

func Badge(text string) g.Node {
	return Span(Class("badge"), g.Text(text))
}

// JoinButton links to the waitlist dialog.
func JoinButton(classes string) g.Node {
	return A(
		Href(JoinHref),
		Class("btn btn-primary "+classes),
		g.Text("Join Waitlist"),
		Icon("arrow-right", ""),
	)
}

// pick returns business copy for the business segment, personal otherwise.
func pick(seg waitlist.UserType, business, personal string) string {
	if seg == waitlist.Personal {
		return personal
	}
	return business
}

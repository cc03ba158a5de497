// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type linkColumn struct {
	Title string
	Links []string
}

var footerColumns = []linkColumn{
	{"Product", []string{"Features", "Pricing", "API", "Documentation"}},
	{"Company", []string{"About", "Careers", "Blog", "Contact"}},
	{"Legal", []string{"Privacy", "Terms", "Security", "Compliance"}},
}

func PageFooter() g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-brand"),
				Logo(),
				P(Class("muted"), g.Text("The way payments should be.")),
			),
			g.Group(g.Map(footerColumns, func(col linkColumn) g.Node {
				return Div(
					Class("footer-column"),
					H3(g.Text(col.Title)),
					Ul(g.Group(g.Map(col.Links, func(label string) g.Node {
						return Li(A(Href("#"), g.Text(label)))
					}))),
				)
			})),
		),
		Div(
			Class("container footer-legal"),
			P(g.Text(fmt.Sprintf("© %d OneClick. All rights reserved.", time.Now().Year()))),
		),
	)
}

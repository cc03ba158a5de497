// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package components renders the OneClick landing page with gomponents.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

type PageConfig struct {
	Title       string
	Description string
	DarkMode    bool
	OGImage     string // og:image is left out when empty
}

// Page is everything the landing page varies on.
type Page struct {
	DarkMode bool
	Segment  waitlist.UserType
	Form     *waitlist.Form
}

// Landing composes the full page.
func Landing(p Page) g.Node {
	if p.Segment == "" {
		p.Segment = waitlist.Business
	}
	if p.Form == nil {
		p.Form = waitlist.NewForm(p.Segment, nil)
	}
	return Layout(
		PageConfig{DarkMode: p.DarkMode},
		PageHeader(p.Segment, p.DarkMode),
		Main(
			Hero(p.Segment),
			Features(p.Segment),
			CTA(p.Segment),
		),
		PageFooter(),
		WaitlistDialog(p.Form),
	)
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "OneClick - The way payments should be"
	}
	if config.Description == "" {
		config.Description = "OneClick simplifies stablecoin payments for businesses and lets you save on every purchase."
	}
	theme := "light"
	if config.DarkMode {
		theme = "dark"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", theme),
			g.If(config.DarkMode, Class("dark")),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Meta(Name("color-scheme"), Content(theme)),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("page"),
				g.Group(content),
			),
		),
	})
}

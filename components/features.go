// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

type Feature struct {
	Icon        string
	Title       string
	Description string
	Points      []string
}

var features = map[waitlist.UserType][]Feature{
	waitlist.Business: {
		{
			"trending-up", "Save Up to 3% on Processing Fees",
			"Stop overpaying for credit card transactions. Our platform uses low-cost rails like ACH and stablecoins, helping you keep more of every sale.",
			[]string{
				"Accept payments via ACH, USDC, or Bitcoin Lightning",
				"Bypass 2.9%+ card fees and keep your margins",
				"Transparent pricing with no hidden costs",
			},
		},
		{
			"shield", "Compliance-Ready from Day One",
			"No money transmitter license? No problem. We operate under the Agent of the Payee model, so you can accept payments without regulatory headaches.",
			[]string{
				"MSB + KYC/AML compliance handled for you",
				"Operates under legally vetted AOP framework",
				"Avoids state-by-state money transmitter licensing",
			},
		},
		{
			"zap", "Easy Integration & Onboarding",
			"Get started in minutes—not weeks. Whether you use WooCommerce, Shopify, or a custom site, our tools make setup seamless.",
			[]string{
				"Pre-built plugins for top platforms",
				"One-click hosted checkout and payment links",
				"Step-by-step onboarding and developer docs",
			},
		},
	},
	waitlist.Personal: {
		{
			"piggy-bank", "Instant Savings on Every Purchase",
			"Save up to 2% instantly—no points, no gimmicks, just real money back.",
			[]string{
				"Instant cash back applied at checkout",
				"No need to track points or wait for rewards",
				"Works automatically at participating merchants",
			},
		},
		{
			"credit-card", "Express Checkout",
			"Skip the forms and pay in seconds—fast, secure, and seamless.",
			[]string{
				"One-click payments with saved info",
				"No need to enter card details or shipping every time",
				"Works across all supported merchants",
			},
		},
		{
			"zap", "Easy, 2-Minute Onboarding",
			"Get started fast—no crypto wallet or technical setup required.",
			[]string{
				"Sign up with just your email",
				"Securely connect your bank via Plaid",
				"Start saving and shopping right away",
			},
		},
	},
}

// FeaturesFor returns the three features pitched to seg.
func FeaturesFor(seg waitlist.UserType) []Feature {
	if fs, ok := features[seg]; ok {
		return fs
	}
	return features[waitlist.Business]
}

func Features(seg waitlist.UserType) g.Node {
	return Section(
		ID("features"),
		Class("features container"),
		Div(
			Class("section-intro"),
			Badge("Platform Features"),
			H2(g.Text(pick(seg,
				"All-in-one infrastructure for scaling your payment system",
				"Instant savings every time you pay",
			))),
			P(Class("lead"), g.Text(pick(seg,
				"From payment processing to compliance, OneClick provides the tools and infrastructure to power your financial services",
				"From seamless checkout to instant savings, OneClick upgrades the way you pay",
			))),
		),
		g.Group(g.Map(FeaturesFor(seg), func(f Feature) g.Node {
			return Div(
				Class("feature"),
				Div(
					Class("feature-copy"),
					Span(Class("feature-icon"), Icon(f.Icon, "")),
					H3(g.Text(f.Title)),
					P(g.Text(f.Description)),
				),
				Ul(
					Class("checklist"),
					g.Group(g.Map(f.Points, func(point string) g.Node {
						return Li(Icon("check", ""), Span(g.Text(point)))
					})),
				),
			)
		})),
	)
}

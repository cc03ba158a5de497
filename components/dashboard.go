// Copyright 2018 The ACH Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/oneclick/waitlist/pkg/waitlist"
)

// Line is one row of the mock dashboard.
type Line struct {
	Label  string
	Amount string
}

// DashboardData is static sample content for the hero illustration.
type DashboardData struct {
	Product  string
	Greeting string
	Balance  Line
	In, Out  string
	Actions  []string
	Heading  string
	Lines    []Line
	Footer   string
}

var dashboards = map[waitlist.UserType]DashboardData{
	waitlist.Business: {
		Product:  "OneClick Business",
		Greeting: "Welcome, Sarah",
		Balance:  Line{"OneClick Balance", "$8,247,582.19"},
		In:       "+$1.8M",
		Out:      "-$892K",
		Actions:  []string{"Transfer", "Deposit", "Pay Bill", "Create Invoice"},
		Heading:  "Accounts",
		Lines: []Line{
			{"Payroll", "$847,293.42"},
			{"Operating Expenses", "$1,156,847.18"},
			{"Treasury", "$4,892,617.29"},
			{"Accounts Payable", "$184,527.63"},
			{"Accounts Receivable", "$0.00"},
		},
		Footer: "+3 View all accounts",
	},
	waitlist.Personal: {
		Product:  "OneClick Personal",
		Greeting: "Welcome, Alex",
		Balance:  Line{"Account Balance", "$12,847.32"},
		In:       "+$2.1K",
		Out:      "-$1.2K",
		Actions:  []string{"Send Money", "Request Money"},
		Heading:  "Recent Activity",
		Lines: []Line{
			{"Coffee Shop", "-$6.45"},
			{"Salary Deposit", "+$3,200.00"},
			{"Grocery Store", "-$84.12"},
			{"Gas Station", "-$52.30"},
			{"Friend Payment", "+$40.00"},
		},
		Footer: "View all transactions",
	},
}

// DashboardFor returns the mock data shown for seg.
func DashboardFor(seg waitlist.UserType) DashboardData {
	if d, ok := dashboards[seg]; ok {
		return d
	}
	return dashboards[waitlist.Business]
}

func Dashboard(seg waitlist.UserType) g.Node {
	d := DashboardFor(seg)

	return Div(
		Class("dashboard"),
		g.Attr("aria-hidden", "true"),
		Div(
			Class("dashboard-bar"),
			Span(Class("dashboard-product"), g.Text(d.Product)),
			Span(Class("dashboard-search"), g.Text("Search or jump to")),
		),
		Div(
			Class("dashboard-body"),
			P(Class("dashboard-greeting"), g.Text(d.Greeting)),
			Div(
				Class("dashboard-actions"),
				g.Group(g.Map(d.Actions, func(action string) g.Node {
					return Span(Class("chip"), g.Text(action))
				})),
			),
			Div(
				Class("dashboard-grid"),
				Div(
					Class("card balance"),
					P(Class("muted"), g.Text(d.Balance.Label)),
					P(Class("balance-amount"), g.Text(d.Balance.Amount)),
					P(
						Class("muted"),
						g.Text("Last 30 Days "),
						Span(Class("positive"), g.Text(d.In)),
						g.Text(" "),
						Span(Class("negative"), g.Text(d.Out)),
					),
				),
				Div(
					Class("card"),
					P(Class("card-heading"), g.Text(d.Heading)),
					Ul(
						Class("lines"),
						g.Group(g.Map(d.Lines, func(l Line) g.Node {
							return Li(
								Span(g.Text(l.Label)),
								Span(Class("amount"), g.Text(l.Amount)),
							)
						})),
					),
					P(Class("muted"), g.Text(d.Footer)),
				),
			),
		),
	)
}

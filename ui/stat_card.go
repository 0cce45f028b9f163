package ui

import (
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

type StatCard struct {
	app.Compo
	Title    string
	Value    string
	SubKey   string
	SubValue string
	Icon     string
}

func (c *StatCard) Render() app.UI {
	return app.Div().Class("stat-card").Body(
		app.Div().Class("stat-card-icon").Body(
			app.Span().Class("material-symbols-rounded").Aria("hidden", "true").Text(c.Icon),
		),
		app.Div().Class("stat-label").Text(c.Title),
		app.Div().Class("stat-value").Text(c.Value),
		app.If(c.SubKey != "" || c.SubValue != "",
			app.Div().Class("stat-sub").Text(c.SubKey+" "+c.SubValue),
		),
	)
}

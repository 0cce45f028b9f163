package ui

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v9/pkg/app"

	"loadview/skeleton"
)

// Sidebar holds the skeleton controls of the demo page and the host uptime.
type Sidebar struct {
	app.Compo
	Hostname      string
	Uptime        string
	Options       skeleton.Options
	Theme         string
	IsOpen        bool
	OnToggleTheme func(app.Context, app.Event)
	OnChange      func(app.Context, skeleton.Options)
}

func (s *Sidebar) change(ctx app.Context, o skeleton.Options) {
	if s.OnChange != nil {
		s.OnChange(ctx, o)
	}
}

func (s *Sidebar) toggleAvatar(ctx app.Context, e app.Event) {
	o := s.Options
	o.ShowAvatar = !o.ShowAvatar
	s.change(ctx, o)
}

func (s *Sidebar) moreLines(ctx app.Context, e app.Event) {
	o := s.Options
	o.LineCount++
	s.change(ctx, o)
}

func (s *Sidebar) fewerLines(ctx app.Context, e app.Event) {
	o := s.Options
	if o.LineCount > 0 {
		o.LineCount--
	}
	s.change(ctx, o)
}

func (s *Sidebar) uptimePlaceholder() *Skeleton {
	return &Skeleton{
		Shape: skeleton.Shape{
			Width:    skeleton.Points(64),
			Height:   skeleton.Points(skeleton.LineHeight),
			Corner:   skeleton.CornerMD,
			Animated: true,
		},
		Subtle:           true,
		PauseWhenBlurred: true,
	}
}

func (s *Sidebar) Render() app.UI {
	themeIcon := "light_mode"
	if s.Theme == "dark" {
		themeIcon = "dark_mode"
	}

	avatarIcon := "check_box_outline_blank"
	if s.Options.ShowAvatar {
		avatarIcon = "check_box"
	}

	sidebarClass := "sidebar"
	if s.IsOpen {
		sidebarClass += " open"
	}

	return app.Aside().Class(sidebarClass).Body(
		app.Div().Class("sidebar-header").Body(
			app.Div().Class("brand").Text("Loadview"),
			app.Button().Class("btn-icon").Title("Toggle Theme").OnClick(s.OnToggleTheme).Body(
				app.Span().Class("material-symbols-rounded").Text(themeIcon),
			),
		),

		app.Div().Class("control-list").Body(
			app.Div().Class("section-label").Text("Skeleton"),
			app.Div().Class("control-item").OnClick(s.toggleAvatar).Body(
				app.Span().Class("material-symbols-rounded").Text(avatarIcon),
				app.Span().Text("Avatar"),
			),
			app.Div().Class("control-item").Body(
				app.Button().Class("btn-icon").Title("Fewer lines").Disabled(s.Options.LineCount == 0).OnClick(s.fewerLines).Body(
					app.Span().Class("material-symbols-rounded").Text("remove"),
				),
				app.Span().Text(fmt.Sprintf("%d lines", s.Options.LineCount)),
				app.Button().Class("btn-icon").Title("More lines").OnClick(s.moreLines).Body(
					app.Span().Class("material-symbols-rounded").Text("add"),
				),
			),
		),

		app.Div().Class("sidebar-footer").Body(
			app.Div().Class("sys-stat").Body(
				app.Div().Class("sys-stat-label").Body(
					app.Span().Class("material-symbols-rounded").Text("dns"),
					app.Text("Uptime"),
				),
				app.If(s.Uptime == "",
					s.uptimePlaceholder(),
				).Else(
					app.Div().Style("font-weight", "500").Title(s.Hostname).Text(s.Uptime),
				),
			),
		),
	)
}

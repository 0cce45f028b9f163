package ui

import (
	"encoding/json"
	"fmt"
	"net/http"

	"loadview/checker"
	"loadview/skeleton"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Home loads the host status and shows skeletons until it arrives.
type Home struct {
	app.Compo
	Status  checker.HostStatus
	Loading bool
	Error   string
	Theme   string // light or dark
	Demo    skeleton.Options
}

func (h *Home) OnMount(ctx app.Context) {
	var theme string
	ctx.LocalStorage().Get("theme", &theme)
	if theme == "dark" {
		h.Theme = "dark"
		app.Window().Get("document").Get("body").Get("classList").Call("add", "dark-theme")
	} else {
		h.Theme = "light"
	}

	h.Demo = skeleton.Options{
		LineCount:  skeleton.DefaultLineCount,
		ShowAvatar: true,
		Label:      "Loading host status",
	}
	h.loadStatus(ctx)
}

func (h *Home) loadStatus(ctx app.Context) {
	h.Loading = true
	h.Error = ""
	h.Update()

	go func() {
		resp, err := http.Get("/api/status")
		if err != nil {
			ctx.Dispatch(func(ctx app.Context) {
				h.Error = "Failed to fetch status: " + err.Error()
				h.Loading = false
				h.Update()
			})
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			ctx.Dispatch(func(ctx app.Context) {
				h.Error = fmt.Sprintf("Failed to fetch status: %s", resp.Status)
				h.Loading = false
				h.Update()
			})
			return
		}

		var status checker.HostStatus
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			ctx.Dispatch(func(ctx app.Context) {
				h.Error = "Failed to decode status: " + err.Error()
				h.Loading = false
				h.Update()
			})
			return
		}

		ctx.Dispatch(func(ctx app.Context) {
			h.Status = status
			h.Loading = false
			h.Update()
		})
	}()
}

func (h *Home) reload(ctx app.Context, e app.Event) {
	h.loadStatus(ctx)
}

func (h *Home) setDemo(ctx app.Context, o skeleton.Options) {
	h.Demo = o
	h.Update()
}

func (h *Home) toggleTheme(ctx app.Context, e app.Event) {
	if h.Theme == "dark" {
		h.Theme = "light"
		app.Window().Get("document").Get("body").Get("classList").Call("remove", "dark-theme")
		ctx.LocalStorage().Set("theme", "light")
	} else {
		h.Theme = "dark"
		app.Window().Get("document").Get("body").Get("classList").Call("add", "dark-theme")
		ctx.LocalStorage().Set("theme", "dark")
	}
	h.Update()
}

func (h *Home) Render() app.UI {
	themeIcon := "light_mode"
	if h.Theme == "dark" {
		themeIcon = "dark_mode"
	}

	return app.Div().Class("app-layout").Body(
		&Sidebar{
			Hostname:      h.Status.Hostname,
			Uptime:        h.Status.UptimeString,
			Options:       h.Demo,
			Theme:         h.Theme,
			OnToggleTheme: h.toggleTheme,
			OnChange:      h.setDemo,
		},
		app.Main().Class("main-content").Body(
			app.Header().Class("top-bar").Body(
				app.Div().Body(
					app.H1().Class("page-title").Text("Host Status"),
					app.Span().Class("page-subtitle").Text(h.Status.Hostname),
				),
				app.Div().Style("display", "flex").Style("gap", "8px").Body(
					app.Button().Class("btn-icon").Title("Reload").Disabled(h.Loading).OnClick(h.reload).Body(
						app.Span().Class("material-symbols-rounded").Text("refresh"),
					),
					app.Button().Class("btn-icon").Title("Toggle Theme").OnClick(h.toggleTheme).Body(
						app.Span().Class("material-symbols-rounded").Text(themeIcon),
					),
				),
			),
			app.If(h.Loading,
				app.Div().Class("repo-panel").Body(
					&LoadingWithStatus{
						Options:          h.Demo,
						After:            statusAfter(app.Getenv(StatusAfterEnv)),
						PauseWhenBlurred: true,
					},
				),
				app.Div().Class("stats-grid").Body(
					&LoadingCard{Label: "Loading uptime"},
					&LoadingCard{Label: "Loading platform"},
					&LoadingCard{Label: "Loading processes"},
				),
			).ElseIf(h.Error != "",
				app.Div().Class("auth-error").Body(
					app.Span().Class("material-symbols-rounded").Style("font-size", "18px").Text("error"),
					app.Text(h.Error),
				),
			).Else(
				app.Div().Class("stats-grid").Body(
					&StatCard{
						Title:    "Uptime",
						Value:    h.Status.UptimeString,
						SubKey:   "Kernel:",
						SubValue: h.Status.KernelVersion,
						Icon:     "dns",
					},
					&StatCard{
						Title:    "Platform",
						Value:    h.Status.Platform,
						SubKey:   "Version:",
						SubValue: h.Status.PlatformVersion,
						Icon:     "deployed_code",
					},
					&StatCard{
						Title:    "Processes",
						Value:    fmt.Sprintf("%d", h.Status.Procs),
						SubKey:   "Arch:",
						SubValue: h.Status.Arch,
						Icon:     "memory",
					},
				),
			),
		),
	)
}

package ui

import (
	"time"

	"loadview/skeleton"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

const (
	DefaultStatusText  = "Loading, please wait..."
	DefaultStatusAfter = 2 * time.Second

	// StatusAfterEnv carries the configured status delay from the server to
	// the app.
	StatusAfterEnv = "LOADVIEW_STATUS_AFTER"
)

// statusAfter parses the delay passed through StatusAfterEnv. Empty or invalid
// values give 0, which falls back to DefaultStatusAfter.
func statusAfter(s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		app.Logf("invalid %s %q: %v", StatusAfterEnv, s, err)
		return 0
	}
	return d
}

// LoadingWithStatus shows a skeleton and, when loading takes longer than
// After, a line of status text below it.
type LoadingWithStatus struct {
	app.Compo
	Options          skeleton.Options
	StatusText       string
	After            time.Duration
	PauseWhenBlurred bool

	showStatus bool
	timer      *time.Timer
}

func (l *LoadingWithStatus) OnMount(ctx app.Context) {
	l.start(func(apply func()) {
		ctx.Dispatch(func(ctx app.Context) {
			apply()
			l.Update()
		})
	})
}

func (l *LoadingWithStatus) OnDismount() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

func (l *LoadingWithStatus) start(dispatch func(apply func())) {
	after := l.After
	if after <= 0 {
		after = DefaultStatusAfter
	}

	l.timer = time.AfterFunc(after, func() {
		dispatch(func() {
			l.showStatus = true
		})
	})
}

func (l *LoadingWithStatus) statusText() string {
	if l.StatusText == "" {
		return DefaultStatusText
	}
	return l.StatusText
}

func (l *LoadingWithStatus) Render() app.UI {
	return app.Div().Class("loading-with-status").Body(
		&LoadingSkeleton{
			Options:          l.Options,
			PauseWhenBlurred: l.PauseWhenBlurred,
		},
		app.If(l.showStatus,
			app.P().Class("loading-status").Aria("live", "polite").Text(l.statusText()),
		),
	)
}

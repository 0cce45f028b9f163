package ui

import (
	"loadview/motion"
	"loadview/skeleton"

	"github.com/google/uuid"
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// LoadingSkeleton is the placeholder shown while content loads. The caller
// replaces it once the real content is ready.
type LoadingSkeleton struct {
	app.Compo
	Options skeleton.Options
	// Card draws a media block above the body lines instead of the avatar row.
	Card bool
	// PauseWhenBlurred stops the animation while the window is in the
	// background. Meant for desktop shells.
	PauseWhenBlurred bool
	// Subtle uses the gentler pulse.
	Subtle bool

	// ReducedMotion and Focus replace the browser signals when set.
	ReducedMotion motion.Signal
	Focus         motion.Signal

	id   string
	bind binding
}

// NewLoadingSkeleton returns a skeleton configured with opts.
func NewLoadingSkeleton(opts skeleton.Options) *LoadingSkeleton {
	return &LoadingSkeleton{Options: opts}
}

func (l *LoadingSkeleton) OnMount(ctx app.Context) {
	l.start(dispatcher(ctx, l))
}

func (l *LoadingSkeleton) OnDismount() {
	l.bind.unmount()
}

func (l *LoadingSkeleton) start(dispatch func(apply func())) {
	reduced, focus := hostSignals(l.ReducedMotion, l.Focus, l.PauseWhenBlurred)
	if l.bind.mount(reduced, focus, dispatch) {
		app.Logf("loading skeleton %s mounted: %s", l.elementID(), l.bind.state())
	}
}

func (l *LoadingSkeleton) elementID() string {
	if l.id == "" {
		l.id = "skeleton-" + uuid.NewString()
	}
	return l.id
}

// Animating reports whether the placeholder is currently animated.
func (l *LoadingSkeleton) Animating() bool {
	return l.bind.animated
}

// Layout returns the shapes the skeleton draws right now.
func (l *LoadingSkeleton) Layout() skeleton.Layout {
	opts, _ := l.Options.Normalize()
	if l.Card {
		return skeleton.BuildCard(opts.LineCount, l.bind.animated)
	}
	return opts.Layout(l.bind.animated)
}

func (l *LoadingSkeleton) Render() app.UI {
	opts, _ := l.Options.Normalize()
	return renderLayout(l.Layout(), opts.Label, animationClass(l.Subtle), l.elementID())
}

package ui

import (
	"loadview/motion"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// binding ties one component to a motion.Controller for the time it is
// mounted.
type binding struct {
	ctrl     *motion.Controller
	animated bool
}

// mount starts following the signals. dispatch runs state changes on the UI
// goroutine. It reports false when already mounted.
func (b *binding) mount(reduced, focus motion.Signal, dispatch func(apply func())) bool {
	if b.ctrl != nil {
		return false
	}

	b.ctrl = motion.NewController(motion.NewResolver(reduced, focus), nil)
	b.ctrl.Mount(func(s motion.State) {
		dispatch(func() {
			b.animated = s == motion.Animating
		})
	})
	b.animated = b.ctrl.State() == motion.Animating
	return true
}

func (b *binding) unmount() {
	if b.ctrl != nil {
		b.ctrl.Unmount()
		b.ctrl = nil
	}
	b.animated = false
}

func (b *binding) state() motion.State {
	if b.animated {
		return motion.Animating
	}
	return motion.Static
}

// hostSignals picks the injected signals or the browser ones. Focus is only
// followed when pauseWhenBlurred is set.
func hostSignals(reduced, focus motion.Signal, pauseWhenBlurred bool) (motion.Signal, motion.Signal) {
	if reduced == nil {
		reduced = ReducedMotionSignal()
	}
	if focus == nil && pauseWhenBlurred {
		focus = WindowFocusSignal()
	}
	return reduced, focus
}

// dispatcher applies state changes through ctx and re-renders c.
func dispatcher(ctx app.Context, c interface{ Update() }) func(apply func()) {
	return func(apply func()) {
		ctx.Dispatch(func(ctx app.Context) {
			apply()
			c.Update()
		})
	}
}

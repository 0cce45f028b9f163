package ui

import (
	"loadview/motion"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

const reducedMotionQuery = "(prefers-reduced-motion: reduce)"

// mediaQuerySignal follows a CSS media query through matchMedia.
type mediaQuerySignal struct {
	query string
}

// ReducedMotionSignal reports the browser's prefers-reduced-motion setting.
func ReducedMotionSignal() motion.Signal {
	if !app.IsClient {
		return motion.Unavailable{}
	}
	return mediaQuerySignal{query: reducedMotionQuery}
}

func (s mediaQuerySignal) list() (app.Value, bool) {
	if !app.Window().Get("matchMedia").Truthy() {
		return nil, false
	}
	mq := app.Window().Call("matchMedia", s.query)
	return mq, mq.Truthy()
}

func (s mediaQuerySignal) Current() (bool, bool) {
	mq, ok := s.list()
	if !ok {
		return false, false
	}
	return mq.Get("matches").Bool(), true
}

func (s mediaQuerySignal) Subscribe(fn func(bool)) func() {
	mq, ok := s.list()
	if !ok {
		return func() {}
	}

	handler := app.FuncOf(func(this app.Value, args []app.Value) interface{} {
		if len(args) > 0 {
			fn(args[0].Get("matches").Bool())
		}
		return nil
	})
	mq.Call("addEventListener", "change", handler)

	return func() {
		mq.Call("removeEventListener", "change", handler)
		handler.Release()
	}
}

// windowFocusSignal follows the window focus and blur events.
type windowFocusSignal struct{}

// WindowFocusSignal reports whether the browser window is focused.
func WindowFocusSignal() motion.Signal {
	if !app.IsClient {
		return motion.Unavailable{}
	}
	return windowFocusSignal{}
}

func (windowFocusSignal) Current() (bool, bool) {
	doc := app.Window().Get("document")
	if !doc.Truthy() || !doc.Get("hasFocus").Truthy() {
		return true, false
	}
	return doc.Call("hasFocus").Bool(), true
}

func (windowFocusSignal) Subscribe(fn func(bool)) func() {
	onFocus := app.FuncOf(func(this app.Value, args []app.Value) interface{} {
		fn(true)
		return nil
	})
	onBlur := app.FuncOf(func(this app.Value, args []app.Value) interface{} {
		fn(false)
		return nil
	})

	win := app.Window()
	win.Call("addEventListener", "focus", onFocus)
	win.Call("addEventListener", "blur", onBlur)

	return func() {
		win.Call("removeEventListener", "focus", onFocus)
		win.Call("removeEventListener", "blur", onBlur)
		onFocus.Release()
		onBlur.Release()
	}
}

package ui

import (
	"loadview/motion"
	"loadview/skeleton"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

const (
	shimmerClass = "animate-shimmer"
	subtleClass  = "animate-pulse-subtle"
)

// Skeleton draws a single placeholder shape. Shape.Animated says whether the
// shape may animate; it only does while the motion decision allows it.
type Skeleton struct {
	app.Compo
	Shape            skeleton.Shape
	Subtle           bool
	PauseWhenBlurred bool

	// ReducedMotion and Focus replace the browser signals when set.
	ReducedMotion motion.Signal
	Focus         motion.Signal

	bind binding
}

func (s *Skeleton) OnMount(ctx app.Context) {
	s.start(dispatcher(ctx, s))
}

func (s *Skeleton) OnDismount() {
	s.bind.unmount()
}

func (s *Skeleton) start(dispatch func(apply func())) {
	reduced, focus := hostSignals(s.ReducedMotion, s.Focus, s.PauseWhenBlurred)
	s.bind.mount(reduced, focus, dispatch)
}

func (s *Skeleton) Render() app.UI {
	shape := s.Shape
	shape.Animated = shape.Animated && s.bind.animated
	return shapeElement(shape, animationClass(s.Subtle))
}

func animationClass(subtle bool) string {
	if subtle {
		return subtleClass
	}
	return shimmerClass
}

func roundedClass(c skeleton.Corner) string {
	return "rounded-" + c.String()
}

func shapeElement(s skeleton.Shape, animation string, extra ...string) app.HTMLDiv {
	classes := append([]string{"skeleton", roundedClass(s.Corner)}, extra...)
	if s.Animated {
		classes = append(classes, animation)
	}

	return app.Div().
		Class(classes...).
		Style("width", s.Width.CSS()).
		Style("height", s.Height.CSS()).
		Aria("hidden", "true")
}

// renderLayout lays the shapes out top to bottom inside a status region.
func renderLayout(l skeleton.Layout, label, animation, describedBy string) app.UI {
	children := make([]app.UI, 0, l.Len()+2)

	if media, ok := l.MediaShape(); ok {
		children = append(children, shapeElement(media, animation, "skeleton-media"))
	}

	if header := l.Header(); header != nil {
		children = append(children, app.Div().Class("skeleton-header").Body(
			shapeElement(header[0], animation),
			app.Div().Class("skeleton-header-text").Body(
				shapeElement(header[1], animation),
				shapeElement(header[2], animation),
			),
		))
	}

	for _, s := range l.Body() {
		children = append(children, shapeElement(s, animation))
	}

	children = append(children, app.Span().Class("sr-only").ID(describedBy).Text("Loading..."))

	return app.Div().
		Class("skeleton-stack").
		Role("status").
		Aria("busy", "true").
		Aria("label", label).
		Aria("describedby", describedBy).
		Body(children...)
}

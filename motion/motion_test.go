package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// countingAnimator records starts and stops so tests can see running loops.
type countingAnimator struct {
	starts  int
	stops   int
	events  *[]string
	running int
}

func (a *countingAnimator) Start() func() {
	a.starts++
	a.running++
	if a.events != nil {
		*a.events = append(*a.events, "start")
	}
	return func() {
		a.stops++
		a.running--
		if a.events != nil {
			*a.events = append(*a.events, "stop")
		}
	}
}

// recordingSignal wraps a Toggle and logs cancellations.
type recordingSignal struct {
	*Toggle
	events *[]string
}

func (s recordingSignal) Subscribe(fn func(bool)) func() {
	cancel := s.Toggle.Subscribe(fn)
	return func() {
		*s.events = append(*s.events, "cancel")
		cancel()
	}
}

// shiftingSignal changes its value while a listener is being registered,
// before the registration is in place.
type shiftingSignal struct {
	*Toggle
	to bool
}

func (s shiftingSignal) Subscribe(fn func(bool)) func() {
	s.Toggle.Set(s.to)
	return s.Toggle.Subscribe(fn)
}

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reduced, focused, want bool
	}{
		{false, true, true},
		{true, true, false},
		{true, false, false},
		{false, false, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Decide(tt.reduced, tt.focused), "reduced=%t focused=%t", tt.reduced, tt.focused)
	}
}

func TestResolverFollowsSignals(t *testing.T) {
	t.Parallel()

	reduced := NewToggle(false)
	focus := NewToggle(true)
	r := NewResolver(reduced, focus)

	var got []bool
	r.Activate(func(v bool) { got = append(got, v) })
	require.True(t, r.Decision())

	focus.Set(false)
	require.False(t, r.Decision())

	// already false, no notification
	reduced.Set(true)
	require.False(t, r.Decision())

	focus.Set(true)
	require.False(t, r.Decision(), "reduced motion wins over focus")

	reduced.Set(false)
	require.True(t, r.Decision())

	require.Equal(t, []bool{false, true}, got)
}

func TestResolverSeesChangesDuringActivate(t *testing.T) {
	t.Parallel()

	reduced := shiftingSignal{Toggle: NewToggle(false), to: true}
	r := NewResolver(reduced, nil)
	r.Activate(nil)
	require.False(t, r.Decision(), "reduced motion set while subscribing")

	reduced.Set(false)
	require.True(t, r.Decision())
}

func TestResolverUnavailableSignals(t *testing.T) {
	t.Parallel()

	r := NewResolver(Unavailable{}, Unavailable{})
	r.Activate(nil)
	require.True(t, r.Decision())

	r = NewResolver(nil, nil)
	r.Activate(nil)
	require.True(t, r.Decision())
}

func TestResolverWithoutFocusSource(t *testing.T) {
	t.Parallel()

	reduced := NewToggle(true)
	r := NewResolver(reduced, nil)
	r.Activate(nil)
	require.False(t, r.Decision())
	reduced.Set(false)
	require.True(t, r.Decision())
	require.Equal(t, 1, reduced.Listeners())
}

func TestResolverDeactivateRemovesListeners(t *testing.T) {
	t.Parallel()

	reduced := NewToggle(false)
	focus := NewToggle(true)
	r := NewResolver(reduced, focus)

	for i := 0; i < 5; i++ {
		r.Activate(func(bool) {})
		r.Activate(func(bool) {})
		require.Equal(t, 1, reduced.Listeners())
		require.Equal(t, 1, focus.Listeners())
		r.Deactivate()
		r.Deactivate()
		require.Zero(t, reduced.Listeners())
		require.Zero(t, focus.Listeners())
	}

	notified := false
	r.Activate(func(bool) { notified = true })
	r.Deactivate()
	focus.Set(false)
	require.False(t, notified)
}

func TestControllerAnimatesWhenAllowed(t *testing.T) {
	t.Parallel()

	reduced := NewToggle(false)
	focus := NewToggle(true)
	anim := &countingAnimator{}
	c := NewController(NewResolver(reduced, focus), anim)

	var states []State
	c.Mount(func(s State) { states = append(states, s) })
	require.Equal(t, Animating, c.State())
	require.Equal(t, 1, anim.running)

	reduced.Set(true)
	require.Equal(t, Static, c.State())
	require.Zero(t, anim.running)

	reduced.Set(false)
	focus.Set(false)
	require.Equal(t, Static, c.State())

	focus.Set(true)
	require.Equal(t, Animating, c.State())
	require.Equal(t, []State{Animating, Static, Animating, Static, Animating}, states)
}

func TestControllerStaticMount(t *testing.T) {
	t.Parallel()

	anim := &countingAnimator{}
	c := NewController(NewResolver(Fixed(true), nil), anim)
	c.Mount(nil)
	require.Equal(t, Static, c.State())
	require.Zero(t, anim.starts)
	c.Unmount()
	require.Zero(t, anim.stops)
}

func TestControllerUnmountReleasesEverything(t *testing.T) {
	t.Parallel()

	reduced := NewToggle(false)
	focus := NewToggle(true)
	anim := &countingAnimator{}
	c := NewController(NewResolver(reduced, focus), anim)

	for i := 0; i < 3; i++ {
		c.Mount(nil)
		require.Equal(t, 1, reduced.Listeners())
		c.Unmount()
		c.Unmount()
		require.Zero(t, reduced.Listeners())
		require.Zero(t, focus.Listeners())
		require.Zero(t, anim.running)
	}
	require.Equal(t, 3, anim.starts)
	require.Equal(t, 3, anim.stops)

	// signal changes after teardown never restart the loop
	reduced.Set(true)
	reduced.Set(false)
	require.Zero(t, anim.running)
	require.Equal(t, Static, c.State())
}

func TestControllerStopsAnimationBeforeListeners(t *testing.T) {
	t.Parallel()

	var events []string
	reduced := recordingSignal{Toggle: NewToggle(false), events: &events}
	focus := recordingSignal{Toggle: NewToggle(true), events: &events}
	anim := &countingAnimator{events: &events}

	c := NewController(NewResolver(reduced, focus), anim)
	c.Mount(nil)
	c.Unmount()

	require.Equal(t, []string{"start", "stop", "cancel", "cancel"}, events)
}

func TestControllerNilAnimator(t *testing.T) {
	t.Parallel()

	c := NewController(NewResolver(Fixed(false), Fixed(true)), nil)
	c.Mount(nil)
	require.Equal(t, Animating, c.State())
	c.Unmount()
	require.Equal(t, Static, c.State())
}

func TestPulse(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 1.0, Shimmer.Opacity(0), 1e-9)
	require.InDelta(t, 0.5, Shimmer.Opacity(750*time.Millisecond), 1e-9)
	require.InDelta(t, 1.0, Shimmer.Opacity(1500*time.Millisecond), 1e-9)
	require.InDelta(t, 0.7, Subtle.Opacity(time.Second), 1e-9)
	require.InDelta(t, 1.0, Pulse{}.Opacity(time.Second), 1e-9)

	for d := time.Duration(0); d < 3*time.Second; d += 37 * time.Millisecond {
		o := Shimmer.Opacity(d)
		require.GreaterOrEqual(t, o, 0.5-1e-9)
		require.LessOrEqual(t, o, 1.0+1e-9)
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "animating", Animating.String())
	require.Equal(t, "static", Static.String())
}

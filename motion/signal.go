// Package motion decides whether loading placeholders may animate. The
// decision is derived from two host signals, the user's reduced motion
// preference and whether the hosting window is focused.
package motion

import "sync"

// Signal is a boolean reported by the host environment.
//
// Current returns the present value and whether the host can report it at all.
// Subscribe registers fn for change notifications and returns the function
// that removes the registration.
type Signal interface {
	Current() (value bool, ok bool)
	Subscribe(fn func(bool)) (cancel func())
}

// Fixed is a signal that never changes.
type Fixed bool

func (s Fixed) Current() (bool, bool) { return bool(s), true }

func (s Fixed) Subscribe(func(bool)) func() { return func() {} }

// Unavailable is a signal the host cannot report.
type Unavailable struct{}

func (Unavailable) Current() (bool, bool) { return false, false }

func (Unavailable) Subscribe(func(bool)) func() { return func() {} }

// Toggle is a settable signal. Renderers feed host events into it (terminal
// focus reports, key presses) and tests use it as a fake host that counts
// live registrations.
type Toggle struct {
	mu        sync.Mutex
	value     bool
	next      int
	listeners map[int]func(bool)
}

// NewToggle returns a Toggle holding v.
func NewToggle(v bool) *Toggle {
	return &Toggle{value: v, listeners: make(map[int]func(bool))}
}

func (t *Toggle) Current() (bool, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value, true
}

func (t *Toggle) Subscribe(fn func(bool)) func() {
	t.mu.Lock()
	id := t.next
	t.next++
	t.listeners[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.listeners, id)
			t.mu.Unlock()
		})
	}
}

// Set stores v and notifies listeners when the value changed.
func (t *Toggle) Set(v bool) {
	t.mu.Lock()
	if t.value == v {
		t.mu.Unlock()
		return
	}
	t.value = v
	fns := make([]func(bool), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Flip inverts the value.
func (t *Toggle) Flip() {
	v, _ := t.Current()
	t.Set(!v)
}

// Listeners returns the number of live registrations.
func (t *Toggle) Listeners() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners)
}

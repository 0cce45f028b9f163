package motion

import "sync"

// Decide is the motion rule: animate only when reduced motion is off and the
// window is focused.
func Decide(reduced, focused bool) bool {
	return !reduced && focused
}

// Resolver tracks the reduced motion and focus signals and keeps the derived
// decision current while active.
type Resolver struct {
	reducedSrc Signal
	focusSrc   Signal

	mu       sync.Mutex
	active   bool
	ready    bool
	reduced  bool
	focused  bool
	cancels  []func()
	onChange func(bool)
}

// NewResolver builds a resolver. focus may be nil on hosts without window
// focus detection; the window is then always considered focused.
func NewResolver(reduced, focus Signal) *Resolver {
	if reduced == nil {
		reduced = Unavailable{}
	}
	return &Resolver{reducedSrc: reduced, focusSrc: focus, focused: true}
}

// Activate subscribes to both signals and then reads their current values.
// onChange is called with the new decision each time it flips. Activating an
// active resolver does nothing.
func (r *Resolver) Activate(onChange func(bool)) {
	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return
	}
	r.active = true
	r.ready = false
	r.onChange = onChange
	r.mu.Unlock()

	cancels := []func(){r.reducedSrc.Subscribe(func(v bool) {
		r.update(func() { r.reduced = v })
	})}
	if r.focusSrc != nil {
		cancels = append(cancels, r.focusSrc.Subscribe(func(v bool) {
			r.update(func() { r.focused = v })
		}))
	}

	r.mu.Lock()
	if !r.active {
		// Deactivated while subscribing.
		r.mu.Unlock()
		for _, cancel := range cancels {
			cancel()
		}
		return
	}
	// Read under the lock: notifications sent from now on wait for it and
	// apply on top of these values.
	r.reduced = readOr(r.reducedSrc, false)
	r.focused = true
	if r.focusSrc != nil {
		r.focused = readOr(r.focusSrc, true)
	}
	r.ready = true
	r.cancels = cancels
	r.mu.Unlock()
}

// Deactivate removes every listener registered by Activate. It is safe to
// call more than once or without a prior Activate.
func (r *Resolver) Deactivate() {
	r.mu.Lock()
	cancels := r.cancels
	r.cancels = nil
	r.active = false
	r.ready = false
	r.onChange = nil
	r.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// Decision returns whether animation should play right now.
func (r *Resolver) Decision() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Decide(r.reduced, r.focused)
}

func (r *Resolver) update(apply func()) {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return
	}
	before := Decide(r.reduced, r.focused)
	apply()
	after := Decide(r.reduced, r.focused)
	fn := r.onChange
	r.mu.Unlock()

	if before != after && fn != nil {
		fn(after)
	}
}

func readOr(s Signal, fallback bool) bool {
	v, ok := s.Current()
	if !ok {
		return fallback
	}
	return v
}

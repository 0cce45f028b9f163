package motion

import "sync"

// State is the externally visible widget state.
type State int

const (
	Static State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "static"
}

// Animator starts a repeating animation driver. The returned function stops
// it synchronously.
type Animator interface {
	Start() (stop func())
}

// Controller binds a Resolver to an animation driver for the lifetime of one
// mounted widget.
type Controller struct {
	resolver *Resolver
	animator Animator

	mu       sync.Mutex
	mounted  bool
	stop     func()
	onChange func(State)
}

// NewController returns a controller. animator may be nil when the renderer
// animates declaratively (CSS) and only needs the state.
func NewController(resolver *Resolver, animator Animator) *Controller {
	return &Controller{resolver: resolver, animator: animator}
}

// Mount activates the resolver and starts the animation if the decision
// allows it. onChange receives every later state transition.
func (c *Controller) Mount(onChange func(State)) {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.onChange = onChange
	c.mu.Unlock()

	c.resolver.Activate(c.apply)
	c.apply(c.resolver.Decision())
}

// Unmount stops any running animation and then deregisters the resolver's
// listeners.
func (c *Controller) Unmount() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	c.onChange = nil
	stop := c.stop
	c.stop = nil
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
	c.resolver.Deactivate()
}

// State returns Animating while an animation is running.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

func (c *Controller) state() State {
	if c.stop != nil {
		return Animating
	}
	return Static
}

func (c *Controller) apply(animate bool) {
	c.mu.Lock()
	if !c.mounted || animate == (c.stop != nil) {
		c.mu.Unlock()
		return
	}

	if animate {
		c.mu.Unlock()
		stop := c.start()
		c.mu.Lock()
		if !c.mounted || c.stop != nil {
			c.mu.Unlock()
			stop()
			return
		}
		c.stop = stop
	} else {
		stop := c.stop
		c.stop = nil
		c.mu.Unlock()
		stop()
		c.mu.Lock()
	}

	state := c.state()
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}

func (c *Controller) start() func() {
	if c.animator == nil {
		return func() {}
	}
	if stop := c.animator.Start(); stop != nil {
		return stop
	}
	return func() {}
}

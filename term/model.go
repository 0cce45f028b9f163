package term

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"loadview/motion"
	"loadview/skeleton"
)

const (
	frameInterval = 50 * time.Millisecond
	defaultWidth  = 60
	maxWidth      = 100
)

// Options configures the terminal model.
type Options struct {
	Skeleton skeleton.Options
	Card     bool
	Subtle   bool
	// ReducedMotion seeds the reduced motion preference. nil means the host
	// cannot report one.
	ReducedMotion motion.Signal
	Width         int
	// StatusAfter shows a status line once loading takes this long. Zero
	// disables it.
	StatusAfter time.Duration
}

// StatusText is shown under the skeleton after Options.StatusAfter.
const StatusText = "Loading, please wait..."

// frameMsg advances the animation of one generation of the loop.
type frameMsg struct {
	gen int
}

type statusMsg struct{}

// hostMsg reports that the host reduced motion preference changed.
type hostMsg struct{}

// tickAnimator runs the pulse loop through tea.Tick. Stopping bumps the
// generation so frames already in flight are dropped and never reschedule.
type tickAnimator struct {
	gen     int
	running bool
	pending bool
}

func (a *tickAnimator) Start() func() {
	a.gen++
	a.running = true
	a.pending = true
	gen := a.gen
	return func() {
		if a.gen == gen {
			a.gen++
			a.running = false
			a.pending = false
		}
	}
}

// Model is a bubbletea model that shows a loading skeleton.
type Model struct {
	opts    skeleton.Options
	card    bool
	pulse   motion.Pulse
	width   int
	elapsed time.Duration

	statusAfter time.Duration
	showStatus  bool

	// reduced follows the host preference; the motion key overrides it until
	// the host reports again.
	reduced *motion.Toggle
	focus   *motion.Toggle
	anim    *tickAnimator
	ctrl    *motion.Controller

	host        motion.Signal
	hostChanged chan struct{}
	hostCancel  func()
	done        chan struct{}

	keys   keyMap
	help   help.Model
	closed bool
}

// NewModel builds a model. The widget is mounted by Init.
func NewModel(o Options) *Model {
	opts, _ := o.Skeleton.Normalize()

	host := o.ReducedMotion
	if host == nil {
		host = motion.Unavailable{}
	}

	pulse := motion.Shimmer
	if o.Subtle {
		pulse = motion.Subtle
	}

	width := o.Width
	if width <= 0 {
		width = defaultWidth
	}

	m := &Model{
		opts:    opts,
		card:    o.Card,
		pulse:   pulse,
		width:   width,
		reduced: motion.NewToggle(hostReduced(host)),
		focus:   motion.NewToggle(true),
		anim:    &tickAnimator{},
		keys:    defaultKeyMap(),
		help:    help.New(),

		statusAfter: o.StatusAfter,

		host:        host,
		hostChanged: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	m.ctrl = motion.NewController(motion.NewResolver(m.reduced, m.focus), m.anim)
	return m
}

func hostReduced(s motion.Signal) bool {
	v, ok := s.Current()
	return ok && v
}

func (m *Model) Init() tea.Cmd {
	m.hostCancel = m.host.Subscribe(func(bool) {
		select {
		case m.hostChanged <- struct{}{}:
		default:
		}
	})
	m.reduced.Set(hostReduced(m.host))
	m.ctrl.Mount(nil)

	cmds := []tea.Cmd{m.nextFrame(), m.waitHost()}
	if m.statusAfter > 0 {
		cmds = append(cmds, tea.Tick(m.statusAfter, func(time.Time) tea.Msg {
			return statusMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

// waitHost waits for the next host preference change. It returns nil once the
// model is closed.
func (m *Model) waitHost() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.hostChanged:
			return hostMsg{}
		case <-m.done:
			return nil
		}
	}
}

// Close stops the animation and removes the signal listeners.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.ctrl.Unmount()
	if m.hostCancel != nil {
		m.hostCancel()
	}
	close(m.done)
	m.closed = true
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(msg.Width, maxWidth)
		m.help.Width = msg.Width

	case tea.FocusMsg:
		m.focus.Set(true)

	case tea.BlurMsg:
		m.focus.Set(false)

	case statusMsg:
		m.showStatus = true

	case hostMsg:
		m.reduced.Set(hostReduced(m.host))
		return m, tea.Batch(m.nextFrame(), m.waitHost())

	case frameMsg:
		if msg.gen != m.anim.gen || !m.anim.running {
			return m, nil
		}
		m.elapsed += frameInterval
		return m, m.tick(msg.gen)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Avatar):
			m.opts.ShowAvatar = !m.opts.ShowAvatar
		case key.Matches(msg, m.keys.More):
			m.opts.LineCount++
		case key.Matches(msg, m.keys.Fewer):
			if m.opts.LineCount > 0 {
				m.opts.LineCount--
			}
		case key.Matches(msg, m.keys.Card):
			m.card = !m.card
		case key.Matches(msg, m.keys.Motion):
			m.reduced.Flip()
		}
	}

	return m, m.nextFrame()
}

// nextFrame schedules the first frame of a freshly started loop.
func (m *Model) nextFrame() tea.Cmd {
	if !m.anim.pending {
		return nil
	}
	m.anim.pending = false
	return m.tick(m.anim.gen)
}

func (m *Model) tick(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// Layout returns the shapes drawn right now.
func (m *Model) Layout() skeleton.Layout {
	animated := m.ctrl.State() == motion.Animating
	if m.card {
		return skeleton.BuildCard(m.opts.LineCount, animated)
	}
	return m.opts.Layout(animated)
}

// State returns whether the skeleton is animating.
func (m *Model) State() motion.State {
	return m.ctrl.State()
}

// AccessibleLabel is the text announced for the loading region.
func (m *Model) AccessibleLabel() string {
	return m.opts.Label
}

// Frame draws the skeleton at the current point of the pulse.
func (m *Model) Frame() string {
	l := m.Layout()
	opacity := 1.0
	if l.Animated() {
		opacity = m.pulse.Opacity(m.elapsed)
	}
	return Render(l, m.opts.Label, m.width, opacity)
}

func (m *Model) View() string {
	if m.closed {
		return ""
	}

	view := m.Frame()
	if m.showStatus {
		view += "\n\n" + statusStyle.Render(StatusText)
	}
	return view + "\n\n" + m.help.View(m.keys)
}

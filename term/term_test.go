package term

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"loadview/motion"
	"loadview/skeleton"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderBodyLines(t *testing.T) {
	t.Parallel()

	lines := plainLines(Render(skeleton.Build(3, false, true), "Loading content", 40, 0.5))
	require.Len(t, lines, 4)
	require.Equal(t, "Loading content", lines[0])
	require.Equal(t, 40, ansi.StringWidth(lines[1]))
	require.Equal(t, 40, ansi.StringWidth(lines[2]))
	require.Equal(t, 28, ansi.StringWidth(lines[3]), "last line is narrower")
	require.True(t, strings.HasPrefix(lines[1], "▐"))
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	lines := plainLines(Render(skeleton.Build(0, false, false), "Loading content", 40, 1))
	require.Equal(t, []string{"Loading content"}, lines)
}

func TestRenderHeader(t *testing.T) {
	t.Parallel()

	lines := plainLines(Render(skeleton.Build(2, true, false), "Loading", 40, 1))
	// label, two header rows, two body lines
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[1], "▗██▖"))
	require.True(t, strings.HasPrefix(lines[2], "▝██▘"))

	textWidth := 40 - 4 - headerGap
	require.Equal(t, 4+headerGap+cells(skeleton.Pct(60), textWidth), ansi.StringWidth(lines[1]))
	require.Equal(t, 4+headerGap+cells(skeleton.Pct(40), textWidth), ansi.StringWidth(lines[2]))
	require.Equal(t, 28, ansi.StringWidth(lines[4]))
}

func TestRenderCard(t *testing.T) {
	t.Parallel()

	lines := plainLines(Render(skeleton.BuildCard(2, true), "Loading", 30, 1))
	// label, 8 media rows, two body lines
	require.Len(t, lines, 1+skeleton.MediaHeight/pointsPerRow+2)
}

func TestRowsQuantiseHeights(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, rows(skeleton.Points(skeleton.LineHeight)))
	require.Equal(t, 1, rows(skeleton.Points(skeleton.SubtitleHeight)))
	require.Equal(t, 2, rows(skeleton.Points(skeleton.AvatarSize)))
	require.Equal(t, 8, rows(skeleton.Points(skeleton.MediaHeight)))
}

func TestShadeIgnoresOpacityForStaticShapes(t *testing.T) {
	t.Parallel()

	static := skeleton.Shape{Width: skeleton.Pct(100), Height: skeleton.Points(14)}

	require.Equal(t, paint(static, "██", 1), paint(static, "██", 0.2))
	require.Equal(t, shade(1), shade(5))
	require.NotEqual(t, shade(1), shade(0.5))
}

func TestModelFollowsFocus(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Skeleton: skeleton.DefaultOptions(), Width: 40})
	require.NotNil(t, m.Init(), "first frame scheduled")
	require.Equal(t, motion.Animating, m.State())
	for _, s := range m.Layout().Shapes {
		require.True(t, s.Animated)
	}

	_, cmd := m.Update(tea.BlurMsg{})
	require.Nil(t, cmd)
	require.Equal(t, motion.Static, m.State())
	for _, s := range m.Layout().Shapes {
		require.False(t, s.Animated)
	}

	_, cmd = m.Update(tea.FocusMsg{})
	require.NotNil(t, cmd, "loop restarted")
	require.Equal(t, motion.Animating, m.State())
}

func TestModelReducedMotion(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Skeleton: skeleton.DefaultOptions(), ReducedMotion: motion.Fixed(true)})
	m.Init()
	require.Equal(t, motion.Static, m.State())
	require.False(t, m.anim.pending, "no frame scheduled")

	// focus changes never animate while reduced motion is on
	m.Update(tea.BlurMsg{})
	m.Update(tea.FocusMsg{})
	require.Equal(t, motion.Static, m.State())

	_, cmd := m.Update(runes("m"))
	require.NotNil(t, cmd)
	require.Equal(t, motion.Animating, m.State())
}

func TestModelFollowsHostReducedMotion(t *testing.T) {
	t.Parallel()

	host := motion.NewToggle(false)
	m := NewModel(Options{Skeleton: skeleton.DefaultOptions(), ReducedMotion: host})
	m.Init()
	require.Equal(t, 1, host.Listeners())
	require.Equal(t, motion.Animating, m.State())

	host.Set(true)
	msg := m.waitHost()()
	require.IsType(t, hostMsg{}, msg)
	m.Update(msg)
	require.Equal(t, motion.Static, m.State())

	host.Set(false)
	_, cmd := m.Update(m.waitHost()())
	require.NotNil(t, cmd)
	require.Equal(t, motion.Animating, m.State())

	m.Close()
	require.Zero(t, host.Listeners())
	require.Nil(t, m.waitHost()())
}

func TestModelDropsStaleFrames(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Skeleton: skeleton.DefaultOptions()})
	m.Init()
	first := m.anim.gen

	_, cmd := m.Update(frameMsg{gen: first})
	require.NotNil(t, cmd)
	require.Equal(t, frameInterval, m.elapsed)

	m.Update(tea.BlurMsg{})
	_, cmd = m.Update(frameMsg{gen: first})
	require.Nil(t, cmd, "stopped loop does not reschedule")

	m.Update(tea.FocusMsg{})
	_, cmd = m.Update(frameMsg{gen: first})
	require.Nil(t, cmd, "frames of an older loop are dropped")
}

func TestModelKeys(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Skeleton: skeleton.DefaultOptions(), Width: 40})
	m.Init()

	m.Update(runes("+"))
	require.Equal(t, 4, m.Layout().Len())
	m.Update(runes("a"))
	require.Equal(t, 7, m.Layout().Len())
	require.True(t, m.Layout().Avatar)

	for i := 0; i < 10; i++ {
		m.Update(runes("-"))
	}
	require.Equal(t, 3, m.Layout().Len())

	m.Update(runes("c"))
	require.True(t, m.Layout().Media)

	m.Update(tea.WindowSizeMsg{Width: 500, Height: 40})
	require.Equal(t, maxWidth, m.width)
	require.Contains(t, ansi.Strip(m.View()), "Loading content")
}

func TestModelQuitReleasesEverything(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Skeleton: skeleton.DefaultOptions()})
	m.Init()
	require.Equal(t, 1, m.reduced.Listeners())
	require.Equal(t, 1, m.focus.Listeners())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	require.Zero(t, m.reduced.Listeners())
	require.Zero(t, m.focus.Listeners())
	require.False(t, m.anim.running)
	require.Equal(t, motion.Static, m.State())
	require.Empty(t, m.View())

	_, cmd = m.Update(frameMsg{gen: m.anim.gen})
	require.Nil(t, cmd)
}

func TestModelAccessibleLabel(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Skeleton: skeleton.Options{LineCount: -1}})
	require.Equal(t, skeleton.DefaultLabel, m.AccessibleLabel())
	require.Zero(t, m.Layout().Len())
}

func TestModelStatusLine(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{Skeleton: skeleton.DefaultOptions(), StatusAfter: time.Second})
	require.NotNil(t, m.Init())
	require.NotContains(t, ansi.Strip(m.View()), StatusText)

	m.Update(statusMsg{})
	require.Contains(t, ansi.Strip(m.View()), StatusText)
}

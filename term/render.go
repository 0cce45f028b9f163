// Package term draws loading skeletons in a terminal with bubbletea and
// lipgloss.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"loadview/skeleton"
)

const (
	// pointsPerCell converts absolute widths: a 40pt avatar is 4 cells wide.
	pointsPerCell = 10
	// pointsPerRow converts heights: text lines take one row, the avatar two.
	pointsPerRow = 20
	headerGap    = 2
)

var (
	baseColor = mustHex("#9CA3AF")
	fadeColor = mustHex("#1F2937")

	labelStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// shade returns the shape colour at the given opacity.
func shade(opacity float64) lipgloss.Color {
	opacity = math.Max(0, math.Min(1, opacity))
	return lipgloss.Color(fadeColor.BlendRgb(baseColor, opacity).Hex())
}

func cells(d skeleton.Dimension, container int) int {
	var n float64
	if d.Unit == skeleton.Percent {
		n = d.Resolve(float64(container))
	} else {
		n = d.Value / pointsPerCell
	}
	w := int(math.Round(n))
	if w < 1 {
		w = 1
	}
	return w
}

// rows quantises a height to whole terminal rows. Text heights (12 and 14)
// both take one row; only shapes of two rows or more keep their proportions.
func rows(d skeleton.Dimension) int {
	r := int(d.Value / pointsPerRow)
	if r < 1 {
		r = 1
	}
	return r
}

// block draws row r of a shape that is width cells wide and height rows tall.
func block(width, height, r int, corner skeleton.Corner) string {
	if width < 2 {
		return strings.Repeat("█", width)
	}
	mid := strings.Repeat("█", width-2)

	switch corner {
	case skeleton.CornerFull:
		if height < 2 {
			return "▐" + mid + "▌"
		}
		switch r {
		case 0:
			return "▗" + mid + "▖"
		case height - 1:
			return "▝" + mid + "▘"
		}
		return "█" + mid + "█"
	case skeleton.CornerMD, skeleton.CornerLG:
		if r == 0 || r == height-1 {
			return "▐" + mid + "▌"
		}
	}
	return "█" + mid + "█"
}

func paint(s skeleton.Shape, text string, opacity float64) string {
	if !s.Animated {
		opacity = 1
	}
	return lipgloss.NewStyle().Foreground(shade(opacity)).Render(text)
}

// drawShape returns the rows of one shape resolved against container cells.
func drawShape(s skeleton.Shape, container int, opacity float64) []string {
	w := cells(s.Width, container)
	h := rows(s.Height)
	out := make([]string, h)
	for r := 0; r < h; r++ {
		out[r] = paint(s, block(w, h, r, s.Corner), opacity)
	}
	return out
}

// Render draws the layout under its accessible label, width cells wide.
// opacity applies to animated shapes only; static shapes are drawn at full
// intensity.
func Render(l skeleton.Layout, label string, width int, opacity float64) string {
	if width < 1 {
		width = 1
	}
	lines := []string{labelStyle.Render(label)}

	if media, ok := l.MediaShape(); ok {
		lines = append(lines, drawShape(media, width, opacity)...)
	}

	if header := l.Header(); header != nil {
		lines = append(lines, renderHeader(header, width, opacity)...)
	}

	for _, s := range l.Body() {
		lines = append(lines, drawShape(s, width, opacity)...)
	}

	return strings.Join(lines, "\n")
}

// renderHeader puts the avatar left of the title and subtitle.
func renderHeader(header []skeleton.Shape, width int, opacity float64) []string {
	avatar := drawShape(header[0], width, opacity)
	avatarWidth := cells(header[0].Width, width)

	textWidth := width - avatarWidth - headerGap
	if textWidth < 1 {
		textWidth = 1
	}
	text := append(drawShape(header[1], textWidth, opacity), drawShape(header[2], textWidth, opacity)...)

	n := len(avatar)
	if len(text) > n {
		n = len(text)
	}

	gap := strings.Repeat(" ", headerGap)
	pad := strings.Repeat(" ", avatarWidth)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		left := pad
		if i < len(avatar) {
			left = avatar[i]
		}
		right := ""
		if i < len(text) {
			right = text[i]
		}
		out[i] = strings.TrimRight(left+gap+right, " ")
	}
	return out
}

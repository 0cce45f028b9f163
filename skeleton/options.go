package skeleton

import "strings"

const (
	DefaultLineCount = 3
	DefaultLabel     = "Loading content"
)

// Options is the configuration surface exposed to embedding applications.
type Options struct {
	LineCount  int    `json:"line_count" mapstructure:"lines"`
	ShowAvatar bool   `json:"show_avatar" mapstructure:"avatar"`
	Label      string `json:"accessible_label" mapstructure:"label"`
}

// DefaultOptions returns three body lines, no avatar and the default label.
func DefaultOptions() Options {
	return Options{LineCount: DefaultLineCount, Label: DefaultLabel}
}

// Normalize clamps a negative line count to zero and fills an empty label.
// The boolean reports whether the line count was clamped.
func (o Options) Normalize() (Options, bool) {
	clamped := false
	if o.LineCount < 0 {
		o.LineCount = 0
		clamped = true
	}
	if strings.TrimSpace(o.Label) == "" {
		o.Label = DefaultLabel
	}
	return o, clamped
}

// Layout builds the layout these options describe.
func (o Options) Layout(animated bool) Layout {
	return Build(o.LineCount, o.ShowAvatar, animated)
}

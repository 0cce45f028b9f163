package skeleton

// Sizes shared by every renderer.
const (
	AvatarSize     = 40
	LineHeight     = 14
	SubtitleHeight = 12
	MediaHeight    = 160

	TitleWidth    = 60
	SubtitleWidth = 40
	FullWidth     = 100
	// LastLineWidth is narrower than FullWidth so the text appears to trail off.
	LastLineWidth = 70
)

// Layout is an ordered list of shapes, top to bottom.
//
// When Avatar is set the first three shapes are the avatar circle, the title
// and the subtitle, and renderers lay them out as one header row. When Media is
// set the first shape is a card media block.
type Layout struct {
	Shapes []Shape
	Avatar bool
	Media  bool
}

// Len returns the number of shapes in the layout.
func (l Layout) Len() int {
	return len(l.Shapes)
}

// Empty reports whether there is nothing to draw.
func (l Layout) Empty() bool {
	return len(l.Shapes) == 0
}

// Header returns the avatar row shapes, or nil.
func (l Layout) Header() []Shape {
	if !l.Avatar {
		return nil
	}
	start := l.lead()
	return l.Shapes[start : start+3]
}

// MediaShape returns the card media block, if any.
func (l Layout) MediaShape() (Shape, bool) {
	if !l.Media || len(l.Shapes) == 0 {
		return Shape{}, false
	}
	return l.Shapes[0], true
}

// Body returns the text line shapes.
func (l Layout) Body() []Shape {
	start := l.lead()
	if l.Avatar {
		start += 3
	}
	return l.Shapes[start:]
}

// Animated reports the shared animation flag. An empty layout is static.
func (l Layout) Animated() bool {
	return len(l.Shapes) > 0 && l.Shapes[0].Animated
}

func (l Layout) lead() int {
	if l.Media {
		return 1
	}
	return 0
}

// Build composes the standard loading layout: an optional avatar row followed
// by lineCount body lines, the last of which is narrower. Every shape carries
// the same animated flag. Negative line counts are treated as zero.
func Build(lineCount int, showAvatar bool, animated bool) Layout {
	if lineCount < 0 {
		lineCount = 0
	}

	n := lineCount
	if showAvatar {
		n += 3
	}
	l := Layout{Shapes: make([]Shape, 0, n), Avatar: showAvatar}

	if showAvatar {
		l.Shapes = append(l.Shapes,
			Shape{Width: Points(AvatarSize), Height: Points(AvatarSize), Corner: CornerFull, Animated: animated},
			Shape{Width: Pct(TitleWidth), Height: Points(LineHeight), Corner: CornerMD, Animated: animated},
			Shape{Width: Pct(SubtitleWidth), Height: Points(SubtitleHeight), Corner: CornerMD, Animated: animated},
		)
	}

	for i := 0; i < lineCount; i++ {
		width := FullWidth
		if i == lineCount-1 {
			width = LastLineWidth
		}
		l.Shapes = append(l.Shapes, Shape{Width: Pct(float64(width)), Height: Points(LineHeight), Corner: CornerMD, Animated: animated})
	}

	return l
}

// BuildCard composes a card placeholder: a media block above lineCount body lines.
func BuildCard(lineCount int, animated bool) Layout {
	body := Build(lineCount, false, animated)
	shapes := make([]Shape, 0, body.Len()+1)
	shapes = append(shapes, Shape{Width: Pct(FullWidth), Height: Points(MediaHeight), Corner: CornerLG, Animated: animated})
	shapes = append(shapes, body.Shapes...)
	return Layout{Shapes: shapes, Media: true}
}

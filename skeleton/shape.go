// Package skeleton describes loading placeholders independently of any
// rendering toolkit. A Layout is an ordered list of Shapes that renderers draw
// top to bottom while the real content is still loading.
package skeleton

import (
	"fmt"
	"strconv"
)

// Unit tells how a Dimension is resolved at render time.
type Unit int

const (
	// Absolute dimensions are in points (web px, terminal cells after scaling).
	Absolute Unit = iota
	// Percent dimensions are relative to the immediate container.
	Percent
)

// Dimension is either an absolute size or a percentage of the container.
type Dimension struct {
	Value float64
	Unit  Unit
}

// Points returns an absolute dimension.
func Points(v float64) Dimension {
	return Dimension{Value: v, Unit: Absolute}
}

// Pct returns a dimension relative to the container width.
func Pct(v float64) Dimension {
	return Dimension{Value: v, Unit: Percent}
}

// Resolve converts d into container units. Absolute values pass through
// unchanged.
func (d Dimension) Resolve(container float64) float64 {
	if d.Unit == Percent {
		return container * d.Value / 100
	}
	return d.Value
}

// CSS renders the dimension as a CSS length.
func (d Dimension) CSS() string {
	v := strconv.FormatFloat(d.Value, 'f', -1, 64)
	if d.Unit == Percent {
		return v + "%"
	}
	return v + "px"
}

func (d Dimension) String() string {
	if d.Unit == Percent {
		return strconv.FormatFloat(d.Value, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64)
}

// Corner is the rounding applied to a shape.
type Corner int

const (
	CornerNone Corner = iota
	CornerSM
	CornerMD
	CornerLG
	CornerFull
)

var cornerNames = [...]string{"none", "sm", "md", "lg", "full"}

func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return fmt.Sprintf("corner(%d)", int(c))
	}
	return cornerNames[c]
}

// Shape is one placeholder block. Shapes are plain values: compare them with ==.
type Shape struct {
	Width    Dimension
	Height   Dimension
	Corner   Corner
	Animated bool
}

func (s Shape) String() string {
	return fmt.Sprintf("{%s,%s,%s,%t}", s.Width, s.Height, s.Corner, s.Animated)
}

package motion

import (
	"math"
	"time"
)

// Pulse is an opacity curve that runs from 1 down to Min and back over Period.
type Pulse struct {
	Period time.Duration
	Min    float64
}

var (
	// Shimmer is the default web pulse.
	Shimmer = Pulse{Period: 1500 * time.Millisecond, Min: 0.5}
	// Subtle is a gentler pulse for desktop windows, cheaper to keep running.
	Subtle = Pulse{Period: 2 * time.Second, Min: 0.7}
)

// Opacity returns the opacity at elapsed time since the animation started.
func (p Pulse) Opacity(elapsed time.Duration) float64 {
	if p.Period <= 0 {
		return 1
	}
	phase := float64(elapsed%p.Period) / float64(p.Period)
	// cosine ease: 1 at phase 0, Min at 0.5
	t := (1 - math.Cos(2*math.Pi*phase)) / 2
	return 1 - t*(1-p.Min)
}

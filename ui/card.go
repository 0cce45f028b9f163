package ui

import (
	"loadview/skeleton"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// CardLines is the number of body lines under a card's media block.
const CardLines = 2

// LoadingCard is a card-shaped placeholder: a media block and two lines.
type LoadingCard struct {
	app.Compo
	Label            string
	PauseWhenBlurred bool
}

func (c *LoadingCard) Render() app.UI {
	return app.Div().Class("skeleton-card").Body(
		&LoadingSkeleton{
			Options:          skeleton.Options{LineCount: CardLines, Label: c.Label},
			Card:             true,
			PauseWhenBlurred: c.PauseWhenBlurred,
		},
	)
}

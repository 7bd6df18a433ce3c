package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/bounce/core"
)

// BallComponent is the full record of one simulated ball
type BallComponent struct {
	core.Kinetic
	Radius float64
	// Color is cosmetic, read only by renderers
	Color colorful.Color
}

// Limit returns the largest absolute centre coordinate on an axis of the given half extent
// before the ball touches that side
func (b *BallComponent) Limit(half float64) float64 {
	return half - b.Radius
}

// FloorThreshold returns the lowest centre height at which the ball still clears the floor
func (b *BallComponent) FloorThreshold(halfHeight float64) float64 {
	return -b.Limit(halfHeight)
}

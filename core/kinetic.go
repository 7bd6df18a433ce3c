package core

// Kinetic is the per-ball kinematic state
type Kinetic struct {
	// X and Y are positions in viewport pixels, origin at viewport centre, Y up
	X, Y float64
	// Z is a draw-order hint, not used by physics
	Z float64
	// VelX is added to X unscaled each tick
	// VelY is integrated against gravity over the tick's elapsed seconds
	VelX, VelY float64
}

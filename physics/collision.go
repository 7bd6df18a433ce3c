package physics

import (
	"math"

	"github.com/lixenwraith/bounce/core"
)

// FloorContact classifies a ball against the floor threshold
type FloorContact uint8

const (
	FloorNone   FloorContact = iota // Above the floor or not resolvable this tick
	FloorBounce                     // Below the floor and still moving, or on it and driven down
	FloorRest                       // On or below the floor with negligible vertical speed
)

// ClassifyFloor picks the floor response for a ball whose centre must stay at or above floor
// A ball pinned at the floor that picks up a downward kick bounces off it; motion skips it otherwise
func ClassifyFloor(k *core.Kinetic, floor, restVelocity float64) FloorContact {
	slow := math.Abs(k.VelY) <= restVelocity
	switch {
	case !slow && (k.Y < floor || (k.Y <= floor && k.VelY < 0)):
		return FloorBounce
	case k.Y <= floor && slow:
		return FloorRest
	}
	return FloorNone
}

// ReflectFloor reverses VelY with damping and re-integrates the bounce arc for this tick
// The arc displacement is scaled by bounceScale, not the falling pixel scale
// Returns the post-damping vertical speed
func ReflectFloor(k *core.Kinetic, damping, g, dt, bounceScale float64) float64 {
	k.VelY = -k.VelY * damping
	k.Y += Displacement(k.VelY, g, dt) * bounceScale
	return math.Abs(k.VelY)
}

// SettleFloor pins a resting ball to the floor and applies rolling friction
// Returns true once horizontal speed drops below stopVelocity; VelX is then zero
func SettleFloor(k *core.Kinetic, floor, friction, stopVelocity float64) bool {
	k.VelY = 0
	k.Y = floor
	k.VelX *= friction
	if math.Abs(k.VelX) < stopVelocity {
		k.VelX = 0
		return true
	}
	return false
}

// ReflectWallX handles side wall contact at ±limit, returns true if reflection occurred
// VelX is damped and pointed back into the box, then X takes one corrective step
func ReflectWallX(k *core.Kinetic, limit, damping float64) bool {
	switch {
	case k.X > limit:
		k.VelX = -math.Abs(k.VelX) * damping
	case k.X < -limit:
		k.VelX = math.Abs(k.VelX) * damping
	default:
		return false
	}
	k.X += k.VelX
	return true
}

// ClampFrozen holds a ball inside the box without integrating or reflecting
// An axis past ±limit is pulled inside by the ball's own speed on that axis
// Result always lies within [-halfW, halfW] x [-halfH, halfH]
func ClampFrozen(k *core.Kinetic, limitX, limitY, halfW, halfH float64) {
	k.X = clampAxis(k.X, k.VelX, limitX, halfW)
	k.Y = clampAxis(k.Y, k.VelY, limitY, halfH)
}

func clampAxis(pos, vel, limit, half float64) float64 {
	switch {
	case pos > limit:
		pos = limit - math.Abs(vel)
	case pos < -limit:
		pos = -limit + math.Abs(vel)
	}
	return max(-half, min(pos, half))
}

package physics

import (
	"github.com/lixenwraith/bounce/core"
)

// Displacement returns the distance covered in dt from velocity v under constant acceleration g
func Displacement(v, g, dt float64) float64 {
	return v*dt + 0.5*g*dt*dt
}

// IntegrateVertical advances Y under gravity: d = vy*dt + g*dt²/2; vy += g*dt; y += d*scale
// Returns the unscaled displacement
func IntegrateVertical(k *core.Kinetic, g, dt, scale float64) float64 {
	d := Displacement(k.VelY, g, dt)
	k.VelY += g * dt
	k.Y += d * scale
	return d
}

// AdvanceHorizontal moves X by VelX, unscaled and without acceleration
func AdvanceHorizontal(k *core.Kinetic) {
	k.X += k.VelX
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, vx, vy float64) {
	k.VelX += vx
	k.VelY += vy
}

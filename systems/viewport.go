package systems

import (
	"github.com/lixenwraith/bounce/component"
	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/physics"
)

// ViewportSystem turns window notifications into simulation state
// It is the only writer of SimulationConfig
type ViewportSystem struct {
	world *engine.World
	res   engine.Resource
}

// NewViewportSystem creates a new viewport system
func NewViewportSystem(world *engine.World) *ViewportSystem {
	return &ViewportSystem{
		world: world,
		res:   world.Resource,
	}
}

// Priority runs first so readers see this tick's config
func (s *ViewportSystem) Priority() int {
	return constants.PriorityViewport
}

// Update debounces resizes into MotionEnabled and converts viewport movement into impulses
func (s *ViewportSystem) Update() {
	frame := s.res.Viewport.Frame
	sim := s.res.Sim

	// Any resize this tick suspends motion; a quiet tick resumes it
	sim.MotionEnabled = frame.Resizes == 0

	origin, ok := frame.LastMove()
	if !ok {
		return
	}

	// First observed origin only seeds the reference point
	if !sim.OriginKnown {
		sim.LastOrigin = origin
		sim.OriginKnown = true
		return
	}

	dx, dy := origin.Sub(sim.LastOrigin)
	sim.LastOrigin = origin
	if dx == 0 && dy == 0 {
		return
	}

	// Screen Y grows downward, physics Y grows upward
	coeff := s.res.Tunables.ImpulseCoeff
	ivx := float64(dx) * coeff
	ivy := -float64(dy) * coeff

	s.world.Balls.Each(func(_ core.Entity, b *component.BallComponent) {
		physics.ApplyImpulse(&b.Kinetic, ivx, ivy)
	})
}

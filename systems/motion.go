package systems

import (
	"github.com/lixenwraith/bounce/component"
	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/physics"
)

// MotionSystem integrates gravity and horizontal drift while motion is enabled
type MotionSystem struct {
	world *engine.World
	res   engine.Resource
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(world *engine.World) *MotionSystem {
	return &MotionSystem{
		world: world,
		res:   world.Resource,
	}
}

func (s *MotionSystem) Priority() int {
	return constants.PriorityMotion
}

// Update advances every ball one tick; balls at or below the floor are left to BoundarySystem
func (s *MotionSystem) Update() {
	sim := s.res.Sim
	if !sim.MotionEnabled {
		return
	}

	dt := s.res.Time.Seconds()
	halfHeight := s.res.Viewport.Extents.HalfHeight
	rest := s.res.Tunables.RestVelocity

	s.world.Balls.Each(func(_ core.Entity, b *component.BallComponent) {
		floor := b.FloorThreshold(halfHeight)
		// A ball pinned on the floor lifts off when kicked upward past rest speed
		if b.Y > floor || (b.Y >= floor && b.VelY > rest) {
			physics.IntegrateVertical(&b.Kinetic, sim.Gravity, dt, sim.PixelScale)
		}
		physics.AdvanceHorizontal(&b.Kinetic)
	})
}

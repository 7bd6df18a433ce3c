package systems

import (
	"math"

	"github.com/lixenwraith/bounce/component"
	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/physics"
)

// BoundarySystem resolves floor and wall contact against the current viewport extents
// Frozen mode clamps only; active mode bounces, settles, and tags settled balls for CullSystem
type BoundarySystem struct {
	world *engine.World
	res   engine.Resource

	// Reused across ticks so observers and death tags run outside the Balls lock
	bounces []bounce
	settled []core.Entity
}

type bounce struct {
	entity core.Entity
	speed  float64
}

// NewBoundarySystem creates a new boundary system
func NewBoundarySystem(world *engine.World) *BoundarySystem {
	return &BoundarySystem{
		world: world,
		res:   world.Resource,
	}
}

func (s *BoundarySystem) Priority() int {
	return constants.PriorityBoundary
}

// Update resolves every ball; floor before wall
func (s *BoundarySystem) Update() {
	sim := s.res.Sim
	tun := s.res.Tunables
	ext := s.res.Viewport.Extents
	dt := s.res.Time.Seconds()

	s.bounces = s.bounces[:0]
	s.settled = s.settled[:0]

	s.world.Balls.Each(func(e core.Entity, b *component.BallComponent) {
		if !sim.MotionEnabled {
			physics.ClampFrozen(&b.Kinetic, b.Limit(ext.HalfWidth), b.Limit(ext.HalfHeight), ext.HalfWidth, ext.HalfHeight)
			return
		}

		floor := b.FloorThreshold(ext.HalfHeight)
		switch physics.ClassifyFloor(&b.Kinetic, floor, tun.RestVelocity) {
		case physics.FloorBounce:
			speed := physics.ReflectFloor(&b.Kinetic, tun.Damping, sim.Gravity, dt, tun.BouncePixelScale)
			s.bounces = append(s.bounces, bounce{e, speed})
		case physics.FloorRest:
			if physics.SettleFloor(&b.Kinetic, floor, tun.RollingFriction, tun.StopVelocity) {
				s.settled = append(s.settled, e)
			}
		}

		if physics.ReflectWallX(&b.Kinetic, b.Limit(ext.HalfWidth), tun.Damping) {
			s.bounces = append(s.bounces, bounce{e, math.Abs(b.VelX)})
		}
	})

	// Removal is deferred to CullSystem
	for _, e := range s.settled {
		s.world.Deaths.Add(e, component.DeathComponent{})
	}

	s.res.Tick.Bounces += len(s.bounces)
	for _, b := range s.bounces {
		s.world.Resource.Observer.BallBounced(b.entity, b.speed)
	}
}

package systems

import (
	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/engine"
)

// CullSystem removes balls marked for destruction
// It runs after resolution so the per-ball pass never observes a removal
type CullSystem struct {
	world *engine.World
	res   engine.Resource
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) *CullSystem {
	return &CullSystem{
		world: world,
		res:   world.Resource,
	}
}

// Priority returns the system's priority (runs after all physics)
func (s *CullSystem) Priority() int {
	return constants.PriorityCleanup
}

// Update destroys tagged balls and reports each removal once
func (s *CullSystem) Update() {
	dead := s.world.Deaths.Entities()
	if len(dead) == 0 {
		return
	}

	s.world.DestroyEntities(dead)
	s.res.Tick.Removed = append(s.res.Tick.Removed, dead...)
	for _, e := range dead {
		s.world.Resource.Observer.BallRemoved(e)
	}
}

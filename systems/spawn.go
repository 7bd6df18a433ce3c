package systems

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/bounce/component"
	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

// SpawnSystem creates balls with randomized state when the input layer asks for one
type SpawnSystem struct {
	world *engine.World
	res   engine.Resource
	rng   *rand.Rand
}

// NewSpawnSystem creates a new spawn system; nil rng uses an unseeded source
func NewSpawnSystem(world *engine.World, rng *rand.Rand) *SpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SpawnSystem{
		world: world,
		res:   world.Resource,
		rng:   rng,
	}
}

// Priority runs after culling so a new ball is first simulated on the next tick
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	if s.res.Viewport.Frame.Spawn {
		s.Spawn()
	}
}

// Spawn creates one ball; Z is the live ball count at creation
func (s *SpawnSystem) Spawn() core.Entity {
	tun := s.res.Tunables
	e := s.world.CreateEntity()

	ball := component.BallComponent{
		Kinetic: core.Kinetic{
			X:    s.uniform(-tun.SpawnExtent, tun.SpawnExtent),
			Y:    s.uniform(-tun.SpawnExtent, tun.SpawnExtent),
			Z:    float64(s.world.Balls.Count()),
			VelX: s.uniform(-tun.SpawnVelX, tun.SpawnVelX),
			VelY: s.uniform(0, tun.SpawnVelYMax),
		},
		Radius: tun.BallRadius,
		Color: colorful.Color{
			R: s.rng.Float64(),
			G: s.rng.Float64(),
			B: s.rng.Float64(),
		},
	}
	s.world.Balls.Add(e, ball)

	s.res.Tick.Spawned = append(s.res.Tick.Spawned, e)
	s.world.Resource.Observer.BallSpawned(e)
	return e
}

// uniform samples [lo, hi]
func (s *SpawnSystem) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

package systems

import (
	"math/rand/v2"

	"github.com/lixenwraith/bounce/engine"
)

// NewGame builds a world with every simulation system registered in tick order
// Tick order: viewport, motion, boundary, cull, spawn
func NewGame(sim *engine.SimulationConfig, tun *engine.Tunables, observer engine.Observer, rng *rand.Rand) *engine.Game {
	world := engine.NewWorld(sim, tun)
	world.SetObserver(observer)

	spawn := NewSpawnSystem(world, rng)

	world.AddSystem(NewViewportSystem(world))
	world.AddSystem(NewMotionSystem(world))
	world.AddSystem(NewBoundarySystem(world))
	world.AddSystem(NewCullSystem(world))
	world.AddSystem(spawn)

	game := engine.NewGame(world)
	game.SetSpawner(spawn)
	return game
}

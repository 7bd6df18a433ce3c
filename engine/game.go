package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/bounce/component"
	"github.com/lixenwraith/bounce/core"
)

// Spawner creates a randomized ball on demand
type Spawner interface {
	Spawn() core.Entity
}

// BallSnapshot is a ball as seen by renderers at the end of a tick
type BallSnapshot struct {
	Entity core.Entity
	component.BallComponent
}

// TickResult is what one Tick exposes to the rendering layer
type TickResult struct {
	// Balls is the live set sorted by Z, then identity
	Balls []BallSnapshot
	// Removed lists balls despawned this tick
	Removed []core.Entity
	// Spawned lists balls created this tick
	Spawned       []core.Entity
	Bounces       int
	MotionEnabled bool
	FrameNumber   int64
	Extents       Extents
}

// Game is the tick-advance entry point over a World
type Game struct {
	World   *World
	spawner Spawner
}

// NewGame wraps a world whose systems are already registered
func NewGame(w *World) *Game {
	return &Game{World: w}
}

// SetSpawner registers the on-demand spawn implementation
func (g *Game) SetSpawner(s Spawner) {
	g.spawner = s
}

// Spawn creates one ball immediately, outside the tick
func (g *Game) Spawn() (core.Entity, bool) {
	if g.spawner == nil {
		return 0, false
	}
	return g.spawner.Spawn(), true
}

// Tick advances the simulation once: environment frame is collected, systems run in priority order
// env must be non-nil; a missing environment is a caller contract violation
func (g *Game) Tick(dt time.Duration, env Environment) TickResult {
	if env == nil {
		panic("engine: Tick called without an environment")
	}

	res := g.World.Resource
	res.Tick.Reset()
	res.Time.DeltaTime = dt
	res.Time.FrameNumber++
	res.Viewport.Update(env.Collect())

	g.World.Update()

	return TickResult{
		Balls:         g.Snapshot(),
		Removed:       slices.Clone(res.Tick.Removed),
		Spawned:       slices.Clone(res.Tick.Spawned),
		Bounces:       res.Tick.Bounces,
		MotionEnabled: res.Sim.MotionEnabled,
		FrameNumber:   res.Time.FrameNumber,
		Extents:       res.Viewport.Extents,
	}
}

// Snapshot returns the live balls sorted by draw order
func (g *Game) Snapshot() []BallSnapshot {
	balls := make([]BallSnapshot, 0, g.World.Balls.Count())
	g.World.Balls.Range(func(e core.Entity, b component.BallComponent) {
		balls = append(balls, BallSnapshot{Entity: e, BallComponent: b})
	})
	slices.SortFunc(balls, func(a, b BallSnapshot) int {
		switch {
		case a.Z < b.Z:
			return -1
		case a.Z > b.Z:
			return 1
		case a.Entity < b.Entity:
			return -1
		case a.Entity > b.Entity:
			return 1
		}
		return 0
	})
	return balls
}

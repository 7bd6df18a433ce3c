package systems

import (
	"math/rand/v2"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/engine/mocks"
)

// TestSpawnRanges tests randomized state stays inside the configured ranges
func TestSpawnRanges(t *testing.T) {
	g := newTestGame(nil)

	for i := 0; i < 500; i++ {
		e, ok := g.Spawn()
		if !ok {
			t.Fatal("Expected spawner to be registered")
		}
		b := ball(g, e)

		if b.X < -constants.SpawnExtent || b.X > constants.SpawnExtent {
			t.Errorf("X %v out of range", b.X)
		}
		if b.Y < -constants.SpawnExtent || b.Y > constants.SpawnExtent {
			t.Errorf("Y %v out of range", b.Y)
		}
		if b.VelX < -constants.SpawnVelX || b.VelX > constants.SpawnVelX {
			t.Errorf("VelX %v out of range", b.VelX)
		}
		if b.VelY < 0 || b.VelY > constants.SpawnVelYMax {
			t.Errorf("VelY %v out of range", b.VelY)
		}
		if b.Z != float64(i) {
			t.Errorf("Expected Z %d, got %v", i, b.Z)
		}
		if b.Radius != constants.BallRadius {
			t.Errorf("Expected radius %v, got %v", constants.BallRadius, b.Radius)
		}
		if !b.Color.IsValid() {
			t.Errorf("Color %v out of gamut", b.Color)
		}
	}
}

// TestSpawnDeterministicWithSeed tests an injected source reproduces the same ball
func TestSpawnDeterministicWithSeed(t *testing.T) {
	spawnOne := func() engine.BallSnapshot {
		g := NewGame(nil, nil, nil, rand.New(rand.NewPCG(7, 7)))
		e, _ := g.Spawn()
		return engine.BallSnapshot{Entity: e, BallComponent: ball(g, e)}
	}

	a, b := spawnOne(), spawnOne()
	if a != b {
		t.Errorf("Expected identical spawns, got %+v and %+v", a, b)
	}
}

// TestSpawnRequestInTick tests a spawn request is serviced at the end of the tick
func TestSpawnRequestInTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)

	g := newTestGame(obs)
	env := &scriptEnv{frames: []engine.Frame{
		{Width: 800, Height: 600, Spawn: true},
		still(800, 600),
	}}

	var spawned core.Entity
	obs.EXPECT().BallSpawned(gomock.Any()).Do(func(e core.Entity) { spawned = e }).Times(1)
	obs.EXPECT().BallBounced(gomock.Any(), gomock.Any()).AnyTimes()

	res := g.Tick(frameDT, env)

	if len(res.Spawned) != 1 || res.Spawned[0] != spawned {
		t.Fatalf("Expected [%d] spawned, got %v", spawned, res.Spawned)
	}
	if len(res.Balls) != 1 || res.Balls[0].Entity != spawned {
		t.Errorf("Expected spawned ball in snapshot, got %v", res.Balls)
	}
	// Spawned after resolution, so its initial upward velocity is untouched this tick
	if b := ball(g, spawned); b.VelY < 0 {
		t.Errorf("Expected unsimulated spawn VelY >= 0, got %v", b.VelY)
	}

	res = g.Tick(frameDT, env)
	if len(res.Spawned) != 0 {
		t.Errorf("Expected no spawn on quiet tick, got %v", res.Spawned)
	}
}

package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/bounce/component"
	"github.com/lixenwraith/bounce/core"
)

// staticEnv reports the same viewport every tick
type staticEnv struct {
	frame Frame
	calls int
}

func (e *staticEnv) Collect() Frame {
	e.calls++
	return e.frame
}

type countingObserver struct {
	spawned, bounced, removed int
}

func (o *countingObserver) BallSpawned(core.Entity)          { o.spawned++ }
func (o *countingObserver) BallBounced(core.Entity, float64) { o.bounced++ }
func (o *countingObserver) BallRemoved(core.Entity)          { o.removed++ }

type removeAllSystem struct {
	w *World
}

func (s removeAllSystem) Priority() int { return 0 }
func (s removeAllSystem) Update() {
	all := s.w.Balls.Entities()
	s.w.DestroyEntities(all)
	s.w.Resource.Tick.Removed = append(s.w.Resource.Tick.Removed, all...)
}

// TestTickNilEnvironmentPanics tests the environment contract
func TestTickNilEnvironmentPanics(t *testing.T) {
	g := NewGame(NewWorld(nil, nil))

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on nil environment")
		}
	}()
	g.Tick(16*time.Millisecond, nil)
}

// TestTickCollectsOncePerFrame tests frame bookkeeping
func TestTickCollectsOncePerFrame(t *testing.T) {
	g := NewGame(NewWorld(nil, nil))
	env := &staticEnv{frame: Frame{Width: 640, Height: 480}}

	var res TickResult
	for i := 0; i < 3; i++ {
		res = g.Tick(16*time.Millisecond, env)
	}

	if env.calls != 3 {
		t.Errorf("Expected 3 Collect calls, got %d", env.calls)
	}
	if res.FrameNumber != 3 {
		t.Errorf("Expected frame 3, got %d", res.FrameNumber)
	}
	if res.Extents.HalfWidth != 320 || res.Extents.HalfHeight != 240 {
		t.Errorf("Expected extents 320x240, got %vx%v", res.Extents.HalfWidth, res.Extents.HalfHeight)
	}
	if g.World.Resource.Time.DeltaTime != 16*time.Millisecond {
		t.Errorf("Expected dt 16ms, got %v", g.World.Resource.Time.DeltaTime)
	}
}

// TestSnapshotOrder tests balls are ordered by Z, then entity
func TestSnapshotOrder(t *testing.T) {
	w := NewWorld(nil, nil)
	g := NewGame(w)

	zs := []float64{2, 0, 1, 0}
	for _, z := range zs {
		e := w.CreateEntity()
		w.Balls.Add(e, component.BallComponent{Kinetic: core.Kinetic{Z: z}})
	}

	snap := g.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("Expected 4 balls, got %d", len(snap))
	}

	expected := []core.Entity{2, 4, 3, 1}
	for i, e := range expected {
		if snap[i].Entity != e {
			t.Errorf("Position %d: expected entity %d, got %d", i, e, snap[i].Entity)
		}
	}
}

// TestTickResultRemovedIsCopied tests the result is not aliased to per-tick scratch
func TestTickResultRemovedIsCopied(t *testing.T) {
	w := NewWorld(nil, nil)
	w.AddSystem(removeAllSystem{w: w})
	g := NewGame(w)
	env := &staticEnv{frame: Frame{Width: 100, Height: 100}}

	e := w.CreateEntity()
	w.Balls.Add(e, component.BallComponent{})

	first := g.Tick(time.Millisecond, env)
	if len(first.Removed) != 1 || first.Removed[0] != e {
		t.Fatalf("Expected [%d] removed, got %v", e, first.Removed)
	}

	e2 := w.CreateEntity()
	w.Balls.Add(e2, component.BallComponent{})
	second := g.Tick(time.Millisecond, env)

	if first.Removed[0] != e {
		t.Errorf("First result mutated by second tick: got %v", first.Removed)
	}
	if len(second.Removed) != 1 || second.Removed[0] != e2 {
		t.Errorf("Expected [%d] removed, got %v", e2, second.Removed)
	}
}

// TestSpawnWithoutSpawner tests Game.Spawn reports absence
func TestSpawnWithoutSpawner(t *testing.T) {
	g := NewGame(NewWorld(nil, nil))
	if _, ok := g.Spawn(); ok {
		t.Error("Expected Spawn to fail without a spawner")
	}
}

// TestObserversFanOut tests every member receives every notification
func TestObserversFanOut(t *testing.T) {
	a, b := &countingObserver{}, &countingObserver{}
	obs := Observers{a, b}

	obs.BallSpawned(1)
	obs.BallBounced(1, 2.5)
	obs.BallBounced(1, 1.0)
	obs.BallRemoved(1)

	for i, o := range []*countingObserver{a, b} {
		if o.spawned != 1 || o.bounced != 2 || o.removed != 1 {
			t.Errorf("Observer %d: expected 1/2/1, got %d/%d/%d", i, o.spawned, o.bounced, o.removed)
		}
	}
}

// TestFrameLastMove tests the most recent move wins
func TestFrameLastMove(t *testing.T) {
	if _, ok := (Frame{}).LastMove(); ok {
		t.Error("Expected no move on empty frame")
	}

	f := Frame{Moves: []core.Origin{{X: 1, Y: 2}, {X: 3, Y: 4}}}
	o, ok := f.LastMove()
	if !ok || o != (core.Origin{X: 3, Y: 4}) {
		t.Errorf("Expected (3,4), got %v ok=%v", o, ok)
	}
}

package engine

import (
	"github.com/lixenwraith/bounce/core"
)

//go:generate go tool mockgen -destination=./mocks/environment_mock.go -package=mocks . Environment,Observer

// Frame is everything the simulation consumes from its environment for one tick
type Frame struct {
	// Width and Height are the current viewport dimensions in pixels
	Width, Height float64
	// Resizes is the number of resize notifications since the last tick; payload is irrelevant
	Resizes int
	// Moves are viewport origins reported since the last tick, oldest first
	Moves []core.Origin
	// Spawn is true if a ball spawn was requested since the last tick
	Spawn bool
}

// LastMove returns the most recent move origin of the frame
func (f Frame) LastMove() (core.Origin, bool) {
	if len(f.Moves) == 0 {
		return core.Origin{}, false
	}
	return f.Moves[len(f.Moves)-1], true
}

// Environment supplies per-tick input from the windowing and input layers
type Environment interface {
	// Collect drains pending notifications and reports the current viewport size
	Collect() Frame
}

// Observer receives ball lifecycle notifications from the simulation
type Observer interface {
	BallSpawned(e core.Entity)
	// BallBounced reports a floor or wall reflection with the post-damping speed on the reflected axis
	BallBounced(e core.Entity, speed float64)
	// BallRemoved reports a ball that settled and was despawned; e is never seen again
	BallRemoved(e core.Entity)
}

// Observers fans notifications out to every member
type Observers []Observer

func (o Observers) BallSpawned(e core.Entity) {
	for _, obs := range o {
		obs.BallSpawned(e)
	}
}

func (o Observers) BallBounced(e core.Entity, speed float64) {
	for _, obs := range o {
		obs.BallBounced(e, speed)
	}
}

func (o Observers) BallRemoved(e core.Entity) {
	for _, obs := range o {
		obs.BallRemoved(e)
	}
}

// NopObserver discards all notifications
type NopObserver struct{}

func (NopObserver) BallSpawned(core.Entity)          {}
func (NopObserver) BallBounced(core.Entity, float64) {}
func (NopObserver) BallRemoved(core.Entity)          {}

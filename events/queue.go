package events

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/bounce/core"
)

// Batch is everything pushed since the previous Drain, folded for a single tick
// Only the newest move survives since the impulse is a delta against the last seen origin
type Batch struct {
	Resizes int
	Move    core.Origin
	Moved   bool
	Spawn   bool
}

// EventQueue coalesces environment events between ticks without locking
// Any goroutine may Push; Drain belongs to the game loop
// An event racing a Drain lands in either that batch or the next, never neither
type EventQueue struct {
	resizes atomic.Int64
	spawn   atomic.Bool
	move    atomic.Pointer[core.Origin]
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push folds one event into the pending batch
func (eq *EventQueue) Push(ev Event) {
	switch ev.Type {
	case EventResize:
		eq.resizes.Add(1)
	case EventMove:
		o := ev.Origin
		eq.move.Store(&o)
	case EventSpawn:
		eq.spawn.Store(true)
	default:
		slog.Debug("event dropped", "type", ev.Type)
	}
}

// Drain takes the pending batch and resets it
func (eq *EventQueue) Drain() Batch {
	b := Batch{
		Resizes: int(eq.resizes.Swap(0)),
		Spawn:   eq.spawn.Swap(false),
	}
	if o := eq.move.Swap(nil); o != nil {
		b.Move, b.Moved = *o, true
	}
	return b
}

package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/bounce/core"
)

// TestEventQueueDrainFolds tests a tick's events collapse into one batch
func TestEventQueueDrainFolds(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(Event{Type: EventMove, Origin: core.Origin{X: 1}})
	eq.Push(Event{Type: EventResize})
	eq.Push(Event{Type: EventSpawn})
	eq.Push(Event{Type: EventResize})
	eq.Push(Event{Type: EventMove, Origin: core.Origin{X: 8, Y: 16}})
	eq.Push(Event{Type: EventSpawn})

	b := eq.Drain()
	if b.Resizes != 2 {
		t.Errorf("Expected 2 resizes, got %d", b.Resizes)
	}
	if !b.Moved || b.Move != (core.Origin{X: 8, Y: 16}) {
		t.Errorf("Expected last move (8,16), got %v moved=%v", b.Move, b.Moved)
	}
	if !b.Spawn {
		t.Error("Expected spawn requested")
	}

	if again := eq.Drain(); again != (Batch{}) {
		t.Errorf("Expected empty batch on second drain, got %+v", again)
	}
}

// TestEventQueueMoveToOrigin tests a move back to (0,0) still counts as a move
func TestEventQueueMoveToOrigin(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(Event{Type: EventMove})

	if b := eq.Drain(); !b.Moved || b.Move != (core.Origin{}) {
		t.Errorf("Expected move to origin, got %v moved=%v", b.Move, b.Moved)
	}
}

// TestEventQueueUnknownType tests unknown events leave the batch untouched
func TestEventQueueUnknownType(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(Event{Type: EventType(99)})

	if b := eq.Drain(); b != (Batch{}) {
		t.Errorf("Expected empty batch, got %+v", b)
	}
}

// TestEventQueueConcurrent tests concurrent pushes from multiple goroutines
func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	numGoroutines := 10
	eventsPerGoroutine := 10

	var wg sync.WaitGroup
	for g := 0; g < numGoroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < eventsPerGoroutine; i++ {
				eq.Push(Event{Type: EventResize})
				eq.Push(Event{Type: EventMove, Origin: core.Origin{X: id, Y: i}})
			}
		}(g)
	}
	wg.Wait()

	b := eq.Drain()
	if b.Resizes != numGoroutines*eventsPerGoroutine {
		t.Errorf("Expected %d resizes, got %d", numGoroutines*eventsPerGoroutine, b.Resizes)
	}
	// The globally newest move is some producer's final one
	if !b.Moved || b.Move.Y != eventsPerGoroutine-1 {
		t.Errorf("Expected a final move with Y=%d, got %v moved=%v", eventsPerGoroutine-1, b.Move, b.Moved)
	}
}

// TestEventTypeString tests type names used in logs
func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventResize, "resize"},
		{EventMove, "move"},
		{EventSpawn, "spawn"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

package events

import (
	"github.com/lixenwraith/bounce/core"
)

// EventType represents the type of environment event
type EventType int

const (
	// EventResize signals a viewport size change
	// Trigger: terminal resize, box resize keys | Payload: none, count only
	EventResize EventType = iota

	// EventMove signals a viewport relocation
	// Trigger: box move keys | Payload: Origin, viewport top-left in pixels
	EventMove

	// EventSpawn requests one new ball
	// Trigger: spawn keys | Payload: none
	EventSpawn
)

func (t EventType) String() string {
	switch t {
	case EventResize:
		return "resize"
	case EventMove:
		return "move"
	case EventSpawn:
		return "spawn"
	}
	return "unknown"
}

// Event is one environment notification queued between ticks
type Event struct {
	Type   EventType
	Origin core.Origin
}

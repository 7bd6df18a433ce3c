package input

import (
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/events"
)

// Collector turns the queue's per-tick batch into a simulation frame
type Collector struct {
	queue  *events.EventQueue
	layout *Layout
}

// NewCollector creates an engine.Environment over the queue and layout
func NewCollector(queue *events.EventQueue, layout *Layout) *Collector {
	return &Collector{queue: queue, layout: layout}
}

// Collect implements engine.Environment
func (c *Collector) Collect() engine.Frame {
	b := c.queue.Drain()
	f := engine.Frame{
		Resizes: b.Resizes,
		Spawn:   b.Spawn,
	}
	if b.Moved {
		f.Moves = []core.Origin{b.Move}
	}
	f.Width, f.Height = c.layout.PixelSize()
	return f
}

package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/events"
)

// Handler translates terminal events into viewport changes and queued environment events
// Runs on the main loop goroutine; only the queue is shared with the simulation
type Handler struct {
	layout *Layout
	queue  *events.EventQueue
	keys   *KeyTable

	// Wireframe is toggled by IntentWireframe and read by the renderer
	Wireframe bool
	// Muted mirrors the audio mute state after each toggle
	Muted bool

	toggleMute func() bool

	// Mouse drag state, in cells
	dragging     bool
	dragX, dragY int
	lastOrigin   core.Origin
}

// NewHandler creates a handler with default key bindings
func NewHandler(layout *Layout, queue *events.EventQueue) *Handler {
	return &Handler{
		layout:     layout,
		queue:      queue,
		keys:       DefaultKeyTable(),
		lastOrigin: layout.PixelOrigin(),
	}
}

// SetMuteToggle installs the audio mute toggle; fn returns the new muted state
func (h *Handler) SetMuteToggle(fn func() bool) {
	h.toggleMute = fn
}

// Announce reports the initial viewport origin so the simulation can seed its reference point
func (h *Handler) Announce() {
	h.lastOrigin = h.layout.PixelOrigin()
	h.queue.Push(events.Event{Type: events.EventMove, Origin: h.lastOrigin})
}

// HandleEvent processes one terminal event, returns false when the user asked to quit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleIntent(h.keys.Lookup(ev))

	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.layout.SetScreen(w, hgt)
		h.queue.Push(events.Event{Type: events.EventResize})
		// Refitting can push the box, which the simulation sees as a window move
		h.pushMoveIfChanged()

	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

func (h *Handler) handleIntent(in Intent) bool {
	switch in.Type {
	case IntentQuit:
		return false

	case IntentSpawn:
		h.queue.Push(events.Event{Type: events.EventSpawn})

	case IntentMove:
		if h.layout.Move(in.DX, in.DY) {
			h.pushMoveIfChanged()
		}

	case IntentResize:
		if h.layout.Grow(in.DX, in.DY) {
			h.queue.Push(events.Event{Type: events.EventResize})
		}

	case IntentToggleMute:
		if h.toggleMute != nil {
			h.Muted = h.toggleMute()
		}

	case IntentWireframe:
		h.Wireframe = !h.Wireframe
	}
	return true
}

// handleMouse drags the box with the primary button held
func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		h.dragging = false
		return
	}

	if !h.dragging {
		if h.layout.Box().Contains(x, y) {
			h.dragging = true
			h.dragX, h.dragY = x, y
		}
		return
	}

	dx, dy := x-h.dragX, y-h.dragY
	h.dragX, h.dragY = x, y
	if (dx != 0 || dy != 0) && h.layout.Move(dx, dy) {
		h.pushMoveIfChanged()
	}
}

func (h *Handler) pushMoveIfChanged() {
	origin := h.layout.PixelOrigin()
	if origin == h.lastOrigin {
		return
	}
	h.lastOrigin = origin
	h.queue.Push(events.Event{Type: events.EventMove, Origin: origin})
}

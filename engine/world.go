package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/bounce/component"
	"github.com/lixenwraith/bounce/core"
)

// System is an interface that all systems must implement
type System interface {
	Priority() int // Lower values run first
	Update()
}

// World is the ball arena: typed component stores plus singleton resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Component Stores (Public for direct system access)
	Balls  *Store[component.BallComponent]
	Deaths *Store[component.DeathComponent]

	Resource Resource

	systems []System
	stores  []dropper
}

// NewWorld creates a world around the given simulation config and tunables
func NewWorld(sim *SimulationConfig, tun *Tunables) *World {
	if sim == nil {
		sim = NewSimulationConfig()
	}
	if tun == nil {
		tun = DefaultTunables()
	}

	w := &World{
		nextEntityID: 1,
		Balls:        NewStore[component.BallComponent](),
		Deaths:       NewStore[component.DeathComponent](),
		Resource: Resource{
			Time:     &TimeResource{},
			Sim:      sim,
			Tunables: tun,
			Viewport: &ViewportResource{},
			Tick:     &TickResource{},
			Observer: NopObserver{},
		},
	}
	w.stores = []dropper{w.Balls, w.Deaths}
	return w
}

// CreateEntity reserves a new entity ID; IDs are never reused
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntities detaches a batch of entities from every store in one pass per store
func (w *World) DestroyEntities(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for _, store := range w.stores {
		store.Drop(entities)
	}
}

// AddSystem adds a system and keeps systems ordered by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Update runs all systems in priority order
func (w *World) Update() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// SetObserver replaces the lifecycle observer; nil restores the no-op observer
func (w *World) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	w.Resource.Observer = o
}

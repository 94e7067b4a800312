package engine

import (
	"sync"

	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
)

// World contains all entities, their components and the singleton resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *Resource
	Components ComponentStore
	stores     []AnyStore

	eventQueue *event.EventQueue

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world bound to resources
func NewWorld(res *Resource) *World {
	w := &World{
		nextEntityID: 1,
		Resources:    res,
		Components:   newComponentStore(),
		eventQueue:   res.Event.Queue,
		systems:      make([]System, 0),
	}
	w.stores = w.Components.all()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntities removes a batch of entities from every store, one compaction per store
func (w *World) DestroyEntities(entities []core.Entity) {
	for _, s := range w.stores {
		s.RemoveBatch(entities)
	}
}

// Clear removes all entities and components
// Entity IDs keep increasing so stale handles never alias new entities
func (w *World) Clear() {
	for _, s := range w.stores {
		s.ClearAllComponent()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable insertion sort keeps registration order within a priority
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs all systems assuming the caller holds the update lock
// Once the game is over only the presentation band runs
func (w *World) UpdateLocked() {
	state := w.Resources.Game.State
	for _, system := range w.Systems() {
		if state.IsOver() && system.Priority() < parameter.PriorityPresentation {
			continue
		}
		system.Update()
	}
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// Emit records an audio cue for the current tick
func (w *World) Emit(sound core.SoundType) {
	w.Resources.Cue.Emit(sound)
}

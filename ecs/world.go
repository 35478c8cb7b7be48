package ecs

import "github.com/milk9111/horde/ecs/component"

// World owns entities, component stores, the event queue and the system
// schedule.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]componentStore
	events    EventQueue
	scheduler *Scheduler
	renderers []RenderSystem

	pendingDestroy []Entity
	frame          int
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]componentStore),
		scheduler: NewScheduler(),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

// DestroyEntity removes every component of e and frees its id.
func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// QueueDestroy defers destruction of e until the current tick finishes, so
// systems later in the same tick still see it. Queuing twice is harmless.
func (w *World) QueueDestroy(e Entity) {
	if w == nil || !w.IsAlive(e) {
		return
	}
	for _, pending := range w.pendingDestroy {
		if pending == e {
			return
		}
	}
	w.pendingDestroy = append(w.pendingDestroy, e)
}

// PendingDestroy reports whether e is queued for destruction this tick.
func (w *World) PendingDestroy(e Entity) bool {
	if w == nil {
		return false
	}
	for _, pending := range w.pendingDestroy {
		if pending == e {
			return true
		}
	}
	return false
}

func (w *World) applyDestroys() {
	pending := w.pendingDestroy
	w.pendingDestroy = nil
	for _, e := range pending {
		w.DestroyEntity(e)
	}
}

// Scheduler returns the world system schedule.
func (w *World) Scheduler() *Scheduler {
	if w == nil {
		return nil
	}
	return w.scheduler
}

// AddSystem appends a system to the Update stage.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once, applies queued destroys and flushes events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.applyDestroys()
	w.events.flush()
	w.frame++
}

// Frame returns the number of completed ticks.
func (w *World) Frame() int {
	if w == nil {
		return 0
	}
	return w.frame
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID) componentStore {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}

// Query returns live entities carrying every listed component kind.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID())
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	// iterate the smallest store
	smallest := 0
	for i, s := range stores {
		if s.len() < stores[smallest].len() {
			smallest = i
		}
	}

	ids := stores[smallest].ids()
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		match := true
		for i, s := range stores {
			if i != smallest && !s.has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	s := w.store(kind.ID())
	if s == nil {
		return 0, false
	}
	for _, id := range s.ids() {
		if e, ok := w.entities.entity(id); ok {
			return e, true
		}
	}
	return 0, false
}

// First returns any live entity carrying kind.
func First(w *World, kind component.AnyKind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	return w.First(kind)
}

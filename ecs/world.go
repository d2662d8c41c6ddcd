package ecs

import (
	"sort"

	"github.com/hollowmoor/stagecam/ecs/component"
)

// World owns entities, component stores, the frame clock, and the
// event queue. All access is single-threaded; systems run in the
// fixed order the scheduler gives them.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue

	delta   float64
	elapsed float64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
// Returns false if the handle was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all alive entities in ascending id order.
func (w *World) Entities() []Entity {
	return w.entities.alive()
}

// Advance moves the frame clock forward by dt seconds.
func (w *World) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	w.delta = dt
	w.elapsed += dt
}

// Delta returns the current frame's elapsed seconds.
func (w *World) Delta() float64 {
	return w.delta
}

// Elapsed returns total seconds advanced since the world was created.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent attaches a component value to an entity.
func (w *World) AddComponent(e Entity, id component.ComponentID, v any) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	w.store(id).set(e.id(), v)
	return nil
}

// GetComponent returns the raw component value for an entity.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.store(id).get(e.id())
	if v == nil {
		return nil, false
	}
	return v, true
}

// HasComponent reports whether the entity carries the component.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	return w.IsAlive(e) && w.store(id).has(e.id())
}

// RemoveComponent detaches a component from an entity.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(id).remove(e.id())
}

// Count returns the number of alive entities carrying the component.
func (w *World) Count(id component.ComponentID) int {
	n := 0
	for _, sid := range w.store(id).ids() {
		if w.entities.isAlive(makeEntity(sid, w.entities.gens[sid-1])) && !w.entities.isFree(sid) {
			n++
		}
	}
	return n
}

// Query returns alive entities carrying every given component kind,
// in ascending id order. The ordering is what makes multi-candidate
// decisions (e.g. anchor tie-breaks) deterministic across runs.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	smallest := w.store(ids[0])
	for _, id := range ids[1:] {
		if s := w.store(id); s.len() < smallest.len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.len())
	for _, sid := range smallest.ids() {
		e := makeEntity(sid, w.entities.gens[sid-1])
		if !w.entities.isAlive(e) || w.entities.isFree(sid) {
			continue
		}
		all := true
		for _, id := range ids {
			if !w.store(id).has(sid) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the alive entity with the lowest id carrying the
// component, if any.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	es := w.Query(id)
	if len(es) == 0 {
		return 0, false
	}
	return es[0], true
}

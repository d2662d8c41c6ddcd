package ecs

import "github.com/hollowmoor/stagecam/ecs/component"

// Add attaches a component to an entity, replacing any existing value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, handle.Kind().ID(), value)
}

// Remove detaches a component from an entity.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind().ID())
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind().ID())
}

// Get returns the component pointer for an entity. Mutations through
// the pointer are visible to later passes in the same tick.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.Kind().ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// ForEach calls fn for every alive entity carrying the component,
// in ascending id order.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	for _, e := range w.Query(handle.Kind().ID()) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}

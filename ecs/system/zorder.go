package system

import (
	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

// ZOrderSystem turns logical order values into draw depth. The first
// time an entity's ZOrder is applied, the current z is captured into
// UnorderedZ; every later change recomputes z = base + value from that
// same base, never re-snapshotting, so repeated application with the
// same value is idempotent.
type ZOrderSystem struct{}

func NewZOrderSystem() *ZOrderSystem {
	return &ZOrderSystem{}
}

func (s *ZOrderSystem) Update(w *ecs.World) {
	for _, e := range w.Query(component.ZOrderComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		order, _ := ecs.Get(w, e, component.ZOrderComponent)
		if !order.Dirty {
			continue
		}
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		base, ok := ecs.Get(w, e, component.UnorderedZComponent)
		if !ok {
			base = &component.UnorderedZ{Base: transform.Z}
			if err := ecs.Add(w, e, component.UnorderedZComponent, base); err != nil {
				continue
			}
		}
		transform.Z = base.Base + order.Value
		order.Dirty = false
	}
}

type yOriginState struct {
	y, offset float64
}

// YOriginSystem derives ZOrder from the entity's y position whenever
// the transform's y or the origin offset changed since the last tick.
type YOriginSystem struct {
	last map[ecs.Entity]yOriginState
}

func NewYOriginSystem() *YOriginSystem {
	return &YOriginSystem{last: map[ecs.Entity]yOriginState{}}
}

func (s *YOriginSystem) Update(w *ecs.World) {
	if s.last == nil {
		s.last = map[ecs.Entity]yOriginState{}
	}
	for e := range s.last {
		if !w.IsAlive(e) {
			delete(s.last, e)
		}
	}

	for _, e := range w.Query(component.YOriginComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		origin, _ := ecs.Get(w, e, component.YOriginComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		state := yOriginState{y: transform.Y, offset: origin.Offset}
		if prev, seen := s.last[e]; seen && prev == state {
			continue
		}
		s.last[e] = state

		value := -(origin.Offset + transform.Y) / 10000.0
		if order, ok := ecs.Get(w, e, component.ZOrderComponent); ok {
			order.Set(value)
		} else if err := ecs.Add(w, e, component.ZOrderComponent, component.NewZOrder(value)); err != nil {
			continue
		}
	}
}

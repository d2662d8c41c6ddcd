package system

import (
	"golang.org/x/image/math/f64"

	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

// Followable is anything the camera can bind to or move toward: a
// current world position plus an optional fixed follow offset.
type Followable interface {
	WorldPosition() f64.Vec3
	FollowOffset() (x, y float64)
}

type transformFollowable struct {
	transform *component.Transform
	offset    *component.CameraOffset
}

func (f transformFollowable) WorldPosition() f64.Vec3 {
	return f.transform.Translation()
}

func (f transformFollowable) FollowOffset() (float64, float64) {
	if f.offset == nil {
		return 0, 0
	}
	return f.offset.X, f.offset.Y
}

// resolveFollowable returns the follow capability for an entity with a
// transform. Dead entities and entities without transforms don't
// resolve; callers degrade to a per-tick no-op.
func resolveFollowable(w *ecs.World, e ecs.Entity) (Followable, bool) {
	if !e.Valid() || !w.IsAlive(e) {
		return nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return nil, false
	}
	offset, _ := ecs.Get(w, e, component.CameraOffsetComponent)
	return transformFollowable{transform: t, offset: offset}, true
}

// followPoint is the position the camera should land on: the
// followable's translation plus its planar offset.
func followPoint(f Followable) f64.Vec3 {
	p := f.WorldPosition()
	ox, oy := f.FollowOffset()
	return f64.Vec3{p[0] + ox, p[1] + oy, p[2]}
}

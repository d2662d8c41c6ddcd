package stagecam

import (
	"time"

	"golang.org/x/image/math/f64"

	"github.com/hollowmoor/stagecam/easing"
	"github.com/hollowmoor/stagecam/ecs"
)

// MoveTo eases the camera toward a fixed point over the duration, then
// leaves it Free. Replaces any in-flight move. A nil curve means
// linear.
func (p *Plugin) MoveTo(point f64.Vec3, duration time.Duration, curve easing.Curve) {
	p.world.Events().Push(ecs.Event{Type: ecs.EventCameraCommand, Data: ecs.CameraCommand{
		Kind:     ecs.CameraCommandMoveToPoint,
		Point:    point,
		Duration: duration.Seconds(),
		Curve:    curve,
	}})
}

// MoveToEntity eases the camera toward a live target over the
// duration, then binds to it. Replaces any in-flight move.
func (p *Plugin) MoveToEntity(target ecs.Entity, duration time.Duration, curve easing.Curve) {
	p.world.Events().Push(ecs.Event{Type: ecs.EventCameraCommand, Data: ecs.CameraCommand{
		Kind:     ecs.CameraCommandMoveToEntity,
		Target:   target,
		Duration: duration.Seconds(),
		Curve:    curve,
	}})
}

// BindTo hard-binds the camera to the target immediately.
func (p *Plugin) BindTo(target ecs.Entity) {
	p.world.Events().Push(ecs.Event{Type: ecs.EventCameraCommand, Data: ecs.CameraCommand{
		Kind:   ecs.CameraCommandBind,
		Target: target,
	}})
}

// Release returns the camera to Free.
func (p *Plugin) Release() {
	p.world.Events().Push(ecs.Event{Type: ecs.EventCameraCommand, Data: ecs.CameraCommand{
		Kind: ecs.CameraCommandRelease,
	}})
}

// AddTrauma applies trauma to every shakeable entity,
// fire-and-forget.
func (p *Plugin) AddTrauma(amount float64) {
	p.world.Events().Push(ecs.Event{Type: ecs.EventAddTrauma, Data: ecs.TraumaEvent{Amount: amount}})
}

// AddTraumaTo applies trauma to one shakeable entity.
func (p *Plugin) AddTraumaTo(e ecs.Entity, amount float64) {
	p.world.Events().Push(ecs.Event{Type: ecs.EventAddTrauma, Data: ecs.TraumaEvent{Target: e, Amount: amount}})
}

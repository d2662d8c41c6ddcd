package system

import (
	"fmt"

	"github.com/hollowmoor/stagecam/easing"
	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

// CommandSystem drains the world event queue and applies trauma and
// camera commands. It runs first in the tick so commands issued by the
// host between frames take effect before binding and motion advance.
type CommandSystem struct {
	warn onceLogger
}

func NewCommandSystem() *CommandSystem {
	return &CommandSystem{}
}

func (s *CommandSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventAddTrauma:
			trauma, ok := evt.Data.(ecs.TraumaEvent)
			if !ok {
				continue
			}
			s.applyTrauma(w, trauma)
		case ecs.EventCameraCommand:
			cmd, ok := evt.Data.(ecs.CameraCommand)
			if !ok {
				continue
			}
			s.applyCameraCommand(w, cmd)
		}
	}
}

func (s *CommandSystem) applyTrauma(w *ecs.World, trauma ecs.TraumaEvent) {
	if trauma.Target.Valid() {
		if shake, ok := ecs.Get(w, trauma.Target, component.ShakeComponent); ok {
			shake.AddTrauma(trauma.Amount)
		}
		return
	}
	// fire-and-forget: no target means every shakeable entity
	ecs.ForEach(w, component.ShakeComponent, func(_ ecs.Entity, shake *component.Shake) {
		shake.AddTrauma(trauma.Amount)
	})
}

func (s *CommandSystem) applyCameraCommand(w *ecs.World, cmd ecs.CameraCommand) {
	_, motion, transform, ok := cameraSingleton(w, &s.warn)
	if !ok {
		return
	}

	curve := cmd.Curve
	if curve == nil {
		curve = easing.Linear
	}

	switch cmd.Kind {
	case ecs.CameraCommandMoveToPoint:
		motion.StartMoveToPoint(transform.Translation(), cmd.Point, cmd.Duration, curve)
	case ecs.CameraCommandMoveToEntity:
		motion.StartMoveToEntity(transform.Translation(), uint64(cmd.Target), cmd.Duration, curve)
	case ecs.CameraCommandBind:
		if !w.IsAlive(cmd.Target) {
			s.warn.warnf(fmt.Sprintf("bind_missing_%d", cmd.Target),
				"stagecam: could not bind camera: entity %d not found", cmd.Target)
			return
		}
		motion.Bind(uint64(cmd.Target))
	case ecs.CameraCommandRelease:
		motion.Release()
	}
}

package system

import (
	"fmt"

	"github.com/hollowmoor/stagecam/common"
	"github.com/hollowmoor/stagecam/easing"
	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

// cameraSingleton resolves the one camera entity with its motion state
// and transform. Zero or several cameras is a precondition violation:
// warn once, skip the tick, self-heal when the world recovers.
func cameraSingleton(w *ecs.World, warn *onceLogger) (ecs.Entity, *component.CameraMotion, *component.Transform, bool) {
	cameras := w.Query(component.CameraTagComponent.Kind().ID(), component.TransformComponent.Kind().ID())
	if len(cameras) != 1 {
		if len(cameras) > 1 {
			warn.warnf("camera_singleton", "stagecam: expected exactly one camera, found %d", len(cameras))
		}
		return 0, nil, nil, false
	}
	camera := cameras[0]
	motion, ok := ecs.Get(w, camera, component.CameraMotionComponent)
	if !ok {
		return 0, nil, nil, false
	}
	transform, ok := ecs.Get(w, camera, component.TransformComponent)
	if !ok {
		return 0, nil, nil, false
	}
	return camera, motion, transform, true
}

// CameraMotionSystem advances the camera's binding state machine each
// tick: snaps bound cameras to their target, integrates in-flight
// moves along their easing curve, and applies the completion
// transitions (point moves end Free, entity moves end Bound).
type CameraMotionSystem struct {
	warn onceLogger
}

func NewCameraMotionSystem() *CameraMotionSystem {
	return &CameraMotionSystem{}
}

func (s *CameraMotionSystem) Update(w *ecs.World) {
	_, motion, transform, ok := cameraSingleton(w, &s.warn)
	if !ok {
		return
	}

	switch motion.Mode {
	case component.MotionFree:
		// position is whatever the host left it at

	case component.MotionBound:
		target := ecs.Entity(motion.Target)
		f, ok := resolveFollowable(w, target)
		if !ok {
			s.warn.warnf(fmt.Sprintf("bound_dangling_%d", motion.Target),
				"stagecam: camera bound to entity %d with no transform", motion.Target)
			return
		}
		transform.SetTranslation(followPoint(f))

	case component.MotionMovingToPoint, component.MotionMovingToEntity:
		motion.Elapsed += w.Delta()
		fraction := 1.0
		if motion.Duration > 0 {
			fraction = common.Clamp(motion.Elapsed/motion.Duration, 0, 1)
		}

		end := motion.End
		if motion.Mode == component.MotionMovingToEntity {
			// resolve the live end every tick so the move tracks a
			// moving target; hold the last known end if it dangles
			if f, ok := resolveFollowable(w, ecs.Entity(motion.Target)); ok {
				end = followPoint(f)
				motion.End = end
			} else {
				s.warn.warnf(fmt.Sprintf("move_dangling_%d", motion.Target),
					"stagecam: camera moving to entity %d with no transform", motion.Target)
			}
		}

		transform.SetTranslation(easing.Interpolate(motion.Start, end, fraction, motion.Curve))

		if motion.Elapsed >= motion.Duration {
			if motion.Mode == component.MotionMovingToEntity {
				motion.Bind(motion.Target)
			} else {
				motion.Release()
			}
		}
	}
}

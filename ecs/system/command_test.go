package system

import (
	"testing"

	"golang.org/x/image/math/f64"

	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

func TestCommandTrauma(t *testing.T) {
	t.Run("targeted", func(t *testing.T) {
		w := ecs.NewWorld()
		a := spawnShakeable(t, w, 0, 0)
		b := spawnShakeable(t, w, 0, 0)

		w.Events().Push(ecs.Event{Type: ecs.EventAddTrauma, Data: ecs.TraumaEvent{Target: a, Amount: 0.4}})
		NewCommandSystem().Update(w)

		shakeA, _ := ecs.Get(w, a, component.ShakeComponent)
		shakeB, _ := ecs.Get(w, b, component.ShakeComponent)
		if shakeA.Trauma != 0.4 {
			t.Fatalf("target trauma = %v, want 0.4", shakeA.Trauma)
		}
		if shakeB.Trauma != 0 {
			t.Fatalf("bystander trauma = %v, want 0", shakeB.Trauma)
		}
	})

	t.Run("broadcast", func(t *testing.T) {
		w := ecs.NewWorld()
		a := spawnShakeable(t, w, 0, 0)
		b := spawnShakeable(t, w, 0, 0)

		w.Events().Push(ecs.Event{Type: ecs.EventAddTrauma, Data: ecs.TraumaEvent{Amount: 0.4}})
		NewCommandSystem().Update(w)

		shakeA, _ := ecs.Get(w, a, component.ShakeComponent)
		shakeB, _ := ecs.Get(w, b, component.ShakeComponent)
		if shakeA.Trauma != 0.4 || shakeB.Trauma != 0.4 {
			t.Fatalf("trauma = %v / %v, want 0.4 on every shakeable", shakeA.Trauma, shakeB.Trauma)
		}
	})

	t.Run("target_without_shake_ignored", func(t *testing.T) {
		w := ecs.NewWorld()
		plain := spawnAt(t, w, 0, 0, 0)
		w.Events().Push(ecs.Event{Type: ecs.EventAddTrauma, Data: ecs.TraumaEvent{Target: plain, Amount: 0.4}})
		NewCommandSystem().Update(w) // must not panic
	})
}

func TestCommandCamera(t *testing.T) {
	t.Run("move_to_point", func(t *testing.T) {
		w := ecs.NewWorld()
		camera := spawnCamera(t, w, 5, 5, 0)

		w.Events().Push(ecs.Event{Type: ecs.EventCameraCommand, Data: ecs.CameraCommand{
			Kind:     ecs.CameraCommandMoveToPoint,
			Point:    f64.Vec3{100, 0, 0},
			Duration: 2,
		}})
		NewCommandSystem().Update(w)

		motion, _ := cameraState(t, w, camera)
		if motion.Mode != component.MotionMovingToPoint {
			t.Fatalf("mode = %v, want moving_to_point", motion.Mode)
		}
		if motion.Start != (f64.Vec3{5, 5, 0}) || motion.End != (f64.Vec3{100, 0, 0}) {
			t.Fatalf("move = %v -> %v", motion.Start, motion.End)
		}
		if motion.Curve == nil {
			t.Fatal("nil command curve should default to linear")
		}
	})

	t.Run("bind_and_release", func(t *testing.T) {
		w := ecs.NewWorld()
		camera := spawnCamera(t, w, 0, 0, 0)
		target := spawnAt(t, w, 50, 50, 0)

		w.Events().Push(ecs.Event{Type: ecs.EventCameraCommand, Data: ecs.CameraCommand{
			Kind:   ecs.CameraCommandBind,
			Target: target,
		}})
		s := NewCommandSystem()
		s.Update(w)

		motion, _ := cameraState(t, w, camera)
		if motion.Mode != component.MotionBound || motion.Target != uint64(target) {
			t.Fatalf("mode = %v target = %d, want bound to %d", motion.Mode, motion.Target, target)
		}

		w.Events().Push(ecs.Event{Type: ecs.EventCameraCommand, Data: ecs.CameraCommand{
			Kind: ecs.CameraCommandRelease,
		}})
		s.Update(w)
		if motion.Mode != component.MotionFree {
			t.Fatalf("mode = %v, want free after release", motion.Mode)
		}
	})

	t.Run("bind_to_dead_entity_refused", func(t *testing.T) {
		w := ecs.NewWorld()
		camera := spawnCamera(t, w, 0, 0, 0)
		target := spawnAt(t, w, 50, 50, 0)
		w.DestroyEntity(target)

		w.Events().Push(ecs.Event{Type: ecs.EventCameraCommand, Data: ecs.CameraCommand{
			Kind:   ecs.CameraCommandBind,
			Target: target,
		}})
		NewCommandSystem().Update(w)

		motion, _ := cameraState(t, w, camera)
		if motion.Mode != component.MotionFree {
			t.Fatalf("mode = %v, want free (bind to dead entity refused)", motion.Mode)
		}
	})
}

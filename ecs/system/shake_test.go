package system

import (
	"math"
	"testing"

	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

func spawnShakeable(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := spawnAt(t, w, x, y, 0)
	if err := ecs.Add(w, e, component.ShakeComponent, &component.Shake{}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestAddTraumaClamps(t *testing.T) {
	tests := []struct {
		name    string
		amounts []float64
		want    float64
	}{
		{"accumulates", []float64{0.2, 0.3}, 0.5},
		{"clamps_high", []float64{0.6, 0.6}, 1},
		{"clamps_low", []float64{0.3, -2}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var shake component.Shake
			for _, a := range tc.amounts {
				shake.AddTrauma(a)
			}
			if shake.Trauma != tc.want {
				t.Fatalf("trauma = %v, want %v", shake.Trauma, tc.want)
			}
		})
	}
}

func TestShakeDecayReachesZeroAndStays(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnShakeable(t, w, 0, 0)
	shake, _ := ecs.Get(w, e, component.ShakeComponent)
	shake.Trauma = 0.5

	s := NewShakeSystem(nil) // built-in defaults: decay 0.8/s

	// 0.25s ticks drain 0.2 per tick; the third tick would go negative
	// and must clamp to exactly zero
	want := []float64{0.3, 0.1, 0, 0}
	for i, expected := range want {
		w.Advance(0.25)
		s.Update(w)
		if math.Abs(shake.Trauma-expected) > 1e-12 {
			t.Fatalf("tick %d: trauma = %v, want %v", i, shake.Trauma, expected)
		}
	}
	if shake.Trauma != 0 {
		t.Fatalf("trauma must clamp to exactly zero, got %v", shake.Trauma)
	}
}

func TestShakeOffsetOnlyWhileTraumatized(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnShakeable(t, w, 10, 20)
	shake, _ := ecs.Get(w, e, component.ShakeComponent)
	transform, _ := ecs.Get(w, e, component.TransformComponent)

	s := NewShakeSystem(nil)

	// zero trauma: no snapshot, no movement
	w.Advance(1.0 / 60)
	s.Update(w)
	if shake.Reference != nil {
		t.Fatal("reference must stay nil at zero trauma")
	}
	wantPos(t, transform, 10, 20, 0)

	// with trauma the pre-shake translation is snapshotted
	shake.Trauma = 1
	w.Advance(1.0 / 60)
	s.Update(w)
	if shake.Reference == nil {
		t.Fatal("reference should be set while an offset is applied")
	}
	if shake.Reference.X != 10 || shake.Reference.Y != 20 {
		t.Fatalf("reference = %v, want the pre-shake translation (10, 20)", *shake.Reference)
	}
}

func TestShakeRestoreRoundTrip(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnShakeable(t, w, 10, 20)
	shake, _ := ecs.Get(w, e, component.ShakeComponent)
	transform, _ := ecs.Get(w, e, component.TransformComponent)
	shake.Trauma = 1

	restore := NewShakeRestoreSystem()
	apply := NewShakeSystem(nil)

	// frame loop: restore at frame begin, apply at frame end. The true
	// translation must survive the whole shake, bit for bit.
	for i := 0; i < 120; i++ {
		w.Advance(1.0 / 60)
		restore.Update(w)
		if transform.X != 10 || transform.Y != 20 {
			t.Fatalf("frame %d: post-restore position = (%v, %v), want (10, 20)", i, transform.X, transform.Y)
		}
		apply.Update(w)
	}

	// drain the remaining trauma completely, then one last restore
	shake.Trauma = 0
	w.Advance(1.0 / 60)
	restore.Update(w)
	apply.Update(w)
	if transform.X != 10 || transform.Y != 20 {
		t.Fatalf("final position = (%v, %v), want exactly (10, 20)", transform.X, transform.Y)
	}
	if shake.Reference != nil {
		t.Fatal("reference should be cleared once trauma is spent")
	}
}

func TestShakeIsDeterministic(t *testing.T) {
	run := func() (xs, ys []float64) {
		w := ecs.NewWorld()
		e := spawnShakeable(t, w, 0, 0)
		shake, _ := ecs.Get(w, e, component.ShakeComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		shake.Trauma = 1

		restore := NewShakeRestoreSystem()
		apply := NewShakeSystem(nil)
		for i := 0; i < 30; i++ {
			w.Advance(1.0 / 60)
			restore.Update(w)
			apply.Update(w)
			xs = append(xs, transform.X)
			ys = append(ys, transform.Y)
		}
		return xs, ys
	}

	x1, y1 := run()
	x2, y2 := run()
	for i := range x1 {
		if x1[i] != x2[i] || y1[i] != y2[i] {
			t.Fatalf("frame %d: runs diverged: (%v, %v) vs (%v, %v)", i, x1[i], y1[i], x2[i], y2[i])
		}
	}
}

func TestShakeSettingsOverride(t *testing.T) {
	w := ecs.NewWorld()
	plain := spawnShakeable(t, w, 0, 0)
	frozen := spawnShakeable(t, w, 0, 0)

	// per-entity settings with zero decay: trauma never drains
	override := component.DefaultShakeSettings
	override.DecayPerSecond = 0
	if err := ecs.Add(w, frozen, component.ShakeSettingsComponent, &override); err != nil {
		t.Fatal(err)
	}

	plainShake, _ := ecs.Get(w, plain, component.ShakeComponent)
	frozenShake, _ := ecs.Get(w, frozen, component.ShakeComponent)
	plainShake.Trauma = 0.5
	frozenShake.Trauma = 0.5

	s := NewShakeSystem(nil)
	w.Advance(0.25)
	s.Update(w)

	if frozenShake.Trauma != 0.5 {
		t.Fatalf("override entity trauma = %v, want 0.5 (zero decay)", frozenShake.Trauma)
	}
	if plainShake.Trauma >= 0.5 {
		t.Fatalf("default entity trauma = %v, want decayed below 0.5", plainShake.Trauma)
	}
}

func TestShakeResolvesDefaultsEachTick(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnShakeable(t, w, 0, 0)
	shake, _ := ecs.Get(w, e, component.ShakeComponent)
	shake.Trauma = 1

	settings := component.DefaultShakeSettings
	s := NewShakeSystem(func() component.ShakeSettings { return settings })

	w.Advance(0.25)
	s.Update(w)
	first := shake.Trauma

	// a live settings change (e.g. config reload) applies next tick
	settings.DecayPerSecond = 0
	w.Advance(0.25)
	s.Update(w)
	if shake.Trauma != first {
		t.Fatalf("trauma = %v, want unchanged %v after decay dropped to zero", shake.Trauma, first)
	}
}

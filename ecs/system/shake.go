package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/hollowmoor/stagecam/common"
	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

// ShakeRestoreSystem undoes last frame's shake offset before the host
// runs its own logic, so gameplay always sees the true, unperturbed
// translation. Runs at frame begin; the reference slot never survives
// past it.
type ShakeRestoreSystem struct{}

func NewShakeRestoreSystem() *ShakeRestoreSystem {
	return &ShakeRestoreSystem{}
}

func (s *ShakeRestoreSystem) Update(w *ecs.World) {
	for _, e := range w.Query(component.ShakeComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		shake, _ := ecs.Get(w, e, component.ShakeComponent)
		if shake.Reference == nil {
			continue
		}
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		transform.X = shake.Reference.X
		transform.Y = shake.Reference.Y
		shake.Reference = nil
	}
}

// ShakeSystem decays trauma and applies the layered-noise offset to
// every shakeable entity. Decay runs unconditionally every tick; the
// offset (and the reference snapshot) only happens while
// trauma^power > 0.
type ShakeSystem struct {
	// Defaults resolves the global fallback settings each tick, so
	// live config reloads take effect immediately. Nil means the
	// built-in defaults.
	Defaults func() component.ShakeSettings
}

func NewShakeSystem(defaults func() component.ShakeSettings) *ShakeSystem {
	return &ShakeSystem{Defaults: defaults}
}

func (s *ShakeSystem) Update(w *ecs.World) {
	fallback := component.DefaultShakeSettings
	if s.Defaults != nil {
		fallback = s.Defaults()
	}

	for _, e := range w.Query(component.ShakeComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		shake, _ := ecs.Get(w, e, component.ShakeComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		settings := fallback
		if override, ok := ecs.Get(w, e, component.ShakeSettingsComponent); ok {
			settings = *override
		}

		shake.Trauma = math.Max(0, shake.Trauma-settings.DecayPerSecond*w.Delta())

		traumaAmount := math.Pow(shake.Trauma, settings.TraumaPower)
		if traumaAmount <= 0 {
			continue
		}

		reference := transform.Planar()
		shake.Reference = &reference

		// two independent fractal channels along the same sweep, with
		// fixed per-axis phase offsets; deterministic for a given
		// (elapsed, frequency, octaves)
		sweep := settings.Frequency * w.Elapsed()
		offset := cp.Vector{
			X: common.Fbm2(sweep, 1, settings.Octaves),
			Y: common.Fbm2(sweep, 2, settings.Octaves),
		}.Mult(settings.Amplitude * traumaAmount)

		transform.X += offset.X
		transform.Y += offset.Y
	}
}

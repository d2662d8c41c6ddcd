package component

import "github.com/jakecoffman/cp"

// Shake makes an entity shake according to applied trauma.
//
// The offset is applied after the host's own update, and the entity is
// restored to its reference translation at the start of the next
// frame, so gameplay logic always operates on the true position.
type Shake struct {
	// Trauma is the normalized [0, 1] shake intensity. It decays every
	// tick and is raised by AddTrauma.
	Trauma float64
	// Reference holds the pre-shake planar translation while an offset
	// is applied. It never persists across frames: set when an offset
	// is written, cleared by the restore pass. Only x/y are recorded;
	// z belongs to the z-order sequencer and is never perturbed.
	Reference *cp.Vector
}

// AddTrauma raises trauma, clamped to [0, 1]. Callable any number of
// times per frame; amounts accumulate up to the ceiling.
func (s *Shake) AddTrauma(amount float64) {
	s.Trauma += amount
	if s.Trauma < 0 {
		s.Trauma = 0
	}
	if s.Trauma > 1 {
		s.Trauma = 1
	}
}

var ShakeComponent = NewComponent[Shake]()

// ShakeSettings tunes the shake engine for one entity. Entities
// without their own settings use the resolved global default.
type ShakeSettings struct {
	// Amplitude is how far the shake can offset, in world units.
	Amplitude float64
	// TraumaPower shapes intensity; 2-3 makes low trauma feel calm.
	TraumaPower float64
	// DecayPerSecond is how much trauma drains each second.
	DecayPerSecond float64
	// Frequency is how fast the noise sweeps, in Hz-equivalents.
	Frequency float64
	// Octaves is the number of noise layers.
	Octaves int
}

// DefaultShakeSettings is the global fallback.
var DefaultShakeSettings = ShakeSettings{
	Amplitude:      100,
	TraumaPower:    2,
	DecayPerSecond: 0.8,
	Frequency:      15,
	Octaves:        1,
}

var ShakeSettingsComponent = NewComponent[ShakeSettings]()

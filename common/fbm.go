package common

import opensimplex "github.com/ojrac/opensimplex-go"

// Shake noise uses a fixed seed: offsets must be a pure function of
// the sample position so shakes replay identically in tests.
const fbmSeed = 1337

const (
	fbmLacunarity = 2.0
	fbmGain       = 0.5
)

var fbmNoise = opensimplex.New(fbmSeed)

// Fbm2 samples fractal (layered) simplex noise at (x, y). Each octave
// doubles the frequency and halves the amplitude. Output stays roughly
// in [-1, 1] for one octave and is deterministic for given inputs.
func Fbm2(x, y float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	sum := 0.0
	amp := 1.0
	freq := 1.0
	for i := 0; i < octaves; i++ {
		sum += amp * fbmNoise.Eval2(x*freq, y*freq)
		freq *= fbmLacunarity
		amp *= fbmGain
	}
	return sum
}

package render

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters: alpha is the weight of successive octaves, beta the
// frequency step, n the octave count.
const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3

	// noise coordinate distance between neighbouring points
	pointStride = 0.37
	ticksPerSec = 60.0
)

// Shimmer dims points by a slowly drifting noise field. Factor is 1 when
// Amplitude is zero and never drops below 1-Amplitude.
type Shimmer struct {
	Amplitude float64
	Speed     float64 // noise units per second

	noise *perlin.Perlin
}

// NewShimmer builds a shimmer from rng. A nil rng seeds from the clock.
func NewShimmer(amplitude, speed float64, rng *rand.Rand) *Shimmer {
	var seed int64
	if rng != nil {
		seed = rng.Int63()
	} else {
		seed = rand.Int63()
	}
	return &Shimmer{
		Amplitude: amplitude,
		Speed:     speed,
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed),
	}
}

// Factor returns the opacity multiplier for point i at the given tick.
func (s *Shimmer) Factor(i int, tick float64) float64 {
	if s.Amplitude == 0 {
		return 1
	}
	n := s.noise.Noise2D(float64(i)*pointStride, tick/ticksPerSec*s.Speed)
	return 1 - s.Amplitude*clamp01((n+1)/2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

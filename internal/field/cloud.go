package field

import (
	"math/rand"
	"time"
)

// GenerateCloud samples n points with every coordinate uniform in
// [-spread/2, spread/2]. The result is a flat x,y,z sequence.
func GenerateCloud(n int, spread float64, rng *rand.Rand) []float32 {
	if rng == nil {
		rng = newRand()
	}
	pos := make([]float32, n*3)
	for i := range pos {
		pos[i] = float32((rng.Float64() - 0.5) * spread)
	}
	return pos
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

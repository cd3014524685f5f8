package platform

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Initial card tilt range in whole degrees, [MinInitialRotation, MaxInitialRotation)
const (
	MinInitialRotation = -10
	MaxInitialRotation = 10
)

// RotationSource supplies the rest rotation for newly created cards
type RotationSource interface {
	NextRotation() float64
}

// RandomRotation draws whole-degree rotations from a seeded generator
type RandomRotation struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRotation creates a rotation source. A zero seed uses the clock.
func NewRandomRotation(seed int64) *RandomRotation {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomRotation{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
	}
}

// NextRotation returns a rotation in [MinInitialRotation, MaxInitialRotation)
func (r *RandomRotation) NextRotation() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float64(MinInitialRotation + r.rng.IntN(MaxInitialRotation-MinInitialRotation))
}

// FixedRotation always returns the same rotation
type FixedRotation float64

// NextRotation returns the fixed value
func (f FixedRotation) NextRotation() float64 {
	return float64(f)
}

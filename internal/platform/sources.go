package platform

import "math/rand/v2"

// NewSources builds the picture and rotation sources for a seed.
// A zero seed leaves both unseeded.
func NewSources(seed int64) (*PictureSource, *RandomRotation) {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(uint64(seed), 0))
	}
	return NewPictureSource(rng), NewRandomRotation(seed)
}

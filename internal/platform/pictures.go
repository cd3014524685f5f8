package platform

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/swiper/internal/model"
)

// Picture URI template: seed, width, height
const (
	PictureURIFormat = "https://picsum.photos/seed/%s/%d/%d"
	PictureWidth     = 720
	PictureHeight    = 1080
)

var descriptions = []string{
	"Morning light over the harbour",
	"A quiet street after the rain",
	"Mountains beyond the last village",
	"Old bridge, new paint",
	"Somewhere along the coast",
	"Forest trail in late autumn",
	"Rooftops at dusk",
	"The long road north",
	"Fields waiting for summer",
	"Café corner, Sunday afternoon",
}

// PictureSource produces card content
type PictureSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPictureSource creates a picture source. Descriptions are drawn from rng,
// a nil rng uses the global generator.
func NewPictureSource(rng *rand.Rand) *PictureSource {
	return &PictureSource{rng: rng}
}

// Next returns content for a new card
func (p *PictureSource) Next() model.Card {
	id := uuid.New().String()
	return model.Card{
		ID:          id,
		Description: p.description(),
		ImageURI:    fmt.Sprintf(PictureURIFormat, id, PictureWidth, PictureHeight),
		IsLoading:   true,
	}
}

func (p *PictureSource) description() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rng == nil {
		return descriptions[rand.IntN(len(descriptions))]
	}
	return descriptions[p.rng.IntN(len(descriptions))]
}

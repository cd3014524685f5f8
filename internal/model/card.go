package model

import "strings"

// Card is the content shown on a swipe card. It is produced by the content
// provider and is read-only to the swipe core.
type Card struct {
	ID          string
	Description string
	ImageURI    string
	IsLoading   bool // image still being fetched
}

// DisplayDescription returns the description, or the image URI if empty
func (c *Card) DisplayDescription() string {
	if d := strings.TrimSpace(c.Description); d != "" {
		return d
	}
	return c.ImageURI
}

// Feedback holds the visual values derived from the current drag offset.
// It is recomputed on every move and never stored.
type Feedback struct {
	LikeOpacity  float64 // in [-1, 1]; negative values render as hidden
	DenyOpacity  float64 // always -LikeOpacity
	Rotation     float64 // degrees
	TranslationX float64
	TranslationY float64
}

// Visible returns the opacities clamped to [0, 1] for rendering
func (f Feedback) Visible() (like, deny float64) {
	return clamp01(f.LikeOpacity), clamp01(f.DenyOpacity)
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

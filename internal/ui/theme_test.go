package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithOpacity(t *testing.T) {
	base := color.NRGBA{R: 10, G: 20, B: 30, A: 200}

	assert.Equal(t, color.Transparent, withOpacity(base, 0))
	assert.Equal(t, color.Transparent, withOpacity(base, -0.7))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 100}, withOpacity(base, 0.5))
	assert.Equal(t, base, withOpacity(base, 3))
}

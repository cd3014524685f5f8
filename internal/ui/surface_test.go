package ui

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

var testDenyColor = color.NRGBA{R: 211, G: 47, B: 47, A: 255}

// nearColor reports whether c is an opaque pixel within 24 of want per channel
func nearColor(c color.Color, want color.NRGBA) bool {
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	diff := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	return got.A > 200 && diff(got.R, want.R) <= 24 && diff(got.G, want.G) <= 24 && diff(got.B, want.B) <= 24
}

// matching returns the points of img whose colour is near want
func matching(img image.Image, want color.NRGBA) []image.Point {
	var points []image.Point
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if nearColor(img.At(x, y), want) {
				points = append(points, image.Pt(x, y))
			}
		}
	}
	return points
}

func denySurface() cardSurface {
	return cardSurface{
		Face: placeholderFace(),
		Deny: stamp{Text: "DENY", Color: testDenyColor, Opacity: 1},
		Like: stamp{Text: "LIKE", Color: color.NRGBA{G: 200, A: 255}},
	}
}

func TestSurfacePainter_StampInTopRightCorner(t *testing.T) {
	test.NewTempApp(t)
	p := newSurfacePainter()

	surface := p.paint(200, 200, denySurface(), 1)

	points := matching(surface, testDenyColor)
	require.NotEmpty(t, points)
	for _, pt := range points {
		assert.Less(t, pt.Y, 100, "deny stamp stays in the top half")
		assert.Greater(t, pt.X, 50, "deny stamp is right-aligned")
	}
}

func TestSurfacePainter_HiddenStamp(t *testing.T) {
	test.NewTempApp(t)
	p := newSurfacePainter()
	s := denySurface()
	s.Deny.Opacity = 0

	surface := p.paint(200, 200, s, 1)

	assert.Empty(t, matching(surface, testDenyColor))
}

func TestSurfacePainter_StampFollowsRotation(t *testing.T) {
	test.NewTempApp(t)
	p := newSurfacePainter()
	surface := p.paint(200, 200, denySurface(), 1)

	// a quarter turn clockwise swings the top-right corner to the bottom-right
	posed := renderCard(300, 300, surface, cardPose{
		Width: 200, Height: 200, CenterX: 150, CenterY: 150, Scale: 1, Rotation: 90,
	})

	points := matching(posed, testDenyColor)
	require.NotEmpty(t, points)
	below := 0
	for _, pt := range points {
		assert.Greater(t, pt.X, 150, "stamp turned to the right of the pivot")
		if pt.Y > 150 {
			below++
		}
	}
	assert.NotZero(t, below)
}

func TestSurfacePainter_ReusesUnchangedSurface(t *testing.T) {
	test.NewTempApp(t)
	p := newSurfacePainter()
	s := denySurface()

	first := p.paint(120, 160, s, 1)
	assert.Same(t, first, p.paint(120, 160, s, 1))

	s.Deny.Opacity = 0.5
	assert.NotSame(t, first, p.paint(120, 160, s, 1))

	s.FaceVersion++
	second := p.paint(120, 160, s, 1)
	assert.NotSame(t, first, second)
}

func TestSurfacePainter_DescriptionBand(t *testing.T) {
	test.NewTempApp(t)
	p := newSurfacePainter()
	s := cardSurface{Face: placeholderFace(), Description: "Rooftops at dusk"}

	surface := p.paint(200, 200, s, 1)

	top := color.NRGBAModel.Convert(surface.At(100, 5)).(color.NRGBA)
	bottom := color.NRGBAModel.Convert(surface.At(2, 198)).(color.NRGBA)
	assert.Equal(t, PlaceholderColor, top)
	assert.Less(t, bottom.R, PlaceholderColor.R, "band darkens the bottom edge")
}

func TestEllipsize(t *testing.T) {
	face := basicfont.Face7x13

	assert.Equal(t, "short", ellipsize(face, "short", 100))

	got := ellipsize(face, "A quiet street after the rain", 70)
	assert.True(t, len([]rune(got)) < len([]rune("A quiet street after the rain")))
	assert.Equal(t, '…', []rune(got)[len([]rune(got))-1])

	assert.Empty(t, ellipsize(face, "wide", 1))
}

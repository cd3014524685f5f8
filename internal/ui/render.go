package ui

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// cardPose places the card face inside the raster, in raster pixels
type cardPose struct {
	Width, Height    float64 // unscaled card size
	CenterX, CenterY float64
	Scale            float64
	Rotation         float64 // degrees, clockwise on screen
}

// cardTransform maps source pixels onto the raster: the source is fitted into
// the card size, scaled, rotated around its centre and moved to the centre.
func cardTransform(src image.Rectangle, pose cardPose) f64.Aff3 {
	sx := pose.Width * pose.Scale / float64(src.Dx())
	sy := pose.Height * pose.Scale / float64(src.Dy())
	hw := pose.Width * pose.Scale / 2
	hh := pose.Height * pose.Scale / 2
	minX, minY := float64(src.Min.X), float64(src.Min.Y)

	rad := pose.Rotation * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	return f64.Aff3{
		cos * sx, -sin * sy, pose.CenterX - cos*(sx*minX+hw) + sin*(sy*minY+hh),
		sin * sx, cos * sy, pose.CenterY - sin*(sx*minX+hw) - cos*(sy*minY+hh),
	}
}

// renderCard draws src posed on a transparent w×h canvas
func renderCard(w, h int, src image.Image, pose cardPose) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if src == nil || src.Bounds().Empty() || pose.Width <= 0 || pose.Height <= 0 {
		return dst
	}
	draw.ApproxBiLinear.Transform(dst, cardTransform(src.Bounds(), pose), src, src.Bounds(), draw.Over, nil)
	return dst
}

// placeholderFace is the card face shown while the picture loads
func placeholderFace() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, PlaceholderColor)
	return img
}

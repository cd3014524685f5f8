package swipe

import (
	"math"

	"fyne.io/fyne/v2"
)

// springOvershoot is the classic back-easing overshoot constant
const springOvershoot = 1.70158

// Easing curves used by the card animations. They map progress in [0, 1] to
// eased progress and plug directly into fyne.Animation.Curve.
var (
	// Linear keeps constant speed
	Linear fyne.AnimationCurve = fyne.AnimationLinear

	// SinOut decelerates along a quarter sine wave
	SinOut fyne.AnimationCurve = func(x float32) float32 {
		return float32(math.Sin(float64(x) * math.Pi / 2))
	}

	// CubicIn accelerates from rest
	CubicIn fyne.AnimationCurve = func(x float32) float32 {
		return x * x * x
	}

	// SpringOut overshoots the target slightly before settling
	SpringOut fyne.AnimationCurve = func(x float32) float32 {
		p := float64(x) - 1
		return float32(p*p*((springOvershoot+1)*p+springOvershoot) + 1)
	}
)

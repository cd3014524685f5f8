package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// cardAnimator drives the visual properties of a SwiperCard with Fyne
// animations. Each property has one slot; a new animation stops the previous
// one in that slot.
type cardAnimator struct {
	card *SwiperCard

	scale     *fyne.Animation
	rotate    *fyne.Animation
	translate *fyne.Animation
}

func newCardAnimator(card *SwiperCard) *cardAnimator {
	return &cardAnimator{card: card}
}

// Translate moves the card immediately
func (a *cardAnimator) Translate(x, y float64) {
	stopAnimation(a.translate)
	a.card.setTranslation(x, y)
}

// Rotate tilts the card immediately
func (a *cardAnimator) Rotate(degrees float64) {
	stopAnimation(a.rotate)
	a.card.setRotation(degrees)
}

// Fade sets the indicator opacities
func (a *cardAnimator) Fade(like, deny float64) {
	a.card.setIndicators(like, deny)
}

// ScaleTo animates the card scale
func (a *cardAnimator) ScaleTo(scale float64, duration time.Duration, curve fyne.AnimationCurve) {
	from := a.card.scale
	a.scale = a.run(a.scale, duration, curve, func(p float64) {
		a.card.setScale(lerp(from, scale, p))
	}, nil)
}

// RotateTo animates the card rotation
func (a *cardAnimator) RotateTo(degrees float64, duration time.Duration, curve fyne.AnimationCurve) {
	from := a.card.rotation
	a.rotate = a.run(a.rotate, duration, curve, func(p float64) {
		a.card.setRotation(lerp(from, degrees, p))
	}, nil)
}

// TranslateTo animates the card translation and calls done once it settles
func (a *cardAnimator) TranslateTo(x, y float64, duration time.Duration, curve fyne.AnimationCurve, done func()) {
	fromX, fromY := a.card.translationX, a.card.translationY
	a.translate = a.run(a.translate, duration, curve, func(p float64) {
		a.card.setTranslation(lerp(fromX, x, p), lerp(fromY, y, p))
	}, done)
}

// run stops prev and starts a new animation. The Fyne curve is left linear so
// the tick sees raw progress and can detect completion even for curves that
// overshoot; the easing is applied here instead.
func (a *cardAnimator) run(prev *fyne.Animation, duration time.Duration, curve fyne.AnimationCurve, step func(float64), done func()) *fyne.Animation {
	stopAnimation(prev)
	if curve == nil {
		curve = fyne.AnimationLinear
	}

	anim := fyne.NewAnimation(duration, func(progress float32) {
		step(float64(curve(progress)))
		if progress >= 1 && done != nil {
			fn := done
			done = nil
			fn()
		}
	})
	anim.Curve = fyne.AnimationLinear
	anim.Start()
	return anim
}

func stopAnimation(anim *fyne.Animation) {
	if anim != nil {
		anim.Stop()
	}
}

func lerp(from, to, p float64) float64 {
	return from + (to-from)*p
}

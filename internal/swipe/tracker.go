package swipe

import (
	"log"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/swiper/internal/model"
)

// Animator applies visual properties to a card. Each property has at most one
// running animation; starting a new one on the same property supersedes the
// previous one, which then never calls its done callback.
type Animator interface {
	Translate(x, y float64)
	Rotate(degrees float64)
	Fade(like, deny float64)
	ScaleTo(scale float64, duration time.Duration, curve fyne.AnimationCurve)
	RotateTo(degrees float64, duration time.Duration, curve fyne.AnimationCurve)
	TranslateTo(x, y float64, duration time.Duration, curve fyne.AnimationCurve, done func())
}

// Host is the container a card lives in
type Host interface {
	RemoveChild(child fyne.CanvasObject)
}

// Scheduler runs fn on the goroutine that owns the UI
type Scheduler func(fn func())

// Tracker turns pan gesture events into card feedback and, on release, into
// either a snap-back or a committed exit.
type Tracker struct {
	engine   Engine
	animator Animator
	schedule Scheduler

	host Host
	self fyne.CanvasObject

	onAccept func()
	onReject func()

	state    State
	drag     DragState
	decision model.Decision
}

// NewTracker creates a tracker for a card resting at initialRotation degrees
func NewTracker(engine Engine, initialRotation float64, animator Animator) *Tracker {
	return &Tracker{
		engine:   engine,
		animator: animator,
		schedule: fyne.Do,
		drag:     DragState{InitialRotation: initialRotation},
	}
}

// SetHost sets the container self is removed from after a committed exit
func (t *Tracker) SetHost(host Host, self fyne.CanvasObject) {
	t.host = host
	t.self = self
}

// SetCallbacks sets the decision callbacks. They fire once per committed
// gesture, before the exit animation starts.
func (t *Tracker) SetCallbacks(onAccept, onReject func()) {
	t.onAccept = onAccept
	t.onReject = onReject
}

// SetScheduler replaces fyne.Do as the commit path scheduler
func (t *Tracker) SetScheduler(s Scheduler) {
	if s != nil {
		t.schedule = s
	}
}

// SetReferenceWidth updates the width all thresholds scale with.
// Non-positive values leave decision logic inactive.
func (t *Tracker) SetReferenceWidth(width float64) {
	t.drag.ReferenceWidth = width
}

// State returns the current lifecycle state
func (t *Tracker) State() State {
	return t.state
}

// DragState returns a copy of the live drag state
func (t *Tracker) DragState() DragState {
	return t.drag
}

// Decision returns the decision of the last committed gesture
func (t *Tracker) Decision() model.Decision {
	return t.decision
}

// InitialRotation returns the rest rotation of the card
func (t *Tracker) InitialRotation() float64 {
	return t.drag.InitialRotation
}

// Appear rotates the card into its rest pose
func (t *Tracker) Appear() {
	t.animator.RotateTo(t.drag.InitialRotation, AppearDuration, SinOut)
}

// Start begins a gesture by lifting the card
func (t *Tracker) Start() {
	if t.state != StateIdle {
		return
	}
	t.state = StateDragging
	t.animator.ScaleTo(LiftScale, LiftDuration, Linear)
}

// Move applies the cumulative pan offset from gesture start
func (t *Tracker) Move(totalX, totalY float64) {
	if t.state != StateDragging {
		return
	}
	t.drag.OffsetX = totalX
	t.drag.OffsetY = totalY

	fb := t.engine.Feedback(t.drag)
	t.animator.Translate(fb.TranslationX, fb.TranslationY)
	t.animator.Rotate(fb.Rotation)
	t.animator.Fade(fb.LikeOpacity, fb.DenyOpacity)
}

// End finishes the gesture. The card always starts springing back to rest;
// when the offset is past the dead zone the commit is scheduled after that
// so its exit translation supersedes the snap-back translation.
func (t *Tracker) End() {
	if t.state != StateDragging {
		return
	}

	x, y := t.drag.OffsetX, t.drag.OffsetY
	exit := t.engine.ShouldExit(x, t.drag.ReferenceWidth)
	t.drag.OffsetX, t.drag.OffsetY = 0, 0

	t.animator.Fade(0, 0)
	t.animator.TranslateTo(0, 0, SnapBackDuration, SpringOut, nil)
	t.animator.RotateTo(t.drag.InitialRotation, SnapBackDuration, SpringOut)
	t.animator.ScaleTo(RestScale, SnapBackDuration, Linear)

	if !exit {
		t.state = StateIdle
		return
	}

	t.decision = t.engine.ExitDirection(x)
	t.state = StateExiting
	t.schedule(func() {
		t.commit(x, y)
	})
}

// commit notifies the decision and sends the card off screen
func (t *Tracker) commit(x, y float64) {
	if t.state != StateExiting {
		return
	}

	log.Printf("Card committed: decision=%s offset=%.1f width=%.1f", t.decision, x, t.drag.ReferenceWidth)

	switch t.decision {
	case model.DecisionAccept:
		if t.onAccept != nil {
			t.onAccept()
		}
	case model.DecisionReject:
		if t.onReject != nil {
			t.onReject()
		}
	}

	target := t.engine.ExitTarget(x, t.drag.ReferenceWidth, t.decision)
	t.animator.TranslateTo(target, y, ExitDuration, CubicIn, t.remove)
}

// remove detaches the card once the exit animation settles
func (t *Tracker) remove() {
	if t.state != StateExiting {
		return
	}
	t.state = StateRemoved
	if t.host != nil && t.self != nil {
		t.host.RemoveChild(t.self)
	}
}

package swipe

import (
	"math"
	"time"

	"github.com/ytget/swiper/internal/model"
)

// Default tuning. DeadZone and DecisionThreshold are fractions of half the
// reference width. DeadZone also gates the exit decision while
// DecisionThreshold only sets where feedback saturates; they are kept
// separate even though they currently coincide.
const (
	DefaultDeadZone          = 0.4
	DefaultDecisionThreshold = 0.4
	DefaultRotationDivisor   = 25.0
)

// Animation plans
const (
	AppearDuration   = 100 * time.Millisecond
	LiftDuration     = 100 * time.Millisecond
	SnapBackDuration = 250 * time.Millisecond
	ExitDuration     = 200 * time.Millisecond

	LiftScale = 1.1
	RestScale = 1.0
)

// Thresholds configures the engine
type Thresholds struct {
	DeadZone          float64
	DecisionThreshold float64
	RotationDivisor   float64
}

// DefaultThresholds returns the stock tuning
func DefaultThresholds() Thresholds {
	return Thresholds{
		DeadZone:          DefaultDeadZone,
		DecisionThreshold: DefaultDecisionThreshold,
		RotationDivisor:   DefaultRotationDivisor,
	}
}

// DragState is the live state of the active gesture
type DragState struct {
	OffsetX         float64
	OffsetY         float64
	ReferenceWidth  float64 // <= 0 means unset
	InitialRotation float64 // degrees
}

// Engine computes feedback and exit decisions. It holds no state beyond its
// thresholds, so every method is a pure function of its arguments.
type Engine struct {
	thresholds Thresholds
}

// NewEngine creates an engine, substituting defaults for non-positive values
func NewEngine(t Thresholds) Engine {
	if t.DeadZone <= 0 {
		t.DeadZone = DefaultDeadZone
	}
	if t.DecisionThreshold <= 0 {
		t.DecisionThreshold = DefaultDecisionThreshold
	}
	if t.RotationDivisor <= 0 {
		t.RotationDivisor = DefaultRotationDivisor
	}
	return Engine{thresholds: t}
}

// Thresholds returns the engine tuning
func (e Engine) Thresholds() Thresholds {
	return e.thresholds
}

// ComputeOpacities returns the like and deny indicator opacities for a drag
// offset. Inside the dead zone, or when the reference width is unset, both are
// zero. Otherwise like is the signed distance past the dead zone divided by
// the decision zone, clamped to [-1, 1], and deny is its negation.
func (e Engine) ComputeOpacities(offsetX, referenceWidth float64) (like, deny float64) {
	if referenceWidth <= 0 {
		return 0, 0
	}

	halfWidth := referenceWidth / 2
	deadZoneEnd := e.thresholds.DeadZone * halfWidth
	if math.Abs(offsetX) < deadZoneEnd {
		return 0, 0
	}

	passedDeadZone := offsetX - deadZoneEnd
	if offsetX < 0 {
		passedDeadZone = offsetX + deadZoneEnd
	}

	decisionZoneEnd := e.thresholds.DecisionThreshold * halfWidth
	opacity := clamp(passedDeadZone/decisionZoneEnd, -1, 1)

	return opacity, -opacity
}

// ShouldExit reports whether releasing the card at offsetX commits a decision
func (e Engine) ShouldExit(offsetX, referenceWidth float64) bool {
	if referenceWidth <= 0 {
		return false
	}
	return math.Abs(offsetX) > e.thresholds.DeadZone*(referenceWidth/2)
}

// ExitDirection returns the decision for a committed offset. Zero counts as accept.
func (e Engine) ExitDirection(offsetX float64) model.Decision {
	if offsetX >= 0 {
		return model.DecisionAccept
	}
	return model.DecisionReject
}

// Rotation returns the card rotation for a drag offset
func (e Engine) Rotation(initialRotation, offsetX float64) float64 {
	return initialRotation + offsetX/e.thresholds.RotationDivisor
}

// ExitTarget returns the X translation that carries the card off screen
func (e Engine) ExitTarget(currentX, referenceWidth float64, d model.Decision) float64 {
	return currentX + referenceWidth*d.Sign()
}

// Feedback derives every visual value for the given drag state
func (e Engine) Feedback(s DragState) model.Feedback {
	like, deny := e.ComputeOpacities(s.OffsetX, s.ReferenceWidth)
	return model.Feedback{
		LikeOpacity:  like,
		DenyOpacity:  deny,
		Rotation:     e.Rotation(s.InitialRotation, s.OffsetX),
		TranslationX: s.OffsetX,
		TranslationY: s.OffsetY,
	}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

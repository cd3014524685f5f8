package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// PanListener receives a pan gesture as start, cumulative moves and end
type PanListener interface {
	Start()
	Move(totalX, totalY float64)
	End()
}

// PanRecognizer converts Fyne drag deltas into a pan gesture with offsets
// accumulated from the gesture start.
type PanRecognizer struct {
	listener PanListener
	onStart  func()

	// Touch tracking
	active bool
	totalX float32
	totalY float32
}

// NewPanRecognizer creates a new pan recognizer
func NewPanRecognizer(listener PanListener) *PanRecognizer {
	return &PanRecognizer{listener: listener}
}

// SetStartHook sets a function run just before the listener sees a new gesture
func (p *PanRecognizer) SetStartHook(fn func()) {
	p.onStart = fn
}

// Active returns true while a gesture is in progress
func (p *PanRecognizer) Active() bool {
	return p.active
}

// Dragged starts a gesture on the first event and reports the running total
func (p *PanRecognizer) Dragged(event *fyne.DragEvent) {
	if !p.active {
		p.active = true
		p.totalX, p.totalY = 0, 0
		if p.onStart != nil {
			p.onStart()
		}
		p.listener.Start()
	}

	p.totalX += event.Dragged.DX
	p.totalY += event.Dragged.DY
	p.listener.Move(float64(p.totalX), float64(p.totalY))
}

// DragEnd completes the gesture
func (p *PanRecognizer) DragEnd() {
	if !p.active {
		return
	}
	p.active = false
	p.listener.End()
}

// TouchCancel ends an active gesture when the platform cancels the touch
func (p *PanRecognizer) TouchCancel(*mobile.TouchEvent) {
	p.DragEnd()
}

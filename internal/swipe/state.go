package swipe

// State is the gesture lifecycle of a single card
type State int

const (
	// StateIdle is the rest state, both initial and after a snap-back
	StateIdle State = iota

	// StateDragging means a pan gesture is in progress
	StateDragging

	// StateExiting means a decision was committed and the card is leaving
	StateExiting

	// StateRemoved means the card was detached from its host
	StateRemoved
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	case StateExiting:
		return "Exiting"
	case StateRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true once the card no longer accepts gestures
func (s State) IsTerminal() bool {
	return s == StateExiting || s == StateRemoved
}

package model

// Decision represents the outcome of a single swipe gesture
type Decision int

const (
	// DecisionNone means the gesture ended inside the dead zone
	DecisionNone Decision = iota

	// DecisionAccept means the card was swiped to the right (like)
	DecisionAccept

	// DecisionReject means the card was swiped to the left (deny)
	DecisionReject
)

// String returns the string representation of Decision
func (d Decision) String() string {
	switch d {
	case DecisionNone:
		return "None"
	case DecisionAccept:
		return "Accept"
	case DecisionReject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// IsCommitted returns true if the decision removes the card
func (d Decision) IsCommitted() bool {
	return d == DecisionAccept || d == DecisionReject
}

// Sign returns +1 for accept, -1 for reject and 0 otherwise.
// It is the horizontal direction the card leaves the screen in.
func (d Decision) Sign() float64 {
	switch d {
	case DecisionAccept:
		return 1
	case DecisionReject:
		return -1
	default:
		return 0
	}
}

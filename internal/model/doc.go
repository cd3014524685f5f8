package model

// Package model defines domain data structures shared by the swipe core and
// the UI: the displayed card content, the decision enum, and the derived
// feedback values applied to the card on every drag update.

// Package swipe implements the swipe card core: a pure feedback and decision
// engine that maps a horizontal drag offset to indicator opacities and an
// exit decision, and a gesture tracker that drives a card's animations from
// pan start, move and end events.
package swipe

package platform

// Package platform contains the collaborators around the swipe core: the
// picture source that supplies card content, the random source for initial
// card tilt, and image loading through Fyne storage URIs.

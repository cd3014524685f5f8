package ui

// Package ui contains the Fyne-based user interface: the swipe card widget
// with its pan recognizer and animator, the host window that deals cards and
// counts decisions, and the settings dialog. All UI strings are localized via
// Localization.

package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLike     = "♥"
	IconDeny     = "✕"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	CounterFormat      = "%s %d" + MiddleDotSeparator + "%s %d"
)

// Card layout sizing
const (
	CardMargin        float32 = 24
	CardMinWidth      float32 = 240
	CardMinHeight     float32 = 320
	IndicatorPadding  float32 = 16
	IndicatorInset    float32 = 8
	IndicatorTextSize float32 = 28
	IndicatorStroke   float32 = 3

	DescriptionPadding float32 = 8

	// Mobile-specific sizing
	MobileCardMargin float32 = 12
)

// Card face colours
var (
	// Placeholder face shown until the picture arrives
	PlaceholderColor = color.NRGBA{R: 200, G: 200, B: 205, A: 255}

	DescriptionBandColor = color.NRGBA{A: 110}
	DescriptionTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Toast notification behavior
const (
	ToastAutoHide = 2 * time.Second
)

// Image loading
const (
	ImageLoadTimeout = 30 * time.Second
)

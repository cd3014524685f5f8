package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SwiperTheme defines the application theme. Success and error colours are
// used for the like and deny indicators.
type SwiperTheme struct{}

// NewSwiperTheme creates a new theme
func NewSwiperTheme() fyne.Theme {
	return &SwiperTheme{}
}

// Color returns theme colors
func (t *SwiperTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 46, G: 160, B: 67, A: 255} // Green for like
	case theme.ColorNameError:
		return color.NRGBA{R: 211, G: 47, B: 47, A: 255} // Red for deny
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *SwiperTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SwiperTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *SwiperTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameInputRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}

// withOpacity returns c with its alpha scaled by opacity in [0, 1]
func withOpacity(c color.Color, opacity float64) color.Color {
	if opacity <= 0 {
		return color.Transparent
	}
	if opacity > 1 {
		opacity = 1
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(float64(nrgba.A) * opacity)
	return nrgba
}

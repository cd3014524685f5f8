package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/swiper/internal/swipe"
)

// Settings keys for Fyne preferences
const (
	KeyDeadZone          = "swipe_dead_zone"
	KeyDecisionThreshold = "swipe_decision_threshold"
	KeyRotationDivisor   = "swipe_rotation_divisor"
	KeyRotationSeed      = "swipe_rotation_seed"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultDeadZone          = swipe.DefaultDeadZone
	DefaultDecisionThreshold = swipe.DefaultDecisionThreshold
	DefaultRotationDivisor   = swipe.DefaultRotationDivisor
	DefaultLanguage          = "system"
)

// Bounds for the tunable fractions and the rotation divisor
const (
	MinThreshold       = 0.05
	MaxThreshold       = 1.0
	MinRotationDivisor = 1.0
	MaxRotationDivisor = 200.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDeadZone returns the dead zone fraction of half the reference width
func (s *Settings) GetDeadZone() float64 {
	value := s.app.Preferences().Float(KeyDeadZone)
	if value <= 0 {
		s.SetDeadZone(DefaultDeadZone)
		return DefaultDeadZone
	}
	return value
}

// SetDeadZone sets the dead zone fraction
func (s *Settings) SetDeadZone(value float64) {
	s.app.Preferences().SetFloat(KeyDeadZone, clampFloat(value, MinThreshold, MaxThreshold))
}

// GetDecisionThreshold returns the fraction of half the reference width past
// the dead zone at which indicator feedback saturates
func (s *Settings) GetDecisionThreshold() float64 {
	value := s.app.Preferences().Float(KeyDecisionThreshold)
	if value <= 0 {
		s.SetDecisionThreshold(DefaultDecisionThreshold)
		return DefaultDecisionThreshold
	}
	return value
}

// SetDecisionThreshold sets the decision threshold fraction
func (s *Settings) SetDecisionThreshold(value float64) {
	s.app.Preferences().SetFloat(KeyDecisionThreshold, clampFloat(value, MinThreshold, MaxThreshold))
}

// GetRotationDivisor returns how many pixels of drag add one degree of tilt
func (s *Settings) GetRotationDivisor() float64 {
	value := s.app.Preferences().Float(KeyRotationDivisor)
	if value <= 0 {
		s.SetRotationDivisor(DefaultRotationDivisor)
		return DefaultRotationDivisor
	}
	return value
}

// SetRotationDivisor sets the rotation divisor
func (s *Settings) SetRotationDivisor(value float64) {
	s.app.Preferences().SetFloat(KeyRotationDivisor, clampFloat(value, MinRotationDivisor, MaxRotationDivisor))
}

// GetRotationSeed returns the seed for initial card rotations, 0 meaning random
func (s *Settings) GetRotationSeed() int {
	return s.app.Preferences().Int(KeyRotationSeed)
}

// SetRotationSeed sets the rotation seed
func (s *Settings) SetRotationSeed(seed int) {
	s.app.Preferences().SetInt(KeyRotationSeed, seed)
}

// Thresholds returns the engine tuning built from the stored settings
func (s *Settings) Thresholds() swipe.Thresholds {
	return swipe.Thresholds{
		DeadZone:          s.GetDeadZone(),
		DecisionThreshold: s.GetDecisionThreshold(),
		RotationDivisor:   s.GetRotationDivisor(),
	}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampFloat(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

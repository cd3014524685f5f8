package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/swiper/internal/swipe"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDeadZone(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetDeadZone(); got != DefaultDeadZone {
		t.Errorf("Expected default dead zone %v, got %v", DefaultDeadZone, got)
	}

	// Test setting custom value
	settings.SetDeadZone(0.25)
	if got := settings.GetDeadZone(); got != 0.25 {
		t.Errorf("Expected dead zone 0.25, got %v", got)
	}

	// Test boundary values
	settings.SetDeadZone(0)
	if settings.GetDeadZone() != MinThreshold {
		t.Errorf("Dead zone should be clamped to minimum %v", MinThreshold)
	}

	settings.SetDeadZone(3)
	if settings.GetDeadZone() != MaxThreshold {
		t.Errorf("Dead zone should be clamped to maximum %v", MaxThreshold)
	}
}

func TestDecisionThreshold(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetDecisionThreshold(); got != DefaultDecisionThreshold {
		t.Errorf("Expected default decision threshold %v, got %v", DefaultDecisionThreshold, got)
	}

	settings.SetDecisionThreshold(0.6)
	if got := settings.GetDecisionThreshold(); got != 0.6 {
		t.Errorf("Expected decision threshold 0.6, got %v", got)
	}

	// Dead zone is stored independently
	if got := settings.GetDeadZone(); got != DefaultDeadZone {
		t.Errorf("Dead zone changed with decision threshold: %v", got)
	}
}

func TestRotationDivisor(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetRotationDivisor(); got != DefaultRotationDivisor {
		t.Errorf("Expected default rotation divisor %v, got %v", DefaultRotationDivisor, got)
	}

	settings.SetRotationDivisor(0.5)
	if settings.GetRotationDivisor() != MinRotationDivisor {
		t.Errorf("Rotation divisor should be clamped to minimum %v", MinRotationDivisor)
	}

	settings.SetRotationDivisor(1000)
	if settings.GetRotationDivisor() != MaxRotationDivisor {
		t.Errorf("Rotation divisor should be clamped to maximum %v", MaxRotationDivisor)
	}
}

func TestRotationSeed(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetRotationSeed(); got != 0 {
		t.Errorf("Expected default seed 0, got %d", got)
	}

	settings.SetRotationSeed(42)
	if got := settings.GetRotationSeed(); got != 42 {
		t.Errorf("Expected seed 42, got %d", got)
	}
}

func TestThresholds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetDeadZone(0.3)
	settings.SetDecisionThreshold(0.5)

	expected := swipe.Thresholds{DeadZone: 0.3, DecisionThreshold: 0.5, RotationDivisor: DefaultRotationDivisor}
	if got := settings.Thresholds(); got != expected {
		t.Errorf("Expected thresholds %+v, got %+v", expected, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

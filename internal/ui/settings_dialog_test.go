package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swiper/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))
	settings := config.NewSettings(app)

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved = true })
	sd.loadCurrentSettings()

	if sd.deadZoneEntry.Text != "0.4" {
		t.Errorf("Expected dead zone entry 0.4, got %s", sd.deadZoneEntry.Text)
	}

	sd.deadZoneEntry.SetText("0.25")
	sd.thresholdEntry.SetText("0.6")
	sd.divisorEntry.SetText("30")
	sd.seedEntry.SetText("7")
	sd.languageSelect.SetSelected("ru")
	sd.onSave(true)

	if !saved {
		t.Error("Expected save callback")
	}
	if got := settings.GetDeadZone(); got != 0.25 {
		t.Errorf("Expected dead zone 0.25, got %v", got)
	}
	if got := settings.GetDecisionThreshold(); got != 0.6 {
		t.Errorf("Expected decision threshold 0.6, got %v", got)
	}
	if got := settings.GetRotationDivisor(); got != 30 {
		t.Errorf("Expected rotation divisor 30, got %v", got)
	}
	if got := settings.GetRotationSeed(); got != 7 {
		t.Errorf("Expected rotation seed 7, got %d", got)
	}
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
}

func TestSettingsDialog_InvalidInputKeepsValue(t *testing.T) {
	app := test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))
	settings := config.NewSettings(app)

	sd := NewSettingsDialog(settings, NewLocalization(), w, nil)
	sd.loadCurrentSettings()

	sd.deadZoneEntry.SetText("abc")
	sd.thresholdEntry.SetText("1.5")
	sd.onSave(true)

	if got := settings.GetDeadZone(); got != config.DefaultDeadZone {
		t.Errorf("Invalid dead zone should keep default, got %v", got)
	}
	if got := settings.GetDecisionThreshold(); got != config.DefaultDecisionThreshold {
		t.Errorf("Out of range threshold should keep default, got %v", got)
	}
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"0.4", true},
		{" 1 ", true},
		{"0", false},
		{"1.01", false},
		{"x", false},
	}

	for _, tt := range tests {
		_, err := parseFraction(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("parseFraction(%q) error = %v, expected ok=%v", tt.input, err, tt.ok)
		}
	}
}

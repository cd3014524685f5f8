package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swiper/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	deadZoneEntry  *widget.Entry
	thresholdEntry *widget.Entry
	divisorEntry   *widget.Entry
	seedEntry      *widget.Entry
	languageSelect *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.deadZoneEntry = newNumberEntry("0.05-1", parseFraction)
	sd.thresholdEntry = newNumberEntry("0.05-1", parseFraction)
	sd.divisorEntry = newNumberEntry("1-200", parseFloat)
	sd.seedEntry = newNumberEntry("0", parseInt)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeySwipeSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyDeadZone)+":"),
		sd.deadZoneEntry,

		widget.NewLabel(text(KeyDecisionThreshold)+":"),
		sd.thresholdEntry,

		widget.NewLabel(text(KeyRotationDivisor)+":"),
		sd.divisorEntry,

		widget.NewLabel(text(KeyRotationSeed)+":"),
		sd.seedEntry,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(IconLanguage+" "+text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.deadZoneEntry.SetText(formatFloat(sd.settings.GetDeadZone()))
	sd.thresholdEntry.SetText(formatFloat(sd.settings.GetDecisionThreshold()))
	sd.divisorEntry.SetText(formatFloat(sd.settings.GetRotationDivisor()))
	sd.seedEntry.SetText(strconv.Itoa(sd.settings.GetRotationSeed()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings. Fields that fail to parse keep their
// stored value.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if v, err := parseFraction(sd.deadZoneEntry.Text); err == nil {
		sd.settings.SetDeadZone(v)
	}
	if v, err := parseFraction(sd.thresholdEntry.Text); err == nil {
		sd.settings.SetDecisionThreshold(v)
	}
	if v, err := parseFloat(sd.divisorEntry.Text); err == nil {
		sd.settings.SetRotationDivisor(v)
	}
	if v, err := parseInt(sd.seedEntry.Text); err == nil {
		sd.settings.SetRotationSeed(int(v))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func newNumberEntry(placeholder string, parse func(string) (float64, error)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.Validator = func(s string) error {
		_, err := parse(s)
		return err
	}
	return entry
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseFraction accepts a float in (0, 1]
func parseFraction(s string) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 || v > 1 {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func parseInt(s string) (float64, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return float64(v), err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

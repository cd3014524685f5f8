package ui

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swiper/internal/config"
	"github.com/ytget/swiper/internal/model"
	"github.com/ytget/swiper/internal/platform"
	"github.com/ytget/swiper/internal/swipe"
)

// ContentSource supplies content for new cards
type ContentSource interface {
	Next() model.Card
}

// ImageLoader fetches the picture for a card
type ImageLoader func(ctx context.Context, uri string) (image.Image, error)

// SourceFactory builds the content and rotation sources for a rotation seed.
// A zero seed means unseeded.
type SourceFactory func(seed int64) (ContentSource, platform.RotationSource)

// RootUI is the main window. It hosts one card at a time, counts decisions
// and deals the next card once the previous one has left.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	newSources SourceFactory
	seed       int64
	pictures   ContentSource
	rotations  platform.RotationSource
	loadImage  ImageLoader

	deck    *fyne.Container
	current *SwiperCard

	likes   int
	denies  int
	counter *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationTimer     *time.Timer
	notificationMutex     sync.Mutex
}

var _ swipe.Host = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI. newSources is called again
// whenever the saved rotation seed changes.
func NewRootUI(window fyne.Window, app fyne.App, newSources SourceFactory) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		newSources:   newSources,
		loadImage:    platform.LoadImage,
	}
	ui.resetSources()

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.dealCard()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.counter = widget.NewLabel("")
	ui.counter.Alignment = fyne.TextAlignCenter
	ui.refreshCounter()

	topPanel := container.NewBorder(nil, nil, settingsBtn, nil, ui.counter)

	// Notification panel under the counters (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignCenter
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.deck = container.NewStack()

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.notificationContainer), // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		ui.deck, // center
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// resetSources rebuilds the content and rotation sources from the stored seed
func (ui *RootUI) resetSources() {
	ui.seed = int64(ui.settings.GetRotationSeed())
	ui.pictures, ui.rotations = ui.newSources(ui.seed)
	log.Printf("Card sources reset, rotation seed=%d", ui.seed)
}

// dealCard builds a card from the content source and starts loading its picture
func (ui *RootUI) dealCard() {
	content := ui.pictures.Next()
	rotation := ui.rotations.NextRotation()

	loading := binding.NewBool()
	_ = loading.Set(content.IsLoading)

	card := NewSwiperCard(content, rotation, swipe.NewEngine(ui.settings.Thresholds()), loading, ui.localization)
	card.SetHost(ui)
	card.OnAccept = func() { ui.onDecision(model.DecisionAccept) }
	card.OnReject = func() { ui.onDecision(model.DecisionReject) }

	ui.current = card
	ui.deck.Add(card)
	card.Appear()

	log.Printf("Dealt card %s rotation=%.0f", content.ID, rotation)

	if content.IsLoading {
		go ui.fetchImage(card, loading)
	}
}

// fetchImage loads the card picture off the UI goroutine
func (ui *RootUI) fetchImage(card *SwiperCard, loading binding.Bool) {
	ctx, cancel := context.WithTimeout(context.Background(), ImageLoadTimeout)
	defer cancel()

	img, err := ui.loadImage(ctx, card.Content().ImageURI)
	fyne.Do(func() {
		if err != nil {
			log.Printf("Image load failed for card %s: %v", card.Content().ID, err)
			ui.showNotification(ui.localization.GetText(KeyImageFailed))
		} else {
			card.SetImage(img)
		}
		_ = loading.Set(false)
	})
}

// RemoveChild detaches a card after its exit animation and deals the next one
func (ui *RootUI) RemoveChild(child fyne.CanvasObject) {
	ui.deck.Remove(child)
	if ui.current == child {
		ui.current = nil
	}
	if len(ui.deck.Objects) == 0 {
		ui.dealCard()
	}
}

// onDecision counts a committed swipe and notifies the user
func (ui *RootUI) onDecision(d model.Decision) {
	if !d.IsCommitted() {
		return
	}

	var message string
	if d == model.DecisionAccept {
		ui.likes++
		message = IconLike + " " + ui.localization.GetText(KeyLiked)
	} else {
		ui.denies++
		message = IconDeny + " " + ui.localization.GetText(KeyDenied)
	}
	ui.refreshCounter()
	ui.showNotification(message)
}

func (ui *RootUI) refreshCounter() {
	ui.counter.SetText(fmt.Sprintf(CounterFormat,
		IconLike, ui.likes, IconDeny, ui.denies))
}

// showNotification displays a message under the counters and hides it later.
// Must be called on the UI goroutine.
func (ui *RootUI) showNotification(message string) {
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	ui.notificationMutex.Lock()
	defer ui.notificationMutex.Unlock()
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(ui.notificationContainer.Hide)
	})
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved picks up a changed rotation seed for the next card
func (ui *RootUI) onSettingsSaved() {
	if int64(ui.settings.GetRotationSeed()) != ui.seed {
		ui.resetSources()
	}
	ui.showNotification(ui.localization.GetText(KeySettingsSaved))
}

package ui

import (
	"image"
	"image/color"
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swiper/internal/model"
	"github.com/ytget/swiper/internal/swipe"
)

// SwiperCard is a picture card the user drags left to deny or right to like.
// OnAccept and OnReject fire once when a swipe is committed, before the card
// slides off screen.
type SwiperCard struct {
	widget.BaseWidget

	OnAccept func()
	OnReject func()

	content      model.Card
	localization *Localization
	loading      binding.Bool

	tracker  *swipe.Tracker
	pan      *PanRecognizer
	animator *cardAnimator

	face        image.Image
	faceVersion int
	margin      float32

	// Visual state, written by the animator
	translationX float64
	translationY float64
	rotation     float64
	scale        float64
	likeOpacity  float64
	denyOpacity  float64
}

var (
	_ fyne.Draggable   = (*SwiperCard)(nil)
	_ mobile.Touchable = (*SwiperCard)(nil)
	_ swipe.Animator   = (*cardAnimator)(nil)
)

// NewSwiperCard creates a card resting at initialRotation degrees. loading is
// owned by whoever fetches the picture; the card only mirrors it.
func NewSwiperCard(content model.Card, initialRotation float64, engine swipe.Engine, loading binding.Bool, localization *Localization) *SwiperCard {
	c := &SwiperCard{
		content:      content,
		localization: localization,
		loading:      loading,
		face:         placeholderFace(),
		margin:       CardMargin,
		scale:        swipe.RestScale,
	}
	if fyne.CurrentDevice().IsMobile() {
		c.margin = MobileCardMargin
	}

	c.animator = newCardAnimator(c)
	c.tracker = swipe.NewTracker(engine, initialRotation, c.animator)
	c.tracker.SetCallbacks(c.accepted, c.rejected)
	c.pan = NewPanRecognizer(c.tracker)
	c.pan.SetStartHook(c.updateReferenceWidth)

	c.ExtendBaseWidget(c)
	return c
}

// Content returns the card content
func (c *SwiperCard) Content() model.Card {
	return c.content
}

// Tracker returns the gesture tracker driving this card
func (c *SwiperCard) Tracker() *swipe.Tracker {
	return c.tracker
}

// SetHost sets the container the card removes itself from after a swipe
func (c *SwiperCard) SetHost(host swipe.Host) {
	c.tracker.SetHost(host, c)
}

// SetReferenceWidth overrides the width thresholds scale with
func (c *SwiperCard) SetReferenceWidth(width float32) {
	c.tracker.SetReferenceWidth(float64(width))
}

// SetImage replaces the placeholder face with the loaded picture
func (c *SwiperCard) SetImage(img image.Image) {
	if img == nil {
		return
	}
	c.face = img
	c.faceVersion++
	c.Refresh()
}

// Appear rotates the card into its rest pose
func (c *SwiperCard) Appear() {
	c.tracker.Appear()
}

// Resize sizes the card and re-reads the reference width from its canvas
func (c *SwiperCard) Resize(size fyne.Size) {
	c.BaseWidget.Resize(size)
	c.updateReferenceWidth()
}

// updateReferenceWidth reads the width of the canvas hosting the card.
// Without a canvas the current width is kept.
func (c *SwiperCard) updateReferenceWidth() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	cv := app.Driver().CanvasForObject(c)
	if cv == nil {
		return
	}
	if width := cv.Size().Width; width > 0 {
		c.tracker.SetReferenceWidth(float64(width))
	}
}

// Dragged handles pointer and touch drags
func (c *SwiperCard) Dragged(event *fyne.DragEvent) {
	c.pan.Dragged(event)
}

// DragEnd handles the end of a drag
func (c *SwiperCard) DragEnd() {
	c.pan.DragEnd()
}

// TouchDown handles touch down events
func (c *SwiperCard) TouchDown(*mobile.TouchEvent) {}

// TouchUp handles touch up events
func (c *SwiperCard) TouchUp(*mobile.TouchEvent) {}

// TouchCancel ends an active pan
func (c *SwiperCard) TouchCancel(event *mobile.TouchEvent) {
	c.pan.TouchCancel(event)
}

func (c *SwiperCard) accepted() {
	log.Printf("Card %s accepted", c.content.ID)
	if c.OnAccept != nil {
		c.OnAccept()
	}
}

func (c *SwiperCard) rejected() {
	log.Printf("Card %s rejected", c.content.ID)
	if c.OnReject != nil {
		c.OnReject()
	}
}

func (c *SwiperCard) setTranslation(x, y float64) {
	c.translationX, c.translationY = x, y
	c.Refresh()
}

func (c *SwiperCard) setRotation(degrees float64) {
	c.rotation = degrees
	c.Refresh()
}

func (c *SwiperCard) setScale(scale float64) {
	c.scale = scale
	c.Refresh()
}

// setIndicators stores the opacities clamped for display; negative means hidden
func (c *SwiperCard) setIndicators(like, deny float64) {
	c.likeOpacity, c.denyOpacity = model.Feedback{LikeOpacity: like, DenyOpacity: deny}.Visible()
	c.Refresh()
}

// cardRect returns the unscaled card size and centre inside the widget
func (c *SwiperCard) cardRect(size fyne.Size) (fyne.Size, fyne.Position) {
	card := fyne.NewSize(
		fyne.Max(size.Width-2*c.margin, 0),
		fyne.Max(size.Height-2*c.margin, 0),
	)
	center := fyne.NewPos(
		size.Width/2+float32(c.translationX),
		size.Height/2+float32(c.translationY),
	)
	return card, center
}

// CreateRenderer implements fyne.Widget
func (c *SwiperCard) CreateRenderer() fyne.WidgetRenderer {
	r := &swiperCardRenderer{
		card:     c,
		painter:  newSurfacePainter(),
		likeText: c.localization.GetText(KeyLike),
		denyText: c.localization.GetText(KeyDeny),
		loading:  widget.NewLabel(c.localization.GetText(KeyLoading)),
	}
	r.loading.Alignment = fyne.TextAlignCenter
	r.photo = canvas.NewRaster(r.generate)
	r.refreshColors()

	if c.loading != nil {
		r.loadingListener = binding.NewDataListener(r.syncLoading)
		c.loading.AddListener(r.loadingListener)
	} else {
		r.loading.Hide()
	}

	r.objects = []fyne.CanvasObject{r.photo, r.loading}
	return r
}

type swiperCardRenderer struct {
	card *SwiperCard

	photo   *canvas.Raster
	loading *widget.Label
	painter *surfacePainter

	likeText, denyText   string
	likeColor, denyColor color.Color

	loadingListener binding.DataListener
	objects         []fyne.CanvasObject
}

// generate paints the posed card at raster resolution. Stamps and the
// description are part of the surface, so they follow the tilt and lift.
func (r *swiperCardRenderer) generate(w, h int) image.Image {
	size := r.card.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	ratio := float64(w) / float64(size.Width)
	card, center := r.card.cardRect(size)

	surfaceWidth := int(math.Round(float64(card.Width) * ratio))
	surfaceHeight := int(math.Round(float64(card.Height) * ratio))
	if surfaceWidth <= 0 || surfaceHeight <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	surface := r.painter.paint(surfaceWidth, surfaceHeight, r.surface(), ratio)
	return renderCard(w, h, surface, cardPose{
		Width:    float64(card.Width) * ratio,
		Height:   float64(card.Height) * ratio,
		CenterX:  float64(center.X) * ratio,
		CenterY:  float64(center.Y) * ratio,
		Scale:    r.card.scale,
		Rotation: r.card.rotation,
	})
}

func (r *swiperCardRenderer) surface() cardSurface {
	return cardSurface{
		Face:        r.card.face,
		FaceVersion: r.card.faceVersion,
		Like:        stamp{Text: r.likeText, Color: r.likeColor, Opacity: r.card.likeOpacity},
		Deny:        stamp{Text: r.denyText, Color: r.denyColor, Opacity: r.card.denyOpacity},
		Description: r.card.content.DisplayDescription(),
	}
}

// refreshColors re-reads the stamp colours so theme changes restyle them
func (r *swiperCardRenderer) refreshColors() {
	r.likeColor = theme.Color(theme.ColorNameSuccess)
	r.denyColor = theme.Color(theme.ColorNameError)
}

func (r *swiperCardRenderer) syncLoading() {
	loading, err := r.card.loading.Get()
	if err != nil || !loading {
		r.loading.Hide()
		return
	}
	r.loading.Show()
}

// Layout implements fyne.WidgetRenderer
func (r *swiperCardRenderer) Layout(size fyne.Size) {
	r.photo.Resize(size)
	r.photo.Move(fyne.NewPos(0, 0))

	// the card centre is the rotation pivot, so the label stays on the face
	_, center := r.card.cardRect(size)
	loadSize := r.loading.MinSize()
	r.loading.Resize(loadSize)
	r.loading.Move(fyne.NewPos(center.X-loadSize.Width/2, center.Y-loadSize.Height/2))
}

// MinSize implements fyne.WidgetRenderer
func (r *swiperCardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CardMinWidth, CardMinHeight)
}

// Refresh implements fyne.WidgetRenderer
func (r *swiperCardRenderer) Refresh() {
	r.refreshColors()
	r.Layout(r.card.Size())
	r.photo.Refresh()
}

// Objects implements fyne.WidgetRenderer
func (r *swiperCardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy implements fyne.WidgetRenderer
func (r *swiperCardRenderer) Destroy() {
	if r.loadingListener != nil {
		r.card.loading.RemoveListener(r.loadingListener)
	}
}

package ui

import (
	"image"
	"image/color"
	"log"
	"math"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// stamp is a framed caption painted on the card as a decision nears
type stamp struct {
	Text    string
	Color   color.Color
	Opacity float64
}

// cardSurface is everything painted on the card before it is posed, so the
// picture, stamps and description tilt and scale together
type cardSurface struct {
	Face        image.Image
	FaceVersion int
	Like        stamp
	Deny        stamp
	Description string
}

type surfaceKey struct {
	width, height int
	ratio         float64
	faceVersion   int
	like, deny    float64
	likeColor     color.NRGBA
	denyColor     color.NRGBA
	description   string
}

type fontKey struct {
	bold bool
	size int
}

// surfacePainter composes card surfaces and keeps the last one while
// nothing on it changes. Not safe for concurrent use.
type surfacePainter struct {
	faces map[fontKey]font.Face

	last    *image.NRGBA
	lastKey surfaceKey
}

func newSurfacePainter() *surfacePainter {
	return &surfacePainter{faces: make(map[fontKey]font.Face)}
}

// paint returns the card surface at width×height raster pixels. ratio is
// raster pixels per Fyne unit.
func (p *surfacePainter) paint(width, height int, s cardSurface, ratio float64) *image.NRGBA {
	key := surfaceKey{
		width:       width,
		height:      height,
		ratio:       ratio,
		faceVersion: s.FaceVersion,
		like:        s.Like.Opacity,
		deny:        s.Deny.Opacity,
		likeColor:   toNRGBA(s.Like.Color),
		denyColor:   toNRGBA(s.Deny.Color),
		description: s.Description,
	}
	if p.last != nil && key == p.lastKey {
		return p.last
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if s.Face != nil && !s.Face.Bounds().Empty() {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), s.Face, s.Face.Bounds(), draw.Src, nil)
	}

	if s.Description != "" {
		p.paintDescription(dst, s.Description, ratio)
	}

	margin := int(IndicatorPadding * ratio)
	p.paintStamp(dst, s.Like, margin, false, ratio)
	p.paintStamp(dst, s.Deny, margin, true, ratio)

	p.last, p.lastKey = dst, key
	return dst
}

// paintStamp frames the stamp caption in the top corner, right-aligned for deny
func (p *surfacePainter) paintStamp(dst *image.NRGBA, st stamp, margin int, alignRight bool, ratio float64) {
	if st.Opacity <= 0 || st.Text == "" || st.Color == nil {
		return
	}
	col := withOpacity(st.Color, st.Opacity)
	face := p.face(true, float64(IndicatorTextSize)*ratio)
	metrics := face.Metrics()
	inset := int(IndicatorInset * ratio)

	textWidth := font.MeasureString(face, st.Text).Ceil()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()
	box := image.Rect(0, 0, textWidth+2*inset, textHeight+2*inset)

	x := margin
	if alignRight {
		x = dst.Bounds().Dx() - margin - box.Dx()
	}
	box = box.Add(image.Pt(x, margin))

	strokeRect(dst, box, max(1, int(math.Round(float64(IndicatorStroke)*ratio))), col)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(box.Min.X+inset, box.Min.Y+inset+metrics.Ascent.Ceil()),
	}
	d.DrawString(st.Text)
}

// paintDescription writes the description on a band along the bottom edge
func (p *surfacePainter) paintDescription(dst *image.NRGBA, text string, ratio float64) {
	face := p.face(false, float64(theme.Size(theme.SizeNameText))*ratio)
	metrics := face.Metrics()
	inset := int(DescriptionPadding * ratio)
	bounds := dst.Bounds()

	bandHeight := (metrics.Ascent + metrics.Descent).Ceil() + 2*inset
	band := image.Rect(bounds.Min.X, bounds.Max.Y-bandHeight, bounds.Max.X, bounds.Max.Y)
	draw.Draw(dst, band, image.NewUniform(DescriptionBandColor), image.Point{}, draw.Over)

	text = ellipsize(face, text, bounds.Dx()-2*inset)
	if text == "" {
		return
	}
	width := font.MeasureString(face, text).Ceil()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(DescriptionTextColor),
		Face: face,
		Dot:  fixed.P(bounds.Min.X+(bounds.Dx()-width)/2, band.Min.Y+inset+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)
}

// face returns a cached font face of the current theme at size pixels
func (p *surfacePainter) face(bold bool, size float64) font.Face {
	key := fontKey{bold: bold, size: max(1, int(math.Round(size)))}
	if f, ok := p.faces[key]; ok {
		return f
	}
	f := loadFace(bold, float64(key.size))
	p.faces[key] = f
	return f
}

func loadFace(bold bool, size float64) font.Face {
	res := theme.Current().Font(fyne.TextStyle{Bold: bold})
	if res == nil {
		return basicfont.Face7x13
	}

	parsed, err := opentype.Parse(res.Content())
	if err != nil {
		log.Printf("Failed to parse font %s, using fallback: %v", res.Name(), err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Failed to create font face %s, using fallback: %v", res.Name(), err)
		return basicfont.Face7x13
	}
	return face
}

// ellipsize shortens text with a trailing ellipsis until it fits width pixels
func ellipsize(face font.Face, text string, width int) string {
	if font.MeasureString(face, text).Ceil() <= width {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		short := strings.TrimSpace(string(runes[:n])) + "…"
		if font.MeasureString(face, short).Ceil() <= width {
			return short
		}
	}
	return ""
}

func strokeRect(dst draw.Image, r image.Rectangle, width int, c color.Color) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width),
		image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width),
	}
	for _, edge := range edges {
		draw.Draw(dst, edge, src, image.Point{}, draw.Over)
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

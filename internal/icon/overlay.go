package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/launchericon/internal/fonts"
	"github.com/gogpu/launchericon/internal/logging"
)

// Icon text.
const (
	PrimaryText   = "DND"
	SecondaryText = "SCHEDULER"
)

// TextColor is the fill of both text lines.
var TextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// FontSizes returns the point sizes of the two lines for a canvas side.
func FontSizes(size int) (primary, secondary float64) {
	return float64(size / 4), float64(size / 12)
}

// InkBounds returns the tight box around the glyphs of s, relative to
// the baseline origin with y growing down. Glyphs without outlines, such
// as spaces, do not contribute.
func InkBounds(face text.Face, s string) text.Rect {
	var r text.Rect
	first := true
	for g := range face.Glyphs(s) {
		b := g.Bounds
		if b.Empty() {
			continue
		}
		minX, maxX := g.X+b.MinX, g.X+b.MaxX
		if first {
			r = text.Rect{MinX: minX, MinY: b.MinY, MaxX: maxX, MaxY: b.MaxY}
			first = false
			continue
		}
		r.MinX = math.Min(r.MinX, minX)
		r.MinY = math.Min(r.MinY, b.MinY)
		r.MaxX = math.Max(r.MaxX, maxX)
		r.MaxY = math.Max(r.MaxY, b.MaxY)
	}
	return r
}

// Line is one positioned text line. At is the top-left corner of the
// ink box on the canvas.
type Line struct {
	Text string
	Face text.Face
	Ink  text.Rect
	At   image.Point
}

// Size returns the ink box dimensions rounded up to whole pixels.
func (l Line) Size() image.Point {
	return image.Pt(int(math.Ceil(l.Ink.Width())), int(math.Ceil(l.Ink.Height())))
}

// Baseline returns the origin text.Draw needs for the ink box to start at At.
func (l Line) Baseline() (x, y float64) {
	return float64(l.At.X) - l.Ink.MinX, float64(l.At.Y) - l.Ink.MinY
}

// Layout positions the two lines on a w×h canvas. Both are centered
// horizontally. The primary line ends h/20 above the vertical middle and
// the secondary line starts h/30 below the primary one.
//
// Vertical positions refer to the top of each line's ink box, not to a
// draw origin at the font ascent, so glyphs start exactly at At.Y.
func Layout(w, h int, set *fonts.Set) (primary, secondary Line) {
	primary = Line{Text: PrimaryText, Face: set.Primary}
	primary.Ink = InkBounds(primary.Face, primary.Text)
	ps := primary.Size()
	primary.At = image.Pt((w-ps.X)/2, h/2-ps.Y-h/20)

	secondary = Line{Text: SecondaryText, Face: set.Secondary}
	secondary.Ink = InkBounds(secondary.Face, secondary.Text)
	ss := secondary.Size()
	secondary.At = image.Pt((w-ss.X)/2, primary.At.Y+ps.Y+h/30)

	return primary, secondary
}

// Overlay draws both text lines onto img and returns it.
func Overlay(img *image.RGBA, set *fonts.Set) *image.RGBA {
	b := img.Bounds()
	primary, secondary := Layout(b.Dx(), b.Dy(), set)
	for _, l := range []Line{primary, secondary} {
		x, y := l.Baseline()
		text.Draw(img, l.Text, l.Face, float64(b.Min.X)+x, float64(b.Min.Y)+y, TextColor)
		logging.Logger().Debug("text drawn", "text", l.Text, "x", l.At.X, "y", l.At.Y, "size", l.Face.Size())
	}
	return img
}

// Compose builds the complete icon: gradient plus text.
func Compose(size int, p Palette, set *fonts.Set) *image.RGBA {
	return Overlay(Gradient(size, p), set)
}

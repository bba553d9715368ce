package icon

import (
	"image"
	"image/color"
	"math"
)

// Palette holds the gradient endpoints. Top is the color of row 0,
// Bottom the color the gradient approaches at the last row.
type Palette struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// DefaultPalette runs from #9333EA down to #7C3AED.
var DefaultPalette = Palette{
	Top:    color.RGBA{R: 147, G: 51, B: 234, A: 255},
	Bottom: color.RGBA{R: 124, G: 58, B: 237, A: 255},
}

// ColorAt returns the opaque color at offset t in [0, 1].
// Each channel is rounded to the nearest integer.
func (p Palette) ColorAt(t float64) color.RGBA {
	return color.RGBA{
		R: lerp(p.Top.R, p.Bottom.R, t),
		G: lerp(p.Top.G, p.Bottom.G, t),
		B: lerp(p.Top.B, p.Bottom.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a)*(1-t) + float64(b)*t)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// Gradient returns a size×size bitmap whose row y has the color at
// offset y/size. A non-positive size yields an empty bitmap.
func Gradient(size int, p Palette) *image.RGBA {
	if size < 0 {
		size = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		c := p.ColorAt(float64(y) / float64(size))
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
	return img
}

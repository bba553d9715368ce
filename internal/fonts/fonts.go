// Package fonts resolves the typeface used for the icon text.
//
// Resolution walks an ordered list of font files and takes the first one
// that parses and covers the icon text. When none does, the embedded Go Bold font is used, so
// resolution never fails because of the host's font setup.
package fonts

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/gogpu/launchericon/internal/logging"
)

// BuiltinName identifies the embedded fallback in Set.Source.
const BuiltinName = "builtin:gobold"

// Set holds the two faces the icon text is drawn with.
// Both faces come from the same font source.
type Set struct {
	Primary   text.Face
	Secondary text.Face

	// Source is the font file path, or BuiltinName.
	Source string

	// Fallback reports whether no candidate loaded.
	Fallback bool

	src *text.FontSource
}

// Close releases the underlying font source.
func (s *Set) Close() error {
	if s == nil || s.src == nil {
		return nil
	}
	return s.src.Close()
}

// Candidates returns the font files tried on the current platform.
func Candidates() []string {
	return candidatesFor(runtime.GOOS)
}

func candidatesFor(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			"C:/Windows/Fonts/arial.ttf",
			"C:/Windows/Fonts/calibri.ttf",
			"arial.ttf",
		}
	case "darwin":
		return []string{
			"/Library/Fonts/Arial.ttf",
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"arial.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
			"arial.ttf",
		}
	}
}

// Resolve loads the first usable candidate at the primary and secondary
// point sizes. A candidate is usable when it parses and has a glyph for
// every rune of texts. Other candidates are skipped. The only error is a
// failure to parse the embedded fallback.
//
// The fallback is scaled to the requested sizes, unlike a fixed-size
// bitmap default font.
func Resolve(candidates []string, primary, secondary float64, texts ...string) (*Set, error) {
	log := logging.Logger()

	for _, path := range candidates {
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			log.Debug("font candidate skipped", "path", path, "err", err)
			continue
		}
		if err := covers(src.Face(primary), texts...); err != nil {
			log.Debug("font candidate skipped", "path", path, "err", err)
			_ = src.Close()
			continue
		}
		log.Info("font selected", "path", path, "name", src.Name())
		return newSet(src, path, false, primary, secondary), nil
	}

	src, err := Builtin()
	if err != nil {
		return nil, err
	}
	log.Warn("no font candidate loaded, using built-in font", "tried", len(candidates))
	return newSet(src, BuiltinName, true, primary, secondary), nil
}

// Builtin parses the embedded fallback font.
func Builtin() (*text.FontSource, error) {
	src, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse built-in font: %w", err)
	}
	return src, nil
}

func newSet(src *text.FontSource, name string, fallback bool, primary, secondary float64) *Set {
	return &Set{
		Primary:   src.Face(primary),
		Secondary: src.Face(secondary),
		Source:    name,
		Fallback:  fallback,
		src:       src,
	}
}

// ErrNoGlyphs is returned when a font cannot render the icon text.
var ErrNoGlyphs = errors.New("fonts: missing glyphs")

func covers(face text.Face, texts ...string) error {
	for _, s := range texts {
		for _, r := range s {
			if !face.HasGlyph(r) {
				return fmt.Errorf("%w: no glyph for %q", ErrNoGlyphs, r)
			}
		}
	}
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package resample scales square icon bitmaps with the kernels from
// golang.org/x/image/draw.
package resample

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// ErrUnknownFilter is returned by ParseFilter for unrecognized names.
var ErrUnknownFilter = errors.New("resample: unknown filter")

// Filter selects the resampling kernel.
type Filter uint8

const (
	// Lanczos is a three-lobe windowed sinc.
	Lanczos Filter = iota

	// CatmullRom is a cubic kernel. Slightly softer than Lanczos.
	CatmullRom

	// BiLinear is the tent kernel.
	BiLinear

	// NearestNeighbor copies the closest source pixel.
	NearestNeighbor
)

var filterNames = [...]string{
	Lanczos:         "lanczos",
	CatmullRom:      "catmullrom",
	BiLinear:        "bilinear",
	NearestNeighbor: "nearest",
}

// String returns the flag name of the filter.
func (f Filter) String() string {
	if int(f) < len(filterNames) {
		return filterNames[f]
	}
	return "unknown"
}

// ParseFilter maps a flag value to a Filter. Matching ignores case.
func ParseFilter(name string) (Filter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range filterNames {
		if n == name {
			return Filter(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// lanczos3 is the Lanczos kernel with a = 3.
var lanczos3 = &xdraw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t == 0 {
			return 1
		}
		if t >= 3 {
			return 0
		}
		return sinc(t) * sinc(t/3)
	},
}

func sinc(x float64) float64 {
	x *= math.Pi
	return math.Sin(x) / x
}

func (f Filter) scaler() xdraw.Scaler {
	switch f {
	case CatmullRom:
		return xdraw.CatmullRom
	case BiLinear:
		return xdraw.BiLinear
	case NearestNeighbor:
		return xdraw.NearestNeighbor
	default:
		return lanczos3
	}
}

// Square scales src into a new size×size bitmap. A non-positive size
// returns an empty bitmap.
func Square(src image.Image, size int, f Filter) *image.RGBA {
	if size < 0 {
		size = 0
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if size == 0 || src.Bounds().Empty() {
		return dst
	}
	f.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

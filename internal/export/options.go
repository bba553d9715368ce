package export

import (
	"github.com/gogpu/launchericon/internal/fonts"
	"github.com/gogpu/launchericon/internal/icon"
	"github.com/gogpu/launchericon/internal/resample"
)

// Option configures Run.
//
// Example:
//
//	export.Run(ctx, export.WithBaseDir("../app"), export.WithCreateDirs(true))
type Option func(*options)

type options struct {
	baseDir    string
	createDirs bool
	filter     resample.Filter
	densities  []Density
	candidates []string
	palette    icon.Palette
}

func defaultOptions() options {
	return options{
		baseDir:    ".",
		filter:     resample.Lanczos,
		densities:  Densities(),
		candidates: fonts.Candidates(),
		palette:    icon.DefaultPalette,
	}
}

// WithBaseDir sets the directory the Android project lives in.
// The default is the working directory.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithCreateDirs makes Run create missing output directories.
// By default a missing directory fails the run at the first write into it.
func WithCreateDirs(create bool) Option {
	return func(o *options) {
		o.createDirs = create
	}
}

// WithFilter selects the resampling kernel for the density exports.
func WithFilter(f resample.Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithDensities replaces the density table. Run fails with
// ErrNoDensities or ErrInvalidDensity before writing anything if the
// table is empty or a size is not positive.
func WithDensities(ds ...Density) Option {
	return func(o *options) {
		o.densities = ds
	}
}

// WithFontCandidates replaces the platform font list.
// An empty list forces the built-in font.
func WithFontCandidates(paths ...string) Option {
	return func(o *options) {
		o.candidates = paths
	}
}

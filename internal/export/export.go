// Package export writes the launcher icon set to an Android project tree.
package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gogpu/launchericon/internal/fonts"
	"github.com/gogpu/launchericon/internal/icon"
	"github.com/gogpu/launchericon/internal/logging"
	"github.com/gogpu/launchericon/internal/resample"
)

// DirPerm is used for directories created under WithCreateDirs.
const DirPerm = 0o755

// File describes one written PNG.
type File struct {
	Path    string
	Role    Role
	Density string // empty for the store-listing image
	Size    int
}

// Report lists what Run wrote, in write order.
type Report struct {
	Files []File

	// Font is the font file used for the text, or fonts.BuiltinName.
	Font         string
	FontFallback bool
}

// Run composes the icon and writes the store-listing image followed by
// four images per density. The first failing write stops the run; files
// written before it stay on disk and are listed in the returned report.
// ctx is checked before each write; a nil ctx never cancels.
func Run(ctx context.Context, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(o.densities); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.Logger()

	primary, secondary := icon.FontSizes(BaseSize)
	set, err := fonts.Resolve(o.candidates, primary, secondary, icon.PrimaryText, icon.SecondaryText)
	if err != nil {
		return nil, fmt.Errorf("export: resolve font: %w", err)
	}
	defer func() { _ = set.Close() }()

	w := &writer{createDirs: o.createDirs, report: &Report{Font: set.Source, FontFallback: set.Fallback}}

	composed := icon.Compose(BaseSize, o.palette, set)
	w.write(ctx, StoreListingPath(o.baseDir), composed, File{Role: RoleStoreListing, Size: BaseSize})

	for _, d := range o.densities {
		fg := resample.Square(composed, d.Size, o.filter)
		bg := resample.Square(icon.Gradient(BaseSize, o.palette), d.Size, o.filter)

		w.write(ctx, Path(o.baseDir, d, RoleForeground), fg, File{Role: RoleForeground, Density: d.Name, Size: d.Size})
		w.write(ctx, Path(o.baseDir, d, RoleBackground), bg, File{Role: RoleBackground, Density: d.Name, Size: d.Size})
		w.write(ctx, Path(o.baseDir, d, RoleLauncher), fg, File{Role: RoleLauncher, Density: d.Name, Size: d.Size})
		w.write(ctx, Path(o.baseDir, d, RoleRound), fg, File{Role: RoleRound, Density: d.Name, Size: d.Size})
	}

	if w.err != nil {
		return w.report, w.err
	}
	log.Info("icons exported", "files", len(w.report.Files), "base", o.baseDir, "filter", o.filter.String())
	return w.report, nil
}

// validate rejects an empty table and non-positive sizes before anything
// is written.
func validate(ds []Density) error {
	if len(ds) == 0 {
		return ErrNoDensities
	}
	for _, d := range ds {
		if d.Size <= 0 {
			return fmt.Errorf("%w: %s has size %d", ErrInvalidDensity, d.Name, d.Size)
		}
	}
	return nil
}

// writer stops at the first error; later writes are no-ops.
type writer struct {
	createDirs bool
	report     *Report
	err        error
}

func (w *writer) write(ctx context.Context, path string, img image.Image, f File) {
	if w.err != nil {
		return
	}
	if err := ctx.Err(); err != nil {
		w.err = fmt.Errorf("export: %w", err)
		return
	}
	if err := writePNG(path, img, w.createDirs); err != nil {
		w.err = &WriteError{Path: path, Err: err}
		return
	}
	f.Path = path
	w.report.Files = append(w.report.Files, f)
	logging.Logger().Debug("icon written", "path", path, "role", string(f.Role), "size", f.Size)
}

func writePNG(path string, img image.Image, createDirs bool) (err error) {
	if createDirs {
		if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
			return err
		}
	}
	f, err := os.Create(path) //nolint:gosec // paths are built from fixed tables under the base dir
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

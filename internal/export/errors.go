// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import "errors"

// ErrNoDensities is returned when Run is configured with an empty density table.
var ErrNoDensities = errors.New("export: no densities to export")

// ErrInvalidDensity is returned when a density has a non-positive size.
var ErrInvalidDensity = errors.New("export: invalid density")

// WriteError reports a PNG that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "export: write " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

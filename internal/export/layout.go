// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"path/filepath"
	"slices"
)

// BaseSize is the side of the composed icon and the store-listing image.
const BaseSize = 512

// StoreListingName is the file name of the store-listing image,
// written directly under the base directory.
const StoreListingName = "playstore_icon_512.png"

// resDir is the Android resource directory relative to the base directory.
var resDir = filepath.Join("app", "src", "main", "res")

// Role names one exported image kind. The value is the file basename.
type Role string

// Roles written for each density, in write order.
const (
	RoleForeground Role = "ic_launcher_foreground"
	RoleBackground Role = "ic_launcher_background"
	RoleLauncher   Role = "ic_launcher"
	RoleRound      Role = "ic_launcher_round"

	// RoleStoreListing marks the single store-listing image.
	RoleStoreListing Role = "playstore_icon"
)

// Density is a named screen-density bucket and its icon side in pixels.
type Density struct {
	Name string
	Size int
}

var densities = [...]Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// Densities returns the launcher density buckets from smallest to largest.
// The returned slice is a copy.
func Densities() []Density {
	return slices.Clone(densities[:])
}

// Dir returns the mipmap directory of d under base.
func Dir(base string, d Density) string {
	return filepath.Join(base, resDir, "mipmap-"+d.Name)
}

// Path returns the PNG path for role r at density d under base.
func Path(base string, d Density, r Role) string {
	return filepath.Join(Dir(base, d), string(r)+".png")
}

// StoreListingPath returns the store-listing PNG path under base.
func StoreListingPath(base string) string {
	return filepath.Join(base, StoreListingName)
}

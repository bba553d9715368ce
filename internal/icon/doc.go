// Package icon draws the DND Scheduler launcher artwork: a vertical
// purple gradient with "DND" and "SCHEDULER" centered in white.
//
// # Pipeline
//
//	canvas := icon.Gradient(512, icon.DefaultPalette)
//	icon.Overlay(canvas, set) // set from fonts.Resolve
//
// Every bitmap is square and fully opaque. Overlay draws over the
// canvas in place and never changes its bounds.
package icon

// Package layout computes the body height and horizontal scroll width of a
// scrollable table.
//
// The package is pure: it never touches a rendering engine. Callers gather
// region sizes into a [Measurements] value (see package geometry) and pass
// it, together with a [Config], to [Height]. Column metadata goes through
// [ScrollWidth].
//
// # Height
//
// The body height is whatever is left of the space below the header once
// the fixed chrome is subtracted:
//
//	height = bottom - offset - padding - pagination - footer - header
//
// where bottom is either the distance from the header to the bottom of the
// viewport, or (in parent-managed mode) the height of an enclosing container
// minus its own chrome. The result is then clamped to [Config.MinHeight] and
// [Config.MaxHeight].
//
// The constants involved (padding, pagination gap, margins) belong to a
// visual theme and live in [Metrics]. [DefaultMetrics] carries the values of
// the reference theme; terminal hosts use [TerminalMetrics].
//
// # Width
//
// A table whose explicitly sized visible columns add up to more than its
// rendered width scrolls horizontally; [ScrollWidth] reports that total.
package layout

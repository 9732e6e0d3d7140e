// Package geometry reads the live sizes of a table's regions.
//
// The table's host exposes its regions through an [Accessor]: typed getters
// for the root, header, body, footer, pagination, summary, title and
// empty-state marker. The package never knows how the host finds them (a
// DOM query, a widget tree, rendered terminal lines); it only asks for their
// boxes. Every getter reports whether the region exists, and a missing
// optional region measures zero.
//
// A [Reader] turns an Accessor into a [layout.Measurements] value for one
// recalculation and keeps the handles that are worth keeping between
// recalculations of the same activation.
package geometry

// Region is a rendered box.
type Region interface {
	Height() int
	Width() int
}

// Body is the scrollable region of the table.
type Body interface {
	Region

	// ContentHeight and ContentWidth are the full size of the scrolled
	// content; VisibleHeight and VisibleWidth the size of the visible part.
	ContentHeight() int
	VisibleHeight() int
	ContentWidth() int
	VisibleWidth() int

	// SetHeight constrains the body to h.
	SetHeight(h int)
	// ResetHeight removes any height constraint.
	ResetHeight()
}

// Marker is a region whose height can be set, like the empty-state block.
type Marker interface {
	Region
	SetHeight(h int)
}

// Root is the outermost box of the table.
type Root interface {
	Region

	// InNestedLayout reports that the table is hosted inside the app's
	// layout chrome, which costs extra padding.
	InNestedLayout() bool

	// SetScrollbarHints tells the host which scrollbars are unnecessary.
	SetScrollbarHints(hideY, hideX bool)
}

// Accessor locates the regions of one table.
type Accessor interface {
	Root() (Root, bool)
	Body() (Body, bool)
	Header() (Region, bool)
	Footer() (Region, bool)
	Pagination() (Region, bool)
	Summary() (Region, bool)
	Title() (Region, bool)
	EmptyMarker() (Marker, bool)
}

// Container is the managing container used in parent-managed mode.
type Container interface {
	// Wrap is the container box itself.
	Wrap() (Region, bool)
	// Form is the search form placed above the table.
	Form() (Region, bool)
}

// Viewport answers questions about the visible screen area.
type Viewport interface {
	// SpaceBelow returns the distance from the top edge of r to the bottom
	// edge of the viewport.
	SpaceBelow(r Region) int
}

// height returns the height of r, or zero when r does not exist.
func height(r Region, ok bool) int {
	if !ok || r == nil {
		return 0
	}
	return nonNegative(r.Height())
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

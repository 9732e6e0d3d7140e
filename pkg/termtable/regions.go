package termtable

import (
	"github.com/matzehuels/tablefit/pkg/geometry"
)

// regions exposes the rendered parts of a Model to the layout engine. Every
// measurement renders the current state, which is what the next View will
// show.
type regions struct{ m *Model }

var (
	_ geometry.Accessor  = regions{}
	_ geometry.Container = regions{}
	_ geometry.Viewport  = regions{}
)

func (r regions) section(s section) (geometry.Region, bool) {
	f := r.m.compose()
	if !f.has[s] {
		return nil, false
	}
	return sectionRegion{m: r.m, s: s}, true
}

func (r regions) Root() (geometry.Root, bool) {
	if !r.m.ready {
		return nil, false
	}
	return rootRegion{r.m}, true
}

func (r regions) Body() (geometry.Body, bool) {
	if !r.m.ready {
		return nil, false
	}
	return bodyRegion{r.m}, true
}

func (r regions) Header() (geometry.Region, bool)     { return r.section(secHeader) }
func (r regions) Footer() (geometry.Region, bool)     { return r.section(secFooter) }
func (r regions) Pagination() (geometry.Region, bool) { return r.section(secPagination) }
func (r regions) Summary() (geometry.Region, bool)    { return r.section(secSummary) }
func (r regions) Title() (geometry.Region, bool)      { return r.section(secTitle) }
func (r regions) Form() (geometry.Region, bool)       { return r.section(secForm) }

func (r regions) EmptyMarker() (geometry.Marker, bool) {
	f := r.m.compose()
	if !f.has[secEmpty] {
		return nil, false
	}
	return markerRegion{r.m}, true
}

// Wrap is the fixed-height pane of parent-managed mode.
func (r regions) Wrap() (geometry.Region, bool) {
	if !r.m.parentManaged() {
		return nil, false
	}
	return paneRegion{r.m}, true
}

// SpaceBelow returns the rows from the top of reg to the bottom of the
// terminal.
func (r regions) SpaceBelow(reg geometry.Region) int {
	top := 0
	if sr, ok := reg.(sectionRegion); ok {
		f := r.m.compose()
		top = f.top[sr.s]
	}
	return max(r.m.height-top, 0)
}

type sectionRegion struct {
	m *Model
	s section
}

func (r sectionRegion) Height() int {
	f := r.m.compose()
	return f.heightOf(r.s)
}

func (r sectionRegion) Width() int {
	f := r.m.compose()
	return f.widthOf(r.s)
}

type rootRegion struct{ m *Model }

func (r rootRegion) Height() int {
	f := r.m.compose()
	return f.height
}

func (r rootRegion) Width() int           { return r.m.tableWidth() }
func (r rootRegion) InNestedLayout() bool { return r.m.nested }

func (r rootRegion) SetScrollbarHints(hideY, hideX bool) {
	r.m.hideY, r.m.hideX = hideY, hideX
}

type bodyRegion struct{ m *Model }

func (b bodyRegion) Height() int        { return b.VisibleHeight() }
func (b bodyRegion) Width() int         { return b.VisibleWidth() }
func (b bodyRegion) ContentHeight() int { return len(b.m.pageRows()) }

func (b bodyRegion) VisibleHeight() int {
	return b.m.bodyVisibleHeight(b.ContentHeight())
}

func (b bodyRegion) ContentWidth() int { return contentWidth(b.m.columnWidths()) }
func (b bodyRegion) VisibleWidth() int { return b.m.tableWidth() }

func (b bodyRegion) SetHeight(h int) {
	b.m.bodyHeight = &h
	b.m.released = false
}

func (b bodyRegion) ResetHeight() {
	b.m.bodyHeight = nil
	b.m.released = true
}

type markerRegion struct{ m *Model }

func (r markerRegion) Height() int {
	f := r.m.compose()
	return f.heightOf(secEmpty)
}

func (r markerRegion) Width() int { return r.m.tableWidth() }

func (r markerRegion) SetHeight(h int) {
	r.m.markerHeight = &h
}

type paneRegion struct{ m *Model }

func (p paneRegion) Height() int { return p.m.opts.ParentHeight }
func (p paneRegion) Width() int  { return p.m.width }

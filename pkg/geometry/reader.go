package geometry

import (
	"errors"

	"github.com/matzehuels/tablefit/pkg/layout"
)

// Errors returned by Reader when a mandatory anchor is missing. They mean
// "not mounted yet", not failure: the next recalculation simply tries again.
var (
	ErrNoRoot     = errors.New("table root not found")
	ErrNoBody     = errors.New("table body not found")
	ErrNoHeader   = errors.New("table header not found")
	ErrNoViewport = errors.New("no viewport to measure against")
)

// Reader measures one table.
//
// The body and footer handles are looked up once and reused until
// Invalidate is called, which hosts do on every activation. Pagination and
// the empty-state marker come and go with the data and are looked up on
// every read.
type Reader struct {
	acc       Accessor
	container Container
	viewport  Viewport

	body   Body
	footer Region
}

// NewReader creates a reader over acc. The container may be nil, in which
// case parent-managed mode is never used. When viewport is nil and acc
// implements Viewport, acc is used.
func NewReader(acc Accessor, container Container, viewport Viewport) *Reader {
	if viewport == nil {
		if v, ok := acc.(Viewport); ok {
			viewport = v
		}
	}
	return &Reader{acc: acc, container: container, viewport: viewport}
}

// Accessor returns the underlying accessor.
func (r *Reader) Accessor() Accessor { return r.acc }

// Invalidate forgets the cached handles.
func (r *Reader) Invalidate() {
	r.body = nil
	r.footer = nil
}

// Root returns the table root.
func (r *Reader) Root() (Root, error) {
	root, ok := r.acc.Root()
	if !ok || root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// Body returns the cached body handle, looking it up on first use.
func (r *Reader) Body() (Body, error) {
	if r.body != nil {
		return r.body, nil
	}
	body, ok := r.acc.Body()
	if !ok || body == nil {
		return nil, ErrNoBody
	}
	r.body = body
	return body, nil
}

// EmptyMarker returns the empty-state marker, if one is rendered.
func (r *Reader) EmptyMarker() (Marker, bool) {
	m, ok := r.acc.EmptyMarker()
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

func (r *Reader) footerRegion() (Region, bool) {
	if r.footer != nil {
		return r.footer, true
	}
	f, ok := r.acc.Footer()
	if !ok || f == nil {
		return nil, false
	}
	r.footer = f
	return f, true
}

// Read measures every region that the height of a body inside root depends
// on under cfg.
func (r *Reader) Read(root Root, cfg layout.Config) (layout.Measurements, error) {
	header, ok := r.acc.Header()
	if !ok || header == nil {
		return layout.Measurements{}, ErrNoHeader
	}

	m := layout.Measurements{
		Nested: root.InNestedLayout(),
		Header: nonNegative(header.Height()),
	}

	if p, ok := r.acc.Pagination(); ok && p != nil {
		m.HasPagination = true
		m.Pagination = nonNegative(p.Height())
	}
	if !cfg.Pagination.IsBool() {
		m.Footer = height(r.footerRegion())
	}
	m.Summary = height(r.acc.Summary())

	if cfg.CanResizeParent && r.container != nil {
		if wrap, ok := r.container.Wrap(); ok && wrap != nil {
			m.HasWrap = true
			m.Wrap = nonNegative(wrap.Height())
			m.Form = height(r.container.Form())
			m.Title = height(r.acc.Title())
		}
	}

	if !layout.UsesParentMode(m, cfg) {
		if r.viewport == nil {
			return layout.Measurements{}, ErrNoViewport
		}
		m.SpaceBelow = r.viewport.SpaceBelow(header)
	}
	return m, nil
}

// ScrollHints says whether the body content overflows its visible area.
type ScrollHints struct {
	OverflowY bool
	OverflowX bool
}

// ClassifyScroll compares the content and visible sizes of b.
func ClassifyScroll(b Body) ScrollHints {
	return ScrollHints{
		OverflowY: b.ContentHeight() > b.VisibleHeight(),
		OverflowX: b.ContentWidth() > b.VisibleWidth(),
	}
}

// Apply sets the scrollbar hints of root: a scrollbar is hidden when its
// axis does not overflow.
func (h ScrollHints) Apply(root Root) {
	root.SetScrollbarHints(!h.OverflowY, !h.OverflowX)
}

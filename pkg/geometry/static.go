package geometry

// Box is a fixed-size region.
type Box struct {
	H, W int
}

func (b *Box) Height() int { return b.H }
func (b *Box) Width() int  { return b.W }

// StaticRoot is a fixed root that records the hints it was given.
type StaticRoot struct {
	Box
	Nested bool
	HideY  bool
	HideX  bool
}

func (r *StaticRoot) InNestedLayout() bool { return r.Nested }

func (r *StaticRoot) SetScrollbarHints(hideY, hideX bool) {
	r.HideY, r.HideX = hideY, hideX
}

// StaticBody is a fixed body. Its visible height follows SetHeight; after
// ResetHeight the whole content is visible.
type StaticBody struct {
	Box
	ContentH int
	ContentW int
	// Style is the height constraint last set, or nil when unconstrained.
	Style *int
}

func (b *StaticBody) ContentHeight() int { return b.ContentH }
func (b *StaticBody) ContentWidth() int  { return b.ContentW }

func (b *StaticBody) VisibleHeight() int {
	if b.Style != nil {
		return *b.Style
	}
	return b.ContentH
}

func (b *StaticBody) VisibleWidth() int { return b.W }

func (b *StaticBody) SetHeight(h int) {
	b.Style = &h
	b.H = h
}

func (b *StaticBody) ResetHeight() {
	b.Style = nil
	b.H = b.ContentH
}

// StaticMarker is a fixed marker that records the height it was given.
type StaticMarker struct {
	Box
	Style *int
}

func (m *StaticMarker) SetHeight(h int) {
	m.Style = &h
}

// Static is an Accessor, Container and Viewport built from plain numbers.
// Nil fields are absent regions. It backs scenario files and tests.
type Static struct {
	RootBox       *StaticRoot
	BodyBox       *StaticBody
	HeaderBox     *Box
	FooterBox     *Box
	PaginationBox *Box
	SummaryBox    *Box
	TitleBox      *Box
	Empty         *StaticMarker

	WrapBox *Box
	FormBox *Box

	// Below is the distance from the header's top edge to the bottom of the
	// viewport.
	Below int
}

var (
	_ Accessor  = (*Static)(nil)
	_ Container = (*Static)(nil)
	_ Viewport  = (*Static)(nil)
)

func (s *Static) Root() (Root, bool) {
	if s.RootBox == nil {
		return nil, false
	}
	return s.RootBox, true
}

func (s *Static) Body() (Body, bool) {
	if s.BodyBox == nil {
		return nil, false
	}
	return s.BodyBox, true
}

func (s *Static) Header() (Region, bool)     { return region(s.HeaderBox) }
func (s *Static) Footer() (Region, bool)     { return region(s.FooterBox) }
func (s *Static) Pagination() (Region, bool) { return region(s.PaginationBox) }
func (s *Static) Summary() (Region, bool)    { return region(s.SummaryBox) }
func (s *Static) Title() (Region, bool)      { return region(s.TitleBox) }
func (s *Static) Wrap() (Region, bool)       { return region(s.WrapBox) }
func (s *Static) Form() (Region, bool)       { return region(s.FormBox) }

func (s *Static) EmptyMarker() (Marker, bool) {
	if s.Empty == nil {
		return nil, false
	}
	return s.Empty, true
}

func (s *Static) SpaceBelow(Region) int { return s.Below }

// region converts a possibly nil box into an optional Region without
// producing a non-nil interface around a nil pointer.
func region(b *Box) (Region, bool) {
	if b == nil {
		return nil, false
	}
	return b, true
}

package layout

// DefaultPlaceholderHeight is the body height used before the first
// successful recalculation.
const DefaultPlaceholderHeight = 167

// Measurements are the region sizes read for one recalculation. A region
// that does not exist measures zero.
type Measurements struct {
	// Nested reports that the table is hosted inside the app layout chrome.
	Nested bool

	Header        int
	Pagination    int
	HasPagination bool
	Footer        int
	Summary       int
	Title         int

	// Wrap is the height of the managing container, used in parent mode.
	Wrap    int
	HasWrap bool
	// Form is the height of the search form next to the table.
	Form int

	// SpaceBelow is the distance from the header's top edge to the bottom of
	// the viewport, used in viewport mode.
	SpaceBelow int
}

// Mode is the strategy used to find the space available to the table.
type Mode int

const (
	// ModeViewport measures down to the bottom of the viewport.
	ModeViewport Mode = iota
	// ModeParent derives the space from the managing container.
	ModeParent
)

func (m Mode) String() string {
	if m == ModeParent {
		return "parent"
	}
	return "viewport"
}

// Clamp records which bound, if any, changed the raw height.
type Clamp int

const (
	ClampNone Clamp = iota
	ClampMin
	ClampMax
)

func (c Clamp) String() string {
	switch c {
	case ClampMin:
		return "min"
	case ClampMax:
		return "max"
	default:
		return "none"
	}
}

// Breakdown is the result of Height with every term that went into it.
type Breakdown struct {
	Mode       Mode
	Bottom     int
	Offset     int
	Padding    int
	Pagination int
	Footer     int
	Header     int
	Raw        int
	Clamp      Clamp
	Height     int
}

// UsesParentMode reports whether cfg and m select parent-managed mode.
func UsesParentMode(m Measurements, cfg Config) bool {
	return cfg.CanResizeParent && m.HasWrap
}

// Height derives the body height from m and cfg.
func Height(m Measurements, cfg Config) Breakdown {
	mt := cfg.metrics()
	b := Breakdown{Offset: cfg.ResizeHeightOffset, Header: m.Header}

	b.Padding = mt.BasePadding
	if m.Nested {
		b.Padding += mt.NestedPadding
	}

	if m.HasPagination {
		b.Pagination = mt.PaginationGap + m.Pagination
	} else {
		b.Pagination = mt.PaginationAbsent
	}

	// A custom footer only renders when pagination is not a plain boolean.
	if !cfg.Pagination.IsBool() {
		b.Footer += m.Footer
	}
	b.Footer += m.Summary

	if UsesParentMode(m, cfg) {
		b.Mode = ModeParent
		form := m.Form
		if form > 0 {
			form += mt.FormMargin
		}
		paginationMargin := mt.PaginationMargin
		if cfg.Pagination == ToggleOff {
			paginationMargin = 0
		}
		if cfg.UseSearchForm == ToggleOff {
			b.Padding = 0
		}
		b.Bottom = m.Wrap - form - m.Title - mt.TablePadding - paginationMargin
	} else {
		b.Mode = ModeViewport
		b.Bottom = m.SpaceBelow
	}

	b.Raw = b.Bottom - b.Offset - b.Padding - b.Pagination - b.Footer - b.Header
	b.Height, b.Clamp = ClampHeight(b.Raw, cfg.MinHeight, cfg.MaxHeight)
	return b
}

// ClampHeight raises h to lo (when lo > 0) and then lowers it to hi (when
// hi is set). The lower bound is applied first, so an inverted pair resolves
// to hi.
func ClampHeight(h, lo int, hi *int) (int, Clamp) {
	clamp := ClampNone
	if lo > 0 && h < lo {
		h, clamp = lo, ClampMin
	}
	if hi != nil && h > *hi {
		h, clamp = *hi, ClampMax
	}
	return h, clamp
}

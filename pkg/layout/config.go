package layout

// Toggle is a boolean option that may also be left unset. The distinction
// matters: several rules only fire when an option is explicitly turned off.
type Toggle int

const (
	// ToggleUnset means the option was not given as a plain boolean.
	ToggleUnset Toggle = iota
	// ToggleOn is an explicit true.
	ToggleOn
	// ToggleOff is an explicit false.
	ToggleOff
)

// ToggleOf converts an optional bool into a Toggle.
func ToggleOf(b *bool) Toggle {
	switch {
	case b == nil:
		return ToggleUnset
	case *b:
		return ToggleOn
	default:
		return ToggleOff
	}
}

// IsBool reports whether the toggle was given as a plain boolean.
func (t Toggle) IsBool() bool { return t != ToggleUnset }

// String returns "unset", "on" or "off".
func (t Toggle) String() string {
	switch t {
	case ToggleOn:
		return "on"
	case ToggleOff:
		return "off"
	default:
		return "unset"
	}
}

// ExplicitScroll holds caller-supplied scroll sizes. They always win over the
// computed ones, and a non-nil Y disables automatic height computation.
type ExplicitScroll struct {
	X                        *int
	Y                        *int
	ScrollToFirstRowOnChange *bool
}

// Config is the per-table sizing configuration. It is read once at the start
// of every recalculation.
type Config struct {
	// ResizeHeightOffset is subtracted from the available height.
	ResizeHeightOffset int

	// MinHeight is the lower bound of the body height. Zero disables it.
	MinHeight int

	// MaxHeight is the upper bound of the body height. Nil disables it; a
	// non-nil zero is a real cap.
	MaxHeight *int

	// CanResize enables automatic body height.
	CanResize bool

	// CanResizeParent selects parent-managed mode: the available height is
	// taken from the enclosing container instead of the viewport.
	CanResizeParent bool

	// UseSearchForm turns padding off in parent-managed mode when ToggleOff.
	UseSearchForm Toggle

	// Pagination is ToggleUnset when pagination is configured with an object
	// (or not at all), in which case a custom footer may be rendered.
	// ToggleOff removes the pagination margin in parent-managed mode.
	Pagination Toggle

	// Scroll overrides the computed scroll sizes.
	Scroll ExplicitScroll

	// Metrics are the theme constants. The zero value means DefaultMetrics.
	Metrics Metrics
}

// CanResizeEffective reports whether the body height is computed at all:
// resizing must be on and no explicit vertical scroll may be configured.
func (c Config) CanResizeEffective() bool {
	return c.CanResize && c.Scroll.Y == nil
}

// metrics returns the configured metrics, falling back to the defaults.
func (c Config) metrics() Metrics {
	if c.Metrics == (Metrics{}) {
		return DefaultMetrics()
	}
	return c.Metrics
}

// Metrics are the fixed offsets of a visual theme.
type Metrics struct {
	// BasePadding is always reserved below the table.
	BasePadding int
	// NestedPadding is added when the table sits inside the app layout chrome.
	NestedPadding int
	// PaginationGap is added to the pagination height when it is present.
	PaginationGap int
	// PaginationAbsent replaces the pagination height when there is none.
	// It is usually negative: no pagination frees reserved space.
	PaginationAbsent int
	// TablePadding is the container padding in parent-managed mode.
	TablePadding int
	// FormMargin follows a non-empty search form in parent-managed mode.
	FormMargin int
	// PaginationMargin precedes the pagination in parent-managed mode.
	PaginationMargin int
}

// Constants of the reference (pixel) theme.
const (
	DefaultBasePadding      = 17
	DefaultNestedPadding    = 13
	DefaultPaginationGap    = 2
	DefaultPaginationAbsent = -8
	DefaultTablePadding     = 12
	DefaultFormMargin       = 16
	DefaultPaginationMargin = 10
)

// DefaultMetrics returns the reference theme constants.
func DefaultMetrics() Metrics {
	return Metrics{
		BasePadding:      DefaultBasePadding,
		NestedPadding:    DefaultNestedPadding,
		PaginationGap:    DefaultPaginationGap,
		PaginationAbsent: DefaultPaginationAbsent,
		TablePadding:     DefaultTablePadding,
		FormMargin:       DefaultFormMargin,
		PaginationMargin: DefaultPaginationMargin,
	}
}

// TerminalMetrics returns constants for hosts measuring in terminal cells,
// where one row is the smallest unit and the reference pixel offsets would
// swallow the whole screen.
func TerminalMetrics() Metrics {
	return Metrics{
		BasePadding:      1,
		NestedPadding:    2,
		PaginationGap:    0,
		PaginationAbsent: 0,
		TablePadding:     0,
		FormMargin:       0,
		PaginationMargin: 0,
	}
}

package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tablefit/pkg/errors"
	"github.com/matzehuels/tablefit/pkg/geometry"
	"github.com/matzehuels/tablefit/pkg/layout"
)

// tableFile is a table description read from TOML. The same file drives
// both commands: calc evaluates its [measure] section and demo renders a
// table with its configuration and columns.
//
//	[table]
//	id = "orders"
//	max_height = 400
//
//	[[columns]]
//	key = "name"
//	width = "120px"
//
//	[measure]
//	space_below = 600
//	header = 40
//	pagination = 30
type tableFile struct {
	Table   tableSection    `toml:"table"`
	Metrics metricsSection  `toml:"metrics"`
	Columns []layout.Column `toml:"columns"`
	Measure measureSection  `toml:"measure"`
}

type tableSection struct {
	ID                 string `toml:"id"`
	ResizeHeightOffset int    `toml:"resize_height_offset"`
	MinHeight          int    `toml:"min_height"`
	MaxHeight          *int   `toml:"max_height"`
	// CanResize defaults to true.
	CanResize       *bool `toml:"can_resize"`
	CanResizeParent bool  `toml:"can_resize_parent"`
	UseSearchForm   *bool `toml:"use_search_form"`
	Pagination      *bool `toml:"pagination"`

	ScrollX                  *int  `toml:"scroll_x"`
	ScrollY                  *int  `toml:"scroll_y"`
	ScrollToFirstRowOnChange *bool `toml:"scroll_to_first_row_on_change"`
}

// metricsSection overrides single theme constants. Keys left out keep the
// value of the base theme the command starts from.
type metricsSection struct {
	BasePadding      *int `toml:"base_padding"`
	NestedPadding    *int `toml:"nested_padding"`
	PaginationGap    *int `toml:"pagination_gap"`
	PaginationAbsent *int `toml:"pagination_absent"`
	TablePadding     *int `toml:"table_padding"`
	FormMargin       *int `toml:"form_margin"`
	PaginationMargin *int `toml:"pagination_margin"`
}

// over returns base with the set keys replaced.
func (s metricsSection) over(base layout.Metrics) layout.Metrics {
	m := base
	for _, o := range []struct {
		dst *int
		v   *int
	}{
		{&m.BasePadding, s.BasePadding},
		{&m.NestedPadding, s.NestedPadding},
		{&m.PaginationGap, s.PaginationGap},
		{&m.PaginationAbsent, s.PaginationAbsent},
		{&m.TablePadding, s.TablePadding},
		{&m.FormMargin, s.FormMargin},
		{&m.PaginationMargin, s.PaginationMargin},
	} {
		if o.v != nil {
			*o.dst = *o.v
		}
	}
	return m
}

// measureSection holds the region sizes of a calc scenario. Optional
// regions are pointers: nil means the region is not rendered.
type measureSection struct {
	SpaceBelow int  `toml:"space_below"`
	TableWidth int  `toml:"table_width"`
	Header     int  `toml:"header"`
	Pagination *int `toml:"pagination"`
	Footer     *int `toml:"footer"`
	Summary    *int `toml:"summary"`
	Title      *int `toml:"title"`
	Nested     bool `toml:"nested"`
	Wrap       *int `toml:"wrap"`
	Form       *int `toml:"form"`

	// Rows is the data length, one when unset.
	Rows *int `toml:"rows"`
	// NoData describes a table without a data source.
	NoData bool `toml:"no_data"`
	// ContentHeight and ContentWidth are the body's natural size, used for
	// the scrollbar hints.
	ContentHeight int `toml:"content_height"`
	ContentWidth  int `toml:"content_width"`
}

// loadTableFile reads and validates a table file.
func loadTableFile(path string) (*tableFile, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "table file not found: %s", path)
	}

	var f tableFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScenario, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *tableFile) validate() error {
	var errs []error
	if f.Table.ID != "" {
		errs = append(errs, errors.ValidateTableID(f.Table.ID))
	}
	errs = append(errs, errors.ValidateBounds(f.Table.MinHeight, f.Table.MaxHeight))

	keys := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		keys[i] = c.Key
		errs = append(errs, errors.ValidateColumnWidth(c.Key, float64(c.Width)))
	}
	if len(keys) > 0 {
		errs = append(errs, errors.ValidateColumnKeys(keys))
	}

	m := f.Measure
	header := m.Header
	sizes := []struct {
		name string
		v    *int
	}{
		{"header", &header},
		{"pagination", m.Pagination},
		{"footer", m.Footer},
		{"summary", m.Summary},
		{"title", m.Title},
		{"wrap", m.Wrap},
		{"form", m.Form},
		{"rows", m.Rows},
	}
	for _, s := range sizes {
		if s.v != nil && *s.v < 0 {
			errs = append(errs, errors.New(errors.ErrCodeInvalidScenario, "measure.%s cannot be negative: %d", s.name, *s.v))
		}
	}
	return errors.Join(errs...)
}

// config converts the [table] and [metrics] sections, laying the metrics
// over base.
func (f *tableFile) config(base layout.Metrics) layout.Config {
	t := f.Table
	cfg := layout.Config{
		ResizeHeightOffset: t.ResizeHeightOffset,
		MinHeight:          t.MinHeight,
		MaxHeight:          t.MaxHeight,
		CanResize:          t.CanResize == nil || *t.CanResize,
		CanResizeParent:    t.CanResizeParent,
		UseSearchForm:      layout.ToggleOf(t.UseSearchForm),
		Pagination:         layout.ToggleOf(t.Pagination),
		Scroll: layout.ExplicitScroll{
			X:                        t.ScrollX,
			Y:                        t.ScrollY,
			ScrollToFirstRowOnChange: t.ScrollToFirstRowOnChange,
		},
		Metrics: f.Metrics.over(base),
	}
	return cfg
}

// tableID returns the configured id or fallback.
func (f *tableFile) tableID(fallback string) string {
	if f.Table.ID != "" {
		return f.Table.ID
	}
	return fallback
}

// static builds the mounted table described by [measure].
func (f *tableFile) static() *geometry.Static {
	m := f.Measure
	contentH := m.ContentHeight
	contentW := m.ContentWidth
	if contentW == 0 {
		contentW = m.TableWidth
	}
	s := &geometry.Static{
		RootBox:       &geometry.StaticRoot{Box: geometry.Box{W: m.TableWidth}, Nested: m.Nested},
		BodyBox:       &geometry.StaticBody{Box: geometry.Box{W: m.TableWidth, H: contentH}, ContentH: contentH, ContentW: contentW},
		HeaderBox:     &geometry.Box{H: m.Header},
		PaginationBox: box(m.Pagination),
		FooterBox:     box(m.Footer),
		SummaryBox:    box(m.Summary),
		TitleBox:      box(m.Title),
		WrapBox:       box(m.Wrap),
		FormBox:       box(m.Form),
		Below:         m.SpaceBelow,
	}
	if m.Rows != nil && *m.Rows == 0 && !m.NoData {
		s.Empty = &geometry.StaticMarker{}
	}
	return s
}

func box(h *int) *geometry.Box {
	if h == nil {
		return nil
	}
	return &geometry.Box{H: *h}
}

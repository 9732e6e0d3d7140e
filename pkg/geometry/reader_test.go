package geometry

import (
	"errors"
	"testing"

	"github.com/matzehuels/tablefit/pkg/layout"
)

func mounted() *Static {
	return &Static{
		RootBox:       &StaticRoot{Box: Box{H: 700, W: 250}},
		BodyBox:       &StaticBody{Box: Box{H: 300, W: 250}, ContentH: 300, ContentW: 250},
		HeaderBox:     &Box{H: 40},
		PaginationBox: &Box{H: 30},
		Below:         600,
	}
}

// countingAccessor counts lookups of the cached handles.
type countingAccessor struct {
	*Static
	bodies  int
	footers int
}

func (c *countingAccessor) Body() (Body, bool) {
	c.bodies++
	return c.Static.Body()
}

func (c *countingAccessor) Footer() (Region, bool) {
	c.footers++
	return c.Static.Footer()
}

func TestReadViewportMode(t *testing.T) {
	s := mounted()
	r := NewReader(s, s, nil)

	root, err := r.Root()
	if err != nil {
		t.Fatalf("Root() error: %v", err)
	}
	m, err := r.Read(root, layout.Config{CanResize: true})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	want := layout.Measurements{
		Header:        40,
		Pagination:    30,
		HasPagination: true,
		SpaceBelow:    600,
	}
	if m != want {
		t.Errorf("Read() = %+v, want %+v", m, want)
	}
}

func TestReadOptionalRegionsMeasureZero(t *testing.T) {
	s := mounted()
	s.PaginationBox = nil
	r := NewReader(s, nil, nil)

	m, err := r.Read(s.RootBox, layout.Config{})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if m.HasPagination || m.Pagination != 0 {
		t.Errorf("pagination = %d (present %v), want absent", m.Pagination, m.HasPagination)
	}
	if m.Footer != 0 || m.Summary != 0 || m.Title != 0 {
		t.Errorf("optional regions should measure zero: %+v", m)
	}
}

func TestReadFooterOnlyWithoutBooleanPagination(t *testing.T) {
	s := mounted()
	s.FooterBox = &Box{H: 24}
	s.SummaryBox = &Box{H: 6}
	r := NewReader(s, nil, nil)

	m, _ := r.Read(s.RootBox, layout.Config{Pagination: layout.ToggleOn})
	if m.Footer != 0 {
		t.Errorf("Footer = %d with boolean pagination, want 0", m.Footer)
	}
	if m.Summary != 6 {
		t.Errorf("Summary = %d, want 6", m.Summary)
	}

	m, _ = r.Read(s.RootBox, layout.Config{})
	if m.Footer != 24 {
		t.Errorf("Footer = %d, want 24", m.Footer)
	}
}

func TestReadParentMode(t *testing.T) {
	s := mounted()
	s.WrapBox = &Box{H: 800}
	s.FormBox = &Box{H: 60}
	s.TitleBox = &Box{H: 20}
	s.RootBox.Nested = true
	r := NewReader(s, s, nil)

	m, err := r.Read(s.RootBox, layout.Config{CanResize: true, CanResizeParent: true})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !m.HasWrap || m.Wrap != 800 || m.Form != 60 || m.Title != 20 {
		t.Errorf("parent measurements wrong: %+v", m)
	}
	if m.SpaceBelow != 0 {
		t.Errorf("SpaceBelow = %d, want 0 in parent mode", m.SpaceBelow)
	}
	if !m.Nested {
		t.Error("Nested should follow the root")
	}
}

func TestReadParentModeWithoutWrapFallsBack(t *testing.T) {
	s := mounted()
	r := NewReader(s, s, nil)

	m, err := r.Read(s.RootBox, layout.Config{CanResizeParent: true})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if m.HasWrap {
		t.Error("HasWrap should be false without a wrap region")
	}
	if m.SpaceBelow != 600 {
		t.Errorf("SpaceBelow = %d, want 600", m.SpaceBelow)
	}
}

func TestReadMissingAnchors(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		s := mounted()
		s.RootBox = nil
		if _, err := NewReader(s, nil, nil).Root(); !errors.Is(err, ErrNoRoot) {
			t.Errorf("Root() error = %v, want ErrNoRoot", err)
		}
	})
	t.Run("body", func(t *testing.T) {
		s := mounted()
		s.BodyBox = nil
		if _, err := NewReader(s, nil, nil).Body(); !errors.Is(err, ErrNoBody) {
			t.Errorf("Body() error = %v, want ErrNoBody", err)
		}
	})
	t.Run("header", func(t *testing.T) {
		s := mounted()
		s.HeaderBox = nil
		if _, err := NewReader(s, nil, nil).Read(s.RootBox, layout.Config{}); !errors.Is(err, ErrNoHeader) {
			t.Errorf("Read() error = %v, want ErrNoHeader", err)
		}
	})
	t.Run("viewport", func(t *testing.T) {
		s := mounted()
		acc := &countingAccessor{Static: s}
		r := &Reader{acc: acc}
		if _, err := r.Read(s.RootBox, layout.Config{}); !errors.Is(err, ErrNoViewport) {
			t.Errorf("Read() error = %v, want ErrNoViewport", err)
		}
	})
}

func TestReaderCachesHandlesUntilInvalidated(t *testing.T) {
	s := mounted()
	s.FooterBox = &Box{H: 10}
	acc := &countingAccessor{Static: s}
	r := NewReader(acc, nil, nil)

	for i := 0; i < 3; i++ {
		if _, err := r.Body(); err != nil {
			t.Fatalf("Body() error: %v", err)
		}
		if _, err := r.Read(s.RootBox, layout.Config{}); err != nil {
			t.Fatalf("Read() error: %v", err)
		}
	}
	if acc.bodies != 1 || acc.footers != 1 {
		t.Errorf("lookups body=%d footer=%d, want 1 each", acc.bodies, acc.footers)
	}

	r.Invalidate()
	_, _ = r.Body()
	_, _ = r.Read(s.RootBox, layout.Config{})
	if acc.bodies != 2 || acc.footers != 2 {
		t.Errorf("after Invalidate body=%d footer=%d, want 2 each", acc.bodies, acc.footers)
	}
}

func TestReaderDoesNotCacheMissingBody(t *testing.T) {
	s := mounted()
	body := s.BodyBox
	s.BodyBox = nil
	acc := &countingAccessor{Static: s}
	r := NewReader(acc, nil, nil)

	if _, err := r.Body(); err == nil {
		t.Fatal("Body() should fail before mount")
	}
	s.BodyBox = body
	if _, err := r.Body(); err != nil {
		t.Fatalf("Body() after mount error: %v", err)
	}
	if acc.bodies != 2 {
		t.Errorf("lookups = %d, want 2", acc.bodies)
	}
}

func TestClassifyScroll(t *testing.T) {
	tests := []struct {
		name  string
		body  *StaticBody
		hideY bool
		hideX bool
	}{
		{
			name:  "fits",
			body:  &StaticBody{Box: Box{W: 100}, ContentH: 50, ContentW: 100},
			hideY: true,
			hideX: true,
		},
		{
			name:  "overflows both",
			body:  &StaticBody{Box: Box{W: 100}, ContentH: 500, ContentW: 300, Style: intPtr(200)},
			hideY: false,
			hideX: false,
		},
		{
			name:  "overflows vertically",
			body:  &StaticBody{Box: Box{W: 100}, ContentH: 500, ContentW: 80, Style: intPtr(200)},
			hideY: false,
			hideX: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &StaticRoot{}
			ClassifyScroll(tt.body).Apply(root)
			if root.HideY != tt.hideY || root.HideX != tt.hideX {
				t.Errorf("hints = (y %v, x %v), want (y %v, x %v)", root.HideY, root.HideX, tt.hideY, tt.hideX)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

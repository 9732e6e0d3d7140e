package tablescroll

// ScrollState is the scroll configuration handed to the table renderer.
type ScrollState struct {
	// X is the horizontal scroll width; nil when the table needs none.
	X *int
	// Y is the body height; nil when resizing is off.
	Y *int
	// ScrollToFirstRowOnChange asks the renderer to scroll back to the top
	// when the data changes.
	ScrollToFirstRowOnChange bool
}

// ScrollState returns the current scroll configuration. Explicit values
// from the configuration win over the computed ones.
func (e *Engine) ScrollState() ScrollState {
	s := ScrollState{ScrollToFirstRowOnChange: true}
	if e.hasScrollX {
		x := e.scrollX
		s.X = &x
	}
	if e.cfg.CanResize {
		y := e.height
		s.Y = &y
	}

	explicit := e.cfg.Scroll
	if explicit.X != nil {
		x := *explicit.X
		s.X = &x
	}
	if explicit.Y != nil {
		y := *explicit.Y
		s.Y = &y
	}
	if explicit.ScrollToFirstRowOnChange != nil {
		s.ScrollToFirstRowOnChange = *explicit.ScrollToFirstRowOnChange
	}
	return s
}

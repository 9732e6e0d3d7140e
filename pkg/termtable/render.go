package termtable

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/tablefit/pkg/layout"
)

const (
	// defaultMarkerHeight is the height of the empty-state block before the
	// engine sizes it.
	defaultMarkerHeight = 3
	// maxAutoWidth caps the width of columns without an explicit width.
	maxAutoWidth = 32
	minAutoWidth = 3
	// scrollStep is the number of cells moved per horizontal scroll key.
	scrollStep = 4
)

// section is one stacked part of the table, in render order.
type section int

const (
	secTitle section = iota
	secForm
	secHeader
	secBody
	secEmpty
	secSummary
	secFooter
	secPagination
	numSections
)

// frame is one rendering of the table, with the position of every part.
type frame struct {
	parts [numSections]string
	has   [numSections]bool
	top   [numSections]int
	// height is the total height including frame chrome and status line.
	height int
}

func (f *frame) add(s section, str string) {
	f.parts[s] = str
	f.has[s] = true
}

func (f *frame) heightOf(s section) int {
	if !f.has[s] {
		return 0
	}
	return lipgloss.Height(f.parts[s])
}

func (f *frame) widthOf(s section) int {
	if !f.has[s] {
		return 0
	}
	return lipgloss.Width(f.parts[s])
}

// compose renders every part of the table from the current state.
func (m *Model) compose() frame {
	var f frame
	widths := m.columnWidths()

	if m.opts.Title != "" {
		f.add(secTitle, m.styles.Title.Render(m.opts.Title))
	}
	if m.opts.Search {
		f.add(secForm, m.styles.Form.Render(m.search.View()))
	}
	f.add(secHeader, m.renderHeader(widths))

	page := m.pageRows()
	if len(page) == 0 {
		f.add(secEmpty, m.renderEmpty())
	} else {
		f.add(secBody, m.renderBody(page, widths))
	}
	if m.opts.Summary != nil {
		if s := m.opts.Summary(m.filtered); s != "" {
			f.add(secSummary, m.styles.Summary.Render(s))
		}
	}
	if m.footerActive() {
		if s := m.opts.Footer(page, m.filtered); s != "" {
			f.add(secFooter, m.styles.Footer.Render(s))
		}
	}
	if m.paginationActive() {
		f.add(secPagination, m.renderPagination())
	}

	y := 0
	if m.nested {
		y++ // top border
	}
	for s := section(0); s < numSections; s++ {
		if f.has[s] {
			f.top[s] = y
			y += f.heightOf(s)
		}
	}
	if m.nested {
		y += 2 // bottom border and margin
	}
	if m.parentManaged() && y < m.opts.ParentHeight {
		y = m.opts.ParentHeight
	}
	f.height = y + 1 // status line
	return f
}

// render joins a composed frame into the final view.
func (m *Model) render(f frame) string {
	parts := make([]string, 0, numSections)
	for s := section(0); s < numSections; s++ {
		if f.has[s] {
			parts = append(parts, f.parts[s])
		}
	}
	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.nested {
		out = m.styles.Frame.Render(out)
	}
	if m.parentManaged() {
		h := m.opts.ParentHeight
		out = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(out)
	}
	return out + "\n" + m.statusLine()
}

// tableWidth is the width available to the columns.
func (m *Model) tableWidth() int {
	w := m.width - 1 // scrollbar
	if m.nested {
		w -= 2
	}
	if w < 0 {
		return 0
	}
	return w
}

// columnWidths returns the rendered width of every visible column. Columns
// with an explicit width get it; the rest fit their content.
func (m *Model) columnWidths() []int {
	widths := make([]int, 0, len(m.opts.Columns))
	for i, c := range m.opts.Columns {
		if c.DefaultHidden {
			continue
		}
		if c.Width > 0 {
			widths = append(widths, int(math.Ceil(float64(c.Width))))
			continue
		}
		w := runewidth.StringWidth(columnTitle(c))
		for _, row := range m.filtered {
			if i < len(row) {
				w = max(w, runewidth.StringWidth(row[i]))
			}
		}
		widths = append(widths, min(max(w, minAutoWidth), maxAutoWidth))
	}
	return widths
}

// contentWidth is the full width of a rendered row.
func contentWidth(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	w := len(widths) - 1
	for _, cw := range widths {
		w += cw
	}
	return w
}

func columnTitle(c layout.Column) string {
	if c.Title != "" {
		return c.Title
	}
	return c.Key
}

func cell(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

// line renders one row of visible cells.
func (m *Model) line(values []string, widths []int) string {
	cells := make([]string, 0, len(widths))
	vi := 0
	for i, c := range m.opts.Columns {
		if c.DefaultHidden {
			continue
		}
		v := ""
		if i < len(values) {
			v = values[i]
		}
		cells = append(cells, cell(v, widths[vi]))
		vi++
	}
	return strings.Join(cells, " ")
}

// cut shows the horizontally scrolled window of a rendered line.
func (m *Model) cut(s string) string {
	w := m.tableWidth()
	return ansi.Cut(s, m.xOffset, m.xOffset+w)
}

func (m *Model) renderHeader(widths []int) string {
	titles := make([]string, len(m.opts.Columns))
	for i, c := range m.opts.Columns {
		titles[i] = columnTitle(c)
	}
	head := m.styles.Header.Render(m.cut(m.line(titles, widths)))
	rule := m.styles.Rule.Render(strings.Repeat("─", min(contentWidth(widths), m.tableWidth())))
	return head + "\n" + rule
}

func (m *Model) renderBody(page [][]string, widths []int) string {
	lines := make([]string, len(page))
	for i, row := range page {
		style := m.styles.Row
		if i%2 == 1 {
			style = m.styles.RowAlt
		}
		lines[i] = style.Render(m.cut(m.line(row, widths)))
	}

	h := max(m.bodyVisibleHeight(len(lines)), 1)
	m.vp.Width = m.tableWidth()
	m.vp.Height = h
	m.vp.SetContent(strings.Join(lines, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, m.vp.View(), m.scrollbar(h, len(lines)))
}

// bodyVisibleHeight is the height the body is shown at: the height set by
// the engine, else the content capped at the scroll height. A released body
// is only capped by an explicit scroll height.
func (m *Model) bodyVisibleHeight(content int) int {
	if m.bodyHeight != nil {
		return max(*m.bodyHeight, 0)
	}
	if m.released && m.engine.Config().Scroll.Y == nil {
		return content
	}
	if y := m.engine.ScrollState().Y; y != nil && *y < content {
		return max(*y, 0)
	}
	return content
}

func (m *Model) scrollbar(h, total int) string {
	rows := make([]string, h)
	if m.hideY || total <= h {
		for i := range rows {
			rows[i] = " "
		}
		return strings.Join(rows, "\n")
	}
	thumb := max(h*h/total, 1)
	pos := 0
	if span := total - h; span > 0 {
		pos = m.vp.YOffset * (h - thumb) / span
	}
	for i := range rows {
		if i >= pos && i < pos+thumb {
			rows[i] = m.styles.Thumb.Render("┃")
		} else {
			rows[i] = m.styles.Track.Render("│")
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderEmpty() string {
	h := defaultMarkerHeight
	if m.markerHeight != nil {
		h = max(*m.markerHeight, 1)
	}
	return lipgloss.Place(m.tableWidth(), h, lipgloss.Center, lipgloss.Center, m.styles.Empty.Render("No data"))
}

func (m *Model) renderPagination() string {
	return m.styles.Pagination.Render(fmt.Sprintf("‹ %s ›  %d rows", m.pager.View(), len(m.filtered)))
}

func (m *Model) statusLine() string {
	var b strings.Builder
	fmt.Fprintf(&b, "h=%d", m.engine.TableHeight())
	if x := m.engine.ScrollState().X; x != nil && !m.hideX {
		fmt.Fprintf(&b, " x=%d/%d", m.xOffset, *x)
	}
	if reason := m.engine.LastSkip(); reason != "" {
		fmt.Fprintf(&b, " (%s)", reason)
	}
	for _, k := range m.keys.shortHelp() {
		h := k.Help()
		b.WriteString("  ")
		b.WriteString(m.styles.HelpKey.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(m.styles.HelpDesc.Render(h.Desc))
	}
	return m.styles.Status.Render(ansi.Truncate(b.String(), max(m.width, 1), "…"))
}

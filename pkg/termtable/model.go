// Package termtable is a scrollable table for bubbletea programs whose body
// height follows the terminal.
//
// The table stacks an optional title, a search form, a header, the body (or
// an empty-state block), an optional summary and footer, and pagination.
// A [tablescroll.Engine] measures those parts through the rendered view and
// sizes the body so the whole table fits the terminal, or a fixed-height
// pane in parent-managed mode. Resizes, searches that change the row count,
// and focus changes all feed the engine's triggers.
package termtable

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/tablefit/pkg/cache"
	"github.com/matzehuels/tablefit/pkg/layout"
	"github.com/matzehuels/tablefit/pkg/tablescroll"
	"github.com/matzehuels/tablefit/pkg/trigger"
)

// DefaultPerPage is the page size when pagination is on.
const DefaultPerPage = 50

// Options configure a Model.
type Options struct {
	// Table identifies the table in logs and saved heights.
	Table string
	Title string

	Columns []layout.Column
	// Rows are aligned with Columns, hidden columns included. A nil slice
	// means the table has no data source yet.
	Rows [][]string

	// Config is the sizing configuration. Zero Metrics are replaced by
	// layout.TerminalMetrics.
	Config layout.Config

	// PerPage is the page size; zero uses DefaultPerPage.
	PerPage int

	// Search shows a search form above the table.
	Search bool

	// Nested draws the table inside a frame.
	Nested bool

	// ParentHeight places the table in a pane of that many rows and sizes
	// it to the pane instead of the terminal.
	ParentHeight int

	// Debounce and ResizeThrottle override the recalculation timings.
	Debounce       time.Duration
	ResizeThrottle time.Duration

	// Summary renders a line below the body from the filtered rows.
	Summary func(rows [][]string) string

	// Footer renders a custom footer from the rows on the current page and
	// the filtered rows. It is only shown when Config.Pagination is unset.
	Footer func(page, rows [][]string) string

	// NewRow generates the row appended by the add-row key.
	NewRow func(i int) []string

	Logger   *log.Logger
	Snapshot tablescroll.Snapshot
	// Dialog is told after every committed height.
	Dialog tablescroll.DialogHost
}

// Model is the bubbletea model of the table.
type Model struct {
	opts   Options
	keys   KeyMap
	styles Styles
	logger *log.Logger

	engine *tablescroll.Engine
	sched  *Scheduler

	search textinput.Model
	pager  paginator.Model
	vp     viewport.Model

	rows     [][]string
	filtered [][]string

	width, height int
	ready         bool
	nested        bool
	xOffset       int

	bodyHeight   *int
	markerHeight *int
	// released is set between the two phases of a recalculation, when the
	// body shows its natural height.
	released     bool
	hideY, hideX bool

	commits int
}

// New creates a table model.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg.Metrics == (layout.Metrics{}) {
		cfg.Metrics = layout.TerminalMetrics()
	}
	if opts.ParentHeight > 0 {
		cfg.CanResizeParent = true
		// The status line sits below the pane, not inside it.
		cfg.Metrics.BasePadding = 0
	}
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	if opts.Table == "" {
		opts.Table = "table"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Model{
		opts:   opts,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		logger: logger,
		sched:  NewScheduler(),
		rows:   opts.Rows,
		nested: opts.Nested,
		vp:     viewport.New(0, 0),
	}

	m.search = textinput.New()
	m.search.Prompt = "/ "
	m.search.Placeholder = "search"

	m.pager = paginator.New()
	m.pager.Type = paginator.Arabic
	m.pager.PerPage = opts.PerPage

	m.filter()

	r := regions{m}
	engineOpts := []tablescroll.Option{
		tablescroll.WithConfig(cfg),
		tablescroll.WithColumns(opts.Columns),
		tablescroll.WithContainer(r),
		tablescroll.WithViewport(r),
		tablescroll.WithScheduler(m.sched),
		tablescroll.WithLogger(logger),
		tablescroll.WithTableID(opts.Table),
		tablescroll.WithDialogHost(m),
		tablescroll.WithDataLength(len(m.filtered), m.rows != nil),
		tablescroll.WithTriggerOptions(trigger.Options{
			Debounce:       opts.Debounce,
			ResizeThrottle: opts.ResizeThrottle,
		}),
	}
	if opts.Snapshot != nil {
		engineOpts = append(engineOpts, tablescroll.WithSnapshot(opts.Snapshot))
	}
	m.engine = tablescroll.New(r, engineOpts...)
	return m
}

// Engine returns the layout engine of the table.
func (m *Model) Engine() *tablescroll.Engine { return m.engine }

// Commits returns the number of heights committed so far.
func (m *Model) Commits() int { return m.commits }

// RedoHeight implements tablescroll.DialogHost.
func (m *Model) RedoHeight() {
	m.commits++
	if m.opts.Dialog != nil {
		m.opts.Dialog.RedoHeight()
	}
}

// =============================================================================
// bubbletea
// =============================================================================

func (m *Model) Init() tea.Cmd {
	if m.opts.Search {
		return textinput.Blink
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if !m.sched.Handle(msg) {
		switch msg := msg.(type) {
		case tea.WindowSizeMsg:
			m.resize(msg.Width, msg.Height)
		case tea.FocusMsg:
			if m.ready && !m.engine.Active() {
				m.engine.Activate()
			}
		case tea.BlurMsg:
			m.engine.Deactivate()
		case tea.KeyMsg:
			cmds = append(cmds, m.handleKey(msg))
		default:
			if m.search.Focused() {
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}
	cmds = append(cmds, m.sched.Cmd())
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	return m.render(m.compose())
}

// resize records the terminal size. The first size mounts the table.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.search.Width = max(width-8, 10)
	if s, ok := m.opts.Snapshot.(interface{ SetEnv(cache.HeightKeyOpts) }); ok {
		s.SetEnv(cache.HeightKeyOpts{
			ViewportWidth:  width,
			ViewportHeight: height,
			Nested:         m.nested,
			ParentManaged:  m.parentManaged(),
		})
	}
	m.clampX()

	if !m.ready {
		m.ready = true
		m.engine.Activate()
		return
	}
	m.engine.Resize()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.search.Focused() {
		switch {
		case msg.String() == "ctrl+c":
			return m.quit()
		case key.Matches(msg, m.keys.Blur):
			m.search.Blur()
			return nil
		}
		prev := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != prev {
			m.refilter()
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.vp.SetYOffset(m.vp.YOffset - 1)
	case key.Matches(msg, m.keys.Down):
		m.vp.SetYOffset(m.vp.YOffset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.vp.SetYOffset(m.vp.YOffset - m.vp.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.vp.SetYOffset(m.vp.YOffset + m.vp.Height)
	case key.Matches(msg, m.keys.Left):
		m.xOffset -= scrollStep
		m.clampX()
	case key.Matches(msg, m.keys.Right):
		m.xOffset += scrollStep
		m.clampX()
	case key.Matches(msg, m.keys.NextPage):
		if !m.pager.OnLastPage() {
			m.pager.NextPage()
			m.vp.SetYOffset(0)
			m.engine.Redo()
		}
	case key.Matches(msg, m.keys.PrevPage):
		if !m.pager.OnFirstPage() {
			m.pager.PrevPage()
			m.vp.SetYOffset(0)
			m.engine.Redo()
		}
	case key.Matches(msg, m.keys.Search):
		if m.opts.Search {
			return m.search.Focus()
		}
	case key.Matches(msg, m.keys.AddRow):
		m.AddRow()
	case key.Matches(msg, m.keys.DropRow):
		m.DropRow()
	case key.Matches(msg, m.keys.Resize):
		cfg := m.engine.Config()
		cfg.CanResize = !cfg.CanResize
		m.engine.SetConfig(cfg)
	case key.Matches(msg, m.keys.Nested):
		m.nested = !m.nested
		m.clampX()
		m.engine.Redo()
	case key.Matches(msg, m.keys.Redo):
		m.engine.Redo()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.engine.Deactivate()
	return tea.Quit
}

// =============================================================================
// Data
// =============================================================================

// AddRow appends a generated row.
func (m *Model) AddRow() {
	i := len(m.rows) + 1
	var row []string
	if m.opts.NewRow != nil {
		row = m.opts.NewRow(i)
	} else {
		row = make([]string, len(m.opts.Columns))
		for j, c := range m.opts.Columns {
			row[j] = fmt.Sprintf("%s-%d", c.Key, i)
		}
	}
	if m.rows == nil {
		m.rows = [][]string{}
	}
	m.rows = append(m.rows, row)
	m.refilter()
}

// DropRow removes the last row.
func (m *Model) DropRow() {
	if len(m.rows) == 0 {
		return
	}
	m.rows = m.rows[:len(m.rows)-1]
	m.refilter()
}

// SetRows replaces the data source. Nil removes it.
func (m *Model) SetRows(rows [][]string) {
	m.rows = rows
	m.refilter()
}

// refilter applies the search and tells the engine about the new length.
func (m *Model) refilter() {
	m.filter()
	if m.engine.ScrollState().ScrollToFirstRowOnChange {
		m.pager.Page = 0
		m.vp.SetYOffset(0)
	}
	m.engine.SetDataLength(len(m.filtered), m.rows != nil)
}

func (m *Model) filter() {
	q := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if q == "" {
		m.filtered = m.rows
	} else {
		m.filtered = make([][]string, 0, len(m.rows))
		for _, row := range m.rows {
			for _, v := range row {
				if strings.Contains(strings.ToLower(v), q) {
					m.filtered = append(m.filtered, row)
					break
				}
			}
		}
	}

	if len(m.filtered) == 0 {
		m.pager.TotalPages = 1
	} else {
		m.pager.SetTotalPages(len(m.filtered))
	}
	if m.pager.Page >= m.pager.TotalPages {
		m.pager.Page = m.pager.TotalPages - 1
	}
}

// pageRows returns the rows shown on the current page.
func (m *Model) pageRows() [][]string {
	if !m.paginationEnabled() {
		return m.filtered
	}
	start, end := m.pager.GetSliceBounds(len(m.filtered))
	return m.filtered[start:end]
}

func (m *Model) paginationEnabled() bool {
	return m.engine == nil || m.engine.Config().Pagination != layout.ToggleOff
}

// paginationActive reports whether the pagination bar is rendered. Like
// most table widgets, it hides while there is nothing to page through.
func (m *Model) paginationActive() bool {
	return m.paginationEnabled() && len(m.filtered) > 0
}

func (m *Model) footerActive() bool {
	return m.opts.Footer != nil && m.engine.Config().Pagination == layout.ToggleUnset
}

func (m *Model) parentManaged() bool { return m.opts.ParentHeight > 0 }

func (m *Model) clampX() {
	limit := max(contentWidth(m.columnWidths())-m.tableWidth(), 0)
	m.xOffset = min(max(m.xOffset, 0), limit)
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tablefit/pkg/cache"
	"github.com/matzehuels/tablefit/pkg/layout"
	"github.com/matzehuels/tablefit/pkg/tablescroll"
	"github.com/matzehuels/tablefit/pkg/termtable"
)

// demoOpts are the flags of the demo command. Set flags override the file.
type demoOpts struct {
	file         string
	rows         int
	perPage      int
	title        string
	search       bool
	nested       bool
	parentHeight int
	footer       bool
	summary      bool
	noPagination bool
	noResize     bool
	minHeight    int
	maxHeight    int
	noCache      bool
	logFile      string
	debounce     time.Duration
	throttle     time.Duration
}

// demoColumns are used when the table file has none.
var demoColumns = []layout.Column{
	{Key: "id", Title: "ID", Width: 6},
	{Key: "customer", Title: "Customer"},
	{Key: "status", Title: "Status", Width: 10},
	{Key: "region", Title: "Region"},
	{Key: "amount", Title: "Amount", Width: 10},
	{Key: "note", Title: "Note", DefaultHidden: true},
}

var (
	demoCustomers = []string{"Acme Corp", "Globex", "Initech", "Umbrella", "Hooli", "Stark Industries", "Wayne Enterprises"}
	demoStatuses  = []string{"open", "paid", "shipped", "refunded"}
	demoRegions   = []string{"eu-west", "us-east", "ap-south", "sa-east"}
)

// demoCommand creates the demo command.
func (c *CLI) demoCommand() *cobra.Command {
	var opts demoOpts

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive table that sizes itself to the terminal",
		Long: `Run an interactive table whose body height follows the terminal.

Resize the terminal, search, page, add and drop rows, and toggle the frame
or automatic resizing to watch the height being recomputed. The status line
shows the committed height.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tableOpts, closeLog, err := c.demoOptions(cmd, opts)
			if err != nil {
				return err
			}
			defer closeLog()

			m := termtable.New(tableOpts)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithReportFocus(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			printSuccess("Last height %d (%d commits)", m.Engine().TableHeight(), m.Commits())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "table file with [table], [metrics] and [[columns]]")
	cmd.Flags().IntVar(&opts.rows, "rows", 120, "number of generated rows (0 for an empty table, -1 for no data source)")
	cmd.Flags().IntVar(&opts.perPage, "per-page", termtable.DefaultPerPage, "rows per page")
	cmd.Flags().StringVar(&opts.title, "title", "Orders", "table title (empty for none)")
	cmd.Flags().BoolVar(&opts.search, "search", true, "show the search form")
	cmd.Flags().BoolVar(&opts.nested, "nested", false, "draw the table inside a frame")
	cmd.Flags().IntVar(&opts.parentHeight, "parent-height", 0, "size the table to a pane of this many rows")
	cmd.Flags().BoolVar(&opts.footer, "footer", false, "render a custom footer")
	cmd.Flags().BoolVar(&opts.summary, "summary", true, "render a summary line")
	cmd.Flags().BoolVar(&opts.noPagination, "no-pagination", false, "turn pagination off")
	cmd.Flags().BoolVar(&opts.noResize, "no-resize", false, "start with automatic height disabled")
	cmd.Flags().IntVar(&opts.minHeight, "min-height", 0, "lower bound of the body height")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", 0, "quiet time before a data change recalculates (default 200ms)")
	cmd.Flags().DurationVar(&opts.throttle, "resize-throttle", 0, "minimum time between resize recalculations (default 280ms)")
	cmd.Flags().IntVar(&opts.maxHeight, "max-height", 0, "upper bound of the body height")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not restore or save the last height")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (the table owns the terminal)")

	return cmd
}

// demoOptions builds the table options from the file and flags. The
// returned function releases the log file and the height cache.
func (c *CLI) demoOptions(cmd *cobra.Command, opts demoOpts) (termtable.Options, func(), error) {
	f := &tableFile{}
	if opts.file != "" {
		var err error
		if f, err = loadTableFile(opts.file); err != nil {
			return termtable.Options{}, nil, err
		}
	}
	applyDemoFlags(cmd, f, opts)
	if err := f.validate(); err != nil {
		return termtable.Options{}, nil, err
	}

	logger, closeLog, err := c.demoLogger(opts.logFile)
	if err != nil {
		return termtable.Options{}, nil, err
	}

	cols := f.Columns
	if len(cols) == 0 {
		cols = demoColumns
	}
	cfg := f.config(layout.TerminalMetrics())
	if opts.noPagination {
		cfg.Pagination = layout.ToggleOff
	}

	to := termtable.Options{
		Table:          f.tableID("demo"),
		Title:          opts.title,
		Columns:        cols,
		Rows:           demoRows(cols, opts.rows),
		Config:         cfg,
		PerPage:        opts.perPage,
		Search:         opts.search,
		Nested:         opts.nested,
		ParentHeight:   opts.parentHeight,
		Debounce:       opts.debounce,
		ResizeThrottle: opts.throttle,
		NewRow:         func(i int) []string { return demoRow(cols, i) },
		Logger:         logger,
	}
	if opts.summary {
		to.Summary = func(rows [][]string) string {
			return fmt.Sprintf("%d rows", len(rows))
		}
	}
	if opts.footer {
		to.Footer = func(page, rows [][]string) string {
			return fmt.Sprintf("showing %d of %d", len(page), len(rows))
		}
	}
	if !opts.noCache {
		store, err := newCache(false)
		if err != nil {
			logger.Warn("height cache unavailable", "err", err)
			return to, closeLog, nil
		}
		keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName)
		to.Snapshot = tablescroll.NewCacheSnapshot(store, keyer, logger)
		return to, func() {
			store.Close()
			closeLog()
		}, nil
	}
	return to, closeLog, nil
}

func applyDemoFlags(cmd *cobra.Command, f *tableFile, opts demoOpts) {
	flags := cmd.Flags()
	if flags.Changed("no-resize") {
		canResize := !opts.noResize
		f.Table.CanResize = &canResize
	}
	if flags.Changed("min-height") {
		f.Table.MinHeight = opts.minHeight
	}
	if flags.Changed("max-height") {
		maxHeight := opts.maxHeight
		f.Table.MaxHeight = &maxHeight
	}
	if opts.parentHeight > 0 {
		f.Table.CanResizeParent = true
	}
}

// demoLogger returns a logger for the running table. Without a log file
// logs are discarded, since the table owns the terminal.
func (c *CLI) demoLogger(path string) (*log.Logger, func(), error) {
	level := c.Logger.GetLevel()
	if path == "" {
		return newLogger(io.Discard, level), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(file, level), func() { file.Close() }, nil
}

// demoRows generates n rows; a negative n means no data source.
func demoRows(cols []layout.Column, n int) [][]string {
	if n < 0 {
		return nil
	}
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = demoRow(cols, i+1)
	}
	return rows
}

// demoRow generates row i. Known demo columns get plausible values; other
// columns get "<key> <i>".
func demoRow(cols []layout.Column, i int) []string {
	row := make([]string, len(cols))
	for j, col := range cols {
		switch col.Key {
		case "id":
			row[j] = "#" + strconv.Itoa(1000+i)
		case "customer":
			row[j] = demoCustomers[i%len(demoCustomers)]
		case "status":
			row[j] = demoStatuses[i%len(demoStatuses)]
		case "region":
			row[j] = demoRegions[(i/3)%len(demoRegions)]
		case "amount":
			row[j] = fmt.Sprintf("%d.%02d", (i*7919)%5000, (i*31)%100)
		default:
			row[j] = col.Key + " " + strconv.Itoa(i)
		}
	}
	return row
}

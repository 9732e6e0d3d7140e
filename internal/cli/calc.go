package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tablefit/pkg/layout"
	"github.com/matzehuels/tablefit/pkg/tablescroll"
	"github.com/matzehuels/tablefit/pkg/trigger"
)

// calcOpts are the flags of the calc command. Set flags override the file.
type calcOpts struct {
	spaceBelow int
	tableWidth int
	minHeight  int
	maxHeight  int
	offset     int
	nested     bool
	noResize   bool
}

// calcResult is one evaluated scenario.
type calcResult struct {
	Table     string
	Breakdown layout.Breakdown
	Committed bool
	Skip      tablescroll.SkipReason
	Scroll    tablescroll.ScrollState
	Marker    *int
	HideY     bool
	HideX     bool
}

// calcCommand creates the calc command.
func (c *CLI) calcCommand() *cobra.Command {
	var opts calcOpts

	cmd := &cobra.Command{
		Use:   "calc <table.toml>",
		Short: "Compute the body height of a table scenario",
		Long: `Compute the body height and scroll sizes for the region sizes described in
the [measure] section of a table file, and print every term of the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadTableFile(args[0])
			if err != nil {
				return err
			}
			applyCalcFlags(cmd, f, opts)
			if err := f.validate(); err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			res := runCalc(f, loggerFromContext(cmd.Context()))
			printCalc(cmd.OutOrStdout(), res)
			prog.done("Evaluated " + res.Table)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.spaceBelow, "space-below", 0, "distance from the header to the bottom of the viewport")
	cmd.Flags().IntVar(&opts.tableWidth, "table-width", 0, "rendered width of the table")
	cmd.Flags().IntVar(&opts.minHeight, "min-height", 0, "lower bound of the body height")
	cmd.Flags().IntVar(&opts.maxHeight, "max-height", 0, "upper bound of the body height")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "extra rows subtracted from the available height")
	cmd.Flags().BoolVar(&opts.nested, "nested", false, "table sits inside the app layout chrome")
	cmd.Flags().BoolVar(&opts.noResize, "no-resize", false, "disable automatic body height")

	return cmd
}

func applyCalcFlags(cmd *cobra.Command, f *tableFile, opts calcOpts) {
	flags := cmd.Flags()
	if flags.Changed("space-below") {
		f.Measure.SpaceBelow = opts.spaceBelow
	}
	if flags.Changed("table-width") {
		f.Measure.TableWidth = opts.tableWidth
	}
	if flags.Changed("min-height") {
		f.Table.MinHeight = opts.minHeight
	}
	if flags.Changed("max-height") {
		maxHeight := opts.maxHeight
		f.Table.MaxHeight = &maxHeight
	}
	if flags.Changed("offset") {
		f.Table.ResizeHeightOffset = opts.offset
	}
	if flags.Changed("nested") {
		f.Measure.Nested = opts.nested
	}
	if flags.Changed("no-resize") {
		canResize := !opts.noResize
		f.Table.CanResize = &canResize
	}
}

// runCalc mounts the scenario and lets every queued recalculation finish.
func runCalc(f *tableFile, logger *log.Logger) calcResult {
	s := f.static()
	clock := trigger.NewManual()
	id := f.tableID("scenario")

	rows := 1
	if f.Measure.Rows != nil {
		rows = *f.Measure.Rows
	}
	hasRows := !f.Measure.NoData

	e := tablescroll.New(s,
		tablescroll.WithConfig(f.config(layout.DefaultMetrics())),
		tablescroll.WithColumns(f.Columns),
		tablescroll.WithContainer(s),
		tablescroll.WithScheduler(clock),
		tablescroll.WithLogger(logger),
		tablescroll.WithTableID(id),
		tablescroll.WithDataLength(rows, hasRows),
	)
	e.Activate()
	clock.Flush()

	res := calcResult{
		Table:     id,
		Breakdown: e.Breakdown(),
		Committed: e.Committed(),
		Skip:      e.LastSkip(),
		Scroll:    e.ScrollState(),
		HideY:     s.RootBox.HideY,
		HideX:     s.RootBox.HideX,
	}
	if s.Empty != nil {
		res.Marker = s.Empty.Style
	}
	return res
}

func printCalc(w io.Writer, res calcResult) {
	fmt.Fprintln(w, StyleTitle.Render(res.Table))

	if !res.Committed {
		reason := string(res.Skip)
		if reason == "" {
			reason = "nothing to compute"
		}
		fmt.Fprintln(w, StyleWarning.Render("no height computed: "+reason))
	} else {
		b := res.Breakdown
		rows := [][]string{
			{"mode", b.Mode.String()},
			{"bottom", strconv.Itoa(b.Bottom)},
			{"offset", "-" + strconv.Itoa(b.Offset)},
			{"padding", "-" + strconv.Itoa(b.Padding)},
			{"pagination", "-" + strconv.Itoa(b.Pagination)},
			{"footer", "-" + strconv.Itoa(b.Footer)},
			{"header", "-" + strconv.Itoa(b.Header)},
			{"raw", strconv.Itoa(b.Raw)},
			{"clamp", b.Clamp.String()},
			{"height", strconv.Itoa(b.Height)},
		}
		fmt.Fprintln(w, termTable([]string{"Term", "Value"}, rows).Render())
	}

	scroll := [][]string{
		{"x", optInt(res.Scroll.X)},
		{"y", optInt(res.Scroll.Y)},
		{"scroll to first row", strconv.FormatBool(res.Scroll.ScrollToFirstRowOnChange)},
		{"hide scrollbar y", strconv.FormatBool(res.HideY)},
		{"hide scrollbar x", strconv.FormatBool(res.HideX)},
	}
	if res.Marker != nil {
		scroll = append(scroll, []string{"empty marker", strconv.Itoa(*res.Marker)})
	}
	fmt.Fprintln(w, termTable([]string{"Scroll", "Value"}, scroll).Render())
}

func termTable(headers []string, rows [][]string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return StyleNumber.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		})
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

package termtable

import "github.com/charmbracelet/lipgloss"

// Palette, shared with the CLI output.
var (
	colorCyan  = lipgloss.Color("14")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
	colorWhite = lipgloss.Color("15")
	colorBlue  = lipgloss.Color("12")
)

// Styles are the lipgloss styles of every part of the table.
type Styles struct {
	Title      lipgloss.Style
	Form       lipgloss.Style
	Header     lipgloss.Style
	Rule       lipgloss.Style
	Row        lipgloss.Style
	RowAlt     lipgloss.Style
	Empty      lipgloss.Style
	Summary    lipgloss.Style
	Footer     lipgloss.Style
	Pagination lipgloss.Style
	Track      lipgloss.Style
	Thumb      lipgloss.Style
	Frame      lipgloss.Style
	Status     lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Form:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		Rule:       lipgloss.NewStyle().Foreground(colorDim),
		Row:        lipgloss.NewStyle(),
		RowAlt:     lipgloss.NewStyle().Foreground(colorGray),
		Empty:      lipgloss.NewStyle().Foreground(colorDim).Italic(true),
		Summary:    lipgloss.NewStyle().Foreground(colorGray),
		Footer:     lipgloss.NewStyle().Foreground(colorGray).Italic(true),
		Pagination: lipgloss.NewStyle().Foreground(colorBlue),
		Track:      lipgloss.NewStyle().Foreground(colorDim),
		Thumb:      lipgloss.NewStyle().Foreground(colorCyan),
		Frame:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).MarginBottom(1),
		Status:     lipgloss.NewStyle().Foreground(colorDim),
		HelpKey:    lipgloss.NewStyle().Foreground(colorGray),
		HelpDesc:   lipgloss.NewStyle().Foreground(colorDim),
	}
}

package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Width is a column width. It accepts plain numbers as well as CSS-like
// strings ("120", "120px", "80.5"): only the leading number counts, and
// anything unparsable is an unset width.
type Width float64

// ParseWidth reads the leading decimal number of s. It reports false when s
// does not start with a number.
func ParseWidth(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := numberPrefix(s)
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numberPrefix returns the length of the longest prefix of s that forms a
// decimal floating point literal.
func numberPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// UnmarshalTOML implements toml.Unmarshaler.
func (w *Width) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		*w = Width(x)
	case float64:
		*w = Width(x)
	case string:
		f, _ := ParseWidth(x)
		*w = Width(f)
	default:
		return fmt.Errorf("column width: unsupported value %v (%T)", v, v)
	}
	return nil
}

// Column is the sizing metadata of one table column.
type Column struct {
	Key   string `toml:"key"`
	Title string `toml:"title"`
	// Width is the explicit width; zero means the column sizes itself.
	Width Width `toml:"width"`
	// DefaultHidden columns are never rendered and never counted.
	DefaultHidden bool `toml:"default_hidden"`
}

// Visible returns the columns that are not permanently hidden.
func Visible(cols []Column) []Column {
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if !c.DefaultHidden {
			out = append(out, c)
		}
	}
	return out
}

// ExplicitWidth sums the explicit widths of the visible columns.
func ExplicitWidth(cols []Column) float64 {
	var sum float64
	for _, c := range Visible(cols) {
		if c.Width > 0 {
			sum += float64(c.Width)
		}
	}
	return sum
}

// ScrollWidth returns the horizontal scroll width for a table rendered
// tableWidth wide. It reports false when no horizontal scrolling is needed:
// the table has no width yet, no column has an explicit width, or the table
// is already wider than its columns.
func ScrollWidth(cols []Column, tableWidth int) (int, bool) {
	sum := ExplicitWidth(cols)
	if tableWidth == 0 || sum == 0 || float64(tableWidth) > sum {
		return 0, false
	}
	return int(math.Ceil(sum)), true
}

package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
)

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ParseResult is the outcome of parsing one input string.
type ParseResult struct {
	Input         string `json:"input"`
	Valid         bool   `json:"valid"`
	Date          string `json:"date,omitempty"`
	Display       string `json:"display,omitempty"`
	MatchedFormat string `json:"matched_format,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ParseInput parses text against formats and formats a hit with display.
func ParseInput(text string, display dateformat.Layout, formats []dateformat.Layout, today calendar.Date) ParseResult {
	res := ParseResult{Input: text}
	d, l, err := dateformat.Match(text, formats, today)
	if err != nil {
		switch {
		case errors.Is(err, dateformat.ErrInvalidDate):
			res.Error = "not a calendar date"
		default:
			res.Error = "no format matched"
		}
		return res
	}
	res.Valid = true
	res.Date = d.String()
	res.Display = display.Format(d)
	res.MatchedFormat = l.String()
	return res
}

// FormatParseResults writes one line per result.
func FormatParseResults(w io.Writer, results []ParseResult) {
	for _, r := range results {
		if !r.Valid {
			fmt.Fprintf(w, "%-16s  invalid (%s)\n", r.Input, r.Error)
			continue
		}
		fmt.Fprintf(w, "%-16s  %s  %s  [%s]\n", r.Input, r.Date, r.Display, r.MatchedFormat)
	}
}

// FormatFieldValues writes submitted form values as "name: value" lines.
func FormatFieldValues(w io.Writer, values []FieldValue) {
	for _, v := range values {
		fmt.Fprintf(w, "%s: %s\n", v.Name, v.Value)
	}
}

// CellJSON is the JSON representation of one day cell.
type CellJSON struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	InMonth  bool   `json:"in_month"`
	Selected bool   `json:"selected"`
	Today    bool   `json:"today"`
}

// GridJSON is the JSON representation of a month grid.
type GridJSON struct {
	Label    string     `json:"label"`
	Month    string     `json:"month"`
	Weekdays []string   `json:"weekdays"`
	Selected string     `json:"selected,omitempty"`
	Cells    []CellJSON `json:"cells"`
}

// ToGridJSON converts a grid for JSON output.
func ToGridJSON(g calendar.Grid) GridJSON {
	out := GridJSON{
		Label:    g.Label(),
		Month:    fmt.Sprintf("%04d-%02d", g.Month.Year(), int(g.Month.Month())),
		Weekdays: append([]string(nil), calendar.Weekdays[:]...),
		Cells:    make([]CellJSON, len(g.Cells)),
	}
	if d := g.Selected(); !d.IsZero() {
		out.Selected = d.String()
	}
	for i, c := range g.Cells {
		out.Cells[i] = CellJSON{
			Date:     c.Date.String(),
			Day:      c.Date.Day(),
			InMonth:  c.InCurrentMonth,
			Selected: c.IsSelected,
			Today:    c.IsToday,
		}
	}
	return out
}

// FormatGrid writes a month grid as plain text. The selected day is
// bracketed, today is parenthesized and days of adjacent months are left
// blank.
func FormatGrid(w io.Writer, g calendar.Grid) {
	const slot = 4
	width := 7 * slot

	fmt.Fprintln(w, strings.TrimRight(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.Label()), " "))

	var head strings.Builder
	for _, wd := range calendar.Weekdays {
		fmt.Fprintf(&head, " %s ", wd)
	}
	fmt.Fprintln(w, strings.TrimRight(head.String(), " "))

	for _, row := range g.Rows() {
		var line strings.Builder
		for _, c := range row {
			switch {
			case !c.InCurrentMonth:
				line.WriteString(strings.Repeat(" ", slot))
			case c.IsSelected:
				fmt.Fprintf(&line, "[%2d]", c.Date.Day())
			case c.IsToday:
				fmt.Fprintf(&line, "(%2d)", c.Date.Day())
			default:
				fmt.Fprintf(&line, " %2d ", c.Date.Day())
			}
		}
		if s := strings.TrimRight(line.String(), " "); s != "" {
			fmt.Fprintln(w, s)
		}
	}
}

// FormatsMarkdown describes the display layout and the accepted input
// formats as a markdown document, with today's date as the example.
func FormatsMarkdown(display dateformat.Layout, formats []dateformat.Layout, today calendar.Date) string {
	var b strings.Builder
	b.WriteString("# Date formats\n\n")
	fmt.Fprintf(&b, "Dates are written as `%s`, for example `%s`.\n\n", display, display.Format(today))
	b.WriteString("Input is matched against these formats, first match wins:\n\n")
	b.WriteString("| # | Format | Example |\n")
	b.WriteString("|---|--------|---------|\n")
	for i, l := range formats {
		fmt.Fprintf(&b, "| %d | `%s` | `%s` |\n", i+1, l, l.Format(today))
	}
	b.WriteString("\nFormats without a year use the current year. ")
	b.WriteString("Formats without a month or day use the first.\n")
	return b.String()
}

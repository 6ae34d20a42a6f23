package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/picker"
)

// Calendar geometry. Every row of the box is laid out on the same seven
// three-column slots, so one division maps a column to a weekday or a
// navigation control.
const (
	cellWidth    = 3 // two digits and a gap
	gridWidth    = 7*cellWidth - 1
	headerRows   = 3 // month label, navigation, weekdays
	calendarRows = headerRows + calendar.GridSize/7

	// The box adds a border on every side and one column of padding.
	boxInsetX = 2
	boxInsetY = 1
	boxWidth  = gridWidth + 2*boxInsetX
	boxHeight = calendarRows + 2*boxInsetY
)

// navSlots places the controls in the navigation row.
var navSlots = map[int]picker.Control{
	0: picker.PrevYear,
	1: picker.PrevMonth,
	5: picker.NextMonth,
	6: picker.NextYear,
}

var navGlyphs = map[picker.Control]string{
	picker.PrevYear:  "«",
	picker.PrevMonth: "‹",
	picker.NextMonth: "›",
	picker.NextYear:  "»",
}

// calendarView implements picker.Renderer by keeping the last frame.
type calendarView struct {
	theme Theme
	state picker.State
	grid  calendar.Grid
}

func (v *calendarView) Render(s picker.State, g calendar.Grid) {
	v.state = s
	v.grid = g
}

// View renders the calendar box, or nothing while the picker is hidden.
func (v *calendarView) View() string {
	if !v.state.Shown {
		return ""
	}

	lines := make([]string, 0, calendarRows)
	lines = append(lines,
		v.theme.HeaderStyle().Render(lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, v.grid.Label())),
		v.navRow(),
		v.theme.HelpStyle().Render(strings.Join(calendar.Weekdays[:], " ")),
	)
	for _, row := range v.grid.Rows() {
		cells := make([]string, len(row))
		for i, c := range row {
			highlighted := c.Date == v.state.Highlighted
			cells[i] = v.theme.CellStyle(c, highlighted).Render(fmt.Sprintf("%2d", c.Date.Day()))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return v.theme.BorderStyle().Render(strings.Join(lines, "\n"))
}

func (v *calendarView) navRow() string {
	slots := make([]string, 7)
	for i := range slots {
		slots[i] = "  "
		if c, ok := navSlots[i]; ok {
			slots[i] = v.theme.AccentStyle().Render(" " + navGlyphs[c])
		}
	}
	return strings.Join(slots, " ")
}

type hitKind int

const (
	hitNone hitKind = iota
	hitPicker
	hitCell
	hitControl
)

type hit struct {
	kind    hitKind
	date    calendar.Date
	control picker.Control
}

// hitTest maps a position relative to the top-left corner of the box to
// the element under it. Borders, padding and headers count as the picker
// area.
func (v *calendarView) hitTest(x, y int) hit {
	if x < 0 || y < 0 || x >= boxWidth || y >= boxHeight {
		return hit{}
	}
	col, row := x-boxInsetX, y-boxInsetY
	if col < 0 || col >= gridWidth || row < 0 || row >= calendarRows {
		return hit{kind: hitPicker}
	}

	slot := col / cellWidth
	switch {
	case row == 1:
		if c, ok := navSlots[slot]; ok {
			return hit{kind: hitControl, control: c}
		}
	case row >= headerRows:
		idx := (row-headerRows)*7 + slot
		return hit{kind: hitCell, date: v.grid.Cells[idx].Date}
	}
	return hit{kind: hitPicker}
}

package calendar

import "fmt"

// GridSize is the number of cells in a month grid: six full weeks.
const GridSize = 42

// Weekdays is the fixed header row of the grid, starting on Sunday.
var Weekdays = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// DayCell is one day in a month grid.
type DayCell struct {
	Date           Date
	InCurrentMonth bool
	IsSelected     bool
	IsToday        bool
}

// Grid is the 42-day block displayed for one month, in row-major order
// starting on a Sunday.
type Grid struct {
	// Month is the first day of the month the grid was built for.
	Month Date
	Cells [GridSize]DayCell
}

// BuildGrid returns the grid for anchor's month. A non-zero selected date
// marks the matching cell as selected.
func BuildGrid(anchor, selected Date) Grid {
	return BuildGridAt(anchor, selected, Date{})
}

// BuildGridAt is BuildGrid with a reference "today" used to flag the
// current day. A zero today flags nothing.
func BuildGridAt(anchor, selected, today Date) Grid {
	monthStart := anchor.StartOfMonth()
	monthEnd := anchor.EndOfMonth()

	// Step back from the last day of the previous month to the Sunday on
	// or before it. This always leaves at least one padding day in front
	// and keeps the whole month inside six weeks.
	first := monthStart.AddDays(-1)
	first = first.AddDays(-((int(first.Weekday()) + 7) % 7))

	g := Grid{Month: monthStart}
	day := first
	for i := range g.Cells {
		g.Cells[i] = DayCell{
			Date:           day,
			InCurrentMonth: !day.Before(monthStart) && !day.After(monthEnd),
			IsSelected:     !selected.IsZero() && day == selected,
			IsToday:        !today.IsZero() && day == today,
		}
		day = day.AddDays(1)
	}
	return g
}

// Rows splits the grid into its six weeks.
func (g Grid) Rows() [][]DayCell {
	rows := make([][]DayCell, 0, GridSize/7)
	for i := 0; i < GridSize; i += 7 {
		rows = append(rows, g.Cells[i:i+7])
	}
	return rows
}

// Index returns the position of d in the grid, or -1.
func (g Grid) Index(d Date) int {
	for i, c := range g.Cells {
		if c.Date == d {
			return i
		}
	}
	return -1
}

// Selected returns the selected cell's date, or the zero Date.
func (g Grid) Selected() Date {
	for _, c := range g.Cells {
		if c.IsSelected {
			return c.Date
		}
	}
	return Date{}
}

// Label returns the month heading, e.g. "June 2021".
func (g Grid) Label() string {
	return fmt.Sprintf("%s %d", g.Month.Month(), g.Month.Year())
}

package calendar_test

import (
	"testing"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
)

// gridAnchors covers every month of a leap year and a common year, plus a
// February that starts on a Sunday (2015) and fits in exactly four rows.
func gridAnchors() []calendar.Date {
	var anchors []calendar.Date
	for _, year := range []int{2015, 2020, 2021} {
		for m := time.January; m <= time.December; m++ {
			anchors = append(anchors, calendar.New(year, m, 1))
		}
	}
	return anchors
}

func TestBuildGridShape(t *testing.T) {
	for _, anchor := range gridAnchors() {
		t.Run(anchor.String(), func(t *testing.T) {
			g := calendar.BuildGrid(anchor, calendar.Date{})

			if len(g.Cells) != calendar.GridSize {
				t.Fatalf("expected %d cells, got %d", calendar.GridSize, len(g.Cells))
			}
			if wd := g.Cells[0].Date.Weekday(); wd != time.Sunday {
				t.Errorf("first cell is %v, want Sunday", wd)
			}
			for i := 6; i < calendar.GridSize; i += 7 {
				if wd := g.Cells[i].Date.Weekday(); wd != time.Saturday {
					t.Errorf("cell %d is %v, want Saturday", i, wd)
				}
			}
			for i := 1; i < calendar.GridSize; i++ {
				if g.Cells[i].Date != g.Cells[i-1].Date.AddDays(1) {
					t.Fatalf("gap between cell %d (%s) and %d (%s)", i-1, g.Cells[i-1].Date, i, g.Cells[i].Date)
				}
			}
		})
	}
}

func TestBuildGridMonthMembership(t *testing.T) {
	for _, first := range gridAnchors() {
		// Anchor late in the month; only the month matters.
		anchor := first.AddDays(27)
		t.Run(anchor.String(), func(t *testing.T) {
			g := calendar.BuildGrid(anchor, calendar.Date{})

			seen := make(map[int]int)
			for _, c := range g.Cells {
				inMonth := c.Date.SameMonth(anchor)
				if c.InCurrentMonth != inMonth {
					t.Errorf("%s: InCurrentMonth = %v, want %v", c.Date, c.InCurrentMonth, inMonth)
				}
				if inMonth {
					seen[c.Date.Day()]++
				}
			}

			days := calendar.DaysIn(anchor.Year(), anchor.Month())
			if len(seen) != days {
				t.Errorf("month has %d distinct days in the grid, want %d", len(seen), days)
			}
			for day := 1; day <= days; day++ {
				if seen[day] != 1 {
					t.Errorf("day %d appears %d times, want 1", day, seen[day])
				}
			}
		})
	}
}

func TestBuildGridAlwaysPadsFront(t *testing.T) {
	// August 2021 starts on a Sunday; the grid still opens with the last
	// week of July.
	g := calendar.BuildGrid(calendar.New(2021, time.August, 1), calendar.Date{})

	if got := g.Cells[0].Date.String(); got != "2021-07-25" {
		t.Errorf("first cell = %s, want 2021-07-25", got)
	}
	if g.Cells[0].InCurrentMonth {
		t.Error("expected first cell outside the month")
	}
	if got := g.Cells[7].Date.String(); got != "2021-08-01" {
		t.Errorf("cell 7 = %s, want 2021-08-01", got)
	}
}

func TestBuildGridSelection(t *testing.T) {
	anchor := calendar.New(2021, time.June, 1)
	selected := calendar.New(2021, time.June, 15)
	g := calendar.BuildGrid(anchor, selected)

	count := 0
	for _, c := range g.Cells {
		if c.IsSelected {
			count++
			if c.Date != selected {
				t.Errorf("selected cell is %s, want %s", c.Date, selected)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one selected cell, got %d", count)
	}
	if g.Selected() != selected {
		t.Errorf("Selected() = %s, want %s", g.Selected(), selected)
	}

	// A selection in an adjacent month is still marked when visible.
	g = calendar.BuildGrid(anchor, calendar.New(2021, time.July, 2))
	if idx := g.Index(calendar.New(2021, time.July, 2)); idx < 0 || !g.Cells[idx].IsSelected {
		t.Error("expected padding cell for July 2 to be selected")
	}

	g = calendar.BuildGrid(anchor, calendar.Date{})
	if !g.Selected().IsZero() {
		t.Error("expected no selected cell for zero selection")
	}
}

func TestBuildGridDeterministic(t *testing.T) {
	anchor := calendar.New(2021, time.June, 1)
	selected := calendar.New(2021, time.June, 3)
	if calendar.BuildGrid(anchor, selected) != calendar.BuildGrid(anchor, selected) {
		t.Error("expected identical grids for identical input")
	}
}

func TestBuildGridAtToday(t *testing.T) {
	today := calendar.New(2021, time.June, 9)
	g := calendar.BuildGridAt(calendar.New(2021, time.June, 1), calendar.Date{}, today)

	idx := g.Index(today)
	if idx < 0 {
		t.Fatal("expected today in grid")
	}
	for i, c := range g.Cells {
		if c.IsToday != (i == idx) {
			t.Errorf("cell %d (%s): IsToday = %v", i, c.Date, c.IsToday)
		}
	}
}

func TestGridRowsAndLabel(t *testing.T) {
	g := calendar.BuildGrid(calendar.New(2021, time.June, 1), calendar.Date{})

	rows := g.Rows()
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 7 {
			t.Errorf("row %d has %d cells", i, len(row))
		}
	}
	if got := g.Label(); got != "June 2021" {
		t.Errorf("Label() = %q, want %q", got, "June 2021")
	}
	if g.Index(calendar.New(2030, time.January, 1)) != -1 {
		t.Error("expected -1 for a date outside the grid")
	}
}

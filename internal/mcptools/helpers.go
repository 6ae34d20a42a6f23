package mcptools

import (
	"fmt"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
)

var isoLayout = dateformat.MustCompile("YYYY-MM-DD")

func parseISODate(s string, today calendar.Date) (calendar.Date, error) {
	d, err := isoLayout.Parse(s, today)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("date %q: %w", s, err)
	}
	return d, nil
}

// layoutsOr compiles patterns, falling back to defaults when none are given.
func layoutsOr(patterns []string, defaults []dateformat.Layout) ([]dateformat.Layout, error) {
	if len(patterns) == 0 {
		return defaults, nil
	}
	return dateformat.CompileAll(patterns)
}

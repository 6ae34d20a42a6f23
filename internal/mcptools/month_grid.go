package mcptools

import (
	"context"
	"fmt"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MonthGridHandler returns the handler function for the month_grid MCP tool.
func MonthGridHandler(opts Options) func(ctx context.Context, req *mcp.CallToolRequest, input MonthGridInput) (*mcp.CallToolResult, MonthGridOutput, error) {
	opts = opts.withDefaults()
	return func(ctx context.Context, req *mcp.CallToolRequest, input MonthGridInput) (*mcp.CallToolResult, MonthGridOutput, error) {
		today := opts.today()

		anchor := today
		if input.Month != "" {
			d, _, err := dateformat.Match(input.Month, opts.Formats, today)
			if err != nil {
				return nil, MonthGridOutput{}, fmt.Errorf("month: %w", err)
			}
			anchor = d
		}

		var selected calendar.Date
		if input.Selected != "" {
			d, _, err := dateformat.Match(input.Selected, opts.Formats, today)
			if err != nil {
				return nil, MonthGridOutput{}, fmt.Errorf("selected: %w", err)
			}
			selected = d
		}

		return nil, gridOutput(calendar.BuildGridAt(anchor, selected, today)), nil
	}
}

func gridOutput(g calendar.Grid) MonthGridOutput {
	out := MonthGridOutput{
		Label:    g.Label(),
		Month:    fmt.Sprintf("%04d-%02d", g.Month.Year(), int(g.Month.Month())),
		Weekdays: append([]string(nil), calendar.Weekdays[:]...),
		Cells:    make([]CellResult, 0, calendar.GridSize),
	}
	if d := g.Selected(); !d.IsZero() {
		out.Selected = d.String()
	}
	for _, c := range g.Cells {
		out.Cells = append(out.Cells, CellResult{
			Date:     c.Date.String(),
			Day:      c.Date.Day(),
			InMonth:  c.InCurrentMonth,
			Selected: c.IsSelected,
			Today:    c.IsToday,
		})
	}
	return out
}

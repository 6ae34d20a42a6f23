package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
	"github.com/chris-regnier/datepick/internal/ui"
	"github.com/spf13/cobra"
)

var (
	gridSelect string
	gridMonths int
)

var gridCmd = &cobra.Command{
	Use:   "grid [MONTH]",
	Short: "Print the calendar grid for a month",
	Long: `Print the six-week grid the picker shows for a month. MONTH is any date
in a configured format and defaults to today. The selected day is shown in
brackets and today in parentheses.`,
	Example: `  datepick grid
  datepick grid 2021-02 --select 2021-02-14
  datepick grid --months 3
  datepick grid 2021-06 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		month := ""
		if len(args) == 1 {
			month = args[0]
		}
		return gridRun(os.Stdout, month, gridSelect, gridMonths)
	},
}

func init() {
	gridCmd.Flags().StringVar(&gridSelect, "select", "", "date to mark as selected")
	gridCmd.Flags().IntVar(&gridMonths, "months", 1, "number of consecutive months to print")
	rootCmd.AddCommand(gridCmd)
}

func gridRun(w io.Writer, month, selectText string, months int) error {
	if months < 1 {
		return fmt.Errorf("--months must be at least 1, got %d", months)
	}

	today := calendar.FromTime(now())
	anchor := today
	if month != "" {
		d, _, err := dateformat.Match(month, formats, today)
		if err != nil {
			return fmt.Errorf("month: %w", err)
		}
		anchor = d
	}

	var selected calendar.Date
	if selectText != "" {
		d, _, err := dateformat.Match(selectText, formats, today)
		if err != nil {
			return fmt.Errorf("--select: %w", err)
		}
		selected = d
	}

	grids := make([]calendar.Grid, months)
	for i := range grids {
		grids[i] = calendar.BuildGridAt(anchor.StartOfMonth().AddMonths(i), selected, today)
	}

	if jsonOutput {
		if months == 1 {
			return ui.FormatJSON(w, ui.ToGridJSON(grids[0]))
		}
		out := make([]ui.GridJSON, len(grids))
		for i, g := range grids {
			out[i] = ui.ToGridJSON(g)
		}
		return ui.FormatJSON(w, out)
	}

	var b strings.Builder
	for i, g := range grids {
		if i > 0 {
			b.WriteString("\n")
		}
		ui.FormatGrid(&b, g)
	}
	return ui.OutputOrPage(w, b.String(), theme)
}

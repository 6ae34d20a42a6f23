package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
	"github.com/chris-regnier/datepick/internal/ui"
	"github.com/spf13/cobra"
)

// errParseFailed is returned after printing when any input was rejected.
var errParseFailed = errors.New("some inputs are not valid dates")

var parseFormats []string

var parseCmd = &cobra.Command{
	Use:   "parse TEXT...",
	Short: "Parse text as dates",
	Long: `Parse each argument strictly against the configured formats, in order,
and print it in the display format. Exits with status 1 if any argument is
not a valid date.`,
	Example: `  datepick parse 2021-06-09 6-9 14-6-2021
  datepick parse --format DD.MM.YYYY 09.06.2021
  datepick parse --json 2-30`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return parseRun(os.Stdout, args)
	},
}

func init() {
	parseCmd.Flags().StringArrayVar(&parseFormats, "format", nil, "format to try instead of the configured ones (repeatable)")
	rootCmd.AddCommand(parseCmd)
}

func parseRun(w io.Writer, args []string) error {
	layouts := formats
	if len(parseFormats) > 0 {
		var err error
		layouts, err = dateformat.CompileAll(parseFormats)
		if err != nil {
			return fmt.Errorf("--format: %w", err)
		}
	}

	today := calendar.FromTime(now())
	results := make([]ui.ParseResult, len(args))
	failed := false
	for i, text := range args {
		results[i] = ui.ParseInput(text, display, layouts, today)
		failed = failed || !results[i].Valid
	}

	if jsonOutput {
		if err := ui.FormatJSON(w, results); err != nil {
			return err
		}
	} else {
		ui.FormatParseResults(w, results)
	}

	if failed {
		return errParseFailed
	}
	return nil
}

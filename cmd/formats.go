package cmd

import (
	"io"
	"os"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/ui"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Show the display format and accepted input formats",
	Example: `  datepick formats
  datepick formats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return formatsRun(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

type formatJSON struct {
	Pattern string `json:"pattern"`
	Example string `json:"example"`
}

type formatsJSON struct {
	Display formatJSON   `json:"display"`
	Formats []formatJSON `json:"formats"`
}

func formatsRun(w io.Writer) error {
	today := calendar.FromTime(now())

	if jsonOutput {
		out := formatsJSON{
			Display: formatJSON{Pattern: display.String(), Example: display.Format(today)},
			Formats: make([]formatJSON, len(formats)),
		}
		for i, l := range formats {
			out.Formats[i] = formatJSON{Pattern: l.String(), Example: l.Format(today)}
		}
		return ui.FormatJSON(w, out)
	}

	doc := ui.FormatsMarkdown(display, formats, today)
	rendered := ui.RenderMarkdownWithStyle(doc, 80, theme.MarkdownStyle)
	return ui.OutputOrPage(w, rendered+"\n", theme)
}

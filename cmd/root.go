package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chris-regnier/datepick/internal/config"
	"github.com/chris-regnier/datepick/internal/dateformat"
	"github.com/chris-regnier/datepick/internal/logging"
	"github.com/chris-regnier/datepick/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	cfgFile     string
	jsonOutput  bool
	fieldNames  []string
	fieldValues map[string]string
	appConfig   *config.Config
	display     dateformat.Layout
	formats     []dateformat.Layout
	theme       ui.Theme
	now         = time.Now
)

// errNotTerminal is returned when the interactive form cannot run.
var errNotTerminal = errors.New("the date form needs a terminal; use `datepick parse` in scripts")

var rootCmd = &cobra.Command{
	Use:   "datepick",
	Short: "Pick and parse calendar dates",
	Long: `datepick shows a date field with an attached calendar. Type a date in any
configured format or pick one with the keyboard or mouse; the value is
rewritten in the display format when committed.`,
	Example: `  datepick
  datepick --field start --field due --json
  datepick --value date=2021-06-09`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if err := logging.Initialize(appConfig.LogLevel, appConfig.LogFile); err != nil {
			return err
		}

		display, formats, err = appConfig.Layouts()
		if err != nil {
			return fmt.Errorf("loading date formats: %w", err)
		}
		theme = ui.ResolveTheme(appConfig.Theme)

		logging.Logger().Debug("configuration loaded",
			zap.String("display_format", display.String()),
			zap.Int("formats", len(formats)),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return errNotTerminal
		}

		names := fieldNames
		if len(names) == 0 {
			names = appConfig.Fields
		}
		values, err := ui.RunForm(ui.FormConfig{
			Fields:  names,
			Values:  fieldValues,
			Display: display,
			Formats: formats,
			Theme:   theme,
			Now:     now,
			Logger:  logging.Logger(),
		})
		if err != nil {
			return err
		}
		return formRun(os.Stdout, values)
	},
}

func formRun(w io.Writer, values []ui.FieldValue) error {
	if jsonOutput {
		return ui.FormatJSON(w, values)
	}
	ui.FormatFieldValues(w, values)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.Flags().StringArrayVar(&fieldNames, "field", nil, "date field name (repeatable; default from config)")
	rootCmd.Flags().StringToStringVar(&fieldValues, "value", nil, "initial field text as NAME=TEXT")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

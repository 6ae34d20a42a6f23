package cmd

import (
	"regexp"
	"testing"
	"time"

	"github.com/chris-regnier/datepick/internal/config"
	"github.com/chris-regnier/datepick/internal/ui"
)

// stripANSI removes ANSI escape sequences so rendered output can be asserted on.
func stripANSI(s string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(s, "")
}

func fixedNow() time.Time {
	return time.Date(2021, time.June, 9, 10, 0, 0, 0, time.UTC)
}

// setupTestEnv installs the state PersistentPreRunE would build from cfg.
func setupTestEnv(t *testing.T, cfg *config.Config) {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	appConfig = cfg

	var err error
	display, formats, err = appConfig.Layouts()
	if err != nil {
		t.Fatalf("compiling layouts: %v", err)
	}
	theme = ui.ResolveTheme(config.ThemeConfig{Preset: "default-dark", MarkdownStyle: "notty"})

	prevNow := now
	now = fixedNow
	jsonOutput = false
	parseFormats = nil
	t.Cleanup(func() {
		now = prevNow
		jsonOutput = false
		parseFormats = nil
	})
}

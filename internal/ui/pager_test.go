package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/datepick/internal/config"
)

func TestPagerView(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
	m := pagerModel{
		content: "June 2021\nJuly 2021\nAugust 2021",
		theme:   theme,
	}
	if got := m.View(); got != "Loading..." {
		t.Errorf("expected loading view before sizing, got %q", got)
	}

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = sized.(pagerModel)

	stripped := stripANSI(m.View())
	if n := countLines(stripped); n != 10 {
		t.Errorf("expected 10 lines, got %d", n)
	}
	for _, want := range []string{"June 2021", "August 2021", "q quit"} {
		if !strings.Contains(stripped, want) {
			t.Errorf("view missing %q:\n%s", want, stripped)
		}
	}
}

func TestPagerQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := pagerModel{}.Update(k)
		if cmd == nil {
			t.Errorf("%s: expected quit command", k)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestFitsScreen(t *testing.T) {
	tests := []struct {
		content string
		height  int
		want    bool
	}{
		{"one\n", 10, true},
		{"a\nb\nc\nd\n", 6, true},
		{"a\nb\nc\nd\ne\n", 6, false},
		{strings.Repeat("x\n", 30), 24, false},
	}
	for _, tt := range tests {
		if got := fitsScreen(tt.content, tt.height); got != tt.want {
			t.Errorf("fitsScreen(%d lines, %d) = %v, want %v", countContentLines(tt.content), tt.height, got, tt.want)
		}
	}
}

func TestOutputOrPageNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	content := strings.Repeat("line\n", 100)

	if err := OutputOrPage(&buf, content, Theme{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != content {
		t.Error("expected content written unchanged")
	}
}

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type pagerModel struct {
	viewport viewport.Model
	content  string
	theme    Theme
	ready    bool
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	footer := m.theme.HelpStyle().Render(fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", m.viewport.ScrollPercent()*100))
	return m.viewport.View() + "\n" + footer
}

// fitsScreen reports whether content can be printed without paging.
func fitsScreen(content string, height int) bool {
	return countContentLines(content) <= height-2
}

func countContentLines(content string) int {
	return strings.Count(strings.TrimRight(content, "\n"), "\n") + 1
}

// OutputOrPage writes content to w. When w is a terminal and the content
// is taller than the screen, it is shown in a scrolling pager instead.
func OutputOrPage(w io.Writer, content string, theme Theme) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := fmt.Fprint(w, content)
		return err
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil || fitsScreen(content, height) {
		_, err := fmt.Fprint(w, content)
		return err
	}

	p := tea.NewProgram(pagerModel{content: content, theme: theme}, tea.WithAltScreen(), tea.WithOutput(f))
	_, err = p.Run()
	return err
}

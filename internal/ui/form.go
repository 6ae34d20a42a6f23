package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/datepick/internal/dateformat"
	"go.uber.org/zap"
)

// ErrAborted is returned by RunForm when the user quits without submitting.
var ErrAborted = errors.New("form aborted")

// Form layout. The title and a blank line come first, then one line per
// field with its calendar box directly below while it is shown.
const (
	headerLines    = 2
	calendarIndent = 2
	formTitle      = "Pick a date"
)

// FormConfig configures the interactive form.
type FormConfig struct {
	Fields  []string
	Values  map[string]string
	Display dateformat.Layout
	Formats []dateformat.Layout
	Theme   Theme
	Now     func() time.Time
	Logger  *zap.Logger
}

// FieldValue is the submitted value of one field.
type FieldValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	// Date is the ISO date of the value, empty when the field is blank.
	Date string `json:"date,omitempty"`
}

type formModel struct {
	fields    []*DateField
	active    int
	theme     Theme
	keys      formKeyMap
	help      help.Model
	log       *zap.Logger
	submitted bool
	aborted   bool
}

func newFormModel(cfg FormConfig) (formModel, error) {
	if len(cfg.Fields) == 0 {
		return formModel{}, errors.New("form needs at least one field")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	m := formModel{
		theme: cfg.Theme,
		keys:  defaultFormKeys(),
		help:  help.New(),
		log:   cfg.Logger,
	}
	m.help.Styles.ShortKey = cfg.Theme.AccentStyle()
	m.help.Styles.ShortDesc = cfg.Theme.HelpStyle()
	m.help.Styles.FullKey = cfg.Theme.AccentStyle()
	m.help.Styles.FullDesc = cfg.Theme.HelpStyle()

	for _, name := range cfg.Fields {
		f, err := NewDateField(name, FieldOptions{
			Display: cfg.Display,
			Formats: cfg.Formats,
			Theme:   cfg.Theme,
			Value:   cfg.Values[name],
			Now:     cfg.Now,
			Logger:  cfg.Logger,
		})
		if err != nil {
			return formModel{}, fmt.Errorf("creating field %q: %w", name, err)
		}
		m.fields = append(m.fields, f)
	}
	m.fields[0].Focus()
	return m, nil
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m formModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.fields[m.active]

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		cur.Tab()
		if len(m.fields) == 1 {
			return m, nil
		}
		return m.focusField((m.active + 1) % len(m.fields))
	case key.Matches(msg, m.keys.Prev):
		cur.Tab()
		if len(m.fields) == 1 {
			return m, nil
		}
		return m.focusField((m.active + len(m.fields) - 1) % len(m.fields))
	case key.Matches(msg, m.keys.Submit) && !cur.Shown():
		cur.Blur()
		m.submitted = true
		m.log.Info("form submitted", zap.Int("fields", len(m.fields)))
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, cur.Update(msg)
}

// focusField moves keyboard focus to field i.
func (m formModel) focusField(i int) (tea.Model, tea.Cmd) {
	if i == m.active {
		return m, m.fields[i].Focus()
	}
	m.fields[m.active].Blur()
	m.active = i
	return m, m.fields[i].Focus()
}

// fieldRows returns the screen row of every field line.
func (m formModel) fieldRows() []int {
	rows := make([]int, len(m.fields))
	y := headerLines
	for i, f := range m.fields {
		rows[i] = y
		y++
		if f.Shown() {
			y += boxHeight
		}
	}
	return rows
}

func (m formModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	rows := m.fieldRows()

	for i, f := range m.fields {
		f.handleMouse(msg, msg.X-calendarIndent, msg.Y-rows[i]-1)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i, row := range rows {
		if msg.Y == row {
			return m.focusField(i)
		}
	}
	return m, nil
}

func (m formModel) View() string {
	if m.submitted || m.aborted {
		return ""
	}

	labelWidth := 0
	for _, f := range m.fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Name))
	}

	var b strings.Builder
	b.WriteString(m.theme.HeaderStyle().Render(formTitle))
	b.WriteString("\n\n")

	indent := lipgloss.NewStyle().MarginLeft(calendarIndent)
	for i, f := range m.fields {
		label := fmt.Sprintf("%-*s", labelWidth, f.Name)
		if i == m.active {
			label = m.theme.AccentStyle().Bold(true).Render(label)
		} else {
			label = m.theme.HelpStyle().Render(label)
		}
		fmt.Fprintf(&b, "%s  %s\n", label, f.InputView())
		if cal := f.CalendarView(); cal != "" {
			b.WriteString(indent.Render(cal))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// values returns the submitted field values in declaration order.
func (m formModel) values() []FieldValue {
	out := make([]FieldValue, len(m.fields))
	for i, f := range m.fields {
		out[i] = FieldValue{Name: f.Name, Value: f.Value()}
		if d := f.Date(); !d.IsZero() {
			out[i].Date = d.String()
		}
	}
	return out
}

// RunForm shows the interactive date form and returns the submitted values.
func RunForm(cfg FormConfig) ([]FieldValue, error) {
	m, err := newFormModel(cfg)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	result, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm := result.(formModel)
	if fm.aborted || !fm.submitted {
		return nil, ErrAborted
	}
	return fm.values(), nil
}

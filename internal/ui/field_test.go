package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
)

func fixedNow() time.Time {
	return time.Date(2021, time.June, 9, 10, 0, 0, 0, time.UTC)
}

func newTestField(t *testing.T, value string) *DateField {
	t.Helper()
	f, err := NewDateField("date", FieldOptions{Value: value, Now: fixedNow})
	if err != nil {
		t.Fatalf("NewDateField: %v", err)
	}
	return f
}

func typeText(f *DateField, s string) {
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(f *DateField, k tea.KeyType) {
	f.Update(tea.KeyMsg{Type: k})
}

func TestDateFieldFocusOpensPicker(t *testing.T) {
	f := newTestField(t, "")
	if f.Shown() {
		t.Fatal("picker should start hidden")
	}

	f.Focus()

	s := f.State()
	if !s.Shown || !s.Focused {
		t.Fatalf("expected shown and focused, got %+v", s)
	}
	if s.DateShown != calendar.New(2021, 6, 1) {
		t.Errorf("expected current month, got %s", s.DateShown)
	}
	if f.CalendarView() == "" {
		t.Error("expected calendar to render")
	}
}

func TestDateFieldTypingPreviewsAndCommits(t *testing.T) {
	f := newTestField(t, "")
	f.Focus()

	typeText(f, "2-14-21")
	if got := f.Date(); got != calendar.New(2021, 2, 14) {
		t.Fatalf("expected preview of 2021-02-14, got %s", got)
	}
	if got := f.State().DateShown; got != calendar.New(2021, 2, 1) {
		t.Errorf("expected February shown, got %s", got)
	}
	if f.Value() != "2-14-21" {
		t.Errorf("text should be untouched before commit, got %q", f.Value())
	}

	press(f, tea.KeyEnter)

	if f.Value() != "2021-02-14" {
		t.Errorf("expected display format after commit, got %q", f.Value())
	}
	if f.Shown() {
		t.Error("expected picker hidden after commit")
	}
	if f.changes != 1 {
		t.Errorf("expected one change notification, got %d", f.changes)
	}
}

func TestDateFieldEscapeClears(t *testing.T) {
	f := newTestField(t, "2021-03-04")
	f.Focus()
	if f.Date() != calendar.New(2021, 3, 4) {
		t.Fatalf("expected initial value parsed on focus, got %s", f.Date())
	}

	press(f, tea.KeyEsc)

	if f.Value() != "" {
		t.Errorf("expected empty text, got %q", f.Value())
	}
	if !f.Date().IsZero() || f.Shown() {
		t.Errorf("expected cleared hidden picker, got %+v", f.State())
	}
}

func TestDateFieldEscapeWhileHiddenIgnored(t *testing.T) {
	f := newTestField(t, "2021-03-04")

	press(f, tea.KeyEsc)

	if f.Value() != "2021-03-04" {
		t.Errorf("expected text kept while hidden, got %q", f.Value())
	}
}

func TestDateFieldKeyboardNavigation(t *testing.T) {
	tests := []struct {
		name  string
		value string
		keys  []tea.KeyType
		want  string
	}{
		{"first step lands on month start", "", []tea.KeyType{tea.KeyDown}, "2021-06-01"},
		{"first step lands on selection", "2021-06-20", []tea.KeyType{tea.KeyDown}, "2021-06-20"},
		{"week steps", "", []tea.KeyType{tea.KeyDown, tea.KeyDown, tea.KeyDown}, "2021-06-15"},
		{"day steps", "2021-06-20", []tea.KeyType{tea.KeyDown, tea.KeyShiftRight, tea.KeyShiftRight}, "2021-06-22"},
		{"cross into previous month", "", []tea.KeyType{tea.KeyDown, tea.KeyShiftLeft}, "2021-05-31"},
		{"next month then step", "", []tea.KeyType{tea.KeyPgDown, tea.KeyDown}, "2021-07-01"},
		{"next year then step", "", []tea.KeyType{tea.KeyCtrlPgDown, tea.KeyDown}, "2022-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(t, tt.value)
			f.Focus()
			for _, k := range tt.keys {
				press(f, k)
			}
			press(f, tea.KeyEnter)
			if f.Value() != tt.want {
				t.Errorf("got %q, want %q", f.Value(), tt.want)
			}
		})
	}
}

func TestDateFieldHighlightFollowsMonth(t *testing.T) {
	f := newTestField(t, "")
	f.Focus()

	press(f, tea.KeyDown)
	press(f, tea.KeyUp)

	s := f.State()
	if s.Highlighted != calendar.New(2021, 5, 25) {
		t.Fatalf("expected highlight on 2021-05-25, got %s", s.Highlighted)
	}
	if s.DateShown != calendar.New(2021, 5, 1) {
		t.Errorf("expected May shown, got %s", s.DateShown)
	}
}

func TestDateFieldDownReopens(t *testing.T) {
	f := newTestField(t, "")
	f.Focus()
	press(f, tea.KeyEnter)
	if f.Shown() {
		t.Fatal("expected hidden after committing empty text")
	}

	press(f, tea.KeyDown)

	if !f.Shown() {
		t.Error("expected down to reopen the picker")
	}
	if !f.State().Highlighted.IsZero() {
		t.Error("reopening should not highlight a cell")
	}
}

func TestDateFieldCustomDisplay(t *testing.T) {
	f, err := NewDateField("due", FieldOptions{
		Display: dateformat.MustCompile("DD.MM.YYYY"),
		Formats: []dateformat.Layout{dateformat.MustCompile("DD.MM.YYYY"), dateformat.MustCompile("D.M")},
		Now:     fixedNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	f.Focus()
	typeText(f, "3.7")
	f.Tab()

	if f.Value() != "03.07.2021" {
		t.Errorf("got %q, want 03.07.2021", f.Value())
	}
}

func TestDateFieldMouse(t *testing.T) {
	f := newTestField(t, "")
	f.Focus()

	// Hover June 9.
	if !f.handleMouse(tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionMotion}, 11, 5) {
		t.Fatal("expected hover over box to be handled")
	}
	s := f.State()
	if !s.HoveredOverPicker || s.Highlighted != calendar.New(2021, 6, 9) {
		t.Fatalf("expected hover on 2021-06-09, got %+v", s)
	}

	// Move onto the label.
	f.handleMouse(tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionMotion}, 10, 1)
	s = f.State()
	if !s.HoveredOverPicker || !s.Highlighted.IsZero() {
		t.Fatalf("expected picker hover without highlight, got %+v", s)
	}

	// Next month control.
	f.handleMouse(tea.MouseMsg{X: 17, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 17, 2)
	s = f.State()
	if s.DateShown != calendar.New(2021, 7, 1) || !s.Shown || !s.Focused {
		t.Fatalf("expected July shown with focus kept, got %+v", s)
	}

	// Leave the box.
	if f.handleMouse(tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionMotion}, 40, 5) {
		t.Error("expected motion outside the box to be unhandled")
	}
	if f.State().HoveredOverPicker {
		t.Error("expected hover cleared after leaving")
	}

	// Click July 7: row 1, Wednesday.
	f.handleMouse(tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 11, 5)
	if f.Value() != "2021-07-07" {
		t.Errorf("expected click to commit 2021-07-07, got %q", f.Value())
	}
	if f.Shown() {
		t.Error("expected picker hidden after click")
	}
}

func TestDateFieldMouseIgnoredWhileHidden(t *testing.T) {
	f := newTestField(t, "")
	if f.handleMouse(tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 11, 5) {
		t.Error("expected hidden picker to ignore the mouse")
	}
	if f.Value() != "" {
		t.Errorf("expected no commit, got %q", f.Value())
	}
}

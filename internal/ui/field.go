package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
	"github.com/chris-regnier/datepick/internal/picker"
	"go.uber.org/zap"
)

// Input validation limits
const maxDateInputLength = 32

// textSurface adapts a textinput.Model to picker.InputSurface.
type textSurface struct {
	input    textinput.Model
	onChange func(value string)
}

func (s *textSurface) Text() string { return s.input.Value() }

func (s *textSurface) SetText(v string) {
	s.input.SetValue(v)
	s.input.CursorEnd()
}

func (s *textSurface) NotifyValueChanged() {
	if s.onChange != nil {
		s.onChange(s.input.Value())
	}
}

func (s *textSurface) Focus() {
	// Focus only returns the cursor blink command; the field already
	// blinks while it owns the form focus.
	_ = s.input.Focus()
}

// FieldOptions configures a DateField.
type FieldOptions struct {
	Display dateformat.Layout
	Formats []dateformat.Layout
	Theme   Theme
	Value   string
	Now     func() time.Time
	Logger  *zap.Logger
}

// DateField is a text input with an attached date picker. It owns its
// picker.Widget for as long as the field exists.
type DateField struct {
	Name    string
	surface *textSurface
	view    *calendarView
	widget  *picker.Widget
	keys    fieldKeyMap
	formats []dateformat.Layout
	now     func() time.Time
	log     *zap.Logger
	changes int
}

// NewDateField creates a field and attaches a picker to it.
func NewDateField(name string, opts FieldOptions) (*DateField, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.Formats) == 0 {
		_, opts.Formats = dateformat.Defaults()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxDateInputLength
	ti.Width = maxDateInputLength
	if !opts.Display.IsZero() {
		ti.Placeholder = opts.Display.String()
	}
	ti.SetValue(opts.Value)

	f := &DateField{
		Name:    name,
		surface: &textSurface{input: ti},
		view:    &calendarView{theme: opts.Theme},
		keys:    defaultFieldKeys(),
		formats: opts.Formats,
		now:     opts.Now,
	}

	w, err := picker.New(f.surface, picker.Options{
		Display:  opts.Display,
		Formats:  opts.Formats,
		Renderer: f.view,
		Now:      opts.Now,
		Logger:   opts.Logger.With(zap.String("field", name)),
	})
	if err != nil {
		return nil, err
	}
	f.widget = w
	f.log = opts.Logger.With(zap.String("field", name), zap.String("widget", w.ID()))
	f.surface.onChange = func(value string) {
		f.changes++
		f.log.Info("value changed", zap.String("value", value))
	}
	return f, nil
}

// Value returns the current input text.
func (f *DateField) Value() string { return f.surface.Text() }

// Date returns the selected date. A field the picker has not seen yet
// reports what its text parses to. The zero Date means none.
func (f *DateField) Date() calendar.Date {
	if d := f.widget.State().DateSelected; !d.IsZero() {
		return d
	}
	d, _, err := dateformat.Match(f.Value(), f.formats, calendar.FromTime(f.now()))
	if err != nil {
		return calendar.Date{}
	}
	return d
}

// State returns the picker state.
func (f *DateField) State() picker.State { return f.widget.State() }

// Shown reports whether the calendar is open.
func (f *DateField) Shown() bool { return f.widget.State().Shown }

// Focus gives the field keyboard focus and opens the picker.
func (f *DateField) Focus() tea.Cmd {
	cmd := f.surface.input.Focus()
	f.widget.Handle(picker.FocusGained{})
	return cmd
}

// Blur moves keyboard focus away from the field.
func (f *DateField) Blur() {
	f.surface.input.Blur()
	f.widget.Handle(picker.FocusLost{})
}

// Tab commits the field before the form moves focus on.
func (f *DateField) Tab() {
	f.widget.Handle(picker.KeyPressed{Key: picker.KeyTab})
}

// Update handles a key press while the field has focus.
func (f *DateField) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, f.keys.Commit):
		f.widget.Handle(picker.KeyPressed{Key: picker.KeyEnter})
	case key.Matches(msg, f.keys.Clear):
		f.widget.Handle(picker.KeyPressed{Key: picker.KeyEscape})
	case key.Matches(msg, f.keys.PrevMonth):
		f.navigate(picker.PrevMonth)
	case key.Matches(msg, f.keys.NextMonth):
		f.navigate(picker.NextMonth)
	case key.Matches(msg, f.keys.PrevYear):
		f.navigate(picker.PrevYear)
	case key.Matches(msg, f.keys.NextYear):
		f.navigate(picker.NextYear)
	case key.Matches(msg, f.keys.PrevDay):
		f.moveHighlight(-1)
	case key.Matches(msg, f.keys.NextDay):
		f.moveHighlight(1)
	case key.Matches(msg, f.keys.PrevWeek):
		f.moveHighlight(-7)
	case key.Matches(msg, f.keys.NextWeek):
		f.moveHighlight(7)
	default:
		var cmd tea.Cmd
		f.surface.input, cmd = f.surface.input.Update(msg)
		f.widget.Handle(picker.KeyPressed{Key: picker.KeyOther})
		return cmd
	}
	return nil
}

func (f *DateField) navigate(c picker.Control) {
	if f.Shown() {
		f.widget.Handle(picker.NavClicked{Control: c})
	}
}

// moveHighlight steps the keyboard highlight. The first step lands on
// the selected date, or the first of the shown month. A closed picker
// is reopened instead.
func (f *DateField) moveHighlight(days int) {
	s := f.widget.State()
	if !s.Shown {
		f.widget.Handle(picker.FocusGained{})
		return
	}

	target := s.Highlighted
	switch {
	case !target.IsZero():
		target = target.AddDays(days)
	case !s.DateSelected.IsZero():
		target = s.DateSelected
	default:
		target = s.DateShown
	}
	f.widget.Handle(picker.CellHighlighted{Date: target})
}

// handleMouse feeds a mouse event to the picker. x and y are relative to
// the calendar box. It reports whether the event was over the box.
func (f *DateField) handleMouse(msg tea.MouseMsg, x, y int) bool {
	s := f.widget.State()
	if !s.Shown {
		return false
	}

	h := f.view.hitTest(x, y)
	switch h.kind {
	case hitNone:
		if s.HoveredOverPicker {
			f.widget.Handle(picker.PickerLeft{})
		}
		return false
	case hitCell:
		if !s.HoveredOverPicker || s.Highlighted != h.date {
			f.widget.Handle(picker.CellEntered{Date: h.date})
		}
	default:
		if !s.HoveredOverPicker || !s.Highlighted.IsZero() {
			f.widget.Handle(picker.PickerEntered{})
		}
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch h.kind {
		case hitCell:
			f.widget.Handle(picker.CellClicked{Date: h.date})
		case hitControl:
			f.widget.Handle(picker.NavClicked{Control: h.control})
		}
	}
	return true
}

// InputView renders the text input.
func (f *DateField) InputView() string { return f.surface.input.View() }

// CalendarView renders the calendar box, empty while hidden.
func (f *DateField) CalendarView() string { return f.view.View() }

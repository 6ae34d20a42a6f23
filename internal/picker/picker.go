// Package picker implements the selection state machine of the date
// picker: which month is shown, which date is selected, and when the
// input text is rewritten.
//
// A Widget is attached to one input surface and owns its state for the
// lifetime of that attachment. Widgets are not safe for concurrent use;
// events must be delivered one at a time.
package picker

import (
	"fmt"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// InputSurface is the text field a Widget is attached to.
type InputSurface interface {
	Text() string
	SetText(s string)
	// NotifyValueChanged is called after a Commit or Clear rewrote the text.
	NotifyValueChanged()
	// Focus asks the surface to take focus back, e.g. after a navigation
	// click moved it to the picker.
	Focus()
}

// Renderer draws the picker. It is called after every event that changed
// the state.
type Renderer interface {
	Render(s State, g calendar.Grid)
}

// State is the observable state of a Widget.
type State struct {
	Shown             bool
	Focused           bool
	HoveredOverPicker bool
	// DateShown is the first day of the displayed month.
	DateShown calendar.Date
	// DateSelected is the committed or previewed date; zero means none.
	DateSelected calendar.Date
	// Highlighted is the active cell; zero means none.
	Highlighted calendar.Date
}

// Result reports the side effects of one event.
type Result struct {
	// Committed is set when the input text was rewritten with a date.
	Committed bool
	// Cleared is set when the input text was emptied.
	Cleared bool
	// Value is the text written to the input surface.
	Value string
}

// Options configures a Widget.
type Options struct {
	// Display is the canonical output layout.
	Display dateformat.Layout
	// Formats are tried in order when parsing the input text.
	Formats []dateformat.Layout
	// Renderer, if set, is called after state changes.
	Renderer Renderer
	// Now overrides the clock.
	Now    func() time.Time
	Logger *zap.Logger
}

// Widget is a date picker attached to one input surface.
type Widget struct {
	id    string
	input InputSurface
	opts  Options
	log   *zap.Logger
	state State
	grid  calendar.Grid
	// settled is true while the input text is the one the last commit or
	// clear wrote.
	settled bool
}

// New attaches a Widget to input. Zero-valued options fall back to the
// default layouts, the system clock and a no-op logger.
func New(input InputSurface, opts Options) (*Widget, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return nil, fmt.Errorf("generating widget ID: %w", err)
	}

	display, formats := dateformat.Defaults()
	if opts.Display.IsZero() {
		opts.Display = display
	}
	if len(opts.Formats) == 0 {
		opts.Formats = formats
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	w := &Widget{
		id:    id,
		input: input,
		opts:  opts,
		log:   opts.Logger.With(zap.String("widget", id)),
	}
	w.state.DateShown = w.today().StartOfMonth()
	w.rebuild()
	return w, nil
}

// ID returns the widget's identifier, unique within the process.
func (w *Widget) ID() string { return w.id }

// State returns a copy of the current state.
func (w *Widget) State() State { return w.state }

// Grid returns the grid for the current state.
func (w *Widget) Grid() calendar.Grid { return w.grid }

// Handle applies one event and returns its side effects.
func (w *Widget) Handle(ev Event) Result {
	before := w.state
	var res Result

	switch ev := ev.(type) {
	case FocusGained:
		w.focus()
	case FocusLost:
		res = w.blur()
	case KeyPressed:
		res = w.key(ev.Key)
	case CellClicked:
		w.state.Highlighted = ev.Date
		w.state.DateSelected = ev.Date
		res = w.commit()
	case NavClicked:
		w.navigate(ev.Control)
	case CellEntered:
		w.state.HoveredOverPicker = true
		w.state.Highlighted = ev.Date
	case CellHighlighted:
		w.state.Highlighted = ev.Date
		if !ev.Date.SameMonth(w.state.DateShown) {
			w.state.DateShown = ev.Date.StartOfMonth()
		}
	case PickerEntered:
		w.state.HoveredOverPicker = true
		w.state.Highlighted = calendar.Date{}
	case PickerLeft:
		w.state.HoveredOverPicker = false
		w.state.Highlighted = calendar.Date{}
	default:
		w.log.Warn("unhandled event ignored", zap.String("event", fmt.Sprintf("%T", ev)))
		return Result{}
	}

	w.log.Debug("event handled",
		zap.String("event", fmt.Sprintf("%T", ev)),
		zap.Bool("shown", w.state.Shown),
		zap.Stringer("date_shown", w.state.DateShown),
		zap.Stringer("date_selected", w.state.DateSelected),
		zap.Bool("committed", res.Committed),
		zap.Bool("cleared", res.Cleared),
	)

	if w.state != before || res.Committed || res.Cleared {
		w.rebuild()
	}
	return res
}

func (w *Widget) focus() {
	w.state.Focused = true
	if w.state.Shown {
		return
	}
	w.reparse()
	if w.state.DateSelected.IsZero() {
		w.state.DateShown = w.today().StartOfMonth()
	}
	w.state.Shown = true
}

func (w *Widget) blur() Result {
	w.state.Focused = false
	if !w.state.Shown && w.settled {
		// Already committed by Tab or Enter.
		return Result{}
	}
	if w.state.HoveredOverPicker {
		// The pointer is on the picker; focus comes back after the click.
		return Result{}
	}
	return w.commit()
}

func (w *Widget) key(k Key) Result {
	if k == KeyOther {
		w.settled = false
	}
	if !w.state.Shown {
		return Result{}
	}
	switch k {
	case KeyTab, KeyEnter:
		return w.commit()
	case KeyEscape:
		return w.clear()
	default:
		// A keyboard highlight no longer applies once the text changes.
		if !w.state.HoveredOverPicker {
			w.state.Highlighted = calendar.Date{}
		}
		w.reparse()
		return Result{}
	}
}

func (w *Widget) navigate(c Control) {
	switch c {
	case PrevMonth:
		w.state.DateShown = w.state.DateShown.AddMonths(-1)
	case NextMonth:
		w.state.DateShown = w.state.DateShown.AddMonths(1)
	case PrevYear:
		w.state.DateShown = w.state.DateShown.AddYears(-1)
	case NextYear:
		w.state.DateShown = w.state.DateShown.AddYears(1)
	}
	w.input.Focus()
	w.state.Focused = true
}

// reparse previews the input text. A valid date becomes the selection and
// moves the display to its month; invalid text drops the selection but
// keeps the current month on screen.
func (w *Widget) reparse() {
	d, ok := w.parse(w.input.Text())
	if !ok {
		w.state.DateSelected = calendar.Date{}
		return
	}
	w.state.DateSelected = d
	w.state.DateShown = d.StartOfMonth()
}

func (w *Widget) commit() Result {
	if w.state.Highlighted.IsZero() {
		d, ok := w.parse(w.input.Text())
		if !ok {
			return w.clear()
		}
		w.state.DateSelected = d
	} else {
		w.state.DateSelected = w.state.Highlighted
	}
	w.state.DateShown = w.state.DateSelected.StartOfMonth()

	value := w.opts.Display.Format(w.state.DateSelected)
	w.input.SetText(value)
	w.input.NotifyValueChanged()
	w.hide()
	return Result{Committed: true, Value: value}
}

func (w *Widget) clear() Result {
	w.state.DateSelected = calendar.Date{}
	w.state.DateShown = w.today().StartOfMonth()
	w.input.SetText("")
	w.input.NotifyValueChanged()
	w.hide()
	return Result{Cleared: true}
}

func (w *Widget) hide() {
	w.settled = true
	w.state.Shown = false
	w.state.HoveredOverPicker = false
	w.state.Highlighted = calendar.Date{}
}

func (w *Widget) parse(text string) (calendar.Date, bool) {
	d, _, err := dateformat.Match(text, w.opts.Formats, w.today())
	if err != nil {
		w.log.Debug("input not parsed", zap.String("text", text), zap.Error(err))
		return calendar.Date{}, false
	}
	return d, true
}

func (w *Widget) today() calendar.Date {
	return calendar.FromTime(w.opts.Now())
}

func (w *Widget) rebuild() {
	w.grid = calendar.BuildGridAt(w.state.DateShown, w.state.DateSelected, w.today())
	if w.opts.Renderer != nil {
		w.opts.Renderer.Render(w.state, w.grid)
	}
}

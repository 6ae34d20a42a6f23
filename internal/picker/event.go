package picker

import "github.com/chris-regnier/datepick/internal/calendar"

// Event is an input to the picker. The set of events is closed: only the
// types declared in this file implement it.
type Event interface {
	event()
}

// Key identifies the keys the picker treats specially.
type Key int

const (
	// KeyOther is any key that edits the text.
	KeyOther Key = iota
	KeyTab
	KeyEnter
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyTab:
		return "tab"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	default:
		return "other"
	}
}

// Control is a navigation control in the picker header.
type Control int

const (
	PrevYear Control = iota
	PrevMonth
	NextMonth
	NextYear
)

func (c Control) String() string {
	switch c {
	case PrevYear:
		return "prev-year"
	case PrevMonth:
		return "prev-month"
	case NextMonth:
		return "next-month"
	case NextYear:
		return "next-year"
	default:
		return "unknown"
	}
}

type (
	// FocusGained is sent when the input surface receives focus.
	FocusGained struct{}

	// FocusLost is sent when the input surface loses focus.
	FocusLost struct{}

	// KeyPressed is sent after a key has been applied to the input text.
	KeyPressed struct{ Key Key }

	// CellClicked is a click on the day cell for Date.
	CellClicked struct{ Date calendar.Date }

	// NavClicked is a click on a navigation control.
	NavClicked struct{ Control Control }

	// CellEntered is sent when the pointer moves onto the day cell for Date.
	CellEntered struct{ Date calendar.Date }

	// CellHighlighted moves the highlight to Date without a pointer, as
	// keyboard navigation does.
	CellHighlighted struct{ Date calendar.Date }

	// PickerEntered is sent when the pointer moves onto any part of the
	// picker that is not a day cell.
	PickerEntered struct{}

	// PickerLeft is sent when the pointer leaves the picker.
	PickerLeft struct{}
)

func (FocusGained) event()     {}
func (FocusLost) event()       {}
func (KeyPressed) event()      {}
func (CellClicked) event()     {}
func (NavClicked) event()      {}
func (CellEntered) event()     {}
func (CellHighlighted) event() {}
func (PickerEntered) event()   {}
func (PickerLeft) event()      {}

package dateformat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
)

var (
	// ErrNoMatch means the text does not have the shape of any layout.
	ErrNoMatch = errors.New("text matches no date format")
	// ErrInvalidDate means the text has a layout's shape but names a day
	// that does not exist, such as 2021-02-30.
	ErrInvalidDate = errors.New("not a valid calendar date")
)

// Parse tries each layout in order and returns the first strict match.
// Fields missing from the matching layout default to the current year,
// January and the first of the month.
func Parse(text string, layouts []Layout) (calendar.Date, bool) {
	d, _, err := Match(text, layouts, calendar.Today())
	return d, err == nil
}

// Match is Parse with an explicit reference date for defaulting a missing
// year. It also returns the layout that matched. On failure the error
// wraps ErrInvalidDate if any layout matched the shape of the text, and
// ErrNoMatch otherwise.
func Match(text string, layouts []Layout, today calendar.Date) (calendar.Date, Layout, error) {
	if text == "" {
		return calendar.Date{}, Layout{}, fmt.Errorf("%w: empty input", ErrNoMatch)
	}

	var invalid error
	for _, l := range layouts {
		d, err := l.Parse(text, today)
		if err == nil {
			return d, l, nil
		}
		if invalid == nil && errors.Is(err, ErrInvalidDate) {
			invalid = err
		}
	}
	if invalid != nil {
		return calendar.Date{}, Layout{}, invalid
	}
	return calendar.Date{}, Layout{}, fmt.Errorf("%w: %q", ErrNoMatch, text)
}

// Parse parses text with this layout alone. today supplies the year when
// the layout has no year token.
func (l Layout) Parse(text string, today calendar.Date) (calendar.Date, error) {
	if l.IsZero() {
		return calendar.Date{}, fmt.Errorf("%w: layout not compiled", ErrInvalidPattern)
	}

	t, err := time.Parse(l.layout, text)
	if err != nil {
		var pe *time.ParseError
		if errors.As(err, &pe) && strings.HasSuffix(pe.Message, "out of range") {
			return calendar.Date{}, fmt.Errorf("%w: %q as %s", ErrInvalidDate, text, l.pattern)
		}
		return calendar.Date{}, fmt.Errorf("%w: %q as %s", ErrNoMatch, text, l.pattern)
	}

	year, month, day := t.Date()
	if !l.HasYear() {
		year = today.Year()
	}
	// time.Parse validated the day against year 0 when no year was given,
	// which is a leap year; check again against the real year.
	if !calendar.Valid(year, month, day) {
		return calendar.Date{}, fmt.Errorf("%w: %q as %s in %d", ErrInvalidDate, text, l.pattern, year)
	}
	return calendar.New(year, month, day), nil
}

// Format renders d with this layout.
func (l Layout) Format(d calendar.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time(time.UTC).Format(l.layout)
}

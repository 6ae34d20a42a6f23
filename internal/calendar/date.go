// Package calendar provides an immutable calendar date and the fixed
// six-week month grid shown by the date picker.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day (year, month, day) with no time-of-day and no
// location. Values are immutable: every arithmetic method returns a new
// Date. The zero value is not a valid date and is used throughout the
// picker to mean "no date".
type Date struct {
	year  int
	month time.Month
	day   int
}

// New returns the date for the given components. Out-of-range values are
// normalized the same way time.Date normalizes them, so New(2021, 2, 30)
// is March 2, 2021. Use Valid to reject such input instead.
//
// Example:
//
//	input:  2024, 13, 1
//	output: 2025-01-01
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current local date.
func Today() Date {
	return FromTime(time.Now())
}

// Valid reports whether year, month and day name a real calendar day.
func Valid(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December {
		return false
	}
	return day >= 1 && day <= DaysIn(year, month)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week, with Sunday = 0.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return New(d.year, d.month, d.day+n)
}

// AddMonths returns d shifted by n months. The day is clamped to the
// length of the target month, so January 31 plus one month is the last
// day of February.
func (d Date) AddMonths(n int) Date {
	total := d.year*12 + int(d.month-1) + n
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	m := time.Month(month + 1)
	return Date{year: year, month: m, day: min(d.day, DaysIn(year, m))}
}

// AddYears returns d shifted by n years, clamping February 29 to
// February 28 in non-leap target years.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{year: d.year, month: d.month, day: DaysIn(d.year, d.month)}
}

// SameMonth reports whether d and o fall in the same month of the same year.
func (d Date) SameMonth(o Date) bool {
	return d.year == o.year && d.month == o.month
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

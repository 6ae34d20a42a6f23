package calendar_test

import (
	"testing"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
)

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  string
	}{
		{"valid date", 2021, time.March, 5, "2021-03-05"},
		{"day overflow", 2021, time.February, 30, "2021-03-02"},
		{"month overflow", 2024, 13, 1, "2025-01-01"},
		{"day zero", 2021, time.March, 0, "2021-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.New(tt.year, tt.month, tt.day).String()
			if got != tt.want {
				t.Errorf("New(%d, %d, %d) = %s, want %s", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
		want  bool
	}{
		{2021, time.February, 28, true},
		{2021, time.February, 29, false},
		{2024, time.February, 29, true},
		{1900, time.February, 29, false},
		{2000, time.February, 29, true},
		{2021, time.April, 31, false},
		{2021, 13, 1, false},
		{2021, 0, 1, false},
		{2021, time.January, 0, false},
	}

	for _, tt := range tests {
		if got := calendar.Valid(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("Valid(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	tests := []struct {
		name string
		from calendar.Date
		n    int
		want string
	}{
		{"jan 31 to feb", calendar.New(2021, time.January, 31), 1, "2021-02-28"},
		{"jan 31 to leap feb", calendar.New(2024, time.January, 31), 1, "2024-02-29"},
		{"backwards across year", calendar.New(2021, time.March, 31), -4, "2020-11-30"},
		{"forward across year", calendar.New(2021, time.December, 15), 1, "2022-01-15"},
		{"two years back", calendar.New(2021, time.June, 1), -24, "2019-06-01"},
		{"zero", calendar.New(2021, time.June, 10), 0, "2021-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.AddMonths(tt.n).String(); got != tt.want {
				t.Errorf("AddMonths(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}

func TestAddYearsLeapDay(t *testing.T) {
	got := calendar.New(2024, time.February, 29).AddYears(1)
	if got.String() != "2025-02-28" {
		t.Errorf("AddYears(1) = %s, want 2025-02-28", got)
	}
	got = calendar.New(2024, time.February, 29).AddYears(4)
	if got.String() != "2028-02-29" {
		t.Errorf("AddYears(4) = %s, want 2028-02-29", got)
	}
}

func TestAddDays(t *testing.T) {
	d := calendar.New(2021, time.February, 27)
	if got := d.AddDays(2).String(); got != "2021-03-01" {
		t.Errorf("AddDays(2) = %s, want 2021-03-01", got)
	}
	if got := d.AddDays(-27).String(); got != "2021-01-31" {
		t.Errorf("AddDays(-27) = %s, want 2021-01-31", got)
	}
}

func TestMonthBounds(t *testing.T) {
	d := calendar.New(2021, time.June, 15)
	if got := d.StartOfMonth().String(); got != "2021-06-01" {
		t.Errorf("StartOfMonth() = %s", got)
	}
	if got := d.EndOfMonth().String(); got != "2021-06-30" {
		t.Errorf("EndOfMonth() = %s", got)
	}
	if !d.SameMonth(d.EndOfMonth()) {
		t.Error("expected SameMonth for end of month")
	}
	if d.SameMonth(d.AddYears(1)) {
		t.Error("expected different month a year later")
	}
}

func TestCompare(t *testing.T) {
	a := calendar.New(2021, time.June, 15)
	b := calendar.New(2021, time.June, 16)
	c := calendar.New(2022, time.January, 1)

	if !a.Before(b) || b.Before(a) {
		t.Error("expected a before b")
	}
	if !c.After(b) {
		t.Error("expected c after b")
	}
	if a.Compare(calendar.New(2021, time.June, 15)) != 0 {
		t.Error("expected equal dates to compare as 0")
	}
	if !a.Equal(calendar.FromTime(time.Date(2021, 6, 15, 23, 59, 0, 0, time.Local))) {
		t.Error("expected time-of-day to be ignored")
	}
}

func TestZeroDate(t *testing.T) {
	var d calendar.Date
	if !d.IsZero() {
		t.Error("expected zero Date to report IsZero")
	}
	if calendar.Today().IsZero() {
		t.Error("expected Today to be non-zero")
	}
}

func TestWeekday(t *testing.T) {
	// 2021-08-01 was a Sunday.
	if got := calendar.New(2021, time.August, 1).Weekday(); got != time.Sunday {
		t.Errorf("Weekday() = %v, want Sunday", got)
	}
}

// Package dateformat parses and formats dates with moment-style patterns
// such as "YYYY-MM-DD" or "M-D-YY".
//
// Patterns are compiled into Go reference layouts and parsed with the
// time package, which consumes the whole input and rejects days that do
// not exist in the parsed month. Parsing is strict: fixed-width tokens
// require their exact width and separators must match literally.
package dateformat

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultDisplay is the canonical output pattern.
const DefaultDisplay = "YYYY-MM-DD"

// DefaultPatterns is the ordered list of patterns tried when parsing.
// Full patterns come before partial ones so a bare year never claims
// input that a complete date pattern would match.
var DefaultPatterns = []string{
	"YYYY-MM-DD",
	"M-D-YY",
	"DD-MM-YYYY",
	"M-D",
	"YY",
	"YYYY",
	"YY-M",
	"YYYY-MM",
}

// ErrInvalidPattern is returned when a pattern contains an unknown token.
var ErrInvalidPattern = errors.New("invalid date pattern")

// token maps a pattern token to its Go layout element.
type token struct {
	pattern string
	layout  string
	field   field
}

type field int

const (
	fieldYear field = 1 << iota
	fieldMonth
	fieldDay
)

// tokens is ordered longest first so "YYYY" wins over "YY".
var tokens = []token{
	{"YYYY", "2006", fieldYear},
	{"YY", "06", fieldYear},
	{"MMMM", "January", fieldMonth},
	{"MMM", "Jan", fieldMonth},
	{"MM", "01", fieldMonth},
	{"M", "1", fieldMonth},
	{"DD", "02", fieldDay},
	{"D", "2", fieldDay},
}

// Layout is a compiled date pattern.
type Layout struct {
	pattern string
	layout  string
	fields  field
}

// Compile translates a pattern into a Layout.
func Compile(pattern string) (Layout, error) {
	if pattern == "" {
		return Layout{}, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	var b strings.Builder
	var fields field
	rest := pattern
	for rest != "" {
		tok, ok := matchToken(rest)
		if ok {
			if fields&tok.field != 0 {
				return Layout{}, fmt.Errorf("%w: %q repeats a field at %q", ErrInvalidPattern, pattern, tok.pattern)
			}
			fields |= tok.field
			b.WriteString(tok.layout)
			rest = rest[len(tok.pattern):]
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		if r == utf8.RuneError && size <= 1 {
			return Layout{}, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidPattern, pattern)
		}
		// Letters and digits would collide with Go layout elements, and
		// "_" introduces the space-padded day element.
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return Layout{}, fmt.Errorf("%w: %q has unsupported character %q", ErrInvalidPattern, pattern, r)
		}
		b.WriteRune(r)
		rest = rest[size:]
	}

	if fields == 0 {
		return Layout{}, fmt.Errorf("%w: %q has no date fields", ErrInvalidPattern, pattern)
	}
	return Layout{pattern: pattern, layout: b.String(), fields: fields}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) Layout {
	l, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

// CompileAll compiles patterns, keeping their order.
func CompileAll(patterns []string) ([]Layout, error) {
	layouts := make([]Layout, 0, len(patterns))
	for _, p := range patterns {
		l, err := Compile(p)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}

// Defaults returns the compiled default display layout and parse layouts.
func Defaults() (Layout, []Layout) {
	layouts := make([]Layout, len(DefaultPatterns))
	for i, p := range DefaultPatterns {
		layouts[i] = MustCompile(p)
	}
	return MustCompile(DefaultDisplay), layouts
}

// String returns the source pattern.
func (l Layout) String() string {
	return l.pattern
}

// IsZero reports whether l was never compiled.
func (l Layout) IsZero() bool {
	return l.layout == ""
}

// HasYear reports whether the pattern contains a year token.
func (l Layout) HasYear() bool {
	return l.fields&fieldYear != 0
}

func matchToken(s string) (token, bool) {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.pattern) {
			return t, true
		}
	}
	return token{}, false
}

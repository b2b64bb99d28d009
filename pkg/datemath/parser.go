package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotADate is returned when a string matches none of the accepted layouts.
var ErrNotADate = errors.New("not a calendar date")

// dateOnlyLayouts are resolved to the start of the day in the parser's timezone.
var dateOnlyLayouts = []string{
	"2006-01-02",
	"2006/01/02",
}

// dateTimeLayouts carry a time of day.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Parser converts due-date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate parses an absolute calendar date. Date-only values resolve to
// midnight in the parser's timezone. Relative phrases such as "Friday" or
// "next week" are rejected with ErrNotADate.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrNotADate
	}

	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return p.startOfDay(t), nil
		}
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrNotADate, s)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

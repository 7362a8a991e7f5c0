package shared

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the date format Phish.net expects in showdate queries.
const DateLayout = "2006-01-02"

// DisplayLayout renders dates in headings, e.g. "July 24, 1999".
const DisplayLayout = "January 02, 2006"

// DateRange bounds the dates a user may pick.
type DateRange struct {
	Min     time.Time
	Max     time.Time
	Default time.Time
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight [time.Time].
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate formats t the way Phish.net expects it.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls within the range, inclusive.
func (r DateRange) Contains(t time.Time) bool {
	t = Day(t)
	return !t.Before(r.Min) && !t.After(r.Max)
}

// Check returns [ErrDateOutOfRange] when t falls outside the range.
func (r DateRange) Check(t time.Time) error {
	if !r.Contains(t) {
		return fmt.Errorf("%w: %s is not between %s and %s",
			ErrDateOutOfRange, FormatDate(t), FormatDate(r.Min), FormatDate(r.Max))
	}
	return nil
}

// Clamp pins t to the nearest bound when it falls outside the range.
func (r DateRange) Clamp(t time.Time) time.Time {
	t = Day(t)
	switch {
	case t.Before(r.Min):
		return r.Min
	case t.After(r.Max):
		return r.Max
	}
	return t
}

// Resolve parses s, falling back to the default date when s is empty, and checks the bounds.
func (r DateRange) Resolve(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return r.Default, nil
	}

	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if err := r.Check(t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

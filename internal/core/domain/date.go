package domain

import (
	"fmt"
	"time"
)

// DateKeyLayout is the wire and display format of a DateKey.
const DateKeyLayout = "2006-01-02"

// DateKey is a calendar date without a time component.
// The zero value means "no date".
type DateKey struct {
	t time.Time // always midnight UTC
}

// NewDateKey builds a DateKey from calendar components. Out-of-range values are normalized.
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKey{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateKeyFromTime takes the calendar date of t in t's own location.
func DateKeyFromTime(t time.Time) DateKey {
	y, m, d := t.Date()
	return NewDateKey(y, m, d)
}

// Yesterday returns the calendar day before now.
func Yesterday(now time.Time) DateKey {
	return DateKeyFromTime(now).AddDays(-1)
}

// ParseDateKey parses a date in DateKeyLayout.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return DateKey{}, fmt.Errorf("invalid date %q: expected format %s", s, DateKeyLayout)
	}
	return DateKey{t: t}, nil
}

func (d DateKey) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateKeyLayout)
}

// IsZero reports whether d is the zero date.
func (d DateKey) IsZero() bool { return d.t.IsZero() }

func (d DateKey) AddDays(n int) DateKey {
	return DateKey{t: d.t.AddDate(0, 0, n)}
}

func (d DateKey) Equal(o DateKey) bool  { return d.t.Equal(o.t) }
func (d DateKey) Before(o DateKey) bool { return d.t.Before(o.t) }
func (d DateKey) After(o DateKey) bool  { return d.t.After(o.t) }

// MarshalText implements encoding.TextMarshaler.
func (d DateKey) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input yields the zero date.
func (d *DateKey) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = DateKey{}
		return nil
	}
	parsed, err := ParseDateKey(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

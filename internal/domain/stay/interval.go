// Package stay provides the half-open date-interval primitive used for all
// availability reasoning. An interval [start, end) includes its start instant
// and excludes its end, so a checkout instant never counts as occupied and a
// guest may check in on the day another guest checks out.
package stay

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval end must be after start")

type Interval struct {
	start time.Time
	end   time.Time
}

// NewInterval builds a half-open interval [start, end). Degenerate or
// inverted ranges (end <= start) are never valid.
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

// IsZero reports whether the interval is the zero value, i.e. was never
// constructed through NewInterval.
func (iv Interval) IsZero() bool {
	return iv.start.IsZero() && iv.end.IsZero()
}

// Overlaps reports whether two half-open intervals intersect:
// a.start < b.end && b.start < a.end.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

// Contains reports whether t falls inside the interval under the same
// half-open rule: start <= t < end.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.start) && t.Before(iv.end)
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}

// Nights returns the number of nights between check-in and check-out,
// rounding partial days up and never returning less than one. Callers are
// expected to reject checkOut <= checkIn before pricing; the clamp only
// guards same-day edge cases that slip through.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if rem := checkOut.Sub(checkIn) % (24 * time.Hour); rem > 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}

// DayOf returns the calendar day containing t as a half-open interval
// [midnight, next midnight) in t's location.
func DayOf(t time.Time) Interval {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Interval{start: start, end: start.AddDate(0, 0, 1)}
}

// Package academicyear derives the institution's current academic year label from the calendar.
package academicyear

import (
	"fmt"
	"time"
)

// Resolver returns the academic year in effect at a point in time.
// A year starts on the first day of CutoverMonth, so with a June cutover
// 2025-05-31 falls in "2024-2025" and 2025-06-01 in "2025-2026".
type Resolver struct {
	cutover time.Month
	now     func() time.Time
}

// NewResolver creates a resolver. Months outside 1..12 fall back to June.
func NewResolver(cutoverMonth int) *Resolver {
	m := time.Month(cutoverMonth)
	if m < time.January || m > time.December {
		m = time.June
	}
	return &Resolver{cutover: m, now: time.Now}
}

// WithClock replaces the time source
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// Current returns the academic year label for now
func (r *Resolver) Current() string {
	return r.At(r.now())
}

// At returns the academic year label for t, formatted "YYYY-YYYY"
func (r *Resolver) At(t time.Time) string {
	start := t.Year()
	if t.Month() < r.cutover {
		start--
	}
	return fmt.Sprintf("%d-%d", start, start+1)
}

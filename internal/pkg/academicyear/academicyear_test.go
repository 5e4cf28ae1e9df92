package academicyear

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolverAt(t *testing.T) {
	r := NewResolver(int(time.June))

	assert.Equal(t, "2024-2025", r.At(time.Date(2025, time.May, 31, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-2026", r.At(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-2026", r.At(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestResolverJanuaryCutoverIsCalendarYear(t *testing.T) {
	r := NewResolver(1)
	assert.Equal(t, "2025-2026", r.At(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResolverInvalidMonthDefaultsToJune(t *testing.T) {
	r := NewResolver(0).WithClock(func() time.Time {
		return time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	})
	assert.Equal(t, "2024-2025", r.Current())
}

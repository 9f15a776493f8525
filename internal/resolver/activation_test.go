package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActive_StartsOnIsInclusive(t *testing.T) {
	s := makeSchedule("s", "work", 540, 1020, startingOn(monday))

	assert.False(t, IsActive(s, sunday), "day before start")
	assert.True(t, IsActive(s, monday), "start date itself")
	assert.True(t, IsActive(s, friday))
}

func TestIsActive_WeekdayMembership(t *testing.T) {
	weekdays := makeSchedule("s", "work", 540, 1020, onDays(1, 2, 3, 4, 5))

	assert.True(t, IsActive(weekdays, monday))
	assert.True(t, IsActive(weekdays, friday))
	assert.False(t, IsActive(weekdays, saturday))
	assert.False(t, IsActive(weekdays, sunday))

	sundays := makeSchedule("s", "personal", 0, 0, onDays(0))
	assert.True(t, IsActive(sundays, sunday))
	assert.False(t, IsActive(sundays, monday))
}

func TestIsActive_UnparseableDate(t *testing.T) {
	s := makeSchedule("s", "work", 540, 1020)
	assert.False(t, IsActive(s, "2026-13-45"))
	assert.False(t, IsActive(s, "someday"))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekday(t *testing.T) {
	d, ok := Weekday("2026-10-11")
	assert.True(t, ok)
	assert.Equal(t, 0, d)

	d, ok = Weekday("2026-10-17")
	assert.True(t, ok)
	assert.Equal(t, 6, d)

	_, ok = Weekday("11/10/2026")
	assert.False(t, ok)
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2026-11-01", AddDays("2026-10-31", 1))
	assert.Equal(t, "2026-09-30", AddDays("2026-10-01", -1))
	assert.Equal(t, "junk", AddDays("junk", 3))
}

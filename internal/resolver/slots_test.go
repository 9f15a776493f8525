package resolver

import (
	"testing"
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTotalSlots(t *testing.T) {
	assert.Equal(t, 48, TotalSlots(30))
	assert.Equal(t, 96, TotalSlots(15))
}

func TestCurrentSlot(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2026, 10, 12, h, m, 59, 0, time.Local) }

	assert.Equal(t, 0, CurrentSlot(at(0, 0), 30))
	assert.Equal(t, 0, CurrentSlot(at(0, 29), 30))
	assert.Equal(t, 1, CurrentSlot(at(0, 30), 30))
	assert.Equal(t, 47, CurrentSlot(at(23, 59), 30))
	assert.Equal(t, 95, CurrentSlot(at(23, 59), 15))
	assert.Equal(t, 37, CurrentSlot(at(9, 15), 15))
}

func TestIsPreviousSlotLogged(t *testing.T) {
	schedules := []domain.DailySchedule{makeSchedule("work", "work", 540, 1020)}
	nineThirty := time.Date(2026, 10, 12, 9, 35, 0, 0, time.Local)
	nine := time.Date(2026, 10, 12, 9, 5, 0, 0, time.Local)
	midnight := time.Date(2026, 10, 12, 0, 10, 0, 0, time.Local)

	assert.True(t, IsPreviousSlotLogged(nineThirty, 30, schedules, nil), "09:00 slot scheduled")
	assert.False(t, IsPreviousSlotLogged(nine, 30, schedules, nil), "08:30 slot empty")
	assert.True(t, IsPreviousSlotLogged(midnight, 30, nil, nil), "first slot has no predecessor")

	cleared := IndexEntries([]domain.TimeEntry{{Date: monday, Slot: 18, Override: domain.Clear()}})
	assert.False(t, IsPreviousSlotLogged(nineThirty, 30, schedules, cleared))

	logged := IndexEntries([]domain.TimeEntry{{Date: monday, Slot: 17, Override: domain.Assign("break")}})
	assert.True(t, IsPreviousSlotLogged(nine, 30, schedules, logged))
}

package resolver

import (
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
)

// TotalSlots is the number of slots in a day for interval minutes.
func TotalSlots(interval int) int {
	return domain.MinutesPerDay / interval
}

// CurrentSlot returns the slot that contains now's wall-clock time.
func CurrentSlot(now time.Time, interval int) int {
	minutes := now.Hour()*60 + now.Minute()
	return minutes / interval
}

// IsPreviousSlotLogged reports whether the slot before the current one resolves
// to a tag today. The first slot of the day has no predecessor and counts as
// logged.
func IsPreviousSlotLogged(now time.Time, interval int, schedules []domain.DailySchedule, idx EntryIndex) bool {
	current := CurrentSlot(now, interval)
	if current == 0 {
		return true
	}
	today := domain.FormatDate(now)
	_, ok := ResolveEffectiveTag(today, current-1, interval, schedules, idx.ForDate(today))
	return ok
}

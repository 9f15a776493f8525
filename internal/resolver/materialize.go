package resolver

import "github.com/alexanderramin/slotlog/internal/domain"

// SlotTag is one logged slot of a materialized day.
type SlotTag struct {
	Slot  int
	TagID string
}

// MaterializeDay resolves every slot of date in order and returns the slots
// that carry a tag. Unlogged slots are left out. The result is rebuilt from
// scratch on every call; cost is O(totalSlots × len(schedules)).
func MaterializeDay(date string, totalSlots, interval int, schedules []domain.DailySchedule, overrides map[int]domain.Override) []SlotTag {
	var out []SlotTag
	for slot := 0; slot < totalSlots; slot++ {
		tagID, ok := ResolveEffectiveTag(date, slot, interval, schedules, overrides)
		if !ok {
			continue
		}
		out = append(out, SlotTag{Slot: slot, TagID: tagID})
	}
	return out
}

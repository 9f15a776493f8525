package resolver

import "github.com/alexanderramin/slotlog/internal/domain"

// SetEntry records a manual decision for one slot and returns the new entry
// collection. tagID "" means "no tag". The input slice is not modified.
//
// Any prior record for (date, slot) is dropped. A real tag is stored as an
// Assigned override. For "no tag", a Clear override is stored only when a
// schedule would otherwise tag the slot; if none would, nothing is stored, so
// clearing an unlogged slot leaves no trace.
func SetEntry(entries []domain.TimeEntry, date string, slot int, tagID string, interval int, schedules []domain.DailySchedule) []domain.TimeEntry {
	return SetEntriesForSlots(entries, date, []int{slot}, tagID, interval, schedules)
}

// SetEntriesForSlots applies SetEntry to a batch of slots against the same
// prior snapshot and returns one new collection. Duplicate slots are collapsed.
// An empty batch returns entries unchanged.
func SetEntriesForSlots(entries []domain.TimeEntry, date string, slots []int, tagID string, interval int, schedules []domain.DailySchedule) []domain.TimeEntry {
	slots = uniqueSlots(slots)
	if len(slots) == 0 {
		return entries
	}

	targets := make(map[int]bool, len(slots))
	for _, s := range slots {
		targets[s] = true
	}

	next := make([]domain.TimeEntry, 0, len(entries)+len(slots))
	for _, e := range entries {
		if e.Date == date && targets[e.Slot] {
			continue
		}
		next = append(next, e)
	}

	for _, slot := range slots {
		if tagID != "" {
			next = append(next, domain.TimeEntry{Date: date, Slot: slot, Override: domain.Assign(tagID)})
			continue
		}
		if _, scheduled := ResolveScheduledTag(date, slot, interval, schedules); scheduled {
			next = append(next, domain.TimeEntry{Date: date, Slot: slot, Override: domain.Clear()})
		}
	}
	return next
}

// OverrideFor returns the stored override of a slot, or Inherit when none is
// recorded.
func OverrideFor(entries []domain.TimeEntry, date string, slot int) domain.Override {
	o := domain.Inherit()
	for _, e := range entries {
		if e.Date == date && e.Slot == slot {
			o = e.Override
		}
	}
	return o
}

// uniqueSlots drops repeated slots, keeping first-occurrence order.
func uniqueSlots(slots []int) []int {
	seen := make(map[int]bool, len(slots))
	out := make([]int, 0, len(slots))
	for _, s := range slots {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

package resolver

import "github.com/alexanderramin/slotlog/internal/domain"

// EntryIndex groups manual overrides by date, then slot.
type EntryIndex map[string]map[int]domain.Override

// IndexEntries builds an EntryIndex. When the collection holds more than one
// record for a (date, slot), the later record wins.
func IndexEntries(entries []domain.TimeEntry) EntryIndex {
	idx := make(EntryIndex)
	for _, e := range entries {
		bySlot, ok := idx[e.Date]
		if !ok {
			bySlot = make(map[int]domain.Override)
			idx[e.Date] = bySlot
		}
		bySlot[e.Slot] = e.Override
	}
	return idx
}

// ForDate returns the overrides recorded for date, or nil.
func (idx EntryIndex) ForDate(date string) map[int]domain.Override {
	return idx[date]
}

// ResolveScheduledTag returns the tag the schedules alone assign to a slot,
// ignoring manual overrides. Schedules are scanned in stored order and the last
// active schedule covering the slot wins, so a later-added schedule takes
// precedence over an earlier one. ok is false when no schedule matches or the
// winning schedule has no tag.
func ResolveScheduledTag(date string, slot, interval int, schedules []domain.DailySchedule) (string, bool) {
	tagID := ""
	for _, s := range schedules {
		if !IsActive(s, date) {
			continue
		}
		if Covers(s, slot, interval) {
			tagID = s.TagID
		}
	}
	return tagID, tagID != ""
}

// ResolveEffectiveTag returns the tag that applies to a slot once manual
// overrides are taken into account. A Clear override yields no tag even when a
// schedule covers the slot; an Assigned override always wins.
func ResolveEffectiveTag(date string, slot, interval int, schedules []domain.DailySchedule, overrides map[int]domain.Override) (string, bool) {
	if o, ok := overrides[slot]; ok {
		switch o.Kind {
		case domain.OverrideClear:
			return "", false
		case domain.OverrideAssigned:
			return o.TagID, o.TagID != ""
		}
	}
	return ResolveScheduledTag(date, slot, interval, schedules)
}

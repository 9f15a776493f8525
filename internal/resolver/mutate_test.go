package resolver

import (
	"testing"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workdaySchedules() []domain.DailySchedule {
	return []domain.DailySchedule{makeSchedule("work", "work", 540, 1020)}
}

func TestSetEntry_AssignReplacesPriorRecord(t *testing.T) {
	entries := []domain.TimeEntry{
		{Date: monday, Slot: 5, Override: domain.Assign("work")},
		{Date: friday, Slot: 5, Override: domain.Assign("work")},
	}

	next := SetEntry(entries, monday, 5, "break", 30, nil)

	require.Len(t, next, 2)
	assert.Equal(t, domain.Assign("break"), OverrideFor(next, monday, 5))
	assert.Equal(t, domain.Assign("work"), OverrideFor(next, friday, 5), "other dates untouched")
}

func TestSetEntry_DoesNotModifyInput(t *testing.T) {
	entries := []domain.TimeEntry{{Date: monday, Slot: 5, Override: domain.Assign("work")}}
	snapshot := append([]domain.TimeEntry(nil), entries...)

	_ = SetEntry(entries, monday, 5, "", 30, nil)
	_ = SetEntry(entries, monday, 6, "sleep", 30, nil)

	assert.Equal(t, snapshot, entries)
}

func TestSetEntry_ClearUnscheduledSlotLeavesNoTrace(t *testing.T) {
	entries := []domain.TimeEntry{{Date: monday, Slot: 2, Override: domain.Assign("sleep")}}

	next := SetEntry(entries, monday, 2, "", 30, workdaySchedules())
	assert.Empty(t, next, "assignment removed and no clear marker stored")
	assert.Equal(t, domain.Inherit(), OverrideFor(next, monday, 2))

	again := SetEntry(next, monday, 2, "", 30, workdaySchedules())
	assert.Equal(t, next, again, "clearing twice is a no-op")

	fresh := SetEntry(nil, monday, 3, "", 30, workdaySchedules())
	assert.Empty(t, fresh)
}

func TestSetEntry_ClearScheduledSlotStoresClearOverride(t *testing.T) {
	schedules := workdaySchedules()

	next := SetEntry(nil, monday, 20, "", 30, schedules)

	require.Len(t, next, 1)
	assert.Equal(t, domain.TimeEntry{Date: monday, Slot: 20, Override: domain.Clear()}, next[0])

	day := MaterializeDay(monday, 48, 30, schedules, IndexEntries(next).ForDate(monday))
	for _, st := range day {
		assert.NotEqual(t, 20, st.Slot, "cleared slot must not be materialized")
	}
	assert.Len(t, day, 15)

	again := SetEntry(next, monday, 20, "", 30, schedules)
	assert.Equal(t, next, again, "re-clearing keeps exactly one clear record")
}

func TestSetEntry_AssignOverClearOverride(t *testing.T) {
	schedules := workdaySchedules()
	next := SetEntry(nil, monday, 20, "", 30, schedules)
	next = SetEntry(next, monday, 20, "exercise", 30, schedules)

	require.Len(t, next, 1)
	assert.Equal(t, domain.Assign("exercise"), OverrideFor(next, monday, 20))
}

func TestSetEntriesForSlots_EmptyBatchIsNoop(t *testing.T) {
	entries := []domain.TimeEntry{{Date: monday, Slot: 1, Override: domain.Assign("work")}}
	assert.Equal(t, entries, SetEntriesForSlots(entries, monday, nil, "sleep", 30, nil))
	assert.Equal(t, entries, SetEntriesForSlots(entries, monday, []int{}, "", 30, nil))
}

func TestSetEntriesForSlots_AssignCollapsesDuplicates(t *testing.T) {
	next := SetEntriesForSlots(nil, monday, []int{4, 2, 4, 3, 2}, "work", 30, nil)

	require.Len(t, next, 3)
	assert.Equal(t, 4, next[0].Slot)
	assert.Equal(t, 2, next[1].Slot)
	assert.Equal(t, 3, next[2].Slot)
	for _, e := range next {
		assert.Equal(t, domain.Assign("work"), e.Override)
	}
}

func TestSetEntriesForSlots_ClearDecidesPerSlot(t *testing.T) {
	schedules := workdaySchedules()
	entries := []domain.TimeEntry{
		{Date: monday, Slot: 16, Override: domain.Assign("break")},
		{Date: monday, Slot: 17, Override: domain.Assign("break")},
		{Date: monday, Slot: 18, Override: domain.Assign("break")},
		{Date: friday, Slot: 18, Override: domain.Assign("break")},
	}

	// 08:00-09:30: slots 16 and 17 are unscheduled, 18 and 19 are in the work rule.
	next := SetEntriesForSlots(entries, monday, []int{16, 17, 18, 19}, "", 30, schedules)

	assert.Equal(t, domain.Inherit(), OverrideFor(next, monday, 16))
	assert.Equal(t, domain.Inherit(), OverrideFor(next, monday, 17))
	assert.Equal(t, domain.Clear(), OverrideFor(next, monday, 18))
	assert.Equal(t, domain.Clear(), OverrideFor(next, monday, 19))
	assert.Equal(t, domain.Assign("break"), OverrideFor(next, friday, 18))
	assert.Len(t, next, 3)
}

func TestSetEntriesForSlots_MatchesSequentialSetEntry(t *testing.T) {
	schedules := []domain.DailySchedule{
		makeSchedule("sleep", "sleep", 1320, 360),
		makeSchedule("work", "work", 540, 1020),
	}
	slots := []int{0, 10, 12, 17, 18, 40, 44}

	for _, tagID := range []string{"", "exercise"} {
		batch := SetEntriesForSlots(nil, monday, slots, tagID, 30, schedules)

		var sequential []domain.TimeEntry
		for _, s := range slots {
			sequential = SetEntry(sequential, monday, s, tagID, 30, schedules)
		}
		assert.ElementsMatch(t, sequential, batch, "tag %q", tagID)
	}
}

func TestOverrideFor_StateMachine(t *testing.T) {
	schedules := workdaySchedules()
	var entries []domain.TimeEntry

	assert.Equal(t, domain.OverrideInherit, OverrideFor(entries, monday, 20).Kind)

	entries = SetEntry(entries, monday, 20, "break", 30, schedules)
	assert.Equal(t, domain.OverrideAssigned, OverrideFor(entries, monday, 20).Kind)

	entries = SetEntry(entries, monday, 20, "", 30, schedules)
	assert.Equal(t, domain.OverrideClear, OverrideFor(entries, monday, 20).Kind)

	entries = SetEntry(entries, monday, 20, "work", 30, schedules)
	assert.Equal(t, domain.Assign("work"), OverrideFor(entries, monday, 20))
}

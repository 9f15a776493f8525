package app

import (
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

type DayRequest struct {
	// Date is YYYY-MM-DD; empty means the local date of Now.
	Date string
	Now  *time.Time
}

// SlotView is one slot of a day as the CLI and the live view render it.
type SlotView struct {
	Slot        int
	StartMinute int
	EndMinute   int
	TagID       string
	TagName     string
	TagColor    string
	// Scheduled is the tag the schedules alone would give the slot.
	Scheduled string
	Override  domain.Override
	IsCurrent bool
}

// HasTag reports whether the slot resolves to a tag.
func (v SlotView) HasTag() bool { return v.TagID != "" }

type DayResponse struct {
	Date     string
	Settings domain.Settings
	// Slots holds every slot of the day in order, tagged or not.
	Slots []SlotView
	// Tagged is the sparse materialized day.
	Tagged []resolver.SlotTag
	Stats  resolver.DayStats
	// CurrentSlot is -1 unless Date is today.
	CurrentSlot int
	// PreviousLogged is only meaningful when Date is today.
	PreviousLogged bool
}

// SetEntriesRequest records one decision for every slot in Slots. An empty
// TagID means "no tag".
type SetEntriesRequest struct {
	Date  string
	Slots []int
	TagID string
}

type SetEntriesResult struct {
	Date    string
	Slots   []int
	// Changed counts the slots whose effective tag differs after the write.
	Changed int
}

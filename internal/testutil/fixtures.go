package testutil

import (
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/google/uuid"
)

// TestStartsOn is the default start date of fixture schedules. It lies well
// before any date the tests resolve.
const TestStartsOn = "2026-01-01"

// Tag options
type TagOption func(*domain.Tag)

func WithTagColor(c string) TagOption {
	return func(t *domain.Tag) {
		t.Color = c
	}
}

func WithTagName(n string) TagOption {
	return func(t *domain.Tag) {
		t.Name = n
	}
}

func NewTestTag(id string, opts ...TagOption) domain.Tag {
	t := domain.Tag{
		ID:    id,
		Name:  id,
		Color: domain.TagPalette[0],
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Schedule options
type ScheduleOption func(*domain.DailySchedule)

func WithWeekdays(days ...int) ScheduleOption {
	return func(s *domain.DailySchedule) {
		s.Weekdays = days
	}
}

func WithStartsOn(date string) ScheduleOption {
	return func(s *domain.DailySchedule) {
		s.StartsOn = date
	}
}

func WithScheduleID(id string) ScheduleOption {
	return func(s *domain.DailySchedule) {
		s.ID = id
	}
}

// NewTestSchedule returns a valid schedule for tagID over [start, end) minutes,
// active every day since TestStartsOn.
func NewTestSchedule(tagID string, start, end int, opts ...ScheduleOption) domain.DailySchedule {
	s := domain.DailySchedule{
		ID:          uuid.New().String(),
		TagID:       tagID,
		StartMinute: start,
		EndMinute:   end,
		Weekdays:    append([]int(nil), domain.AllWeekdays...),
		StartsOn:    TestStartsOn,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func NewTestEntry(date string, slot int, o domain.Override) domain.TimeEntry {
	return domain.TimeEntry{Date: date, Slot: slot, Override: o}
}

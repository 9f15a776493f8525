package resolver

import "github.com/alexanderramin/slotlog/internal/domain"

// Dates used across the tests. 2026-10-12 is a Monday.
const (
	sunday   = "2026-10-11"
	monday   = "2026-10-12"
	friday   = "2026-10-16"
	saturday = "2026-10-17"
)

type scheduleOption func(*domain.DailySchedule)

func onDays(days ...int) scheduleOption {
	return func(s *domain.DailySchedule) { s.Weekdays = days }
}

func startingOn(date string) scheduleOption {
	return func(s *domain.DailySchedule) { s.StartsOn = date }
}

func makeSchedule(id, tagID string, start, end int, opts ...scheduleOption) domain.DailySchedule {
	s := domain.DailySchedule{
		ID:          id,
		TagID:       tagID,
		StartMinute: start,
		EndMinute:   end,
		Weekdays:    append([]int(nil), domain.AllWeekdays...),
		StartsOn:    "2026-01-01",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

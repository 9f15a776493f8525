package resolver

import (
	"sort"
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/google/uuid"
)

// NormalizeSchedule turns a possibly partial stored record into a usable
// schedule. Each field is defaulted on its own and nothing is rejected:
//   - missing id: a fresh uuid
//   - missing tag: "" (such a rule never yields a tag)
//   - missing minutes: 0, out-of-range minutes are clamped to [0, 1440]
//   - weekdays: values outside 0..6 and duplicates are dropped; if none remain, all seven
//   - missing or unparseable start date: the calendar date of now
//
// Normalizing an already normalized schedule returns it unchanged.
func NormalizeSchedule(raw domain.RawSchedule, now time.Time) domain.DailySchedule {
	id := domain.StrFromPtrWithDefault("", raw.ID)
	if id == "" {
		id = uuid.New().String()
	}

	startsOn := domain.StrFromPtrWithDefault("", raw.StartsOn)
	if _, err := domain.ParseDate(startsOn); err != nil {
		startsOn = domain.FormatDate(now)
	}

	return domain.DailySchedule{
		ID:          id,
		TagID:       domain.StrFromPtrWithDefault("", raw.TagID),
		StartMinute: clampMinute(domain.IntFromPtrWithDefault(0, raw.StartMinute)),
		EndMinute:   clampMinute(domain.IntFromPtrWithDefault(0, raw.EndMinute)),
		Weekdays:    normalizeWeekdays(raw.Weekdays),
		StartsOn:    startsOn,
	}
}

// NormalizeSchedules normalizes a stored collection, keeping its order.
func NormalizeSchedules(raws []domain.RawSchedule, now time.Time) []domain.DailySchedule {
	out := make([]domain.DailySchedule, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeSchedule(raw, now))
	}
	return out
}

func clampMinute(m int) int {
	if m < 0 {
		return 0
	}
	if m > domain.MinutesPerDay {
		return domain.MinutesPerDay
	}
	return m
}

func normalizeWeekdays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	if len(out) == 0 {
		return append([]int(nil), domain.AllWeekdays...)
	}
	sort.Ints(out)
	return out
}

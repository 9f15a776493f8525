package resolver

import (
	"sort"

	"github.com/alexanderramin/slotlog/internal/domain"
)

// TagStat is the time a single tag accounts for on one day.
type TagStat struct {
	TagID   string
	Name    string
	Color   string
	Minutes int
}

// DayStats summarises a materialized day.
type DayStats struct {
	Date            string
	Tags            []TagStat
	LoggedMinutes   int
	UnloggedMinutes int
}

// ComputeDayStats totals minutes per tag, largest first. Ties keep the order in
// which the tags first appear in the day. Tag ids with no stored tag are
// reported under the Unknown placeholder.
func ComputeDayStats(date string, day []SlotTag, interval int, tags []domain.Tag) DayStats {
	byID := domain.TagIndex(tags)

	var order []string
	minutes := make(map[string]int)
	for _, st := range day {
		if _, seen := minutes[st.TagID]; !seen {
			order = append(order, st.TagID)
		}
		minutes[st.TagID] += interval
	}

	stats := DayStats{Date: date}
	for _, id := range order {
		stat := TagStat{TagID: id, Name: domain.UnknownTagName, Color: domain.UnknownTagColor, Minutes: minutes[id]}
		if t, ok := byID[id]; ok {
			stat.Name = t.Name
			stat.Color = t.Color
		}
		stats.Tags = append(stats.Tags, stat)
		stats.LoggedMinutes += stat.Minutes
	}
	sort.SliceStable(stats.Tags, func(i, j int) bool {
		return stats.Tags[i].Minutes > stats.Tags[j].Minutes
	})

	stats.UnloggedMinutes = domain.MinutesPerDay - stats.LoggedMinutes
	if stats.UnloggedMinutes < 0 {
		stats.UnloggedMinutes = 0
	}
	return stats
}

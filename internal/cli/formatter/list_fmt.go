package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slotlog/internal/domain"
)

func FormatTagList(tags []domain.Tag) string {
	if len(tags) == 0 {
		return Dim("No tags. Add one with: slotlog tag add NAME") + "\n"
	}
	headers := []string{"ID", "NAME", "COLOR"}
	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, []string{t.ID, TagLabel(t.Name, t.Color), Dim(t.Color)})
	}
	return RenderBox("Tags", RenderTable(headers, rows))
}

// FormatScheduleList renders schedules in evaluation order. Later rows win
// where rules overlap.
func FormatScheduleList(schedules []domain.DailySchedule, tags []domain.Tag, clock int) string {
	if len(schedules) == 0 {
		return Dim("No schedules. Add one with: slotlog schedule add --tag ID --from 09:00 --to 17:00") + "\n"
	}
	byID := domain.TagIndex(tags)

	headers := []string{"#", "ID", "TAG", "TIME", "DAYS", "FROM"}
	rows := make([][]string, 0, len(schedules))
	for i, s := range schedules {
		tag := Dim("(none)")
		if s.TagID != "" {
			t, ok := byID[s.TagID]
			if !ok {
				t = domain.Tag{Name: domain.UnknownTagName, Color: domain.UnknownTagColor}
			}
			tag = TagLabel(t.Name, t.Color)
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			TruncID(s.ID),
			tag,
			FormatScheduleRange(s, clock),
			FormatWeekdays(s.Weekdays),
			s.StartsOn,
		})
	}
	return RenderBox("Schedules", RenderTable(headers, rows)+"\n"+Dim("Later rules win where they overlap."))
}

func FormatSettings(s domain.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %d minutes %s\n", Dim("interval     "), s.Interval, Dim(fmt.Sprintf("(%d slots per day)", s.TotalSlots())))
	fmt.Fprintf(&b, "%s  %dh\n", Dim("clock        "), s.ClockFormat)
	fmt.Fprintf(&b, "%s  %s\n", Dim("notifications"), ModeBadge(s.NotificationMode))
	return RenderBox("Settings", b.String())
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	content = strings.TrimRight(content, "\n")
	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return boxStyle.Render(content) + "\n"
}

// FormatMinuteTime renders a minute of the day as a clock time. Minute 1440
// is midnight at the end of the day: "24:00" or "12:00 AM".
func FormatMinuteTime(minute, clock int) string {
	if minute >= domain.MinutesPerDay {
		if clock == domain.Clock12 {
			return "12:00 AM"
		}
		return "24:00"
	}
	minute = max(minute, 0)
	h, m := minute/60, minute%60
	if clock == domain.Clock12 {
		period := "AM"
		if h >= 12 {
			period = "PM"
		}
		h12 := h % 12
		if h12 == 0 {
			h12 = 12
		}
		return fmt.Sprintf("%d:%02d %s", h12, m, period)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatSlotTime renders the start time of a slot.
func FormatSlotTime(slot, interval, clock int) string {
	return FormatMinuteTime(slot*interval, clock)
}

// FormatSlotRange renders "start-end" for a slot.
func FormatSlotRange(slot, interval, clock int) string {
	return FormatMinuteTime(slot*interval, clock) + "-" + FormatMinuteTime((slot+1)*interval, clock)
}

// FormatDuration converts minutes into "1h 30m", "2h" or "45m".
func FormatDuration(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

var weekdayShort = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatWeekdays renders a weekday set: "Every day", "Weekdays", "Weekends",
// or the short names in Sunday-first order.
func FormatWeekdays(days []int) string {
	set := make(map[int]bool, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			set[d] = true
		}
	}
	switch {
	case len(set) == 7:
		return "Every day"
	case len(set) == 5 && !set[0] && !set[6]:
		return "Weekdays"
	case len(set) == 2 && set[0] && set[6]:
		return "Weekends"
	}
	names := make([]string, 0, len(set))
	for d, name := range weekdayShort {
		if set[d] {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// FormatScheduleRange renders the minute range of a schedule rule.
func FormatScheduleRange(s domain.DailySchedule, clock int) string {
	if s.IsFullDay() {
		return "All day"
	}
	r := FormatMinuteTime(s.StartMinute, clock) + "-" + FormatMinuteTime(s.EndMinute, clock)
	if s.IsOvernight() {
		r += " " + Dim("(overnight)")
	}
	return r
}

// DateLabel renders a date relative to today: "Today, Oct 12",
// "Yesterday, Oct 11", "Tomorrow, Oct 13" or "Wed, Oct 14".
func DateLabel(date string, today time.Time) string {
	d, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	suffix := d.Format("Jan 2")
	todayDate := domain.FormatDate(today)
	switch date {
	case todayDate:
		return "Today, " + suffix
	case domain.AddDays(todayDate, -1):
		return "Yesterday, " + suffix
	case domain.AddDays(todayDate, 1):
		return "Tomorrow, " + suffix
	default:
		return d.Format("Mon") + ", " + suffix
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

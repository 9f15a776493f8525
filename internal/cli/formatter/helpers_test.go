package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatMinuteTime(t *testing.T) {
	tests := []struct {
		name   string
		minute int
		clock  int
		want   string
	}{
		{"midnight 24h", 0, domain.Clock24, "00:00"},
		{"morning 24h", 9*60 + 5, domain.Clock24, "09:05"},
		{"evening 24h", 22*60 + 30, domain.Clock24, "22:30"},
		{"end of day 24h", 1440, domain.Clock24, "24:00"},
		{"midnight 12h", 0, domain.Clock12, "12:00 AM"},
		{"noon 12h", 12 * 60, domain.Clock12, "12:00 PM"},
		{"afternoon 12h", 13*60 + 45, domain.Clock12, "1:45 PM"},
		{"end of day 12h", 1440, domain.Clock12, "12:00 AM"},
		{"negative clamps", -10, domain.Clock24, "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinuteTime(tt.minute, tt.clock))
		})
	}
}

func TestFormatSlotRange(t *testing.T) {
	assert.Equal(t, "09:00-09:30", FormatSlotRange(18, 30, domain.Clock24))
	assert.Equal(t, "23:45-24:00", FormatSlotRange(95, 15, domain.Clock24))
	assert.Equal(t, "11:30 PM-12:00 AM", FormatSlotRange(47, 30, domain.Clock12))
	assert.Equal(t, "06:15", FormatSlotTime(25, 15, domain.Clock24))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "0m", FormatDuration(-5))
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "2h", FormatDuration(120))
	assert.Equal(t, "1h 30m", FormatDuration(90))
}

func TestFormatWeekdays(t *testing.T) {
	assert.Equal(t, "Every day", FormatWeekdays(domain.AllWeekdays))
	assert.Equal(t, "Weekdays", FormatWeekdays([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, "Weekends", FormatWeekdays([]int{6, 0}))
	assert.Equal(t, "Sun, Wed", FormatWeekdays([]int{3, 0, 3}))
}

func TestFormatScheduleRange(t *testing.T) {
	assert.Equal(t, "All day", FormatScheduleRange(domain.DailySchedule{StartMinute: 60, EndMinute: 60}, domain.Clock24))
	assert.Equal(t, "09:00-17:00", FormatScheduleRange(domain.DailySchedule{StartMinute: 540, EndMinute: 1020}, domain.Clock24))
	assert.Equal(t, "23:00-07:00 (overnight)",
		stripANSI(FormatScheduleRange(domain.DailySchedule{StartMinute: 1380, EndMinute: 420}, domain.Clock24)))
}

func TestDateLabel(t *testing.T) {
	today := time.Date(2026, 10, 12, 15, 0, 0, 0, time.Local)

	assert.Equal(t, "Today, Oct 12", DateLabel("2026-10-12", today))
	assert.Equal(t, "Yesterday, Oct 11", DateLabel("2026-10-11", today))
	assert.Equal(t, "Tomorrow, Oct 13", DateLabel("2026-10-13", today))
	assert.Equal(t, "Fri, Oct 16", DateLabel("2026-10-16", today))
	assert.Equal(t, "garbage", DateLabel("garbage", today))
}

func TestRenderBox_IncludesTitleAndContent(t *testing.T) {
	out := stripANSI(RenderBox("Tags", "hello"))
	assert.Contains(t, out, "TAGS")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", stripANSI(TruncID("1234567890")))
	assert.Equal(t, "work", stripANSI(TruncID("work")))
}

func TestTagStyle_InvalidColorFallsBack(t *testing.T) {
	assert.Equal(t, TagStyle(domain.UnknownTagColor).GetForeground(), TagStyle("blue").GetForeground())
}

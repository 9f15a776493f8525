package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

const shareBarWidth = 20

// FormatStats renders the per-tag totals of a day, largest first.
func FormatStats(stats resolver.DayStats) string {
	if len(stats.Tags) == 0 {
		return RenderBox("Stats "+stats.Date, Dim("Nothing logged.")+"\n\n"+
			FormatStatsSummary(stats.LoggedMinutes, stats.UnloggedMinutes))
	}

	headers := []string{"TAG", "TIME", "SHARE OF DAY"}
	rows := make([][]string, 0, len(stats.Tags))
	for _, ts := range stats.Tags {
		rows = append(rows, []string{
			TagLabel(ts.Name, ts.Color),
			FormatDuration(ts.Minutes),
			RenderShareBar(float64(ts.Minutes)/float64(domain.MinutesPerDay), shareBarWidth, ts.Color),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(FormatStatsSummary(stats.LoggedMinutes, stats.UnloggedMinutes))
	return RenderBox("Stats "+stats.Date, b.String())
}

// FormatStatsSummary renders the logged and unlogged totals on one line.
func FormatStatsSummary(logged, unlogged int) string {
	return fmt.Sprintf("%s %s   %s %s",
		Dim("Logged"), StyleGreen.Render(FormatDuration(logged)),
		Dim("Unlogged"), StyleDim.Render(FormatDuration(unlogged)))
}

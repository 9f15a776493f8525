package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/slotlog/internal/app"
	"github.com/alexanderramin/slotlog/internal/domain"
)

// DayBlock is a run of consecutive slots with the same tag and the same
// override kind.
type DayBlock struct {
	FirstSlot int
	LastSlot  int
	Start     int
	End       int
	TagID     string
	TagName   string
	TagColor  string
	Kind      domain.OverrideKind
	Current   bool
}

// GroupSlots merges consecutive slots into blocks.
func GroupSlots(slots []app.SlotView) []DayBlock {
	var blocks []DayBlock
	for _, s := range slots {
		if n := len(blocks); n > 0 {
			last := &blocks[n-1]
			if last.TagID == s.TagID && last.Kind == s.Override.Kind && last.LastSlot == s.Slot-1 {
				last.LastSlot = s.Slot
				last.End = s.EndMinute
				last.Current = last.Current || s.IsCurrent
				continue
			}
		}
		blocks = append(blocks, DayBlock{
			FirstSlot: s.Slot,
			LastSlot:  s.Slot,
			Start:     s.StartMinute,
			End:       s.EndMinute,
			TagID:     s.TagID,
			TagName:   s.TagName,
			TagColor:  s.TagColor,
			Kind:      s.Override.Kind,
			Current:   s.IsCurrent,
		})
	}
	return blocks
}

// FormatDay renders the timeline of a day. Consecutive slots are merged into
// blocks unless everySlot is set.
func FormatDay(resp *app.DayResponse, today time.Time, everySlot bool) string {
	clock := resp.Settings.ClockFormat

	var blocks []DayBlock
	if everySlot {
		for _, s := range resp.Slots {
			blocks = append(blocks, GroupSlots([]app.SlotView{s})...)
		}
	} else {
		blocks = GroupSlots(resp.Slots)
	}

	headers := []string{"", "TIME", "SLOTS", "TAG", "SOURCE"}
	rows := make([][]string, 0, len(blocks))
	for _, blk := range blocks {
		marker := " "
		if blk.Current {
			marker = StyleYellow.Render("▶")
		}
		tag := Dim("·")
		if blk.TagID != "" {
			tag = TagLabel(blk.TagName, blk.TagColor)
		}
		rows = append(rows, []string{
			marker,
			FormatMinuteTime(blk.Start, clock) + "-" + FormatMinuteTime(blk.End, clock),
			Dim(slotSpan(blk.FirstSlot, blk.LastSlot)),
			tag,
			sourceLabel(blk),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Bold(resp.Date), Dim(fmt.Sprintf("%d-minute slots", resp.Settings.Interval)))
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(FormatStatsSummary(resp.Stats.LoggedMinutes, resp.Stats.UnloggedMinutes))
	if resp.CurrentSlot > 0 && !resp.PreviousLogged {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("Previous slot is not logged."))
	}
	return RenderBox(DateLabel(resp.Date, today), b.String())
}

func slotSpan(first, last int) string {
	if first == last {
		return fmt.Sprintf("%d", first)
	}
	return fmt.Sprintf("%d-%d", first, last)
}

func sourceLabel(blk DayBlock) string {
	switch blk.Kind {
	case domain.OverrideAssigned:
		return StyleBlue.Render("manual")
	case domain.OverrideClear:
		return StyleRed.Render("cleared")
	}
	if blk.TagID != "" {
		return Dim("schedule")
	}
	return ""
}

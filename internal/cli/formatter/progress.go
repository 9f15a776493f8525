package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShareBar renders a bar like ████░░░░  45% filled in the given tag
// color. pct is clamped to [0, 1].
func RenderShareBar(pct float64, width int, color string) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)+0.5), width)
	bar := TagStyle(color).Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, pct*100)
}

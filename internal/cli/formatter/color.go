package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired palette for chrome. Tag colors come from the tags themselves.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

const swatchBlock = "██"

// TagStyle returns a foreground style in the tag's color. Colors that are
// not #RRGGBB fall back to the unknown-tag gray.
func TagStyle(color string) lipgloss.Style {
	if len(color) != 7 || !strings.HasPrefix(color, "#") {
		color = domain.UnknownTagColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// TagSwatch renders a small color block for a tag.
func TagSwatch(color string) string {
	return TagStyle(color).Render(swatchBlock)
}

// TagLabel renders "██ Name" in the tag's color.
func TagLabel(name, color string) string {
	return TagSwatch(color) + " " + TagStyle(color).Render(name)
}

// ModeBadge returns a styled notification mode indicator.
func ModeBadge(mode domain.NotificationMode) string {
	switch mode {
	case domain.NotifySound:
		return StyleGreen.Render("♪ sound")
	case domain.NotifyAlert:
		return StyleBlue.Render("● notify")
	case domain.NotifyOff:
		return StyleDim.Render("○ off")
	default:
		return StyleDim.Render(string(mode))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

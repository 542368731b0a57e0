package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turnbounce/internal/core"
)

// ansi256 is the terminal palette index for each screen color.
// ColorDefault is absent and renders unstyled.
var ansi256 = map[core.Color]string{
	core.ColorRed:         "9",
	core.ColorGreen:       "10",
	core.ColorYellow:      "11",
	core.ColorBlue:        "12",
	core.ColorMagenta:     "13",
	core.ColorCyan:        "14",
	core.ColorWhite:       "7",
	core.ColorBrightWhite: "15",
	core.ColorGray:        "245",
	core.ColorDarkGray:    "238",
}

var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansi256)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range ansi256 {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	styles[core.ColorBrightWhite] = styles[core.ColorBrightWhite].Bold(true)
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen turns a screen buffer into styled text, one style per run
// of same-colored cells.
func RenderScreen(s *core.Screen) string {
	var out, run strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		run.Reset()
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				out.WriteString(styleFor(current).Render(run.String()))
				run.Reset()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			out.WriteString(styleFor(current).Render(run.String()))
		}
	}
	return out.String()
}

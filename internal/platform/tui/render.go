package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cookie-crunch/internal/core"
)

// palette holds the ANSI 256 code of each core.Color. ColorDefault stays
// unstyled.
var palette = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorPink:          "212",
	core.ColorBrown:         "130",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// renderScreen turns the screen into styled text, one style call per run of
// same-coloured cells.
func renderScreen(s *core.Screen) string {
	var out, run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		current := s.GetCell(0, y).Color
		flush := func() {
			out.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				flush()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return out.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// tileTiers lists the tile values in core.ColorTile2 .. core.ColorTile2048 order.
var tileTiers = []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048}

// Palette maps core.Color to lipgloss styles.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds a palette whose tile colors come from theme.
// Interface colors use the terminal's ANSI palette.
func NewPalette(theme config.ThemeConfig) Palette {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault:     lipgloss.NewStyle(),
		core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	}

	styles[core.ColorTileEmpty] = tileStyle(theme.Empty, theme.DarkText)
	for i, value := range tileTiers {
		text := theme.LightText
		if value <= 4 {
			text = theme.DarkText
		}
		styles[core.ColorTile2+core.Color(i)] = tileStyle(theme.TileColor(value), text)
	}
	styles[core.ColorTileSuper] = tileStyle(theme.Super, theme.LightText)

	return Palette{styles: styles}
}

// DefaultPalette returns the palette for the built-in theme.
func DefaultPalette() Palette {
	return NewPalette(config.DefaultTheme())
}

func tileStyle(bg, fg string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	return s
}

// Style returns the style for c, or the default style if c is unmapped.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if style, ok := p.styles[c]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, ny := 0, s.Height(); y < ny; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

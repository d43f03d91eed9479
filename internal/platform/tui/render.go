package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glitch-defender/internal/core"
	"github.com/vovakirdan/glitch-defender/internal/games/defender"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("1"),
	core.ColorGreen:         fg("2"),
	core.ColorYellow:        fg("3"),
	core.ColorBlue:          fg("4"),
	core.ColorMagenta:       fg("5"),
	core.ColorCyan:          fg("6"),
	core.ColorWhite:         fg("7"),
	core.ColorBrightRed:     fg("9"),
	core.ColorBrightGreen:   fg("10"),
	core.ColorBrightYellow:  fg("11"),
	core.ColorBrightBlue:    fg("12"),
	core.ColorBrightMagenta: fg("13"),
	core.ColorBrightCyan:    fg("14"),
	core.ColorBrightWhite:   fg("15"),
	core.ColorOrange:        fg("208"),
	core.ColorGray:          fg("245"),
	core.ColorDarkGreen:     fg("22"),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are rendered with one style.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	color := s.GetCell(0, y).Color
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(color).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}

// glitchNoise is the character set of the static sprinkled during a glitch.
// Every rune is a single column wide so glitched rows keep their width.
var glitchNoise = []rune("01#%&▚▞")

const (
	glitchBand   = 3  // rows shifted together
	glitchStatic = 50 // static cells per glitched frame
)

// applyGlitch distorts a rendered frame: bands of rows shift sideways by
// up to two cells and dark green static appears in empty cells. Rows above
// top are left alone.
func applyGlitch(s *core.Screen, rng *defender.SimpleRNG, top int) {
	h, w := s.Height(), s.Width()
	if w == 0 || h <= top {
		return
	}

	for y := top; y < h; y += glitchBand {
		if rng.Intn(2) == 0 {
			continue
		}
		dx := rng.Intn(5) - 2
		for row := y; row < min(y+glitchBand, h); row++ {
			s.ShiftRow(row, dx)
		}
	}

	for range glitchStatic {
		x := rng.Intn(w)
		y := top + rng.Intn(h-top)
		if s.Get(x, y) == ' ' {
			s.SetCell(x, y, glitchNoise[rng.Intn(len(glitchNoise))], core.ColorDarkGreen)
		}
	}
}

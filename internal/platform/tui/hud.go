package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/glitch-defender/internal/core"
	"github.com/vovakirdan/glitch-defender/internal/games/defender"
)

// hudState is everything the status rows show besides the session itself.
type hudState struct {
	HighScore int
	Muted     bool
	Paused    bool
}

// drawHUD writes the two status rows at the top of the screen.
func drawHUD(s *core.Screen, g *defender.Game, st hudState) {
	left := fmt.Sprintf(" SCORE %06d  LIVES %s  FILES %d/%d  WAVE %d",
		g.Score(), lifeBar(g.Lives()), g.FilesCollected(), g.FilesToWin(), g.Wave())
	s.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("HI %06d ", max(st.HighScore, g.Score()))
	s.DrawTextColor(s.Width()-len(right), 0, right, core.ColorGray)

	x := 1
	for _, eff := range g.Player().ActivePowerUps() {
		label := fmt.Sprintf("%s %.0fs ", eff.Kind, math.Ceil(eff.RemainingMs/1000))
		s.DrawTextColor(x, 1, label, eff.Kind.Color())
		x += len(label) + 1
	}

	var flags []string
	if st.Muted {
		flags = append(flags, "MUTED")
	}
	if st.Paused {
		flags = append(flags, "PAUSED")
	}
	if len(flags) > 0 {
		text := strings.Join(flags, " ") + " "
		s.DrawTextColor(s.Width()-len(text), 1, text, core.ColorYellow)
	}

	if x == 1 && len(flags) == 0 {
		s.DrawHLine(0, 1, s.Width(), '─', core.ColorGray)
	}
}

func lifeBar(lives int) string {
	if lives <= 0 {
		return "-"
	}
	return strings.Repeat("♥", lives)
}

// drawOverlay draws a centered message box over the playfield.
func drawOverlay(s *core.Screen, title string, color core.Color, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 6
	height := len(lines) + 4

	x := (s.Width() - width) / 2
	y := (s.Height() - height) / 2
	s.FillRect(x, y, width, height, ' ', core.ColorDefault)
	s.DrawBox(x, y, width, height, color)
	s.DrawTextCentered(y+1, title, color)
	for i, l := range lines {
		s.DrawTextCentered(y+3+i, l, core.ColorWhite)
	}
}

// drawEndScreen draws the pause, game over or win overlay, if any.
func drawEndScreen(s *core.Screen, g *defender.Game, paused bool) {
	switch g.State() {
	case defender.StateGameOver:
		drawOverlay(s, "SYSTEM COMPROMISED", core.ColorBrightRed,
			fmt.Sprintf("Final score: %d", g.Score()),
			"R restart  B menu  Q quit")
	case defender.StateWin:
		drawOverlay(s, "SYSTEM SECURED", core.ColorBrightGreen,
			fmt.Sprintf("All %d security files recovered", g.FilesToWin()),
			fmt.Sprintf("Final score: %d", g.Score()),
			"R restart  B menu  Q quit")
	default:
		if paused {
			drawOverlay(s, "PAUSED", core.ColorYellow, "P resume  M mute  Q quit")
		}
	}
}

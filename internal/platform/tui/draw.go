package tui

import (
	"math"

	"github.com/vovakirdan/glitch-defender/internal/core"
	"github.com/vovakirdan/glitch-defender/internal/games/defender"
)

// Layout rows reserved around the playfield.
const (
	hudRows  = 2
	helpRows = 1
)

// FieldForScreen returns the field size, in field units, of the playfield
// on a cols x rows terminal.
func FieldForScreen(cols, rows int) (float64, float64) {
	return core.FieldSize(max(cols, 1), max(rows-hudRows-helpRows, 1))
}

// screenSink draws sprites into a cell screen below the HUD.
type screenSink struct {
	screen *core.Screen
	top    int
}

func newScreenSink(screen *core.Screen) *screenSink {
	return &screenSink{screen: screen, top: hudRows}
}

// cells returns the inclusive cell span covered by r. Every sprite covers
// at least one cell.
func cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / core.CellW))
	y0 = int(math.Floor(r.Y / core.CellH))
	x1 = max(int(math.Ceil(r.Right()/core.CellW))-1, x0)
	y1 = max(int(math.Ceil(r.Bottom()/core.CellH))-1, y0)
	return x0, y0, x1, y1
}

// DrawSprite implements defender.DrawSink. Parts of a sprite above the
// field are clipped so they never reach the HUD.
func (s *screenSink) DrawSprite(sp defender.Sprite) {
	x0, y0, x1, y1 := cells(sp.Rect)
	color := sp.Color
	if sp.Frozen {
		color = core.ColorBrightCyan
	}

	for y := max(y0, 0); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r := spriteRune(sp, x-x0, y-y0, x1-x0+1, y1-y0+1)
			s.screen.SetCell(x, y+s.top, r, color)
		}
	}
}

// spriteRune picks the glyph for cell (cx, cy) of a w x h sprite.
func spriteRune(sp defender.Sprite, cx, cy, w, h int) rune {
	switch sp.Kind {
	case defender.KindPlayer:
		if sp.Shielded && (cy == 0 || cx == 0 || cx == w-1) {
			return '░'
		}
		switch {
		case cy == 0 && cx == w/2:
			return '▲'
		case cy == 0:
			return ' '
		case cy == h-1:
			return '▀'
		default:
			return '█'
		}
	case defender.KindPlayerBullet:
		return '|'
	case defender.KindEnemyBullet:
		if sp.Frozen {
			return '*'
		}
		return '•'
	case defender.KindEnemy:
		if cy == 0 {
			return '▄'
		}
		if cx == 0 || cx == w-1 {
			return '▀'
		}
		return '▓'
	case defender.KindPowerUp:
		return sp.PowerUp.Glyph()
	case defender.KindSecurityFile:
		if cx == 0 && cy == 0 {
			return '▣'
		}
		return '▒'
	}
	return '?'
}

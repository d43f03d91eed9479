package defender

import (
	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/core"
)

// PowerUpKind is the closed set of power-ups.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpTripleShot
	PowerUpBomb
	PowerUpSpeedBoost
	PowerUpFreeze
	PowerUpKindCount // Sentinel for counting kinds
)

// powerUpEffects maps every kind to the player activation it triggers.
// This table is the only place kind-specific behaviour lives.
var powerUpEffects = [PowerUpKindCount]func(*Player){
	PowerUpShield:     (*Player).ActivateShield,
	PowerUpTripleShot: (*Player).ActivateTripleShot,
	PowerUpBomb:       (*Player).ActivateBomb,
	PowerUpSpeedBoost: (*Player).ActivateSpeedBoost,
	PowerUpFreeze:     (*Player).ActivateFreeze,
}

var powerUpInfo = [PowerUpKindCount]struct {
	name  string
	glyph rune
	color core.Color
}{
	PowerUpShield:     {"Shield", 'S', core.ColorBrightBlue},
	PowerUpTripleShot: {"Triple", 'T', core.ColorBrightYellow},
	PowerUpBomb:       {"Bomb", 'B', core.ColorOrange},
	PowerUpSpeedBoost: {"Speed", '>', core.ColorBrightGreen},
	PowerUpFreeze:     {"Freeze", '*', core.ColorBrightCyan},
}

func (k PowerUpKind) valid() bool {
	return k >= 0 && k < PowerUpKindCount
}

// String returns the display name of the kind.
func (k PowerUpKind) String() string {
	if !k.valid() {
		return "?"
	}
	return powerUpInfo[k].name
}

// Glyph returns the display character of the kind.
func (k PowerUpKind) Glyph() rune {
	if !k.valid() {
		return '?'
	}
	return powerUpInfo[k].glyph
}

// Color returns the fallback color of the kind.
func (k PowerUpKind) Color() core.Color {
	if !k.valid() {
		return core.ColorWhite
	}
	return powerUpInfo[k].color
}

// PowerUp is a falling pickup dropped by a destroyed enemy.
type PowerUp struct {
	entity

	Kind  PowerUpKind
	Speed float64
}

// newPowerUp creates a power-up centred on (cx, cy).
func newPowerUp(cfg *config.Config, field Field, cx, cy float64, kind PowerUpKind) *PowerUp {
	size := scaled(cfg.PowerUps.Size, field.scale(cfg.Field), cfg.PowerUps.MinSize)
	p := &PowerUp{Kind: kind, Speed: cfg.PowerUps.FallSpeed}
	p.X, p.Y, p.W, p.H = cx-size/2, cy-size/2, size, size
	return p
}

// Update moves the power-up down and marks it once it falls off the field.
func (p *PowerUp) Update(dt float64, field Field) {
	p.Y += p.Speed * dt / 1000
	if p.Y > field.H {
		p.markDeleted()
	}
}

// ApplyEffect activates this power-up on the player.
func (p *PowerUp) ApplyEffect(player *Player) {
	if p.Kind.valid() {
		powerUpEffects[p.Kind](player)
	}
}

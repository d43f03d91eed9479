package defender

import "github.com/vovakirdan/glitch-defender/internal/core"

// Cue names a sound the session wants played.
type Cue int

const (
	CueShoot Cue = iota
	CueEnemyHit
	CuePlayerHit
	CuePowerUp
	CueFilePickup
	CueBomb
	CueGlitch // also used when the shield absorbs a hit
	CueGameOver
	CueWin
	CueCount
)

var cueNames = [CueCount]string{
	CueShoot:      "shoot",
	CueEnemyHit:   "enemyHit",
	CuePlayerHit:  "playerHit",
	CuePowerUp:    "powerup",
	CueFilePickup: "filePickup",
	CueBomb:       "bomb",
	CueGlitch:     "glitch",
	CueGameOver:   "gameOver",
	CueWin:        "win",
}

// String returns the cue name.
func (c Cue) String() string {
	if c >= 0 && c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}

// SoundSink realises sound intents. Calls are fire-and-forget: the
// simulation never waits on them and never reads anything back.
type SoundSink interface {
	PlayCue(c Cue)
	SetTempo(multiplier float64)
	StartMusic()
	StopMusic()
}

// NopSound discards every intent. Used for headless runs.
type NopSound struct{}

func (NopSound) PlayCue(Cue)      {}
func (NopSound) SetTempo(float64) {}
func (NopSound) StartMusic()      {}
func (NopSound) StopMusic()       {}

// InputSource is polled once per frame for the horizontal movement intent.
// Fire events are delivered separately through Game.HandleShoot.
type InputSource interface {
	// MovementIntent returns -1 (left), 0 (idle) or +1 (right).
	MovementIntent() int
}

// StaticInput is an InputSource that always reports the same intent.
type StaticInput int

// MovementIntent implements InputSource.
func (s StaticInput) MovementIntent() int {
	return int(s)
}

// Sprite describes one live entity for a draw sink.
type Sprite struct {
	Kind     Kind
	Rect     core.Rect
	Color    core.Color
	PowerUp  PowerUpKind // valid when Kind == KindPowerUp
	Frozen   bool
	Shielded bool
}

// DrawSink receives sprites in paint order: player, player bullets,
// enemy bullets, enemies, power-ups, security files.
type DrawSink interface {
	DrawSprite(s Sprite)
}

// Kind tags an entity for the renderer.
type Kind int

const (
	KindPlayer Kind = iota
	KindPlayerBullet
	KindEnemyBullet
	KindEnemy
	KindPowerUp
	KindSecurityFile
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlayerBullet:
		return "player-bullet"
	case KindEnemyBullet:
		return "enemy-bullet"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "powerup"
	case KindSecurityFile:
		return "file"
	default:
		return "unknown"
	}
}

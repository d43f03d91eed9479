// Package defender implements the Glitch Defender simulation: a player craft
// at the bottom of the field shoots down descending virus waves and collects
// security files. The package performs no I/O. Sound, input and drawing go
// through the collaborator interfaces in collaborators.go.
package defender

import (
	"fmt"

	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/core"
)

// State is the session state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
	StateWin
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s != StatePlaying
}

// Deps are the collaborators injected into a session. Nil fields fall back
// to NopSound, StaticInput(0) and NewSimpleRNG(1).
type Deps struct {
	Sound SoundSink
	Input InputSource
	Rand  Rand
}

// Game is one session. It is not safe for concurrent use: a single driver
// loop owns it.
type Game struct {
	cfg   config.Config
	field Field

	player        *Player
	playerBullets []*Bullet
	enemyBullets  []*Bullet
	enemies       []*Enemy
	powerUps      []*PowerUp
	files         []*SecurityFile

	spawner     *Spawner
	glitchTimer float64

	score          int
	filesCollected int
	state          State
	frames         uint64
	elapsedMs      float64

	sound SoundSink
	input InputSource
	rng   Rand
}

// New starts a session on a w x h field. It resets the music tempo and
// starts the music.
func New(cfg config.Config, w, h float64, deps Deps) (*Game, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("defender: invalid field size %gx%g", w, h)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("defender: %w", err)
	}
	if deps.Sound == nil {
		deps.Sound = NopSound{}
	}
	if deps.Input == nil {
		deps.Input = StaticInput(0)
	}
	if deps.Rand == nil {
		deps.Rand = NewSimpleRNG(1)
	}

	field := Field{W: w, H: h}
	g := &Game{
		cfg:     cfg,
		field:   field,
		player:  newPlayer(&cfg, field, deps.Sound),
		spawner: newSpawner(cfg.Spawner),
		state:   StatePlaying,
		sound:   deps.Sound,
		input:   deps.Input,
		rng:     deps.Rand,
	}
	g.sound.SetTempo(1.0)
	g.sound.StartMusic()
	return g, nil
}

// Update advances the session by dt milliseconds. It does nothing once the
// session has ended or when dt is not positive.
func (g *Game) Update(dt float64) {
	if g.state.Terminal() || dt <= 0 {
		return
	}
	g.frames++
	g.elapsedMs += dt

	g.player.Update(dt, clampIntent(g.input.MovementIntent()), g.field)

	for _, b := range g.playerBullets {
		b.Update(dt, g.field)
	}
	for _, b := range g.enemyBullets {
		b.Update(dt, g.field)
	}

	var shots []*Bullet
	for _, e := range g.enemies {
		if e.Update(dt, g.field) && !e.Deleted() {
			mx, my := e.Muzzle()
			shots = append(shots, newBullet(&g.cfg, g.field, mx, my, DirDown, 0))
		}
	}
	g.enemyBullets = append(g.enemyBullets, shots...)

	for _, p := range g.powerUps {
		p.Update(dt, g.field)
	}
	for _, f := range g.files {
		f.Update(dt, g.field)
	}

	wave, file := g.spawner.Tick(dt)
	if wave {
		g.spawnWave()
	}
	if file && g.spawner.fileAllowed(g.liveFiles(), g.filesCollected) {
		g.spawnFile()
	}

	g.glitchTimer += dt
	if g.glitchTimer >= g.cfg.Glitch.IntervalMs {
		g.glitchTimer = 0
		g.sound.PlayCue(CueGlitch)
	}

	g.resolveCollisions()
	g.CheckTerminal()
}

func clampIntent(i int) int {
	return core.Clamp(i, -1, 1)
}

func (g *Game) liveFiles() int {
	n := 0
	for _, f := range g.files {
		if !f.Deleted() {
			n++
		}
	}
	return n
}

// HandleShoot fires the player's weapon if the session is running and the
// cooldown has elapsed. With triple shot two extra bullets leave from a
// quarter craft-width either side, slightly lower.
func (g *Game) HandleShoot() {
	if g.state.Terminal() || !g.player.CanShoot() {
		return
	}
	p := g.player
	cx := p.centerX()
	g.playerBullets = append(g.playerBullets, newBullet(&g.cfg, g.field, cx, p.Y, DirUp, 0))
	if p.TripleShot {
		g.playerBullets = append(g.playerBullets,
			newBullet(&g.cfg, g.field, cx, p.Y+5, DirUp, -p.W/4),
			newBullet(&g.cfg, g.field, cx, p.Y+5, DirUp, p.W/4),
		)
	}
	g.sound.PlayCue(CueShoot)
	p.startCooldown()
}

// CheckTerminal moves the session to its terminal state the first time a
// condition holds. A win beats a loss in the same frame. Calling it again
// after the transition has no effect.
func (g *Game) CheckTerminal() State {
	if g.state.Terminal() {
		return g.state
	}
	switch {
	case g.filesCollected >= g.cfg.Spawner.FilesToWin:
		g.state = StateWin
		g.sound.StopMusic()
		g.sound.PlayCue(CueWin)
	case g.player.Lives <= 0:
		g.state = StateGameOver
		g.sound.StopMusic()
		g.sound.PlayCue(CueGameOver)
	}
	return g.state
}

// Resize changes the field bounds. Only the player is rescaled; entities
// already in flight keep their size.
func (g *Game) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	g.field = Field{W: w, H: h}
	g.player.resize(g.field)
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the player's remaining lives.
func (g *Game) Lives() int { return g.player.Lives }

// FilesCollected returns the number of security files picked up.
func (g *Game) FilesCollected() int { return g.filesCollected }

// FilesToWin returns the number of files needed to win.
func (g *Game) FilesToWin() int { return g.cfg.Spawner.FilesToWin }

// Wave returns the number of waves spawned so far.
func (g *Game) Wave() int { return g.spawner.Waves }

// State returns the session state.
func (g *Game) State() State { return g.state }

// GlitchActive reports whether the short glitch window is open.
func (g *Game) GlitchActive() bool {
	return g.glitchTimer < g.cfg.Glitch.DurationMs
}

// ElapsedMs returns the simulated time played so far.
func (g *Game) ElapsedMs() float64 { return g.elapsedMs }

// Field returns the current field bounds.
func (g *Game) Field() Field { return g.field }

// Player returns the player craft.
func (g *Game) Player() *Player { return g.player }

// PlayerBullets returns the live player bullets. The slice must not be modified.
func (g *Game) PlayerBullets() []*Bullet { return g.playerBullets }

// EnemyBullets returns the live enemy bullets.
func (g *Game) EnemyBullets() []*Bullet { return g.enemyBullets }

// Enemies returns the live enemies.
func (g *Game) Enemies() []*Enemy { return g.enemies }

// PowerUps returns the falling power-ups.
func (g *Game) PowerUps() []*PowerUp { return g.powerUps }

// Files returns the falling security files.
func (g *Game) Files() []*SecurityFile { return g.files }

// Draw hands every entity to sink in paint order.
func (g *Game) Draw(sink DrawSink) {
	p := g.player
	sink.DrawSprite(Sprite{Kind: KindPlayer, Rect: p.Rect(), Color: core.ColorBrightCyan, Shielded: p.Shielded})
	for _, b := range g.playerBullets {
		sink.DrawSprite(Sprite{Kind: KindPlayerBullet, Rect: b.Rect(), Color: core.ColorBrightGreen})
	}
	for _, b := range g.enemyBullets {
		sink.DrawSprite(Sprite{Kind: KindEnemyBullet, Rect: b.Rect(), Color: core.ColorBrightRed, Frozen: b.Frozen})
	}
	for _, e := range g.enemies {
		sink.DrawSprite(Sprite{Kind: KindEnemy, Rect: e.Rect(), Color: core.ColorRed, Frozen: e.Frozen})
	}
	for _, pu := range g.powerUps {
		sink.DrawSprite(Sprite{Kind: KindPowerUp, Rect: pu.Rect(), Color: pu.Kind.Color(), PowerUp: pu.Kind})
	}
	for _, f := range g.files {
		sink.DrawSprite(Sprite{Kind: KindSecurityFile, Rect: f.VisualRect(), Color: core.ColorBrightYellow})
	}
}

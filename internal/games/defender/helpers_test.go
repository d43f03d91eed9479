package defender

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/glitch-defender/internal/config"
)

// recordingSound keeps every intent the session emits.
type recordingSound struct {
	cues   []Cue
	tempos []float64
	starts int
	stops  int
}

func (r *recordingSound) PlayCue(c Cue)      { r.cues = append(r.cues, c) }
func (r *recordingSound) SetTempo(m float64) { r.tempos = append(r.tempos, m) }
func (r *recordingSound) StartMusic()        { r.starts++ }
func (r *recordingSound) StopMusic()         { r.stops++ }

func (r *recordingSound) count(c Cue) (n int) {
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// constRand always returns the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

type spriteRecorder struct {
	sprites []Sprite
}

func (s *spriteRecorder) DrawSprite(sp Sprite) { s.sprites = append(s.sprites, sp) }

// newTestGame builds an 800x600 session whose random draws never trigger a
// drop (0.99 > drop chance) and whose enemies drift right.
func newTestGame(t *testing.T, cfg config.Config) (*Game, *recordingSound) {
	t.Helper()
	snd := &recordingSound{}
	g, err := New(cfg, 800, 600, Deps{Sound: snd, Rand: constRand(0.99)})
	require.NoError(t, err)
	return g, snd
}

// addEnemy places an enemy that holds fire until a full interval passes.
func (g *Game) addEnemy(x, y float64) *Enemy {
	e := newEnemy(&g.cfg, g.field, x, y, g.rng)
	e.shootTimer = 0
	g.enemies = append(g.enemies, e)
	return e
}

func (g *Game) addEnemyBullet(cx, y float64) *Bullet {
	b := newBullet(&g.cfg, g.field, cx, y, DirDown, 0)
	g.enemyBullets = append(g.enemyBullets, b)
	return b
}

func (g *Game) addPlayerBullet(cx, y float64) *Bullet {
	b := newBullet(&g.cfg, g.field, cx, y, DirUp, 0)
	g.playerBullets = append(g.playerBullets, b)
	return b
}

func (g *Game) addFile(x, y float64) *SecurityFile {
	f := newSecurityFile(&g.cfg, g.field, x, y)
	g.files = append(g.files, f)
	return f
}

func (g *Game) assertCompacted(t *testing.T) {
	t.Helper()
	for _, b := range g.playerBullets {
		require.False(t, b.Deleted(), "marked player bullet survived compaction")
	}
	for _, b := range g.enemyBullets {
		require.False(t, b.Deleted(), "marked enemy bullet survived compaction")
	}
	for _, e := range g.enemies {
		require.False(t, e.Deleted(), "marked enemy survived compaction")
	}
	for _, p := range g.powerUps {
		require.False(t, p.Deleted(), "marked power-up survived compaction")
	}
	for _, f := range g.files {
		require.False(t, f.Deleted(), "marked file survived compaction")
	}
}

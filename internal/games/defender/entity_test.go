package defender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/glitch-defender/internal/config"
)

var testField = Field{W: 800, H: 600}

func testEnemy(t *testing.T, x, y float64, r Rand) *Enemy {
	t.Helper()
	cfg := config.Default()
	return newEnemy(&cfg, testField, x, y, r)
}

func TestEnemyFreezeRestoresVelocity(t *testing.T) {
	e := testEnemy(t, 100, 100, constRand(0.99))
	vx, vy := e.SpeedX, e.SpeedY

	e.Freeze()
	e.Freeze()
	assert.True(t, e.Frozen)
	assert.Zero(t, e.SpeedX)
	assert.Zero(t, e.SpeedY)

	e.Update(2999, testField)
	assert.True(t, e.Frozen)
	assert.InDelta(t, 100, e.X, 1e-9)
	assert.InDelta(t, 100, e.Y, 1e-9)

	e.Update(1, testField)
	assert.False(t, e.Frozen)
	assert.Equal(t, vx, e.SpeedX)
	assert.Equal(t, vy, e.SpeedY)
	assert.InDelta(t, 100, e.Y, 1e-9, "no movement on the thaw frame")

	e.Update(1000, testField)
	assert.InDelta(t, 180, e.Y, 1e-9)
}

func TestEnemyFrozenDoesNotShoot(t *testing.T) {
	e := testEnemy(t, 100, 100, constRand(0))
	e.shootTimer = e.shootInterval - 1
	e.Freeze()

	assert.False(t, e.Update(10, testField))
}

func TestEnemyShootSchedule(t *testing.T) {
	e := testEnemy(t, 100, 100, constRand(0.5))
	assert.InDelta(t, 12500, e.shootTimer, 1e-9, "timer starts charged")
	assert.InDelta(t, 7500, e.shootInterval, 1e-9)

	assert.True(t, e.Update(1, testField), "fires on its first frame")
	assert.Zero(t, e.shootTimer)
	assert.InDelta(t, 7500, e.shootInterval, 1e-9)

	assert.False(t, e.Update(7499, testField))
	assert.True(t, e.Update(1, testField))

	mx, my := e.Muzzle()
	assert.InDelta(t, e.X+20, mx, 1e-9)
	assert.InDelta(t, e.Y+40, my, 1e-9)
}

func TestNewEnemiesFireOnFirstFrame(t *testing.T) {
	rng := NewSimpleRNG(7)
	for i := range 10 {
		e := testEnemy(t, 100, 100, rng)
		assert.True(t, e.Update(frame, testField), "enemy %d", i)
	}
}

func TestEnemyShotsEnterSession(t *testing.T) {
	g, _ := newTestGame(t, config.Default())
	g.enemies = append(g.enemies, newEnemy(&g.cfg, g.field, 100, 100, g.rng))

	g.Update(frame)

	require.Len(t, g.EnemyBullets(), 1)
	cx, _ := g.EnemyBullets()[0].Rect().Center()
	assert.InDelta(t, g.Enemies()[0].X+20, cx, 1e-9)
}

func TestEnemyBouncesOffEdges(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		rnd    constRand
		wantX  float64
		wantVX float64
	}{
		{"left edge", 0, 0, 0, 35},
		{"right edge", 760, 0.99, 760, -35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEnemy(t, tt.x, 100, tt.rnd)
			e.Update(16, testField)
			assert.InDelta(t, tt.wantX, e.X, 1e-9)
			assert.InDelta(t, tt.wantVX, e.SpeedX, 1e-9)
		})
	}
}

func TestEnemyZigzag(t *testing.T) {
	e := testEnemy(t, 300, 100, constRand(0))
	require.InDelta(t, -35, e.SpeedX, 1e-9)

	e.Update(1000, testField)
	assert.InDelta(t, 35, e.SpeedX, 1e-9)
	assert.Zero(t, e.zigzagTimer)
}

func TestEnemyLeavesField(t *testing.T) {
	e := testEnemy(t, 300, 599, constRand(0.99))
	e.Update(16, testField)
	assert.True(t, e.Deleted())
}

func TestEnemyHit(t *testing.T) {
	cfg := config.Default()
	cfg.Enemies.Health = 2
	e := newEnemy(&cfg, testField, 0, 0, constRand(0))

	assert.False(t, e.Hit(1))
	assert.False(t, e.Deleted())
	assert.True(t, e.Hit(1))
	assert.True(t, e.Deleted())
}

func TestBulletUpdate(t *testing.T) {
	cfg := config.Default()

	up := newBullet(&cfg, testField, 400, 0, DirUp, 0)
	assert.InDelta(t, 5, up.W, 1e-9)
	assert.InDelta(t, 15, up.H, 1e-9)
	up.Update(20, testField)
	assert.InDelta(t, -11, up.Y, 1e-9)
	assert.False(t, up.Deleted())
	up.Update(20, testField)
	assert.True(t, up.Deleted())

	down := newBullet(&cfg, testField, 400, 610, DirDown, 0)
	down.Update(20, testField)
	assert.True(t, down.Deleted())
}

func TestBulletFreezeThaws(t *testing.T) {
	cfg := config.Default()
	b := newBullet(&cfg, testField, 400, 100, DirDown, 0)

	b.Freeze()
	b.Update(2000, testField)
	assert.True(t, b.Frozen)
	assert.InDelta(t, 100, b.Y, 1e-9)
	assert.InDelta(t, 550, b.Speed, 1e-9)

	b.Update(1000, testField)
	assert.False(t, b.Frozen)
	b.Update(100, testField)
	assert.InDelta(t, 155, b.Y, 1e-9)
}

func TestBulletUnfreeze(t *testing.T) {
	cfg := config.Default()
	b := newBullet(&cfg, testField, 400, 100, DirDown, 0)
	b.Freeze()
	b.Unfreeze()
	b.Update(100, testField)
	assert.InDelta(t, 155, b.Y, 1e-9)
}

func TestPlayerTimedPowerUps(t *testing.T) {
	cfg := config.Default()
	p := newPlayer(&cfg, testField, NopSound{})

	p.ActivateShield()
	p.ActivateTripleShot()
	p.ActivateSpeedBoost()
	require.Len(t, p.ActivePowerUps(), 3)

	p.Update(5000, 0, testField)
	assert.False(t, p.Shielded)
	assert.True(t, p.TripleShot)
	assert.True(t, p.SpeedBoost)

	p.Update(2000, 0, testField)
	assert.False(t, p.SpeedBoost)
	assert.InDelta(t, p.BaseSpeed, p.CurrentSpeed, 1e-9)

	p.Update(3000, 0, testField)
	assert.False(t, p.TripleShot)
	assert.Empty(t, p.ActivePowerUps())
}

func TestPlayerSpeedBoostNotAdditive(t *testing.T) {
	cfg := config.Default()
	p := newPlayer(&cfg, testField, NopSound{})

	p.ActivateSpeedBoost()
	p.Update(1000, 0, testField)
	p.ActivateSpeedBoost()

	assert.InDelta(t, 570, p.CurrentSpeed, 1e-9)
	assert.InDelta(t, 7000, p.SpeedBoostTimer, 1e-9)
}

func TestPlayerHit(t *testing.T) {
	cfg := config.Default()
	snd := &recordingSound{}
	p := newPlayer(&cfg, testField, snd)

	p.Hit(1)
	assert.Equal(t, 2, p.Lives)

	p.ActivateShield()
	p.Hit(1)
	assert.Equal(t, 2, p.Lives)
	assert.Equal(t, 1, snd.count(CueGlitch))

	p.Shielded = false
	p.Hit(5)
	assert.Equal(t, 0, p.Lives)
}

func TestSecurityFilePulse(t *testing.T) {
	cfg := config.Default()
	f := newSecurityFile(&cfg, testField, 100, 100)
	base := f.Rect()

	f.Update(300, testField)
	vis := f.VisualRect()
	bx, by := f.Rect().Center()
	vx, vy := vis.Center()

	assert.InDelta(t, base.W, f.Rect().W, 1e-9, "hit-box keeps its size")
	assert.NotEqual(t, base.W, vis.W)
	assert.InDelta(t, bx, vx, 1e-9)
	assert.InDelta(t, by, vy, 1e-9)
	assert.InDelta(t, 115, f.Y, 1e-9)
}

func TestSecurityFileLeavesField(t *testing.T) {
	cfg := config.Default()
	f := newSecurityFile(&cfg, testField, 100, 600)
	f.Update(100, testField)
	assert.False(t, f.Deleted())
	f.Update(600, testField)
	assert.True(t, f.Deleted())
}

func TestPowerUpKindInfo(t *testing.T) {
	for k := PowerUpKind(0); k < PowerUpKindCount; k++ {
		assert.NotEqual(t, "?", k.String())
		assert.NotEqual(t, '?', k.Glyph())
		assert.NotNil(t, powerUpEffects[k])
	}
	assert.Equal(t, "?", PowerUpKind(99).String())
}

func TestSpawnerTick(t *testing.T) {
	s := newSpawner(config.Default().Spawner)

	wave, file := s.Tick(5999)
	assert.False(t, wave)
	assert.False(t, file)

	wave, _ = s.Tick(1)
	assert.True(t, wave)
	assert.Equal(t, 1, s.Waves)
	assert.Zero(t, s.waveTimer)

	_, file = s.Tick(54000)
	assert.True(t, file)
	assert.Equal(t, 2, s.Waves)
}

func TestCompact(t *testing.T) {
	list := []*Bullet{{}, {}, {}, {}}
	list[1].markDeleted()
	list[3].markDeleted()
	keep0, keep2 := list[0], list[2]

	out := compact(list)

	assert.Equal(t, []*Bullet{keep0, keep2}, out)
	assert.Nil(t, list[3])
}

func TestSimpleRNG(t *testing.T) {
	a, b := NewSimpleRNG(9), NewSimpleRNG(9)
	for range 100 {
		x := a.Float64()
		assert.Equal(t, x, b.Float64())
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}
	assert.Equal(t, NewSimpleRNG(0).State(), NewSimpleRNG(1).State())

	for range 100 {
		i := pick(a, 5)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 5)
	}
	assert.Equal(t, 4, pick(constRand(0.9999999), 5))
}

package defender

import (
	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/core"
)

// Enemy is a descending virus that zig-zags and shoots downward.
type Enemy struct {
	entity

	Health     int
	ScoreValue int
	SpeedX     float64
	SpeedY     float64

	zigzagTimer    float64
	zigzagInterval float64
	shootTimer     float64
	shootInterval  float64

	Frozen      bool
	freezeTimer float64
	frozenVX    float64
	frozenVY    float64

	cfg config.EnemyConfig
	rng Rand
}

func newEnemy(cfg *config.Config, field Field, x, y float64, rng Rand) *Enemy {
	ec := cfg.Enemies
	size := scaled(ec.Size, field.scale(cfg.Field), ec.MinSize)

	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1
	}

	e := &Enemy{
		Health:         ec.Health,
		ScoreValue:     ec.ScoreValue,
		SpeedX:         dir * ec.SpeedX,
		SpeedY:         ec.SpeedY,
		zigzagInterval: between(rng, ec.ZigzagMinMs, ec.ZigzagMaxMs),
		shootTimer:     between(rng, ec.ShootChargeMinMs, ec.ShootChargeMaxMs),
		shootInterval:  between(rng, ec.ShootMinMs, ec.ShootMaxMs),
		cfg:            ec,
		rng:            rng,
	}
	e.X, e.Y, e.W, e.H = x, y, size, size
	return e
}

// Update advances the enemy and reports whether it fired this frame.
// While frozen it neither moves nor shoots.
func (e *Enemy) Update(dt float64, field Field) (fired bool) {
	if e.Frozen {
		e.freezeTimer -= dt
		if e.freezeTimer <= 0 {
			e.Frozen = false
			e.freezeTimer = 0
			e.SpeedX, e.SpeedY = e.frozenVX, e.frozenVY
		}
		return false
	}

	e.Y += e.SpeedY * dt / 1000
	e.X += e.SpeedX * dt / 1000

	e.zigzagTimer += dt
	if e.zigzagTimer >= e.zigzagInterval {
		e.SpeedX = -e.SpeedX
		e.zigzagTimer = 0
		e.zigzagInterval = between(e.rng, e.cfg.ZigzagMinMs, e.cfg.ZigzagMaxMs)
	}

	if e.X <= 0 || e.X+e.W >= field.W {
		e.SpeedX = -e.SpeedX
		e.X = core.ClampF(e.X, 0, max(field.W-e.W, 0))
	}

	if e.Y > field.H {
		e.markDeleted()
	}

	e.shootTimer += dt
	if e.shootTimer >= e.shootInterval {
		e.shootTimer = 0
		e.shootInterval = between(e.rng, e.cfg.ShootMinMs, e.cfg.ShootMaxMs)
		return true
	}
	return false
}

// Muzzle returns the point enemy bullets are fired from.
func (e *Enemy) Muzzle() (float64, float64) {
	return e.centerX(), e.Y + e.H
}

// Hit applies damage and marks the enemy once its health is gone.
// Returns true if this hit destroyed it.
func (e *Enemy) Hit(damage int) bool {
	e.Health -= damage
	if e.Health <= 0 {
		e.markDeleted()
		return true
	}
	return false
}

// Freeze stops the enemy for the configured duration. Freezing a frozen
// enemy does nothing, so the restored velocities are always the live ones.
func (e *Enemy) Freeze() {
	if e.Frozen {
		return
	}
	e.Frozen = true
	e.freezeTimer = e.cfg.FreezeMs
	e.frozenVX, e.frozenVY = e.SpeedX, e.SpeedY
	e.SpeedX, e.SpeedY = 0, 0
}

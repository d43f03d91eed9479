package defender

import "github.com/vovakirdan/glitch-defender/internal/config"

// Direction is the vertical travel direction of a bullet.
type Direction int

const (
	DirUp   Direction = -1 // fired by the player
	DirDown Direction = 1  // fired by enemies
)

// Bullet is a projectile travelling straight up or down.
type Bullet struct {
	entity

	Direction Direction
	Speed     float64
	Frozen    bool

	thawIn   float64
	freezeMs float64
}

// newBullet centres a bullet horizontally on originX+offsetX with its top at originY.
func newBullet(cfg *config.Config, field Field, originX, originY float64, dir Direction, offsetX float64) *Bullet {
	s := field.scale(cfg.Field)
	b := &Bullet{
		Direction: dir,
		Speed:     cfg.Bullets.Speed,
		freezeMs:  cfg.Enemies.FreezeMs,
	}
	if dir == DirUp {
		b.W = scaled(cfg.Bullets.PlayerWidth, s, cfg.Bullets.PlayerMinW)
		b.H = scaled(cfg.Bullets.PlayerHeight, s, cfg.Bullets.PlayerMinH)
	} else {
		b.W = scaled(cfg.Bullets.EnemyWidth, s, cfg.Bullets.EnemyMinSize)
		b.H = scaled(cfg.Bullets.EnemyHeight, s, cfg.Bullets.EnemyMinSize)
	}
	b.X = originX - b.W/2 + offsetX
	b.Y = originY
	return b
}

// Update moves the bullet unless frozen and marks it once it leaves the field.
// A frozen bullet thaws by itself after the freeze duration.
func (b *Bullet) Update(dt float64, field Field) {
	if b.Frozen {
		b.thawIn -= dt
		if b.thawIn <= 0 {
			b.Unfreeze()
		}
		return
	}

	b.Y += b.Speed * float64(b.Direction) * dt / 1000
	if b.Y < -b.H || b.Y > field.H+b.H {
		b.markDeleted()
	}
}

// Freeze stops the bullet without touching its speed.
func (b *Bullet) Freeze() {
	if b.Frozen {
		return
	}
	b.Frozen = true
	b.thawIn = b.freezeMs
}

// Unfreeze lets the bullet move again.
func (b *Bullet) Unfreeze() {
	b.Frozen = false
	b.thawIn = 0
}

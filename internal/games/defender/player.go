package defender

import (
	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/core"
)

// Player is the defending craft. Exactly one exists per session.
type Player struct {
	entity

	Lives        int
	BaseSpeed    float64
	CurrentSpeed float64

	shootTimer float64

	Shielded        bool
	ShieldTimer     float64
	TripleShot      bool
	TripleShotTimer float64
	SpeedBoost      bool
	SpeedBoostTimer float64

	// One-shot triggers consumed by the collision pass.
	BombPending   bool
	FreezePending bool

	cfg   config.PlayerConfig
	pcfg  config.PowerUpConfig
	ref   config.FieldConfig
	sound SoundSink
}

func newPlayer(cfg *config.Config, field Field, sound SoundSink) *Player {
	p := &Player{
		Lives:        cfg.Player.Lives,
		BaseSpeed:    cfg.Player.Speed,
		CurrentSpeed: cfg.Player.Speed,
		cfg:          cfg.Player,
		pcfg:         cfg.PowerUps,
		ref:          cfg.Field,
		sound:        sound,
	}
	p.resize(field)
	p.X = field.W/2 - p.W/2
	return p
}

// resize rescales the craft for the field, pins it above the bottom margin
// and keeps it horizontally in bounds.
func (p *Player) resize(field Field) {
	size := scaled(p.cfg.Size, field.scale(p.ref), p.cfg.MinSize)
	p.W, p.H = size, size
	p.Y = field.H - p.H - field.H*p.cfg.BottomMargin
	p.X = core.ClampF(p.X, 0, max(field.W-p.W, 0))
}

// Update moves the craft by the polled intent and runs down every timer.
func (p *Player) Update(dt float64, intent int, field Field) {
	p.X += float64(intent) * p.CurrentSpeed * dt / 1000
	p.X = core.ClampF(p.X, 0, max(field.W-p.W, 0))

	if p.shootTimer > 0 {
		p.shootTimer -= dt
	}

	if p.Shielded {
		p.ShieldTimer -= dt
		if p.ShieldTimer <= 0 {
			p.Shielded = false
			p.ShieldTimer = 0
		}
	}
	if p.TripleShot {
		p.TripleShotTimer -= dt
		if p.TripleShotTimer <= 0 {
			p.TripleShot = false
			p.TripleShotTimer = 0
		}
	}
	if p.SpeedBoost {
		p.SpeedBoostTimer -= dt
		if p.SpeedBoostTimer <= 0 {
			p.SpeedBoost = false
			p.SpeedBoostTimer = 0
			p.CurrentSpeed = p.BaseSpeed
		}
	}
}

// CanShoot reports whether the shoot cooldown has elapsed.
func (p *Player) CanShoot() bool {
	return p.shootTimer <= 0
}

func (p *Player) startCooldown() {
	p.shootTimer = p.cfg.ShootCooldownMs
}

// Hit applies damage unless the shield absorbs it. Lives never drop below zero.
func (p *Player) Hit(damage int) {
	if p.Shielded {
		p.sound.PlayCue(CueGlitch)
		return
	}
	p.Lives = max(p.Lives-damage, 0)
}

// ActivateShield (re)starts the shield at full duration.
func (p *Player) ActivateShield() {
	p.Shielded = true
	p.ShieldTimer = p.pcfg.ShieldMs
	p.sound.PlayCue(CuePowerUp)
}

// ActivateTripleShot (re)starts triple shot at full duration.
func (p *Player) ActivateTripleShot() {
	p.TripleShot = true
	p.TripleShotTimer = p.pcfg.TripleShotMs
	p.sound.PlayCue(CuePowerUp)
}

// ActivateSpeedBoost (re)starts the boost. The boosted speed is derived from
// the base speed, so repeated pickups never stack.
func (p *Player) ActivateSpeedBoost() {
	p.SpeedBoost = true
	p.SpeedBoostTimer = p.pcfg.SpeedBoostMs
	p.CurrentSpeed = p.BaseSpeed * p.pcfg.SpeedBoostFactor
	p.sound.PlayCue(CuePowerUp)
}

// ActivateBomb arms the bomb for the next collision pass.
func (p *Player) ActivateBomb() {
	p.BombPending = true
	p.sound.PlayCue(CuePowerUp)
}

// ActivateFreeze arms the freeze for the next collision pass.
func (p *Player) ActivateFreeze() {
	p.FreezePending = true
	p.sound.PlayCue(CuePowerUp)
}

// ActivePowerUps lists the running timed effects with their remaining time
// in milliseconds, in a stable order.
func (p *Player) ActivePowerUps() []ActiveEffect {
	var out []ActiveEffect
	if p.Shielded {
		out = append(out, ActiveEffect{Kind: PowerUpShield, RemainingMs: p.ShieldTimer})
	}
	if p.TripleShot {
		out = append(out, ActiveEffect{Kind: PowerUpTripleShot, RemainingMs: p.TripleShotTimer})
	}
	if p.SpeedBoost {
		out = append(out, ActiveEffect{Kind: PowerUpSpeedBoost, RemainingMs: p.SpeedBoostTimer})
	}
	return out
}

// ActiveEffect is a running timed power-up.
type ActiveEffect struct {
	Kind        PowerUpKind
	RemainingMs float64
}

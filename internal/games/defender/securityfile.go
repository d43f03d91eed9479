package defender

import (
	"math"

	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/core"
)

// SecurityFile is the collectible that wins the game.
// Its pulse is purely visual: collisions always use the base size.
type SecurityFile struct {
	entity

	Speed float64

	pulseTimer float64
	pulseSpeed float64
	pulseScale float64
}

func newSecurityFile(cfg *config.Config, field Field, x, y float64) *SecurityFile {
	size := scaled(cfg.Files.Size, field.scale(cfg.Field), cfg.Files.MinSize)
	f := &SecurityFile{
		Speed:      cfg.Files.FallSpeed,
		pulseSpeed: cfg.Files.PulseSpeed,
		pulseScale: cfg.Files.PulseScale,
	}
	f.X, f.Y, f.W, f.H = x, y, size, size
	return f
}

// Update moves the file down, advances the pulse and marks the file once it
// has fully left the field.
func (f *SecurityFile) Update(dt float64, field Field) {
	f.pulseTimer += dt * f.pulseSpeed
	f.Y += f.Speed * dt / 1000
	if f.Y > field.H+f.H {
		f.markDeleted()
	}
}

// PulseScale returns the current visual scale factor around 1.
func (f *SecurityFile) PulseScale() float64 {
	return 1 + math.Sin(f.pulseTimer)*f.pulseScale
}

// VisualRect returns the pulsing rectangle, centred on the hit-box.
func (f *SecurityFile) VisualRect() core.Rect {
	return f.Rect().Grow(f.PulseScale())
}

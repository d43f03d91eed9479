package defender

import "math"

// Snapshot is a flat copy of the session state used to compare runs.
// Entity data is flattened to float64 groups; see the field comments for
// the layout.
type Snapshot struct {
	Frames         uint64
	Score          int
	Lives          int
	FilesCollected int
	Wave           int
	State          string
	PlayerX        float64
	GlitchTimer    float64

	// Each bullet is 3 floats: X, Y, Frozen(0/1)
	PlayerBullets []float64
	EnemyBullets  []float64

	// Each enemy is 4 floats: X, Y, SpeedX, Frozen(0/1)
	Enemies []float64

	// Each power-up is 3 floats: Kind, X, Y
	PowerUps []float64

	// Each file is 2 floats: X, Y
	Files []float64

	// Generator state, when the session uses SimpleRNG
	RNGState uint64
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frames:         g.frames,
		Score:          g.score,
		Lives:          g.player.Lives,
		FilesCollected: g.filesCollected,
		Wave:           g.spawner.Waves,
		State:          g.state.String(),
		PlayerX:        g.player.X,
		GlitchTimer:    g.glitchTimer,
	}

	for _, b := range g.playerBullets {
		snap.PlayerBullets = append(snap.PlayerBullets, b.X, b.Y, flag(b.Frozen))
	}
	for _, b := range g.enemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, b.X, b.Y, flag(b.Frozen))
	}
	for _, e := range g.enemies {
		snap.Enemies = append(snap.Enemies, e.X, e.Y, e.SpeedX, flag(e.Frozen))
	}
	for _, p := range g.powerUps {
		snap.PowerUps = append(snap.PowerUps, float64(p.Kind), p.X, p.Y)
	}
	for _, f := range g.files {
		snap.Files = append(snap.Files, f.X, f.Y)
	}

	if r, ok := g.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FilesCollected) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)           //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.GlitchTimer)

	for _, group := range [][]float64{snap.PlayerBullets, snap.EnemyBullets, snap.Enemies, snap.PowerUps, snap.Files} {
		h = h*31 + uint64(len(group))
		for _, v := range group {
			h = h*31 + math.Float64bits(v)
		}
	}

	h = h*31 + snap.RNGState
	return h
}

package defender

import "github.com/vovakirdan/glitch-defender/internal/config"

// Spawner schedules enemy waves and security files on two independent
// fixed-period timers. It only decides when; the game decides where.
type Spawner struct {
	waveTimer float64
	fileTimer float64

	// Waves counts the waves spawned so far.
	Waves int

	cfg config.SpawnerConfig
}

func newSpawner(cfg config.SpawnerConfig) *Spawner {
	return &Spawner{cfg: cfg}
}

// Tick advances both timers. Each one resets to zero when it fires.
func (s *Spawner) Tick(dt float64) (wave, file bool) {
	s.waveTimer += dt
	if s.waveTimer >= s.cfg.WaveIntervalMs {
		s.waveTimer = 0
		s.Waves++
		wave = true
	}

	s.fileTimer += dt
	if s.fileTimer >= s.cfg.FileIntervalMs {
		s.fileTimer = 0
		file = true
	}
	return wave, file
}

// fileAllowed is the gate applied when the file timer fires.
func (s *Spawner) fileAllowed(onScreen, collected int) bool {
	return onScreen < s.cfg.MaxFilesOnScreen && collected < s.cfg.FilesToWin
}

// spawnWave appends one wave of enemies above the top edge, each fully
// inside the field width.
func (g *Game) spawnWave() {
	size := scaled(g.cfg.Enemies.Size, g.field.scale(g.cfg.Field), g.cfg.Enemies.MinSize)
	for i := range g.cfg.Spawner.EnemiesPerWave {
		x := g.rng.Float64() * max(g.field.W-size, 0)
		y := -g.cfg.Spawner.SpawnSpacing * float64(i+1)
		g.enemies = append(g.enemies, newEnemy(&g.cfg, g.field, x, y, g.rng))
	}
}

// spawnFile appends one security file in the upper band of the field.
func (g *Game) spawnFile() {
	size := scaled(g.cfg.Files.Size, g.field.scale(g.cfg.Field), g.cfg.Files.MinSize)
	x := g.rng.Float64() * max(g.field.W-size, 0)
	y := g.rng.Float64() * g.field.H * g.cfg.Spawner.FileBand
	g.files = append(g.files, newSecurityFile(&g.cfg, g.field, x, y))
}

package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// Default returns the hardcoded configuration. It mirrors
// defaults/defender.yaml and is the last resort of the loader.
func Default() Config {
	return Config{
		Field: FieldConfig{
			ReferenceWidth:  800,
			ReferenceHeight: 600,
		},
		Player: PlayerConfig{
			Size:            50,
			MinSize:         30,
			Speed:           380,
			Lives:           3,
			ShootCooldownMs: 150,
			BottomMargin:    0.1,
		},
		Bullets: BulletConfig{
			Speed:        550,
			PlayerWidth:  5,
			PlayerHeight: 15,
			PlayerMinW:   3,
			PlayerMinH:   8,
			EnemyWidth:   15,
			EnemyHeight:  15,
			EnemyMinSize: 8,
		},
		Enemies: EnemyConfig{
			Size:             40,
			MinSize:          25,
			Health:           1,
			ScoreValue:       10,
			SpeedY:           80,
			SpeedX:           35,
			ZigzagMinMs:      1000,
			ZigzagMaxMs:      3000,
			ShootChargeMinMs: 10000,
			ShootChargeMaxMs: 15000,
			ShootMinMs:       5000,
			ShootMaxMs:       10000,
			FreezeMs:         3000,
		},
		PowerUps: PowerUpConfig{
			Size:             25,
			MinSize:          20,
			FallSpeed:        100,
			DropChance:       0.15,
			ShieldMs:         5000,
			TripleShotMs:     10000,
			SpeedBoostMs:     7000,
			SpeedBoostFactor: 1.5,
		},
		Files: FileConfig{
			Size:       30,
			MinSize:    25,
			FallSpeed:  50,
			PulseSpeed: 0.005,
			PulseScale: 0.1,
		},
		Spawner: SpawnerConfig{
			WaveIntervalMs:   6000,
			EnemiesPerWave:   5,
			SpawnSpacing:     50,
			FileIntervalMs:   60000,
			MaxFilesOnScreen: 1,
			FilesToWin:       3,
			FileBand:         0.2,
		},
		Glitch: GlitchConfig{
			IntervalMs: 5000,
			DurationMs: 100,
		},
		Music: MusicConfig{
			TempoStep: 0.05,
			TempoMax:  1.15,
		},
		Driver: DriverConfig{
			MaxDeltaMs: 100,
			HoldMs:     180,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDefenderYAML
}

package config

// ApplyPreset adjusts cfg for a difficulty preset. Normal leaves the
// configuration untouched. Presets only change session-wide constants;
// difficulty never escalates during a session.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Spawner.WaveIntervalMs = 8000
		cfg.Spawner.EnemiesPerWave = 4
		cfg.Spawner.FileIntervalMs = 45000
		cfg.PowerUps.DropChance = 0.25
		cfg.Enemies.SpeedY = 60
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Spawner.WaveIntervalMs = 5000
		cfg.Spawner.EnemiesPerWave = 7
		cfg.PowerUps.DropChance = 0.1
		cfg.Enemies.SpeedY = 100
		cfg.Enemies.SpeedX = 50
		cfg.Enemies.ShootMinMs = 3000
		cfg.Enemies.ShootMaxMs = 6000
	}
}

// ForPreset loads the configuration from customPath (see Load) and applies
// the named preset on top of it.
func ForPreset(customPath string, preset DifficultyPreset) (Config, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return Config{}, err
	}
	ApplyPreset(&cfg, preset)
	return cfg, nil
}

// Package config provides YAML/TOML configuration loading and difficulty
// presets for Glitch Defender.
package config

import (
	"errors"
	"fmt"
)

// Config contains every tunable constant of a session. Durations are in
// milliseconds, speeds in field units per second, sizes in field units at
// the reference field size.
type Config struct {
	Field    FieldConfig    `yaml:"field" toml:"field"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Bullets  BulletConfig   `yaml:"bullets" toml:"bullets"`
	Enemies  EnemyConfig    `yaml:"enemies" toml:"enemies"`
	PowerUps PowerUpConfig  `yaml:"powerups" toml:"powerups"`
	Files    FileConfig     `yaml:"files" toml:"files"`
	Spawner  SpawnerConfig  `yaml:"spawner" toml:"spawner"`
	Glitch   GlitchConfig   `yaml:"glitch" toml:"glitch"`
	Music    MusicConfig    `yaml:"music" toml:"music"`
	Driver   DriverConfig   `yaml:"driver" toml:"driver"`
}

// FieldConfig defines the reference field all entity sizes are tuned for.
// Entities scale by min(w/ReferenceWidth, h/ReferenceHeight).
type FieldConfig struct {
	ReferenceWidth  float64 `yaml:"reference_width" toml:"reference_width"`
	ReferenceHeight float64 `yaml:"reference_height" toml:"reference_height"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Size            float64 `yaml:"size" toml:"size"`
	MinSize         float64 `yaml:"min_size" toml:"min_size"`
	Speed           float64 `yaml:"speed" toml:"speed"`
	Lives           int     `yaml:"lives" toml:"lives"`
	ShootCooldownMs float64 `yaml:"shoot_cooldown_ms" toml:"shoot_cooldown_ms"`
	BottomMargin    float64 `yaml:"bottom_margin" toml:"bottom_margin"` // fraction of field height
}

// BulletConfig defines projectiles for both sides.
type BulletConfig struct {
	Speed        float64 `yaml:"speed" toml:"speed"`
	PlayerWidth  float64 `yaml:"player_width" toml:"player_width"`
	PlayerHeight float64 `yaml:"player_height" toml:"player_height"`
	PlayerMinW   float64 `yaml:"player_min_width" toml:"player_min_width"`
	PlayerMinH   float64 `yaml:"player_min_height" toml:"player_min_height"`
	EnemyWidth   float64 `yaml:"enemy_width" toml:"enemy_width"`
	EnemyHeight  float64 `yaml:"enemy_height" toml:"enemy_height"`
	EnemyMinSize float64 `yaml:"enemy_min_size" toml:"enemy_min_size"`
}

// EnemyConfig defines virus behaviour. The shoot timer starts at a value
// drawn from [ShootChargeMinMs, ShootChargeMaxMs]; when that is at least the
// first interval the enemy fires on its first frame.
type EnemyConfig struct {
	Size             float64 `yaml:"size" toml:"size"`
	MinSize          float64 `yaml:"min_size" toml:"min_size"`
	Health           int     `yaml:"health" toml:"health"`
	ScoreValue       int     `yaml:"score_value" toml:"score_value"`
	SpeedY           float64 `yaml:"speed_y" toml:"speed_y"`
	SpeedX           float64 `yaml:"speed_x" toml:"speed_x"`
	ZigzagMinMs      float64 `yaml:"zigzag_min_ms" toml:"zigzag_min_ms"`
	ZigzagMaxMs      float64 `yaml:"zigzag_max_ms" toml:"zigzag_max_ms"`
	ShootChargeMinMs float64 `yaml:"shoot_charge_min_ms" toml:"shoot_charge_min_ms"`
	ShootChargeMaxMs float64 `yaml:"shoot_charge_max_ms" toml:"shoot_charge_max_ms"`
	ShootMinMs       float64 `yaml:"shoot_min_ms" toml:"shoot_min_ms"`
	ShootMaxMs       float64 `yaml:"shoot_max_ms" toml:"shoot_max_ms"`
	FreezeMs         float64 `yaml:"freeze_ms" toml:"freeze_ms"`
}

// PowerUpConfig defines drops and timed effects.
type PowerUpConfig struct {
	Size             float64 `yaml:"size" toml:"size"`
	MinSize          float64 `yaml:"min_size" toml:"min_size"`
	FallSpeed        float64 `yaml:"fall_speed" toml:"fall_speed"`
	DropChance       float64 `yaml:"drop_chance" toml:"drop_chance"`
	ShieldMs         float64 `yaml:"shield_ms" toml:"shield_ms"`
	TripleShotMs     float64 `yaml:"triple_shot_ms" toml:"triple_shot_ms"`
	SpeedBoostMs     float64 `yaml:"speed_boost_ms" toml:"speed_boost_ms"`
	SpeedBoostFactor float64 `yaml:"speed_boost_factor" toml:"speed_boost_factor"`
}

// FileConfig defines the security file collectible.
type FileConfig struct {
	Size       float64 `yaml:"size" toml:"size"`
	MinSize    float64 `yaml:"min_size" toml:"min_size"`
	FallSpeed  float64 `yaml:"fall_speed" toml:"fall_speed"`
	PulseSpeed float64 `yaml:"pulse_speed" toml:"pulse_speed"` // radians per ms
	PulseScale float64 `yaml:"pulse_scale" toml:"pulse_scale"`
}

// SpawnerConfig defines the wave and file schedules.
type SpawnerConfig struct {
	WaveIntervalMs   float64 `yaml:"wave_interval_ms" toml:"wave_interval_ms"`
	EnemiesPerWave   int     `yaml:"enemies_per_wave" toml:"enemies_per_wave"`
	SpawnSpacing     float64 `yaml:"spawn_spacing" toml:"spawn_spacing"`
	FileIntervalMs   float64 `yaml:"file_interval_ms" toml:"file_interval_ms"`
	MaxFilesOnScreen int     `yaml:"max_files_on_screen" toml:"max_files_on_screen"`
	FilesToWin       int     `yaml:"files_to_win" toml:"files_to_win"`
	FileBand         float64 `yaml:"file_band" toml:"file_band"` // upper fraction of the field
}

// GlitchConfig defines the periodic glitch window.
type GlitchConfig struct {
	IntervalMs float64 `yaml:"interval_ms" toml:"interval_ms"`
	DurationMs float64 `yaml:"duration_ms" toml:"duration_ms"`
}

// MusicConfig defines the tempo ramp driven by collected files.
type MusicConfig struct {
	TempoStep float64 `yaml:"tempo_step" toml:"tempo_step"`
	TempoMax  float64 `yaml:"tempo_max" toml:"tempo_max"`
}

// DriverConfig defines frame pacing and input handling in the terminal driver.
type DriverConfig struct {
	MaxDeltaMs float64 `yaml:"max_delta_ms" toml:"max_delta_ms"`
	HoldMs     float64 `yaml:"hold_ms" toml:"hold_ms"` // how long a key press keeps the craft moving
}

// Validate reports the first field that would make a session misbehave.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Field.ReferenceWidth > 0 && c.Field.ReferenceHeight > 0, "field.reference_width/height"},
		{c.Player.Size > 0, "player.size"},
		{c.Player.Speed > 0, "player.speed"},
		{c.Player.Lives > 0, "player.lives"},
		{c.Player.ShootCooldownMs >= 0, "player.shoot_cooldown_ms"},
		{c.Player.BottomMargin >= 0 && c.Player.BottomMargin < 1, "player.bottom_margin"},
		{c.Bullets.Speed > 0, "bullets.speed"},
		{c.Enemies.Size > 0, "enemies.size"},
		{c.Enemies.Health > 0, "enemies.health"},
		{c.Enemies.ZigzagMinMs > 0 && c.Enemies.ZigzagMaxMs >= c.Enemies.ZigzagMinMs, "enemies.zigzag_min_ms/zigzag_max_ms"},
		{c.Enemies.ShootChargeMinMs >= 0 && c.Enemies.ShootChargeMaxMs >= c.Enemies.ShootChargeMinMs, "enemies.shoot_charge_min_ms/shoot_charge_max_ms"},
		{c.Enemies.ShootMinMs > 0 && c.Enemies.ShootMaxMs >= c.Enemies.ShootMinMs, "enemies.shoot_min_ms/shoot_max_ms"},
		{c.Enemies.FreezeMs > 0, "enemies.freeze_ms"},
		{c.PowerUps.DropChance >= 0 && c.PowerUps.DropChance <= 1, "powerups.drop_chance"},
		{c.PowerUps.SpeedBoostFactor > 0, "powerups.speed_boost_factor"},
		{c.Spawner.WaveIntervalMs > 0, "spawner.wave_interval_ms"},
		{c.Spawner.EnemiesPerWave >= 0, "spawner.enemies_per_wave"},
		{c.Spawner.FileIntervalMs > 0, "spawner.file_interval_ms"},
		{c.Spawner.FilesToWin > 0, "spawner.files_to_win"},
		{c.Spawner.MaxFilesOnScreen > 0, "spawner.max_files_on_screen"},
		{c.Spawner.FileBand >= 0 && c.Spawner.FileBand <= 1, "spawner.file_band"},
		{c.Glitch.IntervalMs > 0 && c.Glitch.DurationMs >= 0, "glitch.interval_ms/duration_ms"},
		{c.Music.TempoMax >= 1, "music.tempo_max"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: invalid %s", chk.name)
		}
	}
	return nil
}

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a CLI string into a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

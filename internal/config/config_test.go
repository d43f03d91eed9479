package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(FileName, DefaultYAML())
	if err != nil {
		t.Fatalf("decode(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestLoadCustomYAMLOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  lives: 7\nspawner:\n  files_to_win: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Player.Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Spawner.FilesToWin != 5 {
		t.Errorf("Spawner.FilesToWin = %d, expected 5", cfg.Spawner.FilesToWin)
	}
	if cfg.Player.Speed != Default().Player.Speed {
		t.Errorf("Player.Speed = %v, expected default %v", cfg.Player.Speed, Default().Player.Speed)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[enemies]\nscore_value = 25\n\n[glitch]\ninterval_ms = 2500.0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Enemies.ScoreValue != 25 {
		t.Errorf("Enemies.ScoreValue = %d, expected 25", cfg.Enemies.ScoreValue)
	}
	if cfg.Glitch.IntervalMs != 2500 {
		t.Errorf("Glitch.IntervalMs = %v, expected 2500", cfg.Glitch.IntervalMs)
	}
	if cfg.Glitch.DurationMs != Default().Glitch.DurationMs {
		t.Errorf("Glitch.DurationMs = %v, expected default", cfg.Glitch.DurationMs)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("player: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load(broken) should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "player.lives") {
		t.Errorf("Load(invalid) = %v, expected player.lives error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero reference field", func(c *Config) { c.Field.ReferenceWidth = 0 }, "field."},
		{"negative drop chance", func(c *Config) { c.PowerUps.DropChance = -0.1 }, "powerups.drop_chance"},
		{"inverted zigzag range", func(c *Config) { c.Enemies.ZigzagMaxMs = 10 }, "enemies.zigzag"},
		{"negative shoot charge", func(c *Config) { c.Enemies.ShootChargeMinMs = -1 }, "enemies.shoot_charge"},
		{"no files to win", func(c *Config) { c.Spawner.FilesToWin = 0 }, "spawner.files_to_win"},
		{"tempo below one", func(c *Config) { c.Music.TempoMax = 0.5 }, "music.tempo_max"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.field)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if tc.wantErr && !errors.Is(err, ErrUnknownPreset) {
			t.Errorf("ParsePreset(%q) error = %v, expected ErrUnknownPreset", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, Default()) {
		t.Error("normal preset should not change the configuration")
	}

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	hard := Default()
	ApplyPreset(&hard, DifficultyHard)

	if easy.Player.Lives <= normal.Player.Lives || hard.Player.Lives >= normal.Player.Lives {
		t.Errorf("lives should be easy > normal > hard, got %d/%d/%d",
			easy.Player.Lives, normal.Player.Lives, hard.Player.Lives)
	}
	if hard.Spawner.EnemiesPerWave <= easy.Spawner.EnemiesPerWave {
		t.Errorf("hard should spawn more enemies per wave than easy")
	}

	for _, p := range Presets {
		cfg := Default()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produces invalid config: %v", p, err)
		}
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := Default()
	cfg.Spawner.EnemiesPerWave = 9

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := decode("dump.yaml", data)
	if err != nil {
		t.Fatalf("decode() failed: %v", err)
	}
	if got.Spawner.EnemiesPerWave != 9 {
		t.Errorf("EnemiesPerWave = %d, expected 9", got.Spawner.EnemiesPerWave)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glitch-defender/internal/audio"
	"github.com/vovakirdan/glitch-defender/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a Glitch Defender session.

Controls:
  Left/Right, A/D, H/L  - Move (hold or repeat)
  Down/S                - Stop
  Space/Up/W            - Fire
  P/Esc                 - Pause
  M                     - Mute
  R                     - Restart (after the session ends)
  B                     - Back (menu only)
  Q/Ctrl+C              - Quit
  Ctrl+S                - Save a text screenshot

Power-ups dropped by viruses:
  S  Shield       absorbs hits for 5s
  T  Triple shot  three bullets per shot for 10s
  >  Speed boost  1.5x speed for 7s
  B  Bomb         destroys every virus on screen
  *  Freeze       stops every virus and their shots for 3s

Examples:
  defender play
  defender play --difficulty easy
  defender play --seed 42 --mute
  defender play --config ./my-defender.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(true)
	defer closeLog()

	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sound := audio.New(audio.Options{Muted: flagMute, Logger: logger})

	_, runErr := tui.RunGame(tui.GameOptions{
		Config:  cfg,
		Preset:  preset,
		Runtime: runtimeConfig(),
		Store:   store,
		Sound:   sound,
		Logger:  logger,
		Player:  playerName(),
	})

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

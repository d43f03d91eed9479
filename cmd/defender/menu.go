package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glitch-defender/internal/audio"
	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start Glitch Defender in interactive menu mode.

Pick a difficulty with the arrow keys or j/k and press Enter. After a
session press B to return to the menu, or Tab in the menu to browse the
high scores.

Examples:
  defender menu
  defender menu --fps 30
  defender menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(true)
	defer closeLog()

	// The menu picks the preset, --difficulty is not used here.
	base, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound := audio.New(audio.Options{Muted: flagMute, Logger: logger})
	defer sound.Close()

	rt := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rt = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}
			continue
		}

		cfg := base
		config.ApplyPreset(&cfg, result.Preset)
		backToMenu, err := tui.RunGame(tui.GameOptions{
			Config:  cfg,
			Preset:  result.Preset,
			Runtime: rt,
			Store:   store,
			Sound:   sound,
			Logger:  logger,
			Player:  playerName(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
		sound.StopMusic()
	}
}

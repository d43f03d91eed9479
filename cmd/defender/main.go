// defender is Glitch Defender, a terminal arcade shooter: shoot down the
// viruses and recover the security files before the system falls.
//
// Usage:
//
//	defender play              - Play a session
//	defender menu              - Pick a difficulty interactively
//	defender simulate          - Run a headless autopilot session
//	defender scores            - Show the best runs
//	defender serve             - Start SSH server for remote play
//	defender config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.glitch-defender/runs.db)
//	--config <path>       - Load a YAML or TOML configuration file
//	--difficulty <name>   - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defender",
	Short: "Glitch Defender - defend the system from your terminal",
	Long: `Glitch Defender is a terminal arcade shooter. Viruses descend in
waves; shoot them down, grab their power-ups and recover three security
files to secure the system.

Available commands:
  play      - Play a session directly
  menu      - Interactive difficulty picker
  simulate  - Headless autopilot run (useful for tuning)
  scores    - View the best runs
  serve     - Start SSH server for remote play
  config    - Print the effective configuration

Examples:
  defender play
  defender play --difficulty hard --seed 42
  defender menu
  defender simulate --duration 2m --seed 7
  defender serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.glitch-defender/runs.db", "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to a custom config file (.yaml or .toml)")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (interactive commands log nowhere otherwise)")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound muted")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/games/defender"
	"github.com/vovakirdan/glitch-defender/internal/storage"
)

var (
	flagSimDuration time.Duration
	flagSimStep     time.Duration
	flagSimWidth    float64
	flagSimHeight   float64
	flagSimSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot session",
	Long: `Run a session without a terminal UI. An autopilot chases security
files, dodges under the lowest virus and fires whenever it can. The session
runs on a fixed time step, so the same seed always yields the same result.

Examples:
  defender simulate
  defender simulate --seed 42 --duration 5m
  defender simulate --difficulty hard --step 10ms --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.DurationVar(&flagSimDuration, "duration", 120*time.Second, "Simulated time limit")
	f.DurationVar(&flagSimStep, "step", 16*time.Millisecond, "Fixed frame step")
	f.Float64Var(&flagSimWidth, "width", 800, "Field width")
	f.Float64Var(&flagSimHeight, "height", 600, "Field height")
	f.BoolVar(&flagSimSave, "save", false, "Save the run to the database")
}

// autopilot steers toward the nearest security file, or under the lowest
// live virus when there is none.
type autopilot struct {
	game *defender.Game
}

// deadZone keeps the craft from jittering around its target.
const deadZone = 4.0

// MovementIntent implements defender.InputSource.
func (a *autopilot) MovementIntent() int {
	if a.game == nil {
		return 0
	}
	target, ok := a.target()
	if !ok {
		return 0
	}
	cx, _ := a.game.Player().Rect().Center()
	switch {
	case target < cx-deadZone:
		return -1
	case target > cx+deadZone:
		return 1
	}
	return 0
}

func (a *autopilot) target() (float64, bool) {
	for _, f := range a.game.Files() {
		if !f.Deleted() {
			x, _ := f.Rect().Center()
			return x, true
		}
	}

	best, lowest := 0.0, math.Inf(-1)
	for _, e := range a.game.Enemies() {
		if e.Deleted() || e.Y < 0 {
			continue
		}
		if e.Y > lowest {
			lowest = e.Y
			best, _ = e.Rect().Center()
		}
	}
	return best, !math.IsInf(lowest, -1)
}

// cueCounter tallies sound intents for the run summary.
type cueCounter struct {
	counts [defender.CueCount]int
	tempo  float64
}

func (c *cueCounter) PlayCue(cue defender.Cue) {
	if cue >= 0 && cue < defender.CueCount {
		c.counts[cue]++
	}
}

func (c *cueCounter) SetTempo(m float64) { c.tempo = m }
func (c *cueCounter) StartMusic()        {}
func (c *cueCounter) StopMusic()         {}

// simResult summarises a headless run.
type simResult struct {
	State    defender.State
	Score    int
	Files    int
	Waves    int
	Lives    int
	Frames   int
	Elapsed  time.Duration
	Hash     uint64
	Cues     [defender.CueCount]int
	EndTempo float64
}

// simulate runs one autopilot session until it ends or limit elapses.
func simulate(cfg config.Config, w, h float64, seed int64, limit, step time.Duration) (simResult, error) {
	if step <= 0 {
		return simResult{}, fmt.Errorf("step must be positive, got %v", step)
	}

	pilot := &autopilot{}
	sound := &cueCounter{tempo: 1}
	g, err := defender.New(cfg, w, h, defender.Deps{
		Sound: sound,
		Input: pilot,
		Rand:  defender.NewSimpleRNG(seed),
	})
	if err != nil {
		return simResult{}, err
	}
	pilot.game = g

	dt := float64(step) / float64(time.Millisecond)
	frames := 0
	for elapsed := time.Duration(0); elapsed < limit && !g.State().Terminal(); elapsed += step {
		g.HandleShoot()
		g.Update(dt)
		frames++
	}

	snap := g.Snapshot()
	return simResult{
		State:    g.State(),
		Score:    g.Score(),
		Files:    g.FilesCollected(),
		Waves:    g.Wave(),
		Lives:    g.Lives(),
		Frames:   frames,
		Elapsed:  time.Duration(g.ElapsedMs() * float64(time.Millisecond)),
		Hash:     snap.Hash(),
		Cues:     sound.counts,
		EndTempo: sound.tempo,
	}, nil
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(false)
	defer closeLog()

	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("simulating", "difficulty", preset, "seed", seed, "duration", flagSimDuration, "step", flagSimStep)

	res, err := simulate(cfg, flagSimWidth, flagSimHeight, seed, flagSimDuration, flagSimStep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Outcome:   %s\n", res.State)
	fmt.Printf("Score:     %d\n", res.Score)
	fmt.Printf("Files:     %d/%d\n", res.Files, cfg.Spawner.FilesToWin)
	fmt.Printf("Waves:     %d\n", res.Waves)
	fmt.Printf("Lives:     %d\n", res.Lives)
	fmt.Printf("Frames:    %d (%s simulated)\n", res.Frames, res.Elapsed.Round(time.Millisecond))
	fmt.Printf("Tempo:     %.2fx\n", res.EndTempo)
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("State:     %016x\n", res.Hash)
	fmt.Println("Cues:")
	for c := defender.Cue(0); c < defender.CueCount; c++ {
		if res.Cues[c] > 0 {
			fmt.Printf("  %-11s %d\n", c, res.Cues[c])
		}
	}

	if !flagSimSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	outcome := storage.OutcomeQuit
	switch res.State {
	case defender.StateWin:
		outcome = storage.OutcomeWin
	case defender.StateGameOver:
		outcome = storage.OutcomeGameOver
	}
	id, err := store.SaveRun(storage.Run{
		Player:     "autopilot",
		Difficulty: string(preset),
		Score:      res.Score,
		Files:      res.Files,
		Waves:      res.Waves,
		Outcome:    outcome,
		Duration:   res.Elapsed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}
	logger.Info("run saved", "id", id)
}

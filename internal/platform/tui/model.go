package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/core"
	"github.com/vovakirdan/glitch-defender/internal/games/defender"
	"github.com/vovakirdan/glitch-defender/internal/storage"
)

// AudioControls is implemented by sound sinks that can be muted and paused
// from the keyboard. Sinks without it simply ignore M and P.
type AudioControls interface {
	ToggleMute() bool
	Muted() bool
	Pause(paused bool)
}

// GameOptions configures one terminal session.
type GameOptions struct {
	Config  config.Config
	Preset  config.DifficultyPreset
	Runtime core.RuntimeConfig
	Store   *storage.Store     // optional
	Sound   defender.SoundSink // nil means silent
	Logger  *log.Logger
	Player  string // name recorded with saved runs
}

// GameModel is the Bubble Tea model driving a Glitch Defender session.
type GameModel struct {
	opts    GameOptions
	game    *defender.Game
	held    *HeldInput
	screen  *core.Screen
	fx      *defender.SimpleRNG // visual noise only, never the session RNG
	keys    *KeyMapper
	help    help.Model
	frame   core.InputFrame
	lastAt  time.Time
	hiScore int

	paused     bool
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates the model and starts a session sized to the
// terminal in opts.Runtime.
func NewGameModel(opts GameOptions) (GameModel, error) {
	if opts.Sound == nil {
		opts.Sound = defender.NopSound{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Preset == "" {
		opts.Preset = config.DifficultyNormal
	}

	rt := opts.Runtime
	m := GameModel{
		opts:   opts,
		held:   NewHeldInput(opts.Config.Driver.HoldMs),
		screen: core.NewScreen(rt.ScreenW, max(rt.ScreenH-helpRows, 0)),
		fx:     defender.NewSimpleRNG(time.Now().UnixNano()),
		keys:   NewKeyMapper(),
		help:   help.New(),
		frame:  core.NewInputFrame(),
	}
	m.help.Width = rt.ScreenW

	if err := m.newSession(); err != nil {
		return GameModel{}, err
	}

	if opts.Store != nil {
		hi, err := opts.Store.HighScore(string(opts.Preset))
		if err != nil {
			opts.Logger.Warn("could not load high score", "err", err)
		}
		m.hiScore = hi
	}
	return m, nil
}

// newSession replaces the running game with a fresh one.
func (m *GameModel) newSession() error {
	seed := m.opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w, h := FieldForScreen(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
	game, err := defender.New(m.opts.Config, w, h, defender.Deps{
		Sound: m.opts.Sound,
		Input: m.held,
		Rand:  defender.NewSimpleRNG(seed),
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	m.game = game
	m.held.Release()
	m.paused = false
	m.saved = false
	m.lastAt = time.Time{}
	m.opts.Logger.Debug("session started", "difficulty", m.opts.Preset, "seed", seed, "field", fmt.Sprintf("%.0fx%.0f", w, h))
	return nil
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey applies movement at once and queues everything else for the
// next frame.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.finish(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft:
		m.held.Press(-1)
	case core.ActionRight:
		m.held.Press(1)
	case core.ActionStop:
		m.held.Release()
	case core.ActionNone:
	default:
		m.frame.Set(action)
	}
	return m, nil
}

// handleResize keeps the session running on the new field size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width
	m.game.Resize(FieldForScreen(msg.Width, msg.Height))
	return m, nil
}

// handleTick runs the queued actions and advances the simulation by the
// wall-clock time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastAt, now, m.opts.Runtime.TickRate, m.opts.Config.Driver.MaxDeltaMs)
	m.lastAt = now

	terminal := m.game.State().Terminal()
	audio, hasAudio := m.opts.Sound.(AudioControls)

	if m.frame.Has(core.ActionMute) && hasAudio {
		audio.ToggleMute()
	}
	if m.frame.Has(core.ActionPause) && !terminal {
		m.paused = !m.paused
		if hasAudio {
			audio.Pause(m.paused)
		}
	}
	if m.frame.Has(core.ActionRestart) && terminal {
		if err := m.newSession(); err != nil {
			m.opts.Logger.Error("restart failed", "err", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.frame.Clear()
		return m, tickCmd(m.opts.Runtime.TickRate)
	}
	if m.frame.Has(core.ActionBack) && (terminal || m.paused) {
		m.finish(storage.OutcomeQuit)
		if hasAudio && m.paused {
			audio.Pause(false)
		}
		m.backToMenu = true
		return m, tea.Quit
	}

	if !terminal && !m.paused {
		if m.frame.Has(core.ActionFire) {
			m.game.HandleShoot()
		}
		if dt > 0 {
			m.held.Advance(dt)
			m.game.Update(dt)
		}
	}

	switch m.game.State() {
	case defender.StateWin:
		m.finish(storage.OutcomeWin)
	case defender.StateGameOver:
		m.finish(storage.OutcomeGameOver)
	}

	m.frame.Clear()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// finish records the session once. Abandoned sessions are only kept when
// they scored.
func (m *GameModel) finish(outcome string) {
	if m.saved {
		return
	}
	if outcome == storage.OutcomeQuit && (m.game.State().Terminal() || m.game.Score() == 0) {
		return
	}
	m.saved = true
	m.opts.Logger.Info("session ended", "outcome", outcome, "score", m.game.Score(),
		"files", m.game.FilesCollected(), "waves", m.game.Wave())

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Player:     m.opts.Player,
		Difficulty: string(m.opts.Preset),
		Score:      m.game.Score(),
		Files:      m.game.FilesCollected(),
		Waves:      m.game.Wave(),
		Outcome:    outcome,
		Duration:   time.Duration(m.game.ElapsedMs() * float64(time.Millisecond)),
	})
	if err != nil {
		m.opts.Logger.Error("could not save run", "err", err)
		return
	}
	m.hiScore = max(m.hiScore, m.game.Score())
}

// render draws the current frame into the screen buffer.
func (m GameModel) render() {
	m.screen.Clear()
	m.game.Draw(newScreenSink(m.screen))
	if m.game.GlitchActive() && !m.paused {
		applyGlitch(m.screen, m.fx, hudRows)
	}

	muted := false
	if audio, ok := m.opts.Sound.(AudioControls); ok {
		muted = audio.Muted()
	}
	drawHUD(m.screen, m.game, hudState{HighScore: m.hiScore, Muted: muted, Paused: m.paused})
	drawEndScreen(m.screen, m.game, m.paused)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.render()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// saveScreenshot saves the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".glitch-defender", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "err", err)
		return
	}
	path := filepath.Join(dir, fmt.Sprintf("defender_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "err", err)
	}
}

// Game returns the running session.
func (m GameModel) Game() *defender.Game {
	return m.game
}

// Paused reports whether the session is paused.
func (m GameModel) Paused() bool {
	return m.paused
}

// BackToMenu reports whether the player asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Runtime returns the runtime config, updated by resizes.
func (m GameModel) Runtime() core.RuntimeConfig {
	return m.opts.Runtime
}

// RunGame plays one session in the terminal. It reports whether the player
// asked to go back to the menu rather than quit.
func RunGame(opts GameOptions) (backToMenu bool, err error) {
	model, err := NewGameModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}

// IsQuitting returns true if the player asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

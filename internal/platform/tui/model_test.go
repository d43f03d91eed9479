package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/core"
	"github.com/vovakirdan/glitch-defender/internal/games/defender"
	"github.com/vovakirdan/glitch-defender/internal/storage"
)

// fakeAudio records mute and pause requests.
type fakeAudio struct {
	defender.NopSound
	muted  bool
	paused bool
}

func (a *fakeAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

func (a *fakeAudio) Muted() bool       { return a.muted }
func (a *fakeAudio) Pause(paused bool) { a.paused = paused }

// modelHarness drives a GameModel with synthetic ticks 16ms apart.
type modelHarness struct {
	t   *testing.T
	m   GameModel
	now time.Time
	cmd tea.Cmd
}

func newHarness(t *testing.T, opts GameOptions) *modelHarness {
	t.Helper()
	if opts.Config.Player.Lives == 0 {
		opts.Config = config.Default()
	}
	opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

	m, err := NewGameModel(opts)
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}
	return &modelHarness{t: t, m: m, now: time.Unix(1_700_000_000, 0)}
}

func (h *modelHarness) send(msg tea.Msg) {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(GameModel)
	if !ok {
		h.t.Fatalf("Update returned %T, expected GameModel", next)
	}
	h.m, h.cmd = m, cmd
}

func (h *modelHarness) tick(n int) {
	h.t.Helper()
	for range n {
		h.now = h.now.Add(16 * time.Millisecond)
		h.send(TickMsg(h.now))
	}
}

func (h *modelHarness) key(r rune) {
	h.t.Helper()
	h.send(runeKey(r))
}

func (h *modelHarness) lose() {
	g := h.m.Game()
	g.Player().Hit(g.Player().Lives)
	g.CheckTerminal()
}

func TestGameModelAdvances(t *testing.T) {
	h := newHarness(t, GameOptions{})

	h.tick(3)
	if h.m.Game().ElapsedMs() <= 0 {
		t.Errorf("ElapsedMs() = %v, expected time to pass", h.m.Game().ElapsedMs())
	}
	if h.cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestGameModelFire(t *testing.T) {
	h := newHarness(t, GameOptions{})

	h.key(' ')
	h.tick(1)
	if got := len(h.m.Game().PlayerBullets()); got != 1 {
		t.Errorf("PlayerBullets() = %d after firing, expected 1", got)
	}
}

func TestGameModelMovement(t *testing.T) {
	h := newHarness(t, GameOptions{})
	startX := h.m.Game().Player().X

	h.key('a')
	h.tick(2)
	if h.m.Game().Player().X >= startX {
		t.Errorf("player X = %v after moving left, expected less than %v", h.m.Game().Player().X, startX)
	}

	h.key('s')
	x := h.m.Game().Player().X
	h.tick(2)
	if h.m.Game().Player().X != x {
		t.Errorf("player moved to %v after stop, expected %v", h.m.Game().Player().X, x)
	}
}

func TestGameModelPause(t *testing.T) {
	audio := &fakeAudio{}
	h := newHarness(t, GameOptions{Sound: audio})
	h.tick(1)

	h.key('p')
	h.tick(1)
	if !h.m.Paused() || !audio.paused {
		t.Fatal("expected the session and audio to be paused")
	}

	elapsed := h.m.Game().ElapsedMs()
	h.tick(5)
	if h.m.Game().ElapsedMs() != elapsed {
		t.Errorf("ElapsedMs() = %v while paused, expected %v", h.m.Game().ElapsedMs(), elapsed)
	}
	if !strings.Contains(h.m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}

	h.key('p')
	h.tick(1)
	if h.m.Paused() || audio.paused {
		t.Error("expected the session to resume")
	}
}

func TestGameModelMute(t *testing.T) {
	audio := &fakeAudio{}
	h := newHarness(t, GameOptions{Sound: audio})

	h.key('m')
	h.tick(1)
	if !audio.muted {
		t.Fatal("expected audio to be muted")
	}
	if !strings.Contains(h.m.View(), "MUTED") {
		t.Error("HUD should show MUTED")
	}

	h.key('m')
	h.tick(1)
	if audio.muted {
		t.Error("expected audio to be unmuted")
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGameModelSavesGameOverOnce(t *testing.T) {
	store := openStore(t)
	h := newHarness(t, GameOptions{Store: store, Preset: config.DifficultyHard, Player: "neo"})

	h.tick(2)
	h.lose()
	h.tick(5)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Outcome != storage.OutcomeGameOver || r.Difficulty != "hard" || r.Player != "neo" {
		t.Errorf("saved run = %+v", r)
	}
	if !strings.Contains(h.m.View(), "SYSTEM COMPROMISED") {
		t.Error("game over view should show the game over overlay")
	}
}

func TestGameModelRestart(t *testing.T) {
	h := newHarness(t, GameOptions{})
	h.tick(1)
	h.lose()
	h.tick(1)
	old := h.m.Game()

	h.key('r')
	h.tick(1)

	g := h.m.Game()
	if g == old {
		t.Fatal("restart should create a new session")
	}
	if g.State() != defender.StatePlaying {
		t.Errorf("State() = %v after restart, expected playing", g.State())
	}
	if g.Lives() != config.Default().Player.Lives {
		t.Errorf("Lives() = %d after restart, expected %d", g.Lives(), config.Default().Player.Lives)
	}
}

func TestGameModelRestartIgnoredWhilePlaying(t *testing.T) {
	h := newHarness(t, GameOptions{})
	old := h.m.Game()

	h.key('r')
	h.tick(1)
	if h.m.Game() != old {
		t.Error("restart should only work once the session has ended")
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	h := newHarness(t, GameOptions{})

	h.key('b')
	h.tick(1)
	if h.m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	h.lose()
	h.key('b')
	h.tick(1)
	if !h.m.BackToMenu() {
		t.Error("expected back to menu after game over")
	}
	if h.m.View() != "" {
		t.Error("view should be empty once leaving")
	}
}

func TestGameModelQuitWithoutScoreSavesNothing(t *testing.T) {
	store := openStore(t)
	h := newHarness(t, GameOptions{Store: store})
	h.tick(2)

	h.key('q')
	if !h.m.IsQuitting() {
		t.Fatal("expected quitting")
	}
	if h.cmd == nil {
		t.Error("quit should return a command")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("saved %d runs for an empty quit, expected 0", len(runs))
	}
}

func TestGameModelResize(t *testing.T) {
	h := newHarness(t, GameOptions{})

	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	f := h.m.Game().Field()
	w, fh := FieldForScreen(120, 40)
	if f.W != w || f.H != fh {
		t.Errorf("Field() = %vx%v, expected %vx%v", f.W, f.H, w, fh)
	}
	if h.m.Game().State() != defender.StatePlaying {
		t.Error("resize should keep the session running")
	}
	if h.m.Runtime().ScreenW != 120 {
		t.Errorf("Runtime().ScreenW = %d, expected 120", h.m.Runtime().ScreenW)
	}
}

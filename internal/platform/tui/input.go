package tui

import "github.com/vovakirdan/glitch-defender/internal/games/defender"

// HeldInput turns discrete terminal key presses into a held movement
// intent. Terminals report key repeats but no releases, so each press keeps
// the craft moving for holdMs of simulated time; auto-repeat refreshes it
// before it runs out.
type HeldInput struct {
	dir       int
	remaining float64
	holdMs    float64
}

// NewHeldInput creates a tracker that holds each press for holdMs.
func NewHeldInput(holdMs float64) *HeldInput {
	return &HeldInput{holdMs: holdMs}
}

// Press starts or refreshes movement in dir (-1 or +1).
func (h *HeldInput) Press(dir int) {
	h.dir = dir
	h.remaining = h.holdMs
}

// Release stops movement immediately.
func (h *HeldInput) Release() {
	h.dir = 0
	h.remaining = 0
}

// Advance runs the hold timer down by dt milliseconds.
func (h *HeldInput) Advance(dt float64) {
	if h.remaining <= 0 {
		return
	}
	h.remaining -= dt
	if h.remaining <= 0 {
		h.Release()
	}
}

// MovementIntent implements defender.InputSource.
func (h *HeldInput) MovementIntent() int {
	if h.remaining <= 0 {
		return 0
	}
	return h.dir
}

var _ defender.InputSource = (*HeldInput)(nil)

// Package tui runs Glitch Defender in a terminal with Bubble Tea: the frame
// loop, key mapping, sprite rendering, menus and the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta converts the wall-clock gap between two ticks into a
// simulation delta in milliseconds. The first tick assumes one nominal
// frame; long stalls are capped at maxMs.
func frameDelta(last, now time.Time, tickRate int, maxMs float64) float64 {
	if last.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return min(1000/float64(tickRate), maxMs)
	}
	dt := float64(now.Sub(last)) / float64(time.Millisecond)
	return min(dt, maxMs)
}

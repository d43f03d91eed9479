package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/games/defender"
)

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.Default()

	a, err := simulate(cfg, 800, 600, 42, 30*time.Second, 16*time.Millisecond)
	require.NoError(t, err)
	b, err := simulate(cfg, 800, 600, 42, 30*time.Second, 16*time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Cues, b.Cues)
}

func TestSimulateRespectsLimit(t *testing.T) {
	res, err := simulate(config.Default(), 800, 600, 7, time.Second, 10*time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, 100, res.Frames)
	assert.Equal(t, defender.StatePlaying, res.State)
	assert.Positive(t, res.Cues[defender.CueShoot], "autopilot should fire")
}

func TestSimulateRejectsBadStep(t *testing.T) {
	_, err := simulate(config.Default(), 800, 600, 1, time.Second, 0)
	assert.Error(t, err)
}

func TestSimulateRejectsBadField(t *testing.T) {
	_, err := simulate(config.Default(), 0, 600, 1, time.Second, 16*time.Millisecond)
	assert.Error(t, err)
}

func TestAutopilotIdleWithoutTargets(t *testing.T) {
	pilot := &autopilot{}
	g, err := defender.New(config.Default(), 800, 600, defender.Deps{Input: pilot})
	require.NoError(t, err)
	pilot.game = g

	assert.Equal(t, 0, pilot.MovementIntent())
}

package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/glitch-defender/internal/games/defender"
)

const ms = time.Millisecond

// cueRecipes builds a fresh finite streamer for every cue.
var cueRecipes = [defender.CueCount]func(beep.SampleRate) beep.Streamer{
	defender.CueShoot: func(r beep.SampleRate) beep.Streamer {
		return gain(withEnvelope(newSweep(WaveSquare, 1400, 600, 70*ms, r), 70*ms, 2*ms, 40*ms, r), 0.25)
	},
	defender.CueEnemyHit: func(r beep.SampleRate) beep.Streamer {
		return gain(withEnvelope(newTone(WaveNoise, 0, 90*ms, r), 90*ms, 1*ms, 70*ms, r), 0.35)
	},
	defender.CuePlayerHit: func(r beep.SampleRate) beep.Streamer {
		return gain(withEnvelope(newSweep(WaveSaw, 220, 70, 280*ms, r), 280*ms, 5*ms, 150*ms, r), 0.45)
	},
	defender.CuePowerUp: func(r beep.SampleRate) beep.Streamer {
		return gain(beep.Seq(
			withEnvelope(newTone(WaveSquare, 523.25, 60*ms, r), 60*ms, 2*ms, 20*ms, r),
			withEnvelope(newTone(WaveSquare, 659.25, 60*ms, r), 60*ms, 2*ms, 20*ms, r),
			withEnvelope(newTone(WaveSquare, 783.99, 90*ms, r), 90*ms, 2*ms, 50*ms, r),
		), 0.25)
	},
	defender.CueFilePickup: func(r beep.SampleRate) beep.Streamer {
		return gain(beep.Mix(
			bell(r, 880, 0.7),
			bell(r, 1760, 0.3),
		), 0.5)
	},
	defender.CueBomb: func(r beep.SampleRate) beep.Streamer {
		return gain(beep.Mix(
			withEnvelope(newTone(WaveNoise, 0, 600*ms, r), 600*ms, 2*ms, 550*ms, r),
			withEnvelope(newSweep(WaveSine, 120, 40, 600*ms, r), 600*ms, 2*ms, 400*ms, r),
		), 0.5)
	},
	defender.CueGlitch: func(r beep.SampleRate) beep.Streamer {
		return gain(beep.Seq(
			newTone(WaveSquare, 1900, 15*ms, r),
			newTone(WaveNoise, 0, 20*ms, r),
			newTone(WaveSquare, 950, 15*ms, r),
		), 0.12)
	},
	defender.CueGameOver: func(r beep.SampleRate) beep.Streamer {
		return gain(beep.Seq(
			withEnvelope(newTone(WaveSaw, 392, 220*ms, r), 220*ms, 5*ms, 60*ms, r),
			withEnvelope(newTone(WaveSaw, 311.13, 220*ms, r), 220*ms, 5*ms, 60*ms, r),
			withEnvelope(newSweep(WaveSaw, 261.63, 130, 600*ms, r), 600*ms, 5*ms, 400*ms, r),
		), 0.4)
	},
	defender.CueWin: func(r beep.SampleRate) beep.Streamer {
		return gain(beep.Seq(
			withEnvelope(newTone(WaveSquare, 523.25, 120*ms, r), 120*ms, 2*ms, 30*ms, r),
			withEnvelope(newTone(WaveSquare, 659.25, 120*ms, r), 120*ms, 2*ms, 30*ms, r),
			withEnvelope(newTone(WaveSquare, 783.99, 120*ms, r), 120*ms, 2*ms, 30*ms, r),
			withEnvelope(newTone(WaveSquare, 1046.5, 450*ms, r), 450*ms, 2*ms, 300*ms, r),
		), 0.3)
	},
}

// bell is a decaying sine partial built on the beep tone generator.
func bell(r beep.SampleRate, freq, level float64) beep.Streamer {
	const d = 400 * ms
	s, err := generators.SineTone(r, freq)
	if err != nil {
		// freq above Nyquist; fall back to the local oscillator
		s = newTone(WaveSine, freq, d, r)
	}
	return gain(withEnvelope(beep.Take(r.N(d), s), d, 2*ms, 380*ms, r), level)
}

// cueStreamer returns the sound for c, or nil for an unknown cue.
func cueStreamer(c defender.Cue, r beep.SampleRate) beep.Streamer {
	if c < 0 || c >= defender.CueCount || cueRecipes[c] == nil {
		return nil
	}
	return cueRecipes[c](r)
}

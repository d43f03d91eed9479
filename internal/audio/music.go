package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// bassline is the repeating sequence of the background loop, one note per
// step, as frequencies in Hz. Zero is a rest.
var bassline = []float64{
	55, 0, 110, 55, 65.41, 0, 130.81, 65.41,
	49, 0, 98, 49, 58.27, 0, 116.54, 73.42,
}

// musicLoop synthesises an endless bass and kick pattern. It never ends, so
// it can sit in a mixer until its Ctrl is dropped.
type musicLoop struct {
	rate     beep.SampleRate
	step     int // samples per step
	kickLen  int
	pos      int
	phase    float64
	subPhase float64
}

func newMusicLoop(rate beep.SampleRate) *musicLoop {
	return &musicLoop{
		rate:    rate,
		step:    rate.N(150 * time.Millisecond),
		kickLen: rate.N(90 * time.Millisecond),
	}
}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.pos / m.step) % len(bassline)
		inStep := m.pos % m.step
		freq := bassline[idx]

		bass := 0.0
		if freq > 0 {
			decay := math.Exp(-float64(inStep) / float64(m.step) * 3)
			bass = 0.22 * decay * oscillate(WaveSaw, m.phase, nil)
			bass += 0.12 * decay * math.Sin(2*math.Pi*m.subPhase)
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
			m.subPhase += freq / 2 / float64(m.rate)
			m.subPhase -= math.Floor(m.subPhase)
		}

		kick := 0.0
		if idx%4 == 0 && inStep < m.kickLen {
			env := 1 - float64(inStep)/float64(m.kickLen)
			t := float64(inStep) / float64(m.rate)
			kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}

		v := bass + kick
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a finite oscillator whose frequency glides linearly from freq to
// endFreq over its duration.
type tone struct {
	wave    Wave
	freq    float64
	endFreq float64
	rate    beep.SampleRate
	phase   float64
	pos     int
	length  int
	noise   uint32
}

// newTone returns a fixed-pitch oscillator.
func newTone(wave Wave, freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return newSweep(wave, freq, freq, d, rate)
}

// newSweep returns an oscillator gliding from one pitch to another.
func newSweep(wave Wave, from, to float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{
		wave:    wave,
		freq:    from,
		endFreq: to,
		rate:    rate,
		length:  rate.N(d),
		noise:   0x9e3779b9,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		v := oscillate(t.wave, t.phase, &t.noise)
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.pos) / float64(t.length)
		f := t.freq + (t.endFreq-t.freq)*progress
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// oscillate returns one sample in [-1, 1] for a phase in [0, 1).
func oscillate(w Wave, phase float64, noise *uint32) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		// xorshift keeps the noise reproducible per tone
		x := *noise
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		*noise = x
		return float64(x)/float64(math.MaxUint32)*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope shapes a stream with a linear attack and release.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

func withEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	releaseAt := e.total - e.release
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if e.release > 0 && e.pos >= releaseAt {
			gain = min(gain, float64(e.total-e.pos)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// gain scales a stream by a linear factor. Zero or less is silence.
func gain(s beep.Streamer, g float64) *effects.Volume {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

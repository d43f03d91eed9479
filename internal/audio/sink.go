// Package audio realises the simulation's sound intents with gopxl/beep:
// synthesised cue effects, a generated music loop whose tempo follows the
// session, mute and pause.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/glitch-defender/internal/games/defender"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

const (
	minTempo = 0.1
	maxTempo = 2.0
)

// Options configure a Sink.
type Options struct {
	Volume float64 // linear master gain; zero means 1
	Muted  bool
	Logger *log.Logger
}

// Sink plays cues and music on the system speaker. When the speaker cannot
// be opened it keeps working silently, so callers never need a second code
// path. Safe for concurrent use.
type Sink struct {
	mu sync.Mutex

	rate   beep.SampleRate
	mixer  *beep.Mixer
	master *effects.Volume
	out    *beep.Ctrl // pause switch in front of the speaker

	music   *beep.Ctrl
	tempo   *beep.Resampler
	current float64
	muted   bool

	live   bool
	logger *log.Logger
}

// New opens the speaker and returns a sink. Failure to open the speaker is
// logged and yields a silent sink.
func New(opts Options) *Sink {
	s := newSink(SampleRate, opts)

	if err := speaker.Init(s.rate, s.rate.N(time.Second/10)); err != nil {
		s.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return s
	}
	speaker.Play(s.out)
	s.live = true
	return s
}

// newSink builds the streamer graph without touching the speaker.
func newSink(rate beep.SampleRate, opts Options) *Sink {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	volume := opts.Volume
	if volume <= 0 {
		volume = 1
	}

	mixer := &beep.Mixer{}
	master := gain(mixer, volume)
	master.Silent = opts.Muted
	return &Sink{
		rate:    rate,
		mixer:   mixer,
		master:  master,
		out:     &beep.Ctrl{Streamer: master},
		current: 1,
		muted:   opts.Muted,
		logger:  logger,
	}
}

// lock takes the sink mutex and, when playing, the speaker lock.
func (s *Sink) lock() func() {
	s.mu.Lock()
	if s.live {
		speaker.Lock()
		return func() {
			speaker.Unlock()
			s.mu.Unlock()
		}
	}
	return s.mu.Unlock
}

// Live reports whether sound reaches a real output device.
func (s *Sink) Live() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// PlayCue implements defender.SoundSink.
func (s *Sink) PlayCue(c defender.Cue) {
	st := cueStreamer(c, s.rate)
	if st == nil {
		return
	}
	defer s.lock()()
	if s.muted {
		return
	}
	s.mixer.Add(st)
}

// SetTempo implements defender.SoundSink. The multiplier is clamped to a
// sane playback range.
func (s *Sink) SetTempo(multiplier float64) {
	multiplier = max(minTempo, min(multiplier, maxTempo))
	defer s.lock()()
	s.current = multiplier
	if s.tempo != nil {
		s.tempo.SetRatio(multiplier)
	}
}

// Tempo returns the current music tempo multiplier.
func (s *Sink) Tempo() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// StartMusic implements defender.SoundSink. A running loop is restarted
// from the beginning.
func (s *Sink) StartMusic() {
	defer s.lock()()
	s.dropMusic()
	s.tempo = beep.ResampleRatio(3, s.current, newMusicLoop(s.rate))
	s.music = &beep.Ctrl{Streamer: s.tempo, Paused: s.muted}
	s.mixer.Add(s.music)
}

// StopMusic implements defender.SoundSink.
func (s *Sink) StopMusic() {
	defer s.lock()()
	s.dropMusic()
}

// dropMusic detaches the loop; a Ctrl without a streamer ends and the mixer
// forgets it.
func (s *Sink) dropMusic() {
	if s.music != nil {
		s.music.Streamer = nil
	}
	s.music = nil
	s.tempo = nil
}

// MusicPlaying reports whether the music loop is attached and audible.
func (s *Sink) MusicPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music != nil && !s.music.Paused
}

// ToggleMute flips mute and returns the new state. Muting holds the music
// where it is and drops new cues.
func (s *Sink) ToggleMute() bool {
	defer s.lock()()
	s.muted = !s.muted
	s.master.Silent = s.muted
	if s.music != nil {
		s.music.Paused = s.muted
	}
	return s.muted
}

// Muted reports the mute state.
func (s *Sink) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Pause suspends or resumes all output.
func (s *Sink) Pause(paused bool) {
	defer s.lock()()
	s.out.Paused = paused
}

// Close silences everything that is playing.
func (s *Sink) Close() {
	defer s.lock()()
	s.dropMusic()
	s.mixer.Clear()
}

var _ defender.SoundSink = (*Sink)(nil)

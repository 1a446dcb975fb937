// Package audio synthesizes the game's sound effects and backing music and
// mixes them onto the system speaker.
//
// Everything is generated procedurally, so no asset files ship with the
// binary. The engine implements core.AudioPlayer for the simulation side and
// exposes music control for the platform side. When audio is disabled in the
// settings, or the speaker cannot be opened, every method degrades to a no-op
// so the game keeps running silently.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/Bastczuak/flippy/internal/config"
	"github.com/Bastczuak/flippy/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Engine owns the speaker and the mixer all sounds flow through. Safe for
// concurrent use.
type Engine struct {
	mu          sync.Mutex
	cfg         config.Audio
	mixer       *beep.Mixer
	music       *beep.Ctrl
	rotation    *playlist
	musicOn     bool
	initialized bool
}

// NewEngine creates an engine with the given output settings. Call Start
// before playing anything.
func NewEngine(cfg config.Audio) *Engine {
	return &Engine{
		cfg:      cfg,
		mixer:    &beep.Mixer{},
		rotation: defaultPlaylist(),
	}
}

// Start opens the speaker and begins mixing. With audio disabled in the
// settings it succeeds without touching the device and the engine stays
// silent.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized || !e.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Stop silences the engine and detaches every streamer. The speaker stays
// open so a later Start can reuse it.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	if e.music != nil {
		e.music.Paused = true
		e.music = nil
	}
	e.musicOn = false
	e.mixer.Clear()
	e.initialized = false
}

// PlayOnce implements core.AudioPlayer. The effect plays at the given volume
// scaled by the master volume and cleans itself up when it drains.
func (e *Engine) PlayOnce(s core.Sound, volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	gen, d := effectFor(s)
	if gen == nil {
		return
	}
	shot := beep.Take(sampleRate.N(d), gen)
	e.mixer.Add(scaled(shot, volume*e.cfg.MasterVolume))
}

// StartMusic begins the endless track rotation, or resumes it where it
// paused. Tracks play at the master volume, matching the effects bus.
func (e *Engine) StartMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	e.musicOn = true
	if e.music != nil {
		e.music.Paused = false
		return
	}
	e.queueTrack()
}

// StopMusic pauses the rotation mid-track. StartMusic picks it back up.
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.musicOn = false
	if e.music != nil {
		e.music.Paused = true
	}
}

// queueTrack adds the next track to the mixer, chained to a callback that
// queues the one after it when the track drains. Callers must hold e.mu.
func (e *Engine) queueTrack() {
	track := scaled(e.rotation.Next(sampleRate), e.cfg.MasterVolume)
	ctrl := &beep.Ctrl{Streamer: beep.Seq(track, beep.Callback(e.trackEnded))}
	e.music = ctrl
	e.mixer.Add(ctrl)
}

// trackEnded runs on the speaker goroutine whenever the current track
// finishes.
func (e *Engine) trackEnded() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.musicOn {
		e.music = nil
		return
	}
	e.queueTrack()
}

// effectFor picks the generator and natural length for a one-shot effect.
func effectFor(s core.Sound) (beep.Streamer, time.Duration) {
	switch s {
	case core.SoundJump:
		return NewFlapGenerator(sampleRate), flapDuration
	case core.SoundScore:
		return NewChimeGenerator(sampleRate), chimeDuration
	case core.SoundHurt:
		return NewStingGenerator(sampleRate), stingDuration
	case core.SoundExplosion:
		return NewBurstGenerator(sampleRate), burstDuration
	default:
		return nil, 0
	}
}

// scaled wraps a streamer in a linear gain. Zero or negative gain mutes it
// outright, since a log-scale volume cannot express silence.
func scaled(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// playlist is the rotation of backing tracks. Tracks are built fresh on every
// pass so a track streamer never has to rewind.
type playlist struct {
	tracks []func(beep.SampleRate) beep.Streamer
	next   int
}

// defaultPlaylist ships a single tune, so the rotation loops it.
func defaultPlaylist() *playlist {
	return &playlist{tracks: []func(beep.SampleRate) beep.Streamer{NewStrollTrack}}
}

// Next builds a streamer for the upcoming track and advances the selector.
func (p *playlist) Next(sr beep.SampleRate) beep.Streamer {
	track := p.tracks[p.next](sr)
	p.next = (p.next + 1) % len(p.tracks)
	return track
}

// strollStep is the length of one melody step, 120 BPM in eighth notes.
const strollStep = time.Millisecond * 250

// strollLead is the lead line, one note per step, 0 resting.
var strollLead = []float64{
	523.25, 659.26, 783.99, 659.26, 440.00, 523.25, 659.26, 523.25,
	392.00, 493.88, 587.33, 493.88, 523.25, 659.26, 783.99, 0,
	523.25, 659.26, 783.99, 659.26, 440.00, 523.25, 659.26, 523.25,
	587.33, 493.88, 392.00, 493.88, 523.25, 0, 523.25, 0,
}

// strollBass walks the roots underneath, one note per bar of four steps.
var strollBass = []float64{
	130.81, 110.00, 98.00, 130.81,
	130.81, 110.00, 98.00, 130.81,
}

// StrollTrack plays one pass of the cheerful backing tune and then drains,
// letting the playlist move on.
type StrollTrack struct {
	sr   beep.SampleRate
	step int
	pos  int
}

// NewStrollTrack creates a streamer for a single pass of the tune.
func NewStrollTrack(sr beep.SampleRate) beep.Streamer {
	return &StrollTrack{sr: sr, step: sr.N(strollStep)}
}

func (g *StrollTrack) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := g.pos / g.step
		if idx >= len(strollLead) {
			return i, false
		}

		t := float64(g.pos) / float64(g.sr)
		sample := 0.0

		// Square-wave lead, plucked by a per-step decay
		if f := strollLead[idx]; f > 0 {
			pluck := math.Exp(-4 * float64(g.pos%g.step) / float64(g.step))
			if math.Mod(f*t, 1) < 0.5 {
				sample += 0.16 * pluck
			} else {
				sample -= 0.16 * pluck
			}
		}

		sample += 0.1 * math.Sin(2*math.Pi*strollBass[idx/4]*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StrollTrack) Err() error {
	return nil
}

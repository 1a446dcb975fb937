package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Natural lengths of the one-shot effects. The engine bounds each generator
// with beep.Take, the generators themselves stream forever.
const (
	flapDuration  = time.Millisecond * 120
	chimeDuration = time.Millisecond * 150
	stingDuration = time.Millisecond * 150
	burstDuration = time.Millisecond * 300
)

// FlapGenerator synthesizes the wing chirp for an accepted jump, a quick
// downward sweep with a breath of noise under it.
type FlapGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewFlapGenerator creates a flap sound generator.
func NewFlapGenerator(sr beep.SampleRate) *FlapGenerator {
	return &FlapGenerator{sr: sr, seed: time.Now().UnixNano()}
}

func (g *FlapGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sweep from 900Hz down to 300Hz over the effect
		frac := math.Min(t/flapDuration.Seconds(), 1.0)
		freq := 900 - 600*frac

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		breath := float64(g.seed)/float64(0x7fffffff)*2 - 1

		envelope := math.Exp(-t * 18)
		sample := envelope * (0.6*math.Sin(2*math.Pi*freq*t) + 0.1*breath)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FlapGenerator) Err() error {
	return nil
}

// ChimeGenerator synthesizes the bright ding for a passed obstacle pair.
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime sound generator.
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// C6 fundamental with a fifth above it, both dying away bell-like
		sample := 0.5*math.Sin(2*math.Pi*1046.5*t) + 0.2*math.Sin(2*math.Pi*1568.0*t)

		attack := math.Min(t/0.005, 1.0)
		sample *= attack * math.Exp(-t*10)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// StingGenerator synthesizes the harsh low buzz of a collision.
type StingGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewStingGenerator creates a sting sound generator.
func NewStingGenerator(sr beep.SampleRate) *StingGenerator {
	return &StingGenerator{sr: sr}
}

func (g *StingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 120Hz with odd harmonics for a square-ish rasp
		sample := 0.0
		sample += 0.4 * math.Sin(2*math.Pi*120*t)
		sample += 0.13 * math.Sin(2*math.Pi*360*t)
		sample += 0.08 * math.Sin(2*math.Pi*600*t)

		attack := math.Min(t/0.015, 1.0)
		release := math.Exp(-math.Max(0, t-0.1) * 30)
		sample *= attack * release * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StingGenerator) Err() error {
	return nil
}

// BurstGenerator synthesizes the crashing body of a collision, noise over a
// low rumble. Layered on top of the sting it reads as an explosion.
type BurstGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewBurstGenerator creates a burst sound generator.
func NewBurstGenerator(sr beep.SampleRate) *BurstGenerator {
	return &BurstGenerator{sr: sr, seed: time.Now().UnixNano()}
}

func (g *BurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*55*t)

		envelope := math.Exp(-t * 9)
		sample := envelope * (0.5*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BurstGenerator) Err() error {
	return nil
}

// Package game implements the flippy simulation: a side-scrolling arcade
// flight over an entity-component world. The package is pure logic driven
// through Reset/Step/Render/State; it owns no goroutines, no clock and no
// terminal state, which is what keeps every behavior in here testable with
// scripted input.
package game

import (
	"math/rand"

	"github.com/Bastczuak/flippy/internal/config"
	"github.com/Bastczuak/flippy/internal/core"
	"github.com/Bastczuak/flippy/internal/engine"
)

// Game is the simulation facade. One instance hosts one world; Reset tears
// the world down and builds a fresh one.
type Game struct {
	cfg    core.RuntimeConfig
	tuning config.Config
	audio  core.AudioPlayer
	rng    *rand.Rand

	world   *World
	phases  []core.Phase
	signals *engine.Queue[Signal]

	global      []System
	playSystems []System
	spawner     *spawnerSystem

	scoreText    engine.Entity
	titleText    engine.Entity
	subtitleText engine.Entity

	// lastScore is the frozen score of the most recent crash, shown while
	// the pause overlay is up.
	lastScore int
}

// New creates a game with the given tuning. audio may be nil, in which case
// all sound requests are dropped.
func New(tuning config.Config, audio core.AudioPlayer) *Game {
	return &Game{tuning: tuning, audio: audio}
}

// Reset builds a fresh world on the title screen: the looping backdrop and
// ground, the overlay text and an empty score display. The RNG is reseeded
// from cfg.Seed, so identical seeds and input scripts replay identically.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.world = NewWorld()
	g.phases = []core.Phase{core.PhaseTitle}
	g.signals = engine.NewQueue[Signal]()
	g.global = []System{movementSystem{}}
	g.playSystems = nil
	g.spawner = nil
	g.lastScore = 0

	g.world.SpawnBackdrop()
	g.world.SpawnGround()
	g.titleText = g.world.SpawnText(0, TitleTextY, TitleText, core.ColorGold)
	g.subtitleText = g.world.SpawnText(0, SubtitleTextY, SubtitleText, core.ColorWhite)
	g.scoreText = g.world.SpawnText(0, ScoreTextY, "", core.ColorWhite)
}

// Step advances the simulation by dt seconds. One tick runs the global
// systems, then the play systems if a flight is live, then drains the
// signal queue through the phase machine. Signals raised by systems this
// tick are therefore handled this tick, after all systems have run.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	jump := in.Has(core.ActionJump)
	if jump {
		g.signals.Push(SignalJump)
	}

	ctx := &Context{
		World:    g.world,
		Tuning:   g.tuning,
		Rng:      g.rng,
		Signals:  g.signals,
		Audio:    g.audio,
		JumpHeld: jump,
		Dt:       dt,
	}

	for _, s := range g.global {
		s.Run(ctx)
	}
	if g.phase() == core.PhasePlay {
		for _, s := range g.playSystems {
			s.Run(ctx)
		}
	}

	for _, sig := range g.signals.Drain() {
		g.handleSignal(sig)
	}

	return core.StepResult{State: g.State()}
}

// State reports the active phase and the relevant score: the live score
// during a flight, the frozen final score while paused.
func (g *Game) State() core.GameState {
	st := core.GameState{Phase: g.phase()}
	switch st.Phase {
	case core.PhasePlay:
		for _, e := range g.world.Birds.Entities() {
			bird, _ := g.world.Birds.Get(e)
			st.Score = bird.Score
		}
	case core.PhasePause:
		st.Score = g.lastScore
	}
	return st
}

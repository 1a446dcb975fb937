package game

import (
	"math"
	"math/rand"

	"github.com/Bastczuak/flippy/internal/config"
	"github.com/Bastczuak/flippy/internal/core"
	"github.com/Bastczuak/flippy/internal/engine"
)

// Context carries everything a system is allowed to touch during one tick.
// Threading it explicitly instead of reaching for globals keeps the
// simulation deterministic and lets tests inject a seeded RNG and a
// recording audio player.
type Context struct {
	World   *World
	Tuning  config.Config
	Rng     *rand.Rand
	Signals *engine.Queue[Signal]
	Audio   core.AudioPlayer

	// JumpHeld is true when the jump key arrived this tick.
	JumpHeld bool
	// Dt is the simulated time of this tick, in seconds.
	Dt float64
}

// play fires a one-shot sound. A missing audio device is not an error.
func (ctx *Context) play(s core.Sound, volume float64) {
	if ctx.Audio == nil {
		return
	}
	ctx.Audio.PlayOnce(s, volume)
}

// System is one simulation pass. Systems run synchronously in a fixed
// order within each tick and never suspend.
type System interface {
	Run(ctx *Context)
}

// movementSystem advances the looping background layers and drifts pipes
// left. It runs in every phase, which keeps the world alive behind the
// title and pause overlays.
type movementSystem struct{}

func (movementSystem) Run(ctx *Context) {
	w := ctx.World

	for _, e := range w.Backgrounds.Entities() {
		bg, _ := w.Backgrounds.Get(e)
		pos, _ := w.Positions.Get(e)

		speed := ctx.Tuning.Scroll.BackdropSpeed
		if bg.Kind == KindGround {
			speed = ctx.Tuning.Scroll.GroundSpeed
		}
		bg.ScrollPos = math.Mod(bg.ScrollPos+speed*ctx.Dt, LoopPeriod)
		pos.X = LoopOffset - bg.ScrollPos

		w.Backgrounds.Set(e, bg)
		w.Positions.Set(e, pos)
	}

	for _, e := range w.Pipes.Entities() {
		pos, _ := w.Positions.Get(e)
		pos.X += ctx.Tuning.Pipes.ScrollSpeed * ctx.Dt
		w.Positions.Set(e, pos)
	}
}

// controlSystem applies gravity and flaps. A flap is edge-triggered: the
// jump key must be down now and not on the previous tick.
//
// The displacement uses the raw velocity, not velocity*dt. The velocity
// already decays by a dt-scaled gravity and all collision tuning assumes
// this exact motion, so it must not be "corrected" to canonical physics.
type controlSystem struct{}

func (controlSystem) Run(ctx *Context) {
	w := ctx.World

	for _, e := range w.Birds.Entities() {
		bird, _ := w.Birds.Get(e)
		pos, _ := w.Positions.Get(e)

		bird.Dy += ctx.Tuning.Physics.Gravity * ctx.Dt
		if ctx.JumpHeld && !bird.FlyHeld {
			bird.Dy = ctx.Tuning.Physics.JumpImpulse
			ctx.play(core.SoundJump, ctx.Tuning.Audio.Jump)
		}
		bird.FlyHeld = ctx.JumpHeld
		pos.Y += bird.Dy

		w.Birds.Set(e, bird)
		w.Positions.Set(e, pos)
	}
}

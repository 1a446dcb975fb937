package game

import "github.com/Bastczuak/flippy/internal/core"

// collisionSystem tests the bird's center point against obstacle and ground
// rectangles expanded outward by the bird's half extents, which is the
// Minkowski-sum form of an AABB overlap test. Bounds are inclusive; a point
// exactly on an edge collides.
//
// Every qualifying rectangle pushes its own collision signal. The phase
// machine treats repeated signals within a tick as one, so duplicates are
// harmless.
type collisionSystem struct{}

func (s collisionSystem) Run(ctx *Context) {
	w := ctx.World

	for _, be := range w.Birds.Entities() {
		birdPos, _ := w.Positions.Get(be)

		if birdPos.Y+BirdHeight/2 < -VirtualHeight/2 {
			s.collide(ctx)
		}

		for _, pe := range w.Pipes.Entities() {
			pipePos, _ := w.Positions.Get(pe)
			rect := core.RectAround(pipePos.X, pipePos.Y, PipeWidth, PipeHeight).
				Expand(BirdWidth/2, BirdHeight/2)
			if rect.ContainsPoint(birdPos.X, birdPos.Y) {
				s.collide(ctx)
			}
		}

		for _, ge := range w.Backgrounds.Entities() {
			bg, _ := w.Backgrounds.Get(ge)
			if bg.Kind != KindGround {
				continue
			}
			groundPos, _ := w.Positions.Get(ge)
			rect := core.RectAround(groundPos.X, groundPos.Y, GroundWidth, GroundHeight).
				Expand(BirdWidth/2, BirdHeight/2)
			if rect.ContainsPoint(birdPos.X, birdPos.Y) {
				s.collide(ctx)
			}
		}
	}
}

// collide reports one hit: a signal for the phase machine plus the crash
// sounds.
func (collisionSystem) collide(ctx *Context) {
	ctx.Signals.Push(SignalCollision)
	ctx.play(core.SoundHurt, ctx.Tuning.Audio.Hurt)
	ctx.play(core.SoundExplosion, ctx.Tuning.Audio.Explosion)
}

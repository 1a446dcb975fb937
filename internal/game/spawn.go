package game

import "math/rand"

// initialSpawnDelay is the countdown before the first pipe pair of a
// session. Subsequent delays are drawn from the configured range.
const initialSpawnDelay = 2.0

// spawnerSystem spawns mirrored pipe pairs just past the right edge and
// removes pipes that have scrolled past the left edge. Removal happens at
// the start of the pass, eagerly, so no later system in the same tick can
// observe a dangling pipe.
type spawnerSystem struct {
	Timer float64
}

func newSpawnerSystem() *spawnerSystem {
	return &spawnerSystem{Timer: initialSpawnDelay}
}

func (s *spawnerSystem) Run(ctx *Context) {
	w := ctx.World

	for _, e := range w.Pipes.Entities() {
		pos, _ := w.Positions.Get(e)
		if pos.X < -VirtualWidth/2-PipeWidth {
			w.Despawn(e)
		}
	}

	s.Timer -= ctx.Dt
	if s.Timer > 0 {
		return
	}

	// The gap center offset is drawn in two stages, between one value from
	// the bottom range and one from the top range.
	p := ctx.Tuning.Pipes
	lo := randRange(ctx.Rng, p.OffsetBottomMin, p.OffsetBottomMax)
	hi := randRange(ctx.Rng, p.OffsetTopMin, p.OffsetTopMax)
	offset := randRange(ctx.Rng, lo, hi)

	x := VirtualWidth/2 + PipeWidth
	w.SpawnPipe(x, -VirtualHeight/2+offset-p.Gap/2, false)
	w.SpawnPipe(x, VirtualHeight/2+offset+p.Gap/2, true)

	s.Timer = randRange(ctx.Rng, p.SpawnDelayMin, p.SpawnDelayMax)
}

// randRange draws uniformly from [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

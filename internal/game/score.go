package game

import (
	"strconv"

	"github.com/Bastczuak/flippy/internal/core"
	"github.com/Bastczuak/flippy/internal/engine"
)

// scoreSystem counts cleared pipe pairs. A pipe scores once its trailing
// edge has fully passed the bird and its top edge sits below the playfield
// centerline; the second condition holds for exactly one member of every
// pair, so each pair counts once.
type scoreSystem struct {
	// Display is the text entity the running score is pushed to.
	Display engine.Entity
}

func (s *scoreSystem) Run(ctx *Context) {
	w := ctx.World

	for _, be := range w.Birds.Entities() {
		bird, _ := w.Birds.Get(be)
		birdPos, _ := w.Positions.Get(be)
		changed := false

		for _, pe := range w.Pipes.Entities() {
			pipe, _ := w.Pipes.Get(pe)
			if pipe.Scored {
				continue
			}
			pipePos, _ := w.Positions.Get(pe)
			trailingEdge := pipePos.X + PipeWidth/2
			topEdge := pipePos.Y + PipeHeight/2

			if trailingEdge < birdPos.X && topEdge < 0 {
				pipe.Scored = true
				w.Pipes.Set(pe, pipe)
				bird.Score++
				changed = true
				ctx.play(core.SoundScore, ctx.Tuning.Audio.Score)
				w.SetText(s.Display, strconv.Itoa(bird.Score))
			}
		}

		if changed {
			w.Birds.Set(be, bird)
		}
	}
}

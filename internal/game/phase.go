package game

import (
	"fmt"

	"github.com/Bastczuak/flippy/internal/core"
)

// Signal is an event the phase machine reacts to. Systems and input push
// signals onto the frame queue; the machine drains it after all systems
// have run.
type Signal uint8

const (
	SignalJump Signal = iota
	SignalCollision
)

func (s Signal) String() string {
	switch s {
	case SignalJump:
		return "jump"
	case SignalCollision:
		return "collision"
	default:
		return fmt.Sprintf("signal(%d)", uint8(s))
	}
}

// phase returns the active phase, the top of the pushdown stack.
func (g *Game) phase() core.Phase {
	return g.phases[len(g.phases)-1]
}

// handleSignal is the central transition function. A signal with no rule
// for the active phase is dropped, which makes repeated collision signals
// within one tick idempotent: the first pushes the pause layer, the rest
// arrive in Pause and match nothing.
func (g *Game) handleSignal(s Signal) {
	switch g.phase() {
	case core.PhaseTitle:
		if s == SignalJump {
			g.enterPlay()
		}
	case core.PhasePlay:
		if s == SignalCollision {
			g.pushPause()
		}
	case core.PhasePause:
		if s == SignalJump {
			g.resumePlay()
		}
	}
}

// enterPlay pushes the Play phase: attach the play systems, spawn the
// player, arm the spawn timer and swap the overlay for the score display.
func (g *Game) enterPlay() {
	g.phases = append(g.phases, core.PhasePlay)

	g.spawner = newSpawnerSystem()
	g.playSystems = []System{
		controlSystem{},
		g.spawner,
		collisionSystem{},
		&scoreSystem{Display: g.scoreText},
	}

	g.world.SpawnBird()
	g.world.SetText(g.scoreText, "0")
	g.world.SetHidden(g.titleText, true)
	g.world.SetHidden(g.subtitleText, true)
}

// pushPause layers Pause on top of Play after a crash. The bird and all
// pipes despawn, the score display goes blank and the overlay returns
// showing the final score. The play systems stay attached, suspended, so
// resuming keeps the spawn timer where it was.
func (g *Game) pushPause() {
	g.phases = append(g.phases, core.PhasePause)

	w := g.world
	for _, e := range w.Pipes.Entities() {
		w.Despawn(e)
	}
	for _, e := range w.Birds.Entities() {
		bird, _ := w.Birds.Get(e)
		g.lastScore = bird.Score
		w.Despawn(e)
	}

	final := w.SetText(g.scoreText, "")
	w.SetHidden(g.titleText, false)
	w.SetHidden(g.subtitleText, false)
	w.SetText(g.titleText, fmt.Sprintf("Your Score: %s", final))
}

// resumePlay pops the Pause layer: clear any leftover pipes, respawn the
// player and bring the score display back. The spawn timer is deliberately
// not re-armed.
func (g *Game) resumePlay() {
	g.phases = g.phases[:len(g.phases)-1]

	w := g.world
	for _, e := range w.Pipes.Entities() {
		w.Despawn(e)
	}
	w.SetText(g.scoreText, "0")
	w.SpawnBird()
	w.SetHidden(g.titleText, true)
	w.SetHidden(g.subtitleText, true)
}

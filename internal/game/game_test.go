package game

import (
	"strings"
	"testing"

	"github.com/Bastczuak/flippy/internal/config"
	"github.com/Bastczuak/flippy/internal/core"
)

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	// Jump every 15 ticks. The script starts the flight, keeps the bird
	// airborne into the first pipe pair and resumes after the crash.
	script := make([]core.InputFrame, 500)
	for i := range script {
		script[i] = core.NewInputFrame()
		if i%15 == 0 {
			script[i].Set(core.ActionJump)
		}
	}

	run := func() ([]core.GameState, float64) {
		g := New(config.DefaultConfig(), nil)
		g.Reset(cfg)
		trace := make([]core.GameState, 0, len(script))
		for _, in := range script {
			res := g.Step(in, 1.0/60.0)
			trace = append(trace, res.State)
		}
		birdY := 0.0
		for _, e := range g.world.Birds.Entities() {
			pos, _ := g.world.Positions.Get(e)
			birdY = pos.Y
		}
		return trace, birdY
	}

	trace1, y1 := run()
	trace2, y2 := run()

	for i := range trace1 {
		if trace1[i] != trace2[i] {
			t.Fatalf("tick %d: states diverge, %+v vs %+v", i, trace1[i], trace2[i])
		}
	}
	if y1 != y2 {
		t.Errorf("final bird y diverges: %v vs %v", y1, y2)
	}
}

func TestGameFullSession(t *testing.T) {
	g := New(config.DefaultConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 4})
	dt := 1.0 / 60.0

	if g.State().Phase != core.PhaseTitle {
		t.Fatalf("phase = %v, want Title", g.State().Phase)
	}

	// Start the flight.
	g.Step(jumpFrame(), dt)
	if g.State().Phase != core.PhasePlay {
		t.Fatalf("phase = %v, want Play", g.State().Phase)
	}

	// Fly for 200 ticks, flapping every 15. The first pair spawns once the
	// 2s timer runs out and the next pair is at least 2s behind it.
	for i := 1; i <= 200; i++ {
		in := core.NewInputFrame()
		if i%15 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in, dt)
	}
	if g.State().Phase != core.PhasePlay {
		t.Fatalf("crashed during the scripted flight, phase = %v", g.State().Phase)
	}
	if got := g.world.Pipes.Len(); got != 2 {
		t.Fatalf("pipes after first spawn = %d, want 2", got)
	}

	// Stop flapping and wait for the crash.
	crashed := false
	for i := 0; i < 600; i++ {
		res := g.Step(core.NewInputFrame(), dt)
		if res.State.Phase == core.PhasePause {
			crashed = true
			break
		}
	}
	if !crashed {
		t.Fatal("bird never hit the ground")
	}
	if g.world.Birds.Len() != 0 || g.world.Pipes.Len() != 0 {
		t.Error("crash should clear the bird and all pipes")
	}
	if txt, _ := g.world.Texts.Get(g.titleText); txt.Value != "Your Score: 0" {
		t.Errorf("title after crash = %q, want \"Your Score: 0\"", txt.Value)
	}

	// One more jump starts the next flight.
	res := g.Step(jumpFrame(), dt)
	if res.State.Phase != core.PhasePlay {
		t.Fatalf("phase after resume = %v, want Play", res.State.Phase)
	}
	if g.world.Birds.Len() != 1 {
		t.Error("resume should spawn a fresh bird")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame()
	g.Step(jumpFrame(), 1.0/60.0)
	groundBird(g)
	g.Step(core.NewInputFrame(), 1.0/60.0)
	if g.phase() != core.PhasePause {
		t.Fatal("expected a crash before the reset")
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	if g.State().Phase != core.PhaseTitle {
		t.Errorf("phase after reset = %v, want Title", g.State().Phase)
	}
	if g.State().Score != 0 {
		t.Errorf("score after reset = %d, want 0", g.State().Score)
	}
	if g.world.Birds.Len() != 0 || g.world.Pipes.Len() != 0 {
		t.Error("reset should leave only the background world")
	}
	if txt, _ := g.world.Texts.Get(g.titleText); txt.Value != TitleText {
		t.Errorf("title after reset = %q, want %q", txt.Value, TitleText)
	}
	if g.world.Hidden.Has(g.titleText) || g.world.Hidden.Has(g.subtitleText) {
		t.Error("overlay should be visible after reset")
	}
	if txt, _ := g.world.Texts.Get(g.scoreText); txt.Value != "" {
		t.Errorf("score display after reset = %q, want blank", txt.Value)
	}
}

func TestGameRenderTitle(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, TitleText) {
		t.Error("title screen should show the title")
	}
	if !strings.Contains(out, SubtitleText) {
		t.Error("title screen should show the subtitle")
	}

	// The ground strip fills the bottom row.
	for x := 0; x < 80; x++ {
		if screen.GetCell(x, 23).Rune == ' ' {
			t.Errorf("bottom row cell %d is empty", x)
			break
		}
	}
}

func TestGameRenderPlay(t *testing.T) {
	g := newTestGame()
	g.Step(jumpFrame(), 1.0/60.0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if strings.Contains(out, TitleText) {
		t.Error("title should be hidden during a flight")
	}
	if !strings.Contains(out, "0") {
		t.Error("score display should read 0")
	}

	// The bird sits around the playfield center.
	found := false
	for cy := 10; cy <= 13 && !found; cy++ {
		for cx := 36; cx <= 44; cx++ {
			c := screen.GetCell(cx, cy)
			if c.Rune != ' ' && c.Color == core.ColorGold {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("bird not drawn near the center")
	}
}

func TestGameRenderPause(t *testing.T) {
	g := newTestGame()
	g.Step(jumpFrame(), 1.0/60.0)
	groundBird(g)
	g.Step(core.NewInputFrame(), 1.0/60.0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Your Score: 0") {
		t.Error("pause overlay should show the final score")
	}
}

func TestGameRenderScalesWithScreenSize(t *testing.T) {
	g := newTestGame()

	for _, size := range []struct{ w, h int }{{160, 48}, {40, 12}, {10, 5}} {
		screen := core.NewScreen(size.w, size.h)
		g.Render(screen)

		hasContent := false
		for y := 0; y < size.h && !hasContent; y++ {
			for x := 0; x < size.w; x++ {
				if screen.GetCell(x, y).Rune != ' ' {
					hasContent = true
					break
				}
			}
		}
		if !hasContent {
			t.Errorf("%dx%d render is blank", size.w, size.h)
		}
	}
}

func TestGameRenderDoesNotMutateWorld(t *testing.T) {
	g := newTestGame()
	g.Step(jumpFrame(), 1.0/60.0)

	s1 := core.NewScreen(80, 24)
	g.Render(s1)
	s2 := core.NewScreen(80, 24)
	g.Render(s2)

	if s1.String() != s2.String() {
		t.Error("two renders of the same world differ")
	}
}

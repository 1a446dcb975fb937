package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Bastczuak/flippy/internal/config"
	"github.com/Bastczuak/flippy/internal/core"
	"github.com/Bastczuak/flippy/internal/engine"
)

const testDt = 1.0 / 60.0

// recordingPlayer captures sound requests for assertions.
type recordingPlayer struct {
	calls []soundCall
}

type soundCall struct {
	sound  core.Sound
	volume float64
}

func (r *recordingPlayer) PlayOnce(s core.Sound, volume float64) {
	r.calls = append(r.calls, soundCall{sound: s, volume: volume})
}

func (r *recordingPlayer) count(s core.Sound) int {
	n := 0
	for _, c := range r.calls {
		if c.sound == s {
			n++
		}
	}
	return n
}

func testContext(w *World) *Context {
	return &Context{
		World:   w,
		Tuning:  config.DefaultConfig(),
		Rng:     rand.New(rand.NewSource(1)),
		Signals: engine.NewQueue[Signal](),
		Dt:      testDt,
	}
}

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMovementScrollWraps(t *testing.T) {
	w := NewWorld()
	backdrop := w.SpawnBackdrop()
	ground := w.SpawnGround()

	ctx := testContext(w)
	ctx.Dt = 5.0
	movementSystem{}.Run(ctx)

	bg, _ := w.Backgrounds.Get(backdrop)
	if !approxEq(bg.ScrollPos, 150) {
		t.Errorf("backdrop scroll after 5s = %v, want 150", bg.ScrollPos)
	}
	pos, _ := w.Positions.Get(backdrop)
	if !approxEq(pos.X, LoopOffset-150) {
		t.Errorf("backdrop x = %v, want %v", pos.X, LoopOffset-150)
	}

	gr, _ := w.Backgrounds.Get(ground)
	if !approxEq(gr.ScrollPos, 305) {
		t.Errorf("ground scroll after 5s = %v, want 305", gr.ScrollPos)
	}
	if gr.ScrollPos <= bg.ScrollPos {
		t.Error("ground should scroll faster than the backdrop")
	}

	// A huge step still lands inside one loop period.
	ctx.Dt = 100.0
	movementSystem{}.Run(ctx)
	for _, e := range w.Backgrounds.Entities() {
		b, _ := w.Backgrounds.Get(e)
		if b.ScrollPos < 0 || b.ScrollPos >= LoopPeriod {
			t.Errorf("scroll position %v outside [0, %v)", b.ScrollPos, LoopPeriod)
		}
	}
}

func TestMovementZeroDt(t *testing.T) {
	w := NewWorld()
	backdrop := w.SpawnBackdrop()

	ctx := testContext(w)
	ctx.Dt = 0
	movementSystem{}.Run(ctx)

	bg, _ := w.Backgrounds.Get(backdrop)
	if bg.ScrollPos != 0 {
		t.Errorf("scroll position moved with dt=0: %v", bg.ScrollPos)
	}
	pos, _ := w.Positions.Get(backdrop)
	if !approxEq(pos.X, LoopOffset) {
		t.Errorf("x = %v, want %v", pos.X, LoopOffset)
	}
}

func TestMovementDriftsPipes(t *testing.T) {
	w := NewWorld()
	pipe := w.SpawnPipe(100, 0, false)

	ctx := testContext(w)
	ctx.Dt = 1.0
	movementSystem{}.Run(ctx)

	pos, _ := w.Positions.Get(pipe)
	if !approxEq(pos.X, 40) {
		t.Errorf("pipe x after 1s = %v, want 40", pos.X)
	}
	if pos.Y != 0 {
		t.Errorf("pipe y changed to %v", pos.Y)
	}
}

func TestControlGravity(t *testing.T) {
	w := NewWorld()
	birdEnt := w.SpawnBird()
	ctx := testContext(w)

	for i := 0; i < 3; i++ {
		controlSystem{}.Run(ctx)
	}

	bird, _ := w.Birds.Get(birdEnt)
	if !approxEq(bird.Dy, 3*-26.0*testDt) {
		t.Errorf("Dy after 3 ticks = %v, want %v", bird.Dy, 3*-26.0*testDt)
	}
	// Displacement accumulates the raw velocity each tick, without a second
	// dt scaling.
	pos, _ := w.Positions.Get(birdEnt)
	want := -26.0 * testDt * (1 + 2 + 3)
	if !approxEq(pos.Y, want) {
		t.Errorf("y after 3 ticks = %v, want %v", pos.Y, want)
	}
}

func TestControlJumpIsEdgeTriggered(t *testing.T) {
	w := NewWorld()
	birdEnt := w.SpawnBird()
	audio := &recordingPlayer{}
	ctx := testContext(w)
	ctx.Audio = audio

	ctx.JumpHeld = true
	controlSystem{}.Run(ctx)

	bird, _ := w.Birds.Get(birdEnt)
	if !approxEq(bird.Dy, 4.0) {
		t.Errorf("Dy after flap = %v, want 4", bird.Dy)
	}
	if !bird.FlyHeld {
		t.Error("FlyHeld not recorded")
	}
	pos, _ := w.Positions.Get(birdEnt)
	if !approxEq(pos.Y, 4.0) {
		t.Errorf("y after flap = %v, want 4", pos.Y)
	}

	// Still held: no second impulse, gravity decays the velocity.
	controlSystem{}.Run(ctx)
	bird, _ = w.Birds.Get(birdEnt)
	if !approxEq(bird.Dy, 4.0-26.0*testDt) {
		t.Errorf("Dy while held = %v, want %v", bird.Dy, 4.0-26.0*testDt)
	}

	// Release, then press again: a fresh impulse.
	ctx.JumpHeld = false
	controlSystem{}.Run(ctx)
	ctx.JumpHeld = true
	controlSystem{}.Run(ctx)
	bird, _ = w.Birds.Get(birdEnt)
	if !approxEq(bird.Dy, 4.0) {
		t.Errorf("Dy after re-press = %v, want 4", bird.Dy)
	}

	if got := audio.count(core.SoundJump); got != 2 {
		t.Errorf("jump sounds = %d, want 2", got)
	}
	for _, c := range audio.calls {
		if c.volume != 0.15 {
			t.Errorf("jump volume = %v, want 0.15", c.volume)
		}
	}
}

func TestSpawnerFirstPairAfterInitialDelay(t *testing.T) {
	w := NewWorld()
	s := newSpawnerSystem()
	if s.Timer != 2.0 {
		t.Fatalf("initial timer = %v, want 2", s.Timer)
	}

	ctx := testContext(w)
	ctx.Dt = 1.0
	s.Run(ctx)
	if w.Pipes.Len() != 0 {
		t.Fatal("pipes spawned before the timer expired")
	}

	s.Run(ctx)
	if w.Pipes.Len() != 2 {
		t.Fatalf("pipes after timer expiry = %d, want 2", w.Pipes.Len())
	}
	if s.Timer < 2.0 || s.Timer >= 4.0 {
		t.Errorf("reset timer = %v, want within [2, 4)", s.Timer)
	}
}

func TestSpawnerPairGeometry(t *testing.T) {
	w := NewWorld()
	s := &spawnerSystem{Timer: 0}
	ctx := testContext(w)
	ctx.Dt = 0
	s.Run(ctx)

	pipes := w.Pipes.Entities()
	if len(pipes) != 2 {
		t.Fatalf("pipes = %d, want 2", len(pipes))
	}

	bottomPos, _ := w.Positions.Get(pipes[0])
	topPos, _ := w.Positions.Get(pipes[1])
	bottomSprite, _ := w.Sprites.Get(pipes[0])
	topSprite, _ := w.Sprites.Get(pipes[1])

	wantX := VirtualWidth/2 + PipeWidth
	if bottomPos.X != wantX || topPos.X != wantX {
		t.Errorf("pair x = %v and %v, want %v", bottomPos.X, topPos.X, wantX)
	}
	if bottomSprite.Flipped {
		t.Error("lower member should not be flipped")
	}
	if !topSprite.Flipped {
		t.Error("upper member should be flipped")
	}

	// Both members derive from one gap offset.
	offset := bottomPos.Y + VirtualHeight/2 + 110.0/2
	if offset < -40 || offset >= 40 {
		t.Errorf("gap offset = %v, want within [-40, 40)", offset)
	}
	wantTopY := VirtualHeight/2 + offset + 110.0/2
	if !approxEq(topPos.Y, wantTopY) {
		t.Errorf("upper y = %v, want %v", topPos.Y, wantTopY)
	}

	// The opening between the members is exactly the configured gap.
	opening := (topPos.Y - PipeHeight/2) - (bottomPos.Y + PipeHeight/2)
	if !approxEq(opening, 110.0) {
		t.Errorf("gap opening = %v, want 110", opening)
	}

	if !w.Pipes.Has(pipes[0]) || !w.Pipes.Has(pipes[1]) {
		t.Error("pair members missing Pipe component")
	}
	for _, e := range pipes {
		p, _ := w.Pipes.Get(e)
		if p.Scored {
			t.Error("fresh pipe already scored")
		}
	}
}

func TestSpawnerOffsetsAreDeterministic(t *testing.T) {
	spawnYs := func(seed int64) []float64 {
		w := NewWorld()
		s := &spawnerSystem{Timer: 0}
		ctx := testContext(w)
		ctx.Rng = rand.New(rand.NewSource(seed))
		ctx.Dt = 0
		for i := 0; i < 5; i++ {
			s.Run(ctx)
			s.Timer = 0
		}
		var ys []float64
		for _, e := range w.Pipes.Entities() {
			pos, _ := w.Positions.Get(e)
			ys = append(ys, pos.Y)
		}
		return ys
	}

	a := spawnYs(99)
	b := spawnYs(99)
	if len(a) != len(b) {
		t.Fatalf("runs spawned %d and %d pipes", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("pipe %d: y %v vs %v with same seed", i, a[i], b[i])
		}
	}
}

func TestSpawnerRemovalBoundary(t *testing.T) {
	limit := -VirtualWidth/2 - PipeWidth

	tests := []struct {
		name    string
		x       float64
		removed bool
	}{
		{"past the limit", limit - 0.001, true},
		{"exactly at the limit", limit, false},
		{"inside the limit", limit + 0.001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			pipe := w.SpawnPipe(tt.x, 0, false)

			s := &spawnerSystem{Timer: 10}
			ctx := testContext(w)
			ctx.Dt = 0
			s.Run(ctx)

			if alive := w.Entities.Alive(pipe); alive == tt.removed {
				t.Errorf("pipe at %v: alive = %v, want removed = %v", tt.x, alive, tt.removed)
			}
		})
	}
}

func TestSpawnerRemovesBeforeSpawning(t *testing.T) {
	w := NewWorld()
	old := w.SpawnPipe(-VirtualWidth/2-PipeWidth-1, 0, false)

	s := &spawnerSystem{Timer: 0}
	ctx := testContext(w)
	ctx.Dt = 0
	s.Run(ctx)

	if w.Entities.Alive(old) {
		t.Error("out-of-bounds pipe survived the pass")
	}
	if w.Pipes.Has(old) || w.Positions.Has(old) || w.Sprites.Has(old) {
		t.Error("removed pipe left components behind")
	}
	if w.Pipes.Len() != 2 {
		t.Errorf("pipes after pass = %d, want the fresh pair only", w.Pipes.Len())
	}
}

func TestCollisionPipeEdgesInclusive(t *testing.T) {
	// The bird center is tested against pipe rects expanded by the bird
	// half extents, 19 horizontally and 12 vertically.
	tests := []struct {
		name     string
		pipeX    float64
		pipeY    float64
		collides bool
	}{
		{"well clear", 200, 0, false},
		{"exactly on expanded left edge", PipeWidth/2 + BirdWidth/2, 0, true},
		{"just outside expanded left edge", PipeWidth/2 + BirdWidth/2 + 0.001, 0, false},
		{"exactly on expanded bottom edge", 0, PipeHeight/2 + BirdHeight/2, true},
		{"just outside expanded bottom edge", 0, PipeHeight/2 + BirdHeight/2 + 0.001, false},
		{"dead center", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			w.SpawnBird()
			w.SpawnPipe(tt.pipeX, tt.pipeY, false)

			ctx := testContext(w)
			collisionSystem{}.Run(ctx)

			got := ctx.Signals.Len() > 0
			if got != tt.collides {
				t.Errorf("pipe at (%v, %v): collision = %v, want %v", tt.pipeX, tt.pipeY, got, tt.collides)
			}
		})
	}
}

func TestCollisionGround(t *testing.T) {
	tests := []struct {
		name     string
		birdY    float64
		groundX  float64
		collides bool
	}{
		{"airborne", 0, LoopOffset, false},
		{"exactly on expanded ground top", -120, LoopOffset, true},
		{"just above expanded ground top", -119.999, LoopOffset, false},
		{"inside the ground band", -140, 100, true},
		{"ground at loop start still covers the bird", -140, LoopOffset, true},
		{"ground at loop end still covers the bird", -140, LoopOffset - LoopPeriod, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			bird := w.SpawnBird()
			ground := w.SpawnGround()

			pos, _ := w.Positions.Get(bird)
			pos.Y = tt.birdY
			w.Positions.Set(bird, pos)
			gpos, _ := w.Positions.Get(ground)
			gpos.X = tt.groundX
			w.Positions.Set(ground, gpos)

			ctx := testContext(w)
			collisionSystem{}.Run(ctx)

			got := ctx.Signals.Len() > 0
			if got != tt.collides {
				t.Errorf("bird y=%v ground x=%v: collision = %v, want %v", tt.birdY, tt.groundX, got, tt.collides)
			}
		})
	}
}

func TestCollisionBelowPlayfield(t *testing.T) {
	w := NewWorld()
	bird := w.SpawnBird()
	pos, _ := w.Positions.Get(bird)
	pos.Y = -VirtualHeight/2 - BirdHeight/2 - 1
	w.Positions.Set(bird, pos)

	ctx := testContext(w)
	collisionSystem{}.Run(ctx)

	if ctx.Signals.Len() != 1 {
		t.Errorf("signals = %d, want 1", ctx.Signals.Len())
	}
}

func TestCollisionEmitsPerRectangle(t *testing.T) {
	w := NewWorld()
	bird := w.SpawnBird()
	pos, _ := w.Positions.Get(bird)
	pos.Y = -125
	w.Positions.Set(bird, pos)
	w.SpawnGround()
	w.SpawnPipe(0, 0, false)

	audio := &recordingPlayer{}
	ctx := testContext(w)
	ctx.Audio = audio
	collisionSystem{}.Run(ctx)

	// One signal for the pipe, one for the ground; plus the crash sounds for
	// each.
	if ctx.Signals.Len() != 2 {
		t.Errorf("signals = %d, want 2", ctx.Signals.Len())
	}
	if got := audio.count(core.SoundHurt); got != 2 {
		t.Errorf("hurt sounds = %d, want 2", got)
	}
	if got := audio.count(core.SoundExplosion); got != 2 {
		t.Errorf("explosion sounds = %d, want 2", got)
	}
	for _, c := range audio.calls {
		if c.volume != 0.25 {
			t.Errorf("crash sound volume = %v, want 0.25", c.volume)
		}
	}
}

func TestScoreOncePerPair(t *testing.T) {
	w := NewWorld()
	birdEnt := w.SpawnBird()
	display := w.SpawnText(0, ScoreTextY, "0", core.ColorWhite)

	// A pair that has fully passed the bird.
	offset := 10.0
	bottom := w.SpawnPipe(-PipeWidth/2-1, -VirtualHeight/2+offset-55, false)
	top := w.SpawnPipe(-PipeWidth/2-1, VirtualHeight/2+offset+55, true)

	audio := &recordingPlayer{}
	ctx := testContext(w)
	ctx.Audio = audio

	s := &scoreSystem{Display: display}
	s.Run(ctx)

	bird, _ := w.Birds.Get(birdEnt)
	if bird.Score != 1 {
		t.Fatalf("score = %d, want 1", bird.Score)
	}
	bp, _ := w.Pipes.Get(bottom)
	if !bp.Scored {
		t.Error("lower member not marked scored")
	}
	tp, _ := w.Pipes.Get(top)
	if tp.Scored {
		t.Error("upper member must never score")
	}
	if txt, _ := w.Texts.Get(display); txt.Value != "1" {
		t.Errorf("score display = %q, want \"1\"", txt.Value)
	}
	if got := audio.count(core.SoundScore); got != 1 {
		t.Errorf("score sounds = %d, want 1", got)
	}

	// Running again must not double count.
	s.Run(ctx)
	bird, _ = w.Birds.Get(birdEnt)
	if bird.Score != 1 {
		t.Errorf("score after second pass = %d, want 1", bird.Score)
	}
}

func TestScoreTrailingEdgeBoundary(t *testing.T) {
	tests := []struct {
		name   string
		pipeX  float64
		scores bool
	}{
		{"trailing edge at the bird", -PipeWidth / 2, false},
		{"trailing edge past the bird", -PipeWidth/2 - 0.001, true},
		{"still overlapping the bird", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			birdEnt := w.SpawnBird()
			display := w.SpawnText(0, ScoreTextY, "0", core.ColorWhite)
			w.SpawnPipe(tt.pipeX, -VirtualHeight/2-55, false)

			s := &scoreSystem{Display: display}
			s.Run(testContext(w))

			bird, _ := w.Birds.Get(birdEnt)
			if got := bird.Score == 1; got != tt.scores {
				t.Errorf("pipe x=%v: scored = %v, want %v", tt.pipeX, got, tt.scores)
			}
		})
	}
}

func TestScoreCenterlineBoundary(t *testing.T) {
	tests := []struct {
		name   string
		pipeY  float64
		scores bool
	}{
		{"top edge exactly on the centerline", -PipeHeight / 2, false},
		{"top edge below the centerline", -PipeHeight/2 - 0.001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			birdEnt := w.SpawnBird()
			display := w.SpawnText(0, ScoreTextY, "0", core.ColorWhite)
			w.SpawnPipe(-PipeWidth-10, tt.pipeY, false)

			s := &scoreSystem{Display: display}
			s.Run(testContext(w))

			bird, _ := w.Birds.Get(birdEnt)
			if got := bird.Score == 1; got != tt.scores {
				t.Errorf("pipe y=%v: scored = %v, want %v", tt.pipeY, got, tt.scores)
			}
		})
	}
}

func TestScoreCountsEachPair(t *testing.T) {
	w := NewWorld()
	birdEnt := w.SpawnBird()
	display := w.SpawnText(0, ScoreTextY, "0", core.ColorWhite)

	for i := 0; i < 3; i++ {
		x := -PipeWidth - float64(i)*200
		w.SpawnPipe(x, -VirtualHeight/2-55, false)
		w.SpawnPipe(x, VirtualHeight/2+55, true)
	}

	s := &scoreSystem{Display: display}
	s.Run(testContext(w))

	bird, _ := w.Birds.Get(birdEnt)
	if bird.Score != 3 {
		t.Errorf("score = %d, want 3", bird.Score)
	}
	if txt, _ := w.Texts.Get(display); txt.Value != "3" {
		t.Errorf("score display = %q, want \"3\"", txt.Value)
	}
}

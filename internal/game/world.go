package game

import (
	"github.com/Bastczuak/flippy/internal/core"
	"github.com/Bastczuak/flippy/internal/engine"
)

// World is the entity store for one simulation: an allocator plus one typed
// component table per component kind. A component is absent from its table
// rather than nil-valued. The world is owned by the single simulation
// goroutine and is not safe for concurrent use.
type World struct {
	Entities *engine.Allocator

	Positions   *engine.Store[Position]
	Sprites     *engine.Store[Sprite]
	Backgrounds *engine.Store[Background]
	Birds       *engine.Store[Bird]
	Pipes       *engine.Store[Pipe]
	Texts       *engine.Store[Text]
	Hidden      *engine.Store[Hidden]

	tables []engine.Table
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := &World{
		Entities:    engine.NewAllocator(),
		Positions:   engine.NewStore[Position](),
		Sprites:     engine.NewStore[Sprite](),
		Backgrounds: engine.NewStore[Background](),
		Birds:       engine.NewStore[Bird](),
		Pipes:       engine.NewStore[Pipe](),
		Texts:       engine.NewStore[Text](),
		Hidden:      engine.NewStore[Hidden](),
	}
	w.tables = []engine.Table{
		w.Positions, w.Sprites, w.Backgrounds, w.Birds, w.Pipes, w.Texts, w.Hidden,
	}
	return w
}

// Despawn removes e from every component table and frees it. Takes effect
// immediately; later systems in the same frame never see the entity again.
// Panics if e is not alive.
func (w *World) Despawn(e engine.Entity) {
	for _, t := range w.tables {
		t.Remove(e)
	}
	w.Entities.Destroy(e)
}

// SpawnBackdrop creates the far background layer at the loop start.
func (w *World) SpawnBackdrop() engine.Entity {
	e := w.Entities.Create()
	w.Positions.Set(e, Position{X: LoopOffset, Y: 0, Z: LayerBackdrop})
	w.Sprites.Set(e, Sprite{ID: SpriteBackdrop})
	w.Backgrounds.Set(e, Background{Kind: KindBackdrop})
	return e
}

// SpawnGround creates the scrolling ground strip at the loop start.
func (w *World) SpawnGround() engine.Entity {
	e := w.Entities.Create()
	w.Positions.Set(e, Position{X: LoopOffset, Y: GroundY, Z: LayerGround})
	w.Sprites.Set(e, Sprite{ID: SpriteGround})
	w.Backgrounds.Set(e, Background{Kind: KindGround})
	return e
}

// SpawnBird creates the player at the world origin with zero velocity.
func (w *World) SpawnBird() engine.Entity {
	e := w.Entities.Create()
	w.Positions.Set(e, Position{X: 0, Y: 0, Z: LayerBird})
	w.Sprites.Set(e, Sprite{ID: SpriteBird})
	w.Birds.Set(e, Bird{})
	return e
}

// SpawnPipe creates one obstacle centered at (x, y). The upper member of a
// pair is flipped so its opening faces the gap.
func (w *World) SpawnPipe(x, y float64, flipped bool) engine.Entity {
	e := w.Entities.Create()
	w.Positions.Set(e, Position{X: x, Y: y, Z: LayerPipe})
	w.Sprites.Set(e, Sprite{ID: SpritePipe, Flipped: flipped})
	w.Pipes.Set(e, Pipe{})
	return e
}

// SpawnText creates a UI text entity centered at (x, y).
func (w *World) SpawnText(x, y float64, value string, color core.Color) engine.Entity {
	e := w.Entities.Create()
	w.Positions.Set(e, Position{X: x, Y: y, Z: LayerBird + 1})
	w.Texts.Set(e, Text{Value: value, Color: color})
	return e
}

// SetHidden adds or removes the Hidden tag.
func (w *World) SetHidden(e engine.Entity, hidden bool) {
	if hidden {
		w.Hidden.Set(e, Hidden{})
	} else {
		w.Hidden.Remove(e)
	}
}

// SetText replaces the string of a text entity and returns the previous
// value. Missing entities yield "0" so callers can treat the score display
// as always present.
func (w *World) SetText(e engine.Entity, value string) string {
	t, ok := w.Texts.Get(e)
	if !ok {
		return "0"
	}
	prev := t.Value
	t.Value = value
	w.Texts.Set(e, t)
	return prev
}

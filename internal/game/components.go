package game

import "github.com/Bastczuak/flippy/internal/core"

// BackgroundKind distinguishes the two looping background layers.
type BackgroundKind uint8

const (
	KindBackdrop BackgroundKind = iota
	KindGround
)

// Position is the world transform: center coordinates plus a z layer.
// Rendering sorts by Z, then by entity id, so layering is stable.
type Position struct {
	X, Y float64
	Z    int
}

// SpriteID selects one of the procedural sprites.
type SpriteID uint8

const (
	SpriteBackdrop SpriteID = iota
	SpriteGround
	SpritePipe
	SpriteBird
)

// Sprite attaches drawable art to an entity. Flipped mirrors the sprite
// vertically, used for the upper member of a pipe pair.
type Sprite struct {
	ID      SpriteID
	Flipped bool
}

// Background marks a looping layer. ScrollPos stays within [0, LoopPeriod);
// the movement system owns it exclusively and derives the entity x from it.
type Background struct {
	Kind      BackgroundKind
	ScrollPos float64
}

// Bird is the player. Dy is the vertical velocity, FlyHeld records whether
// the jump key was down on the previous tick so flaps are edge-triggered.
type Bird struct {
	Dy      float64
	Score   int
	FlyHeld bool
}

// Pipe marks an obstacle. Scored flips to true once the score tracker has
// counted the pair this pipe belongs to.
type Pipe struct {
	Scored bool
}

// Text is a UI string anchored at the entity position (centered).
type Text struct {
	Value string
	Color core.Color
}

// Hidden is a tag component: entities carrying it are skipped by rendering.
type Hidden struct{}

package game

import (
	"math"

	"github.com/Bastczuak/flippy/internal/core"
)

// Procedural sprite art. Each drawer fills the cells its world rectangle
// covers, sampling a pattern at the cell's world center so the art scales
// with the terminal.

const (
	// pipeCapDepth is the height of the lip facing the gap, in world px.
	pipeCapDepth = 16.0
	// groundLipDepth is the grass band on top of the ground strip.
	groundLipDepth = 4.0
	// hillSeamPeriod divides LoopPeriod evenly, so looping patterns built
	// on it never show a seam when the scroll position wraps.
	hillSeamPeriod = 59.0
)

// cloudAnchors place the backdrop clouds in loop-local coordinates.
var cloudAnchors = []struct {
	u, y, halfW float64
}{
	{u: 60, y: 96, halfW: 34},
	{u: 180, y: 64, halfW: 26},
	{u: 305, y: 110, halfW: 40},
}

var birdArt = [2]string{
	" .--.",
	"(..o>",
}

// wrapLoop maps x into [0, LoopPeriod).
func wrapLoop(x float64) float64 {
	u := math.Mod(x, LoopPeriod)
	if u < 0 {
		u += LoopPeriod
	}
	return u
}

func drawBackdrop(dst *core.Screen, v viewport, pos Position) {
	r := core.RectAround(pos.X, pos.Y, GroundWidth, VirtualHeight)
	v.eachCellIn(r, func(cx, cy int, wx, wy float64) {
		u := wrapLoop(wx - r.X)

		for _, c := range cloudAnchors {
			d := math.Mod(u-c.u+LoopPeriod*1.5, LoopPeriod) - LoopPeriod/2
			if math.Abs(d) <= c.halfW && math.Abs(wy-c.y) <= 9 {
				dst.SetCell(cx, cy, '░', core.ColorWhite)
				return
			}
		}

		// Distant hills, a triangle wave above the ground line.
		t := math.Mod(u, hillSeamPeriod) / hillSeamPeriod
		top := -130 + 42*(1-math.Abs(2*t-1))
		if wy <= top && wy > -132 {
			dst.SetCell(cx, cy, '░', core.ColorLeaf)
		}
	})
}

func drawGround(dst *core.Screen, v viewport, pos Position) {
	r := core.RectAround(pos.X, pos.Y, GroundWidth, GroundHeight)
	v.eachCellIn(r, func(cx, cy int, wx, wy float64) {
		switch {
		case wy > r.Top()-groundLipDepth:
			dst.SetCell(cx, cy, '▓', core.ColorLeaf)
		case math.Mod(wx-r.X, hillSeamPeriod) < 7:
			dst.SetCell(cx, cy, '▓', core.ColorSoil)
		default:
			dst.SetCell(cx, cy, '█', core.ColorSoil)
		}
	})
}

func drawPipe(dst *core.Screen, v viewport, pos Position, flipped bool) {
	r := core.RectAround(pos.X, pos.Y, PipeWidth, PipeHeight)
	v.eachCellIn(r, func(cx, cy int, wx, wy float64) {
		inCap := wy >= r.Top()-pipeCapDepth
		if flipped {
			inCap = wy <= r.Y+pipeCapDepth
		}
		switch {
		case inCap:
			dst.SetCell(cx, cy, '█', core.ColorBrightGreen)
		case wx < r.X+8:
			dst.SetCell(cx, cy, '▓', core.ColorLeaf)
		default:
			dst.SetCell(cx, cy, '█', core.ColorLeaf)
		}
	})
}

func drawBird(dst *core.Screen, v viewport, pos Position) {
	r := core.RectAround(pos.X, pos.Y, BirdWidth, BirdHeight)
	v.eachCellIn(r, func(cx, cy int, wx, wy float64) {
		col := core.Clamp(int((wx-r.X)/r.W*float64(len(birdArt[0]))), 0, len(birdArt[0])-1)
		row := core.Clamp(int((r.Top()-wy)/r.H*float64(len(birdArt))), 0, len(birdArt)-1)
		if ch := birdArt[row][col]; ch != ' ' {
			dst.SetCell(cx, cy, rune(ch), core.ColorGold)
		}
	})
}

package game

import (
	"math"
	"sort"

	"github.com/Bastczuak/flippy/internal/core"
	"github.com/Bastczuak/flippy/internal/engine"
)

// viewport maps the virtual 512x288 playfield onto a terminal cell buffer.
// It is recomputed on every render from the destination size, so a terminal
// resize rescales the view without touching the simulation.
type viewport struct {
	cols, rows int
}

func newViewport(dst *core.Screen) viewport {
	return viewport{cols: dst.Width(), rows: dst.Height()}
}

// cell returns the cell containing the world point. Results may lie outside
// the buffer; callers clip.
func (v viewport) cell(wx, wy float64) (int, int) {
	cx := int(math.Floor((wx + VirtualWidth/2) * float64(v.cols) / VirtualWidth))
	cy := int(math.Floor((VirtualHeight/2 - wy) * float64(v.rows) / VirtualHeight))
	return cx, cy
}

// center returns the world coordinates of a cell's center, the sample point
// for procedural sprite art.
func (v viewport) center(cx, cy int) (float64, float64) {
	wx := (float64(cx)+0.5)*VirtualWidth/float64(v.cols) - VirtualWidth/2
	wy := VirtualHeight/2 - (float64(cy)+0.5)*VirtualHeight/float64(v.rows)
	return wx, wy
}

// eachCellIn visits every buffer cell whose center lies inside r.
func (v viewport) eachCellIn(r core.Rect, fn func(cx, cy int, wx, wy float64)) {
	x0, y0 := v.cell(r.X, r.Top())
	x1, y1 := v.cell(r.Right(), r.Y)
	x0, y0 = core.Max(x0, 0), core.Max(y0, 0)
	x1, y1 = core.Min(x1, v.cols-1), core.Min(y1, v.rows-1)
	if x0 > x1 || y0 > y1 {
		return
	}

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx, wy := v.center(cx, cy)
			if r.ContainsPoint(wx, wy) {
				fn(cx, cy, wx, wy)
			}
		}
	}
}

// Render draws the world into dst: sprites sorted by layer then entity id,
// visible text entities on top.
func (g *Game) Render(dst *core.Screen) {
	v := newViewport(dst)
	w := g.world

	type drawable struct {
		e engine.Entity
		z int
	}
	sprites := make([]drawable, 0, w.Sprites.Len())
	for _, e := range w.Sprites.Entities() {
		if w.Hidden.Has(e) {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		sprites = append(sprites, drawable{e: e, z: pos.Z})
	}
	sort.Slice(sprites, func(i, j int) bool {
		if sprites[i].z != sprites[j].z {
			return sprites[i].z < sprites[j].z
		}
		return sprites[i].e < sprites[j].e
	})

	for _, d := range sprites {
		sp, _ := w.Sprites.Get(d.e)
		pos, _ := w.Positions.Get(d.e)
		switch sp.ID {
		case SpriteBackdrop:
			drawBackdrop(dst, v, pos)
		case SpriteGround:
			drawGround(dst, v, pos)
		case SpritePipe:
			drawPipe(dst, v, pos, sp.Flipped)
		case SpriteBird:
			drawBird(dst, v, pos)
		}
	}

	for _, e := range w.Texts.Entities() {
		if w.Hidden.Has(e) {
			continue
		}
		t, _ := w.Texts.Get(e)
		if t.Value == "" {
			continue
		}
		pos, _ := w.Positions.Get(e)
		cx, cy := v.cell(pos.X, pos.Y)
		dst.DrawTextCentered(cx, cy, t.Value, t.Color)
	}
}

package pipegrid

import "github.com/katalvlaran/pipeloop/tile"

// Grid returns the underlying grid.
func (v View) Grid() *Grid { return v.grid }

// StartShape returns the shape drawn on the start tile.
func (v View) StartShape() tile.Shape { return v.startShape }

// ShapeAt returns the shape at p, with the override applied on the start tile.
// p must be in bounds.
func (v View) ShapeAt(p tile.Position) tile.Shape {
	if p == v.grid.start {
		return v.startShape
	}
	return v.grid.ShapeAt(p)
}

// Tile returns the tile at p as seen through the view. The start tile keeps
// IsStart set while carrying the override shape.
func (v View) Tile(p tile.Position) tile.Tile {
	t := v.grid.Tile(p)
	if t.IsStart {
		return t.WithShape(v.startShape)
	}
	return t
}

// Neighbors returns the in-bounds orthogonal neighbors of p in N, E, S, W
// order. Positions beyond the edge are skipped.
func (v View) Neighbors(p tile.Position) []tile.Tile {
	out := make([]tile.Tile, 0, 4)
	for _, d := range tile.Directions {
		q := p.Step(d)
		if !v.grid.InBounds(q) {
			continue
		}
		out = append(out, v.Tile(q))
	}
	return out
}

// Connected returns the neighbors of p that are mutually connected to it.
func (v View) Connected(p tile.Position) []tile.Position {
	self := v.Tile(p)
	out := make([]tile.Position, 0, 2)
	for _, nb := range v.Neighbors(p) {
		if self.IsConnected(nb) {
			out = append(out, nb.Position)
		}
	}
	return out
}

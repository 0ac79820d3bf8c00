package loop

import (
	"strings"

	"github.com/katalvlaran/pipeloop/tile"
)

// crosses reports whether p is a loop tile reaching north, i.e. one that a
// leftward horizontal ray crosses.
func (l *Loop) crosses(p tile.Position) bool {
	return l.Contains(p) && l.view.ShapeAt(p).Ports().Has(tile.North)
}

// Crossings counts loop tiles with a north port strictly left of p in its row.
// Complexity: O(W).
func (l *Loop) Crossings(p tile.Position) int {
	n := 0
	for c := 0; c < p.Col; c++ {
		if l.crosses(tile.Position{Row: p.Row, Col: c}) {
			n++
		}
	}
	return n
}

// Inside reports whether p is enclosed by the loop. Loop tiles and positions
// outside the grid are never inside.
func (l *Loop) Inside(p tile.Position) bool {
	if !l.view.Grid().InBounds(p) || l.Contains(p) {
		return false
	}
	return l.Crossings(p)%2 == 1
}

// scan walks the grid row by row keeping a running crossing count and calls
// fn for every position with its loop membership and parity.
func (l *Loop) scan(fn func(p tile.Position, onLoop, inside bool)) {
	g := l.view.Grid()
	for r := 0; r < g.Height(); r++ {
		odd := false
		for c := 0; c < g.Width(); c++ {
			p := tile.Position{Row: r, Col: c}
			if l.Contains(p) {
				fn(p, true, false)
				if l.crosses(p) {
					odd = !odd
				}
				continue
			}
			fn(p, false, odd)
		}
	}
}

// Interior returns the enclosed positions in row-major order.
// Complexity: O(W×H).
func (l *Loop) Interior() []tile.Position {
	var out []tile.Position
	l.scan(func(p tile.Position, _, inside bool) {
		if inside {
			out = append(out, p)
		}
	})
	return out
}

// EnclosedArea returns the number of tiles enclosed by the loop.
func (l *Loop) EnclosedArea() int {
	n := 0
	l.scan(func(_ tile.Position, _, inside bool) {
		if inside {
			n++
		}
	})
	return n
}

// Render draws the classified grid: loop tiles keep their glyph (the start
// tile shows its resolved shape), enclosed tiles are 'I' and the rest 'O'.
func (l *Loop) Render() string {
	g := l.view.Grid()
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	l.scan(func(p tile.Position, onLoop, inside bool) {
		switch {
		case onLoop:
			b.WriteRune(l.view.ShapeAt(p).Rune())
		case inside:
			b.WriteByte('I')
		default:
			b.WriteByte('O')
		}
		if p.Col == g.Width()-1 {
			b.WriteByte('\n')
		}
	})
	return b.String()
}

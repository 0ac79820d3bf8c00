package pipegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pipeloop/tile"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of shapes.
// The input is copied. Exactly one cell must hold tile.Start.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]tile.Shape) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{
		width:  w,
		height: h,
		shapes: make([]tile.Shape, 0, w*h),
	}
	starts := 0
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, s := range row {
			if !s.Valid() {
				return nil, fmt.Errorf("%w: shape %d at %s", ErrUnknownSymbol, s, tile.Position{Row: r, Col: c})
			}
			if s == tile.Start {
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: found %s and %s", ErrMultipleStarts, g.start, tile.Position{Row: r, Col: c})
				}
				g.start = tile.Position{Row: r, Col: c}
			}
		}
		g.shapes = append(g.shapes, row...)
	}
	if starts == 0 {
		return nil, ErrNoStart
	}

	return g, nil
}

// FromLines parses one grid row per string.
func FromLines(lines []string) (*Grid, error) {
	rows := make([][]tile.Shape, len(lines))
	for r, line := range lines {
		row := make([]tile.Shape, 0, len(line))
		c := 0
		for _, ch := range line {
			s, err := tile.ParseShape(ch)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownSymbol, ch, tile.Position{Row: r, Col: c})
			}
			row = append(row, s)
			c++
		}
		rows[r] = row
	}
	return NewGrid(rows)
}

// Parse reads a grid from text, one row per line. Carriage returns and
// trailing blank lines are ignored.
func Parse(text string) (*Grid, error) {
	return Read(strings.NewReader(text))
}

// Read is Parse over an io.Reader.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipegrid: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return FromLines(lines)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the position of the start tile.
func (g *Grid) Start() tile.Position { return g.start }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p tile.Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// ShapeAt returns the parsed shape at p (tile.Start on the start tile).
// p must be in bounds.
func (g *Grid) ShapeAt(p tile.Position) tile.Shape {
	return g.shapes[g.index(p)]
}

// Tile returns the tile at p as parsed. p must be in bounds.
func (g *Grid) Tile(p tile.Position) tile.Tile {
	return tile.New(p, g.ShapeAt(p))
}

// Positions returns every position in row-major order.
func (g *Grid) Positions() []tile.Position {
	out := make([]tile.Position, 0, len(g.shapes))
	for i := range g.shapes {
		out = append(out, g.Coordinate(i))
	}
	return out
}

// String renders the grid back to its text form.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for i, s := range g.shapes {
		b.WriteRune(s.Rune())
		if (i+1)%g.width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WithStartShape returns a view of g with shape drawn on the start tile.
// g itself is left untouched.
func (g *Grid) WithStartShape(shape tile.Shape) View {
	return View{grid: g, startShape: shape}
}

// index maps p to a row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) index(p tile.Position) int {
	return p.Row*g.width + p.Col
}

// Coordinate converts a row-major index back to a position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) tile.Position {
	return tile.Position{Row: idx / g.width, Col: idx % g.width}
}

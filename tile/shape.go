package tile

import "fmt"

// Shape is the pipe drawn on a tile.
type Shape uint8

const (
	// Ground has no pipe and never connects.
	Ground Shape = iota
	// Vertical connects north and south: '|'.
	Vertical
	// Horizontal connects east and west: '-'.
	Horizontal
	// NorthEast bends between north and east: 'L'.
	NorthEast
	// NorthWest bends between north and west: 'J'.
	NorthWest
	// SouthWest bends between south and west: '7'.
	SouthWest
	// SouthEast bends between south and east: 'F'.
	SouthEast
	// Start marks the tile whose real shape is unknown: 'S'.
	Start
)

// shapeTable is indexed by Shape.
var shapeTable = [...]struct {
	glyph rune
	ports Ports
}{
	Ground:     {'.', 0},
	Vertical:   {'|', PortsOf(North, South)},
	Horizontal: {'-', PortsOf(East, West)},
	NorthEast:  {'L', PortsOf(North, East)},
	NorthWest:  {'J', PortsOf(North, West)},
	SouthWest:  {'7', PortsOf(South, West)},
	SouthEast:  {'F', PortsOf(South, East)},
	Start:      {'S', 0},
}

// pipeShapes is the canonical order in which start candidates are tried.
var pipeShapes = [6]Shape{Vertical, Horizontal, SouthEast, SouthWest, NorthWest, NorthEast}

// PipeShapes returns the six real pipe shapes a start tile may stand for,
// in the order | - F 7 J L.
func PipeShapes() []Shape {
	out := make([]Shape, len(pipeShapes))
	copy(out, pipeShapes[:])
	return out
}

// ParseShape maps a glyph to its Shape.
func ParseShape(r rune) (Shape, error) {
	for s, entry := range shapeTable {
		if entry.glyph == r {
			return Shape(s), nil
		}
	}
	return Ground, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
}

// Valid reports whether s is one of the declared shapes.
func (s Shape) Valid() bool {
	return int(s) < len(shapeTable)
}

// IsPipe reports whether s is one of the six real pipe shapes.
func (s Shape) IsPipe() bool {
	return s != Ground && s != Start && s.Valid()
}

// Ports returns the directions s connects. Ground and Start connect nothing.
func (s Shape) Ports() Ports {
	if !s.Valid() {
		return 0
	}
	return shapeTable[s].ports
}

// Rune returns the glyph of s, or '?' for an undeclared value.
func (s Shape) Rune() rune {
	if !s.Valid() {
		return '?'
	}
	return shapeTable[s].glyph
}

func (s Shape) String() string {
	return string(s.Rune())
}

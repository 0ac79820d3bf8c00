package tile

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol indicates a glyph that is not part of the pipe alphabet.
var ErrUnknownSymbol = errors.New("tile: unknown symbol")

// Direction is one of the four orthogonal compass directions.
type Direction uint8

const (
	// North points to the previous row.
	North Direction = iota
	// East points to the next column.
	East
	// South points to the next row.
	South
	// West points to the previous column.
	West
)

// Directions lists the four directions in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

var directionNames = [4]string{"north", "east", "south", "west"}

// offsets[d] holds the (row, col) delta of one step towards d.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset returns the row and column delta of a single step towards d.
func (d Direction) Offset() (dRow, dCol int) {
	return offsets[d][0], offsets[d][1]
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// Ports is a set of directions a shape opens towards.
type Ports uint8

// PortsOf builds a Ports set from the given directions.
func PortsOf(dirs ...Direction) Ports {
	var p Ports
	for _, d := range dirs {
		p |= 1 << d
	}
	return p
}

// Has reports whether d is in the set.
func (p Ports) Has(d Direction) bool {
	return p&(1<<d) != 0
}

// Len returns the number of directions in the set.
func (p Ports) Len() int {
	n := 0
	for _, d := range Directions {
		if p.Has(d) {
			n++
		}
	}
	return n
}

// Position is a (row, column) coordinate inside a grid.
type Position struct {
	Row, Col int
}

// Step returns the position one step away towards d. The result may lie
// outside any grid; bounds are the grid's concern.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// DirectionTo reports the direction from p to other when the two positions
// differ by exactly one step along exactly one axis.
func (p Position) DirectionTo(other Position) (Direction, bool) {
	for _, d := range Directions {
		if p.Step(d) == other {
			return d, true
		}
	}
	return 0, false
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

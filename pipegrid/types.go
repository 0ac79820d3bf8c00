package pipegrid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/tile"
)

// ErrMalformedGrid is the umbrella for every input validation failure.
var ErrMalformedGrid = errors.New("pipegrid: malformed grid")

// Sentinel errors for grid construction. Each wraps ErrMalformedGrid.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrUnknownSymbol indicates a glyph outside the pipe alphabet.
	ErrUnknownSymbol = fmt.Errorf("%w: %w", ErrMalformedGrid, tile.ErrUnknownSymbol)
	// ErrNoStart indicates the grid has no start tile.
	ErrNoStart = fmt.Errorf("%w: no start tile", ErrMalformedGrid)
	// ErrMultipleStarts indicates more than one start tile.
	ErrMultipleStarts = fmt.Errorf("%w: more than one start tile", ErrMalformedGrid)
)

// Grid is a rectangular pipe maze. Width and Height define dimensions;
// shapes[row*width+col] holds the parsed shape, with tile.Start at the start.
type Grid struct {
	width, height int
	shapes        []tile.Shape
	start         tile.Position
}

// View is a Grid seen with a concrete shape drawn on its start tile.
// The zero View is not usable; obtain one from Grid.WithStartShape.
type View struct {
	grid       *Grid
	startShape tile.Shape
}

// Package pipegrid owns the dense rectangular grid of a pipe maze.
//
// What:
//
//   - Grid stores one tile.Shape per cell in row-major order together with the
//     position of the single start tile. It is immutable once built.
//   - Parse, Read and FromLines turn text (one line per row) into a Grid;
//     NewGrid accepts shapes directly.
//   - View overlays a concrete shape on the start tile without touching the
//     Grid, so candidate shapes can be tried side by side.
//
// Why:
//
//   - Start-shape resolution tries several shapes on the same grid; each
//     trial reads through its own View and the Grid is never written.
//   - Bounds checks live here, so an out-of-range neighbor is simply absent.
//
// Complexity:
//
//   - Construction: O(W×H) time and memory.
//   - ShapeAt, Tile, InBounds: O(1). Neighbors, Connected: O(1), at most four.
//
// Errors (all wrap ErrMalformedGrid):
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownSymbol: a glyph outside the pipe alphabet.
//   - ErrNoStart / ErrMultipleStarts: start tile count is not exactly one.
package pipegrid

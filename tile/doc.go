// Package tile models a single cell of a pipe maze: its coordinate, its pipe
// shape and whether it is the ambiguous start cell.
//
// What:
//
//   - Shape is a closed set of pipe glyphs: | - L J 7 F, ground (.) and the
//     start marker (S).
//   - Ports maps every Shape to the directions it opens towards.
//   - Tile.IsConnected reports whether two orthogonally adjacent tiles point at
//     each other. A port on one side only is not a connection.
//
// Why:
//
//   - Loop discovery walks only through mutually connected tiles, so a bend
//     that merely faces a neighbor never leaks into the loop.
//   - The interior classifier reads ray crossings straight from Ports.
//
// Complexity:
//
//   - All operations are O(1) and allocation-free.
//
// Errors:
//
//   - ErrUnknownSymbol: a glyph outside the shape set was parsed.
package tile

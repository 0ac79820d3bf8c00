// Package loop finds the closed pipe loop through the start tile of a
// pipegrid.Grid and classifies every other tile as inside or outside it.
//
// What
//
//   - Trace runs one breadth-first trial with a fixed shape on the start tile.
//     Every visited tile must have exactly two connected neighbors; a tile
//     with any other count ends the trial with ErrBrokenLoop.
//   - Find resolves the start tile by tracing every candidate shape
//     (| - F 7 J L by default) and keeping the longest surviving loop.
//     Trials run sequentially or, with WithParallel, on an errgroup.
//   - Loop exposes the traversal order, BFS depth per tile and a read-only
//     membership test. FarthestPoint is Len()/2.
//   - Crossings, Inside, Interior and EnclosedArea apply the even-odd rule:
//     a tile off the loop is inside when an odd number of loop tiles with a
//     north port (| L J) lie to its left in the same row.
//   - Solve, FarthestPoint and EnclosedArea are one-call facades.
//
// Why leftward north-port crossings
//
//	A horizontal ray that grazes a run of '-' never crosses the boundary, and
//	a bend pair such as L-7 crosses it once while L-J does not. Counting only
//	tiles that reach north gives exactly that, because the loop is simple.
//
// Determinism
//
//	Candidate results are reduced in candidate order, so sequential and
//	parallel resolution return the same loop. Ties in length keep the
//	earliest candidate.
//
// Complexity (N = W×H)
//
//   - Trace:        O(N) time, O(N) memory.
//   - Find:         O(c·N) for c candidates (at most six).
//   - EnclosedArea: O(N) using one running count per row.
//   - Crossings:    O(W) for a single tile.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per dequeued tile.
//   - WithLogger(l):          *slog.Logger for per-candidate debug records.
//   - WithParallel(b):        trace candidates concurrently.
//   - WithCandidates(s...):   restrict or reorder the start candidates.
//   - WithOnVisit(fn):        hook per visited tile; an error aborts.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  for an invalid option or a non-pipe trial shape.
//   - ErrBrokenLoop       from Trace when the two-neighbor rule fails.
//   - ErrNoLoop           from Find when no candidate closes a loop.
//   - Context errors and wrapped OnVisit errors are returned as is.
package loop

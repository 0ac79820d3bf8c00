package loop

import (
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// Len returns the number of tiles on the loop. It is always even.
func (l *Loop) Len() int { return len(l.order) }

// Order returns the loop tiles in traversal order, starting at the start tile.
func (l *Loop) Order() []tile.Position {
	return append([]tile.Position(nil), l.order...)
}

// Contains reports whether p lies on the loop.
func (l *Loop) Contains(p tile.Position) bool {
	_, ok := l.depth[p]
	return ok
}

// Depth returns the number of steps from the start tile to p along the loop.
func (l *Loop) Depth(p tile.Position) (int, bool) {
	d, ok := l.depth[p]
	return d, ok
}

// Start returns the position of the start tile.
func (l *Loop) Start() tile.Position { return l.view.Grid().Start() }

// StartShape returns the shape the start tile was resolved to.
func (l *Loop) StartShape() tile.Shape { return l.view.StartShape() }

// View returns the grid as seen with the resolved start tile.
func (l *Loop) View() pipegrid.View { return l.view }

// FarthestPoint returns the step count from the start to the farthest loop
// tile, which sits halfway around.
func (l *Loop) FarthestPoint() int { return l.Len() / 2 }

// FarthestPositions returns the loop tiles at the greatest BFS depth, in
// traversal order. A closed loop has exactly one.
func (l *Loop) FarthestPositions() []tile.Position {
	maxDepth := -1
	var out []tile.Position
	for _, p := range l.order {
		switch d := l.depth[p]; {
		case d > maxDepth:
			maxDepth = d
			out = append(out[:0], p)
		case d == maxDepth:
			out = append(out, p)
		}
	}
	return out
}

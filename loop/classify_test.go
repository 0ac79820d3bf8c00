package loop_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// TestEnclosedArea_Fixtures checks the known enclosed areas.
func TestEnclosedArea_Fixtures(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			g := mustParse(t, fx.text)

			area, err := loop.EnclosedArea(g)
			require.NoError(t, err)
			assert.Equal(t, fx.area, area)

			res, err := loop.Solve(g, loop.WithParallel(true))
			require.NoError(t, err)
			assert.Equal(t, fx.area, res.EnclosedArea)
			assert.Len(t, res.Loop.Interior(), fx.area)
		})
	}
}

// TestFarthestPoint_Facade checks the one-call farthest point query.
func TestFarthestPoint_Facade(t *testing.T) {
	for _, fx := range fixtures {
		if fx.farthest < 0 {
			continue
		}
		t.Run(fx.name, func(t *testing.T) {
			got, err := loop.FarthestPoint(mustParse(t, fx.text))
			require.NoError(t, err)
			assert.Equal(t, fx.farthest, got)
		})
	}
}

// TestFacades_PropagateErrors returns zero values with the cause.
func TestFacades_PropagateErrors(t *testing.T) {
	g := mustParse(t, noLoop)

	n, err := loop.FarthestPoint(g)
	assert.Zero(t, n)
	assert.True(t, errors.Is(err, loop.ErrNoLoop))

	n, err = loop.EnclosedArea(g)
	assert.Zero(t, n)
	assert.True(t, errors.Is(err, loop.ErrNoLoop))

	res, err := loop.Solve(nil)
	assert.Nil(t, res.Loop)
	assert.True(t, errors.Is(err, loop.ErrGridNil))
}

// TestClassification_CrossingParity checks that interior tiles are off the
// loop with an odd crossing count and every other off-loop tile is even.
func TestClassification_CrossingParity(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			g := mustParse(t, fx.text)
			l, err := loop.Find(g)
			require.NoError(t, err)

			interior := make(map[tile.Position]bool)
			for _, p := range l.Interior() {
				interior[p] = true
			}
			for _, p := range g.Positions() {
				if l.Contains(p) {
					assert.False(t, interior[p], "loop tile %s classified inside", p)
					assert.False(t, l.Inside(p))
					continue
				}
				odd := l.Crossings(p)%2 == 1
				assert.Equal(t, odd, interior[p], "%s crossings=%d", p, l.Crossings(p))
				assert.Equal(t, odd, l.Inside(p), "%s", p)
			}
		})
	}
}

// TestCrossings_CountsNorthPortsOnly ignores '-', 'F', '7' and stray pipes.
func TestCrossings_CountsNorthPortsOnly(t *testing.T) {
	// Row 5 of EnclosedGaps reads .|L-7.F-J|.
	l, err := loop.Find(mustParse(t, fixtures[4].text))
	require.NoError(t, err)

	assert.Equal(t, 0, l.Crossings(pos(5, 0)))
	assert.Equal(t, 2, l.Crossings(pos(5, 5)))  // | and L
	assert.Equal(t, 4, l.Crossings(pos(5, 10))) // | L J |
	assert.Equal(t, 1, l.Crossings(pos(6, 2)))
	assert.Equal(t, 3, l.Crossings(pos(6, 7)))

	// The stray '|' in column 0 is off the loop and does not count.
	stray, err := loop.Find(mustParse(t, "|S-7\n||.|\n|L-J"))
	require.NoError(t, err)
	require.False(t, stray.Contains(pos(1, 0)))
	assert.Equal(t, 0, stray.Crossings(pos(1, 1)))
	assert.Equal(t, 1, stray.Crossings(pos(1, 2)))
	assert.Equal(t, 1, stray.EnclosedArea())
}

// TestCrossings_UsesResolvedStart counts the start tile by its real shape.
func TestCrossings_UsesResolvedStart(t *testing.T) {
	// S resolves to '|' on the left edge of row 1.
	g := mustParse(t, "F-7\nS.|\nL-J")
	l, err := loop.Find(g)
	require.NoError(t, err)
	require.Equal(t, tile.Vertical, l.StartShape())
	assert.Equal(t, 1, l.Crossings(pos(1, 1)))
	assert.True(t, l.Inside(pos(1, 1)))
	assert.Equal(t, 1, l.EnclosedArea())
}

// TestInside_OutOfBounds never classifies positions beyond the grid.
func TestInside_OutOfBounds(t *testing.T) {
	l, err := loop.Find(mustParse(t, fixtures[0].text))
	require.NoError(t, err)
	for _, p := range []tile.Position{pos(-1, 1), pos(1, -1), pos(3, 1), pos(1, 3)} {
		assert.False(t, l.Inside(p), "%s", p)
	}
}

// TestRender draws loop glyphs, 'I' for enclosed and 'O' for open tiles.
func TestRender(t *testing.T) {
	l, err := loop.Find(mustParse(t, fixtures[4].text))
	require.NoError(t, err)

	want := `OOOOOOOOOOO
OF-------7O
O|F-----7|O
O||OOOOO||O
O||OOOOO||O
O|L-7OF-J|O
O|II|O|II|O
OL--JOL--JO
OOOOOOOOOOO
`
	assert.Equal(t, want, l.Render())
}

// TestRender_StrayPipesBecomeTiles replaces junk pipes by their class.
func TestRender_StrayPipesBecomeTiles(t *testing.T) {
	g, err := pipegrid.Parse("-S-7.\n.|.|.\n.L-JF")
	require.NoError(t, err)
	l, err := loop.Find(g)
	require.NoError(t, err)

	assert.Equal(t, "OF-7O\nO|I|O\nOL-JO\n", l.Render())
}

package loop_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// fixture is a puzzle grid with its known answers. A negative farthest means
// the value is only checked through the Len()/2 property.
type fixture struct {
	name       string
	text       string
	farthest   int
	area       int
	startShape tile.Shape
}

var fixtures = []fixture{
	{
		name:       "Square",
		text:       "S-7\n|.|\nL-J",
		farthest:   4,
		area:       1,
		startShape: tile.SouthEast,
	},
	{
		name:       "SquareStartBottomRight",
		text:       "F-7\n|.|\nL-S",
		farthest:   4,
		area:       1,
		startShape: tile.NorthWest,
	},
	{
		name: "SimpleBordered",
		text: `.....
.S-7.
.|.|.
.L-J.
.....`,
		farthest:   4,
		area:       1,
		startShape: tile.SouthEast,
	},
	{
		name: "Complex",
		text: `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`,
		farthest:   8,
		area:       1,
		startShape: tile.SouthEast,
	},
	{
		name: "EnclosedGaps",
		text: `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`,
		farthest:   -1,
		area:       4,
		startShape: tile.SouthEast,
	},
	{
		name: "SqueezeBetweenPipes",
		text: `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........`,
		farthest:   -1,
		area:       4,
		startShape: tile.SouthEast,
	},
	{
		name: "Larger",
		text: `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`,
		farthest:   -1,
		area:       8,
		startShape: tile.SouthEast,
	},
	{
		name: "StrayPipes",
		text: `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`,
		farthest:   -1,
		area:       10,
		startShape: tile.SouthWest,
	},
}

// twoLoops has a 4-tile loop north-west of the start (start as J) and a
// 6-tile loop south-east of it (start as F).
const twoLoops = `.....
.F7..
.LS-7
..L-J
.....`

// tiedLoops has two 4-tile loops touching at the start (as J or as F).
const tiedLoops = `F7..
LS7.
.LJ.
....`

// noLoop has a start whose every candidate shape dead-ends.
const noLoop = `S-.
|..
...`

func mustParse(t testing.TB, text string) *pipegrid.Grid {
	t.Helper()
	g, err := pipegrid.Parse(text)
	require.NoError(t, err)
	return g
}

// ring builds an n×n square loop with the start in the top-left corner.
func ring(n int) string {
	var b strings.Builder
	b.WriteString("S" + strings.Repeat("-", n-2) + "7\n")
	for i := 0; i < n-2; i++ {
		b.WriteString("|" + strings.Repeat(".", n-2) + "|\n")
	}
	b.WriteString("L" + strings.Repeat("-", n-2) + "J\n")
	return b.String()
}

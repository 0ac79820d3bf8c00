package loop

import "github.com/katalvlaran/pipeloop/pipegrid"

// Solve resolves the loop once and derives both answers from it.
func Solve(g *pipegrid.Grid, opts ...Option) (Result, error) {
	l, err := Find(g, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{
		FarthestPoint: l.FarthestPoint(),
		EnclosedArea:  l.EnclosedArea(),
		Loop:          l,
	}, nil
}

// FarthestPoint returns the number of steps from the start tile to the loop
// tile farthest from it.
func FarthestPoint(g *pipegrid.Grid, opts ...Option) (int, error) {
	l, err := Find(g, opts...)
	if err != nil {
		return 0, err
	}
	return l.FarthestPoint(), nil
}

// EnclosedArea returns the number of tiles enclosed by the loop.
func EnclosedArea(g *pipegrid.Grid, opts ...Option) (int, error) {
	l, err := Find(g, opts...)
	if err != nil {
		return 0, err
	}
	return l.EnclosedArea(), nil
}

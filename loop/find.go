package loop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// Find resolves the start tile and returns the loop through it.
// Each candidate shape is traced on its own view of g; trials ending in
// ErrBrokenLoop lose, the longest surviving loop wins and ties keep the
// earliest candidate. Returns ErrNoLoop when every candidate loses.
func Find(g *pipegrid.Grid, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	results := make([]*Loop, len(o.Candidates))
	if o.Parallel {
		eg, ctx := errgroup.WithContext(o.Ctx)
		for i, shape := range o.Candidates {
			eg.Go(func() error {
				l, err := tryCandidate(ctx, o, g, shape)
				results[i] = l
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, shape := range o.Candidates {
			l, err := tryCandidate(o.Ctx, o, g, shape)
			if err != nil {
				return nil, err
			}
			results[i] = l
		}
	}

	var best *Loop
	for _, l := range results {
		if l != nil && (best == nil || l.Len() > best.Len()) {
			best = l
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: none of %d candidate shapes closes a loop at %s",
			ErrNoLoop, len(o.Candidates), g.Start())
	}
	o.Logger.Debug("loop resolved",
		slog.String("start", g.Start().String()),
		slog.String("shape", best.StartShape().String()),
		slog.Int("length", best.Len()))

	return best, nil
}

// tryCandidate traces one shape. A broken loop is a losing candidate, not an
// error: it yields (nil, nil).
func tryCandidate(ctx context.Context, o Options, g *pipegrid.Grid, shape tile.Shape) (*Loop, error) {
	l, err := trace(ctx, o.OnVisit, g.WithStartShape(shape))
	if errors.Is(err, ErrBrokenLoop) {
		o.Logger.Debug("candidate rejected",
			slog.String("shape", shape.String()),
			slog.String("reason", err.Error()))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("candidate closed",
		slog.String("shape", shape.String()),
		slog.Int("length", l.Len()))
	return l, nil
}

package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// Sentinel errors for loop discovery.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("loop: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")

	// ErrBrokenLoop is returned by a single trial when a visited tile does not
	// have exactly two connected neighbors.
	ErrBrokenLoop = errors.New("loop: tile does not have exactly two connected neighbors")

	// ErrNoLoop is returned when no candidate start shape closes a loop.
	ErrNoLoop = errors.New("loop: no closed loop through the start tile")
)

// Option configures loop discovery via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for loop discovery.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// Logger receives debug records per candidate and the chosen loop.
	Logger *slog.Logger

	// Parallel traces candidates concurrently.
	Parallel bool

	// Candidates are the start shapes tried, in tie-breaking order.
	Candidates []tile.Shape

	// OnVisit is called for every visited tile with its BFS depth. Returning
	// an error aborts the search. With Parallel it may be called concurrently.
	OnVisit func(p tile.Position, depth int) error

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - sequential trials over tile.PipeShapes()
//   - a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Candidates: tile.PipeShapes(),
		OnVisit:    func(tile.Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallel toggles concurrent candidate trials.
func WithParallel(parallel bool) Option {
	return func(o *Options) {
		o.Parallel = parallel
	}
}

// WithCandidates replaces the candidate start shapes. Every shape must be a
// real pipe and appear once; an empty list is a violation.
func WithCandidates(shapes ...tile.Shape) Option {
	return func(o *Options) {
		if len(shapes) == 0 {
			o.err = fmt.Errorf("%w: no candidate shapes", ErrOptionViolation)
			return
		}
		seen := make(map[tile.Shape]bool, len(shapes))
		for _, s := range shapes {
			switch {
			case !s.IsPipe():
				o.err = fmt.Errorf("%w: candidate %s is not a pipe shape", ErrOptionViolation, s)
				return
			case seen[s]:
				o.err = fmt.Errorf("%w: duplicate candidate %s", ErrOptionViolation, s)
				return
			}
			seen[s] = true
		}
		o.Candidates = append([]tile.Shape(nil), shapes...)
	}
}

// WithOnVisit registers a callback run on every visited tile.
func WithOnVisit(fn func(p tile.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Loop is a closed pipe loop discovered on a grid. It is read-only.
type Loop struct {
	view  pipegrid.View
	order []tile.Position
	depth map[tile.Position]int
}

// Result bundles both answers computed from one resolved loop.
type Result struct {
	FarthestPoint int
	EnclosedArea  int
	Loop          *Loop
}

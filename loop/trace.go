package loop

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// queueItem pairs a position with its BFS depth.
type queueItem struct {
	pos   tile.Position
	depth int
}

// walker encapsulates mutable state of one trial.
type walker struct {
	view    pipegrid.View
	ctx     context.Context
	onVisit func(tile.Position, int) error
	queue   []queueItem
	res     *Loop
}

// Trace runs a single trial: shape is drawn on the start tile and the loop is
// walked breadth-first from there. It returns ErrBrokenLoop when a visited
// tile has a connected-neighbor count other than two.
func Trace(g *pipegrid.Grid, shape tile.Shape, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !shape.IsPipe() {
		return nil, fmt.Errorf("%w: start shape %s is not a pipe shape", ErrOptionViolation, shape)
	}
	return trace(o.Ctx, o.OnVisit, g.WithStartShape(shape))
}

func trace(ctx context.Context, onVisit func(tile.Position, int) error, v pipegrid.View) (*Loop, error) {
	g := v.Grid()
	n := g.Width() * g.Height()
	w := &walker{
		view:    v,
		ctx:     ctx,
		onVisit: onVisit,
		queue:   make([]queueItem, 0, n),
		res: &Loop{
			view:  v,
			order: make([]tile.Position, 0, n),
			depth: make(map[tile.Position]int, n),
		},
	}
	w.enqueue(g.Start(), 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue marks p visited at depth d and queues it.
func (w *walker) enqueue(p tile.Position, d int) {
	w.res.depth[p] = d
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the tile in traversal order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.order = append(w.res.order, item.pos)
	if err := w.onVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("loop: OnVisit error at %s: %w", item.pos, err)
	}
	return nil
}

// enqueueNeighbors enforces the two-neighbor rule and queues unseen ones.
func (w *walker) enqueueNeighbors(item queueItem) error {
	connected := w.view.Connected(item.pos)
	if len(connected) != 2 {
		return fmt.Errorf("%w: %s has %d with start as %s",
			ErrBrokenLoop, item.pos, len(connected), w.view.StartShape())
	}
	for _, nb := range connected {
		if _, seen := w.res.depth[nb]; !seen {
			w.enqueue(nb, item.depth+1)
		}
	}
	return nil
}

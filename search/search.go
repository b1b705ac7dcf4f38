package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Run executes the algorithm identified by algo on g between start and end,
// applying any number of functional Options. It dispatches to the six
// per-algorithm entry points; see their documentation for semantics.
func Run(g *grid.Grid, algo Algorithm, start, end grid.Coord, opts ...Option) (*Result, error) {
	switch algo {
	case AlgoDijkstra:
		return Dijkstra(g, start, end, opts...)
	case AlgoAStar:
		return AStar(g, start, end, opts...)
	case AlgoBFS:
		return BFS(g, start, end, opts...)
	case AlgoDFS:
		return DFS(g, start, end, opts...)
	case AlgoGreedy:
		return Greedy(g, start, end, opts...)
	case AlgoBiBFS:
		return BiBFS(g, start, end, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// runner holds the mutable state shared by all six algorithms: the live grid,
// the flat predecessor table (index-keyed, -1 = no predecessor), the visited
// set mirroring Cell.Visited, and the visitation order.
type runner struct {
	g        *grid.Grid
	opts     Options
	algo     Algorithm
	start    grid.Coord
	end      grid.Coord
	startIdx int
	endIdx   int
	prev     []int
	visited  []bool
	order    []grid.Coord
	scratch  []grid.Coord // reused neighbor buffer
	begun    time.Time
}

// newRunner validates inputs, resets transient grid state, and allocates the
// per-run tables. Preconditions rejected here (rather than left undefined):
// nil grid, out-of-bounds terminals, walled terminals.
func newRunner(g *grid.Grid, algo Algorithm, start, end grid.Coord, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start=%v end=%v", ErrOutOfBounds, start, end)
	}
	if g.At(start).Wall || g.At(end).Wall {
		return nil, fmt.Errorf("%w: start=%v end=%v", ErrTerminalIsWall, start, end)
	}

	// Every run begins from clean transient state.
	g.ClearRunState()

	n := g.Len()
	r := &runner{
		g:        g,
		opts:     o,
		algo:     algo,
		start:    start,
		end:      end,
		startIdx: g.Index(start),
		endIdx:   g.Index(end),
		prev:     make([]int, n),
		visited:  make([]bool, n),
		order:    make([]grid.Coord, 0, n),
		scratch:  make([]grid.Coord, 0, 4),
		begun:    time.Now(),
	}
	for i := range r.prev {
		r.prev[i] = -1
	}

	return r, nil
}

// cancelled performs the non-blocking cancellation check used at every
// suspension point.
func (r *runner) cancelled() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// emit publishes a snapshot and pauses for d. Pacing only happens for hosts
// that registered an OnUpdate callback; headless runs take neither the
// snapshot cost nor the pause.
func (r *runner) emit(d time.Duration) {
	if r.opts.OnUpdate == nil {
		return
	}
	r.opts.OnUpdate(r.g.Snapshot())
	if d > 0 {
		r.opts.sleep(d)
	}
}

// visit marks cell i visited, appends it to the visitation order, and emits
// a paced snapshot. scale stretches or shrinks the visit pause (bidirectional
// sides pace at half rate). Terminal cells are visited without a pause.
func (r *runner) visit(i int, scale float64) error {
	if err := r.cancelled(); err != nil {
		return err
	}
	c := r.g.CoordAt(i)
	r.g.At(c).Visited = true
	r.visited[i] = true
	r.order = append(r.order, c)

	var pause time.Duration
	if i != r.startIdx && i != r.endIdx {
		pause = time.Duration(float64(r.opts.visitPause()) * scale)
	}
	r.emit(pause)

	return nil
}

// neighbors returns the in-bounds orthogonal neighbors of index i in fixed
// up/down/left/right order, reusing the runner's scratch buffer.
func (r *runner) neighbors(i int) []grid.Coord {
	r.scratch = r.g.Neighbors(r.g.CoordAt(i), r.scratch[:0])

	return r.scratch
}

// reconstruct walks the predecessor table backward from index i and returns
// the start→i path. The step guard bounds the walk by the arena size so a
// corrupted chain surfaces as ErrCorruptedPath instead of looping forever.
func reconstruct(g *grid.Grid, prev []int, i int) ([]grid.Coord, error) {
	path := make([]grid.Coord, 0, 16)
	for steps := 0; i >= 0; i = prev[i] {
		if steps++; steps > len(prev) {
			return nil, ErrCorruptedPath
		}
		path = append(path, g.CoordAt(i))
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path, nil
}

// reveal marks each interior path cell one at a time, emitting a snapshot and
// a fixed pathRevealPause per cell. Terminals appear in the returned path but
// are neither marked nor paused on.
func (r *runner) reveal(path []grid.Coord) error {
	for _, c := range path {
		i := r.g.Index(c)
		if i == r.startIdx || i == r.endIdx {
			continue
		}
		if err := r.cancelled(); err != nil {
			return err
		}
		r.g.At(c).Path = true
		r.emit(pathRevealPause)
	}

	return nil
}

// finish assembles the immutable Result. A nil path means the frontier
// emptied without reaching the end: a normal negative outcome.
func (r *runner) finish(path []grid.Coord) *Result {
	res := &Result{
		Algorithm:    r.algo,
		Path:         path,
		VisitedOrder: r.order,
		Stats: Stats{
			PathFound:    len(path) > 0,
			PathLength:   len(path),
			NodesVisited: len(r.order),
			NodesInPath:  len(path),
		},
	}
	if res.Path == nil {
		res.Path = []grid.Coord{}
	}
	// Duration includes the path-reveal pauses: they are awaited before the
	// result is assembled.
	res.Stats.Duration = time.Since(r.begun)

	return res
}

// resolve turns a terminated frontier into a Result: reconstruct and reveal
// when the end was reached, or report the negative outcome.
func (r *runner) resolve(found bool) (*Result, error) {
	if !found {
		return r.finish(nil), nil
	}
	path, err := reconstruct(r.g, r.prev, r.endIdx)
	if err != nil {
		return nil, err
	}
	if err = r.reveal(path); err != nil {
		return nil, err
	}

	return r.finish(path), nil
}

// Package search defines the algorithm identifiers, tunable options,
// result records, and sentinel errors for grid traversal runs.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("search: start or end out of bounds")

	// ErrTerminalIsWall is returned when start or end sits on a wall cell.
	ErrTerminalIsWall = errors.New("search: start or end is a wall")

	// ErrUnknownAlgorithm is returned by Run for an identifier outside the
	// closed Algorithm enum.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrCorruptedPath is returned when a predecessor chain cycles; a correct
	// run never produces this, the guard exists so a buggy caller-side grid
	// mutation mid-run fails loudly instead of spinning.
	ErrCorruptedPath = errors.New("search: predecessor chain cycles")
)

// Algorithm identifies one of the six traversal strategies.
type Algorithm int

const (
	// AlgoDijkstra is uniform-cost search: optimal for any non-negative weights.
	AlgoDijkstra Algorithm = iota
	// AlgoAStar is heuristic-informed search with the Manhattan heuristic:
	// optimal on this topology.
	AlgoAStar
	// AlgoBFS is unweighted breadth-first search: optimal by edge count,
	// weights ignored.
	AlgoBFS
	// AlgoDFS is depth-first search: returns the first path found, any length.
	AlgoDFS
	// AlgoGreedy is greedy best-first search ordered by heuristic alone:
	// fast, not optimal.
	AlgoGreedy
	// AlgoBiBFS is bidirectional breadth-first search: optimal by edge count.
	AlgoBiBFS
)

// algorithmNames maps enum values to their canonical identifiers.
var algorithmNames = [...]string{
	AlgoDijkstra: "dijkstra",
	AlgoAStar:    "astar",
	AlgoBFS:      "bfs",
	AlgoDFS:      "dfs",
	AlgoGreedy:   "greedy",
	AlgoBiBFS:    "bibfs",
}

// String returns the canonical lowercase identifier for a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms returns all six identifiers in enum order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoDijkstra, AlgoAStar, AlgoBFS, AlgoDFS, AlgoGreedy, AlgoBiBFS}
}

// ParseAlgorithm resolves a canonical identifier back to its enum value.
func ParseAlgorithm(s string) (Algorithm, error) {
	for i, name := range algorithmNames {
		if name == s {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Speed bounds for WithSpeed. Higher is faster: the pause between paced
// visits is (101-speed) milliseconds.
const (
	MinSpeed = 1
	MaxSpeed = 100
)

// pathRevealPause is the fixed pause per interior path cell during the
// path-reveal phase of a paced run.
const pathRevealPause = 50 * time.Millisecond

// Option configures a search run via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation at run entry.
type Option func(*Options)

// Options holds parameters and callbacks customizing a run.
type Options struct {
	// Ctx allows cooperative cancellation; it is checked at every visit and
	// every path-reveal step.
	Ctx context.Context

	// Speed in [MinSpeed, MaxSpeed] scales pacing pauses; irrelevant when no
	// OnUpdate callback is registered.
	Speed int

	// OnUpdate, if non-nil, receives a deep grid snapshot after every visit
	// and every path-reveal step, in strict visitation order. Registering it
	// turns on pacing pauses between snapshots.
	OnUpdate func(*grid.Grid)

	// sleep performs pacing pauses; replaceable via WithSleep so tests and
	// headless hosts can fast-forward.
	sleep func(time.Duration)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, speed 50, no
// update callback (headless: no pacing), and real time.Sleep pacing.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Speed: 50,
		sleep: time.Sleep,
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

// WithSpeed sets the pacing speed in [1,100]; out-of-range values surface as
// ErrOptionViolation.
func WithSpeed(s int) Option {
	return func(o *Options) {
		if s < MinSpeed || s > MaxSpeed {
			o.err = fmt.Errorf("%w: speed must be in [%d,%d], got %d",
				ErrOptionViolation, MinSpeed, MaxSpeed, s)

			return
		}
		o.Speed = s
	}
}

// WithOnUpdate registers the snapshot callback driving incremental animation.
func WithOnUpdate(fn func(*grid.Grid)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnUpdate = fn
		}
	}
}

// WithSleep overrides the pacing sleep function. Passing a no-op lets a host
// render every snapshot with zero real delay.
func WithSleep(fn func(time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.sleep = fn
		}
	}
}

// visitPause returns the pause between paced non-terminal visits.
func (o *Options) visitPause() time.Duration {
	return time.Duration(101-o.Speed) * time.Millisecond
}

// Stats summarizes one run.
type Stats struct {
	// PathFound reports whether the end cell was reached.
	PathFound bool
	// PathLength is the number of cells on the returned path (0 when none).
	PathLength int
	// NodesVisited is the number of cells the algorithm visited.
	NodesVisited int
	// NodesInPath is the number of cells on the path, including terminals.
	NodesInPath int
	// Duration is wall-clock time from run entry to result assembly,
	// inclusive of pacing pauses.
	Duration time.Duration
}

// Result is the immutable outcome of one run. An unreachable end is a normal
// negative result (empty Path, PathFound=false), never an error.
type Result struct {
	// Algorithm that produced this result.
	Algorithm Algorithm
	// Path from start to end inclusive, empty if none was found.
	Path []grid.Coord
	// VisitedOrder lists visited cells in visitation order.
	VisitedOrder []grid.Coord
	// Stats summarizes the run.
	Stats Stats
}

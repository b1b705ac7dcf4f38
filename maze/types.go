// Package maze defines the maze-type identifiers, tunable options, and
// sentinel errors for grid maze construction.
package maze

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrUnknownType is returned by Generate for an identifier outside the
	// closed Type enum.
	ErrUnknownType = errors.New("maze: unknown maze type")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Type identifies one of the six construction procedures.
type Type int

const (
	// Random walls each cell independently with probability WallProbability;
	// the only procedure that may disconnect start from end.
	Random Type = iota
	// Division recursively bisects open chambers with single-gap wall lines.
	Division
	// Prim grows a perfect maze outward from a random seed on the 2-step
	// lattice (randomized frontier growth).
	Prim
	// Kruskal builds a perfect maze as a randomized spanning tree of the
	// 2-step lattice via union-find.
	Kruskal
	// BinaryTree opens each lattice cell toward north or east: fast, with a
	// strong top-right diagonal bias.
	BinaryTree
	// Sidewinder sweeps rows, extending horizontal runs east and closing
	// each run with one random north carve.
	Sidewinder
)

// typeNames maps enum values to their canonical identifiers.
var typeNames = [...]string{
	Random:     "random",
	Division:   "division",
	Prim:       "prim",
	Kruskal:    "kruskal",
	BinaryTree: "binarytree",
	Sidewinder: "sidewinder",
}

// String returns the canonical lowercase identifier for t.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("mazetype(%d)", int(t))
	}

	return typeNames[t]
}

// Types returns all six identifiers in enum order.
func Types() []Type {
	return []Type{Random, Division, Prim, Kruskal, BinaryTree, Sidewinder}
}

// ParseType resolves a canonical identifier back to its enum value.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// WallProbability is the independent wall chance per cell for Random mazes.
const WallProbability = 0.35

// Speed bounds for WithSpeed, matching the search package contract.
const (
	MinSpeed = 1
	MaxSpeed = 100
)

// Option configures maze generation via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks customizing generation.
type Options struct {
	// Ctx allows cooperative cancellation, checked at every carve step.
	Ctx context.Context

	// Speed in [MinSpeed, MaxSpeed] scales pacing pauses; irrelevant when no
	// OnUpdate callback is registered.
	Speed int

	// OnUpdate, if non-nil, receives a deep grid snapshot at each
	// procedure-specific cadence during construction. Registering it turns
	// on pacing pauses.
	OnUpdate func(*grid.Grid)

	// Rand drives every random choice; seed it for reproducible mazes.
	Rand *rand.Rand

	// sleep performs pacing pauses; replaceable via WithSleep.
	sleep func(time.Duration)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, speed 50, no
// update callback, a time-seeded Rand, and real time.Sleep pacing.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Speed: 50,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
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

// WithRand sets the random source; pass a seeded source for reproducibility.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSleep overrides the pacing sleep function.
func WithSleep(fn func(time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.sleep = fn
		}
	}
}

// Package grid defines the cell and board types, tunable constants,
// and sentinel errors shared by the search and maze packages.
package grid

import "errors"

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates a non-positive row or column count.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrCellIsWall indicates an attempt to place start or end on a wall cell.
	ErrCellIsWall = errors.New("grid: cell is a wall")

	// ErrCellIsTerminal indicates an attempt to wall over the start or end cell.
	ErrCellIsTerminal = errors.New("grid: cell is start or end")

	// ErrBadWeight indicates a traversal weight below 1.
	ErrBadWeight = errors.New("grid: weight must be >= 1")
)

// Traversal weights. Every cell costs DefaultWeight to enter unless the
// caller marks it heavy, in which case it costs HeavyWeight.
const (
	DefaultWeight int64 = 1
	HeavyWeight   int64 = 5
)

// Coord identifies a cell by its zero-based row and column.
type Coord struct {
	Row, Col int
}

// Manhattan returns |r1-r2| + |c1-c2|, the exact walking distance between
// two cells on an unweighted 4-connected grid. It is admissible and
// consistent on that topology, so heuristic-guided search stays optimal.
func (c Coord) Manhattan(o Coord) int64 {
	dr := c.Row - o.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - o.Col
	if dc < 0 {
		dc = -dc
	}

	return int64(dr + dc)
}

// Cell is one square of the board. Row and Col are fixed for the cell's
// lifetime. Visited and Path are transient run state owned by the search
// package; everything else is board state owned by the caller.
type Cell struct {
	Row, Col int
	Start    bool
	End      bool
	Wall     bool
	Visited  bool
	Path     bool
	Weight   int64
}

// Coord returns the cell's coordinate.
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

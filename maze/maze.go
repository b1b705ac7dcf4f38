package maze

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Generate builds a maze of the given type from g's dimensions and returns a
// freshly carved grid. The input grid is never mutated: generation starts
// from a working copy with every wall and all run state cleared, preserving
// start, end, and weights. No procedure ever walls the start or end cell.
//
// With an OnUpdate callback registered, construction animates: snapshots and
// (101-speed)-scaled pauses at each procedure's cadence. Without one the call
// is headless and carves the identical maze (given the same Rand) with no
// pauses. Cancelling the WithContext context aborts mid-carve with ctx.Err().
func Generate(g *grid.Grid, typ Type, opts ...Option) (*grid.Grid, error) {
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

	work := g.Clone()
	work.ClearWalls()
	c := &carver{g: work, opts: o, weights: make([]int64, work.Len())}
	for i := range c.weights {
		c.weights[i] = work.At(work.CoordAt(i)).Weight
	}

	var err error
	switch typ {
	case Random:
		err = c.random()
	case Division:
		err = c.division()
	case Prim:
		err = c.prim()
	case Kruskal:
		err = c.kruskal()
	case BinaryTree:
		err = c.binaryTree()
	case Sidewinder:
		err = c.sidewinder()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(typ))
	}
	if err != nil {
		return nil, err
	}

	return work, nil
}

// carver holds the working grid and pacing state for one generation run.
// weights records every cell's weight before carving begins: walling a cell
// resets its weight, so re-opened cells get theirs restored from here.
type carver struct {
	g       *grid.Grid
	opts    Options
	weights []int64
}

// cancelled performs the non-blocking cancellation check used at every
// carve step.
func (c *carver) cancelled() error {
	select {
	case <-c.opts.Ctx.Done():
		return c.opts.Ctx.Err()
	default:
		return nil
	}
}

// step checks for cancellation and, for animated runs, publishes a snapshot
// followed by a pause of scale × (101-speed) milliseconds.
func (c *carver) step(scale float64) error {
	if err := c.cancelled(); err != nil {
		return err
	}
	if c.opts.OnUpdate == nil {
		return nil
	}
	c.opts.OnUpdate(c.g.Snapshot())
	unit := time.Duration(101-c.opts.Speed) * time.Millisecond
	if d := time.Duration(float64(unit) * scale); d > 0 {
		c.opts.sleep(d)
	}

	return nil
}

// terminal reports whether the cell at t carries the start or end marker.
func (c *carver) terminal(t grid.Coord) bool {
	cell := c.g.At(t)

	return cell != nil && (cell.Start || cell.End)
}

// wall sets the wall flag at t unless t is a terminal; terminals silently
// stay open (the one mutation every procedure must refuse).
func (c *carver) wall(t grid.Coord) {
	if c.terminal(t) {
		return
	}
	_ = c.g.SetWall(t, true)
}

// open clears the wall flag at t and restores the cell's pre-carve weight.
func (c *carver) open(t grid.Coord) {
	_ = c.g.SetWall(t, false)
	_ = c.g.SetWeight(t, c.weights[c.g.Index(t)])
}

// fill walls every non-terminal cell: the canvas the lattice procedures
// carve passages out of.
func (c *carver) fill() {
	for r := 0; r < c.g.Rows(); r++ {
		for col := 0; col < c.g.Cols(); col++ {
			c.wall(grid.Coord{Row: r, Col: col})
		}
	}
}

// latticeCells lists the 2-step lattice cells (even row, even col) in
// row-major order.
func (c *carver) latticeCells() []grid.Coord {
	cells := make([]grid.Coord, 0, (c.g.Rows()/2+1)*(c.g.Cols()/2+1))
	for r := 0; r < c.g.Rows(); r += 2 {
		for col := 0; col < c.g.Cols(); col += 2 {
			cells = append(cells, grid.Coord{Row: r, Col: col})
		}
	}

	return cells
}

// latticeSteps are the four 2-step lattice directions.
var latticeSteps = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// orthoSteps are the four 1-step directions.
var orthoSteps = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// midpoint returns the cell halfway between two lattice neighbors.
func midpoint(a, b grid.Coord) grid.Coord {
	return grid.Coord{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

// attachTerminals carves the shortest corridor from any pocketed start or end
// cell to the nearest open region. Lattice carving never walls the terminals,
// but a terminal off (or skipped by) the passage lattice can end up boxed in;
// every structured procedure runs this pass so no maze isolates its
// terminals. Random deliberately does not: disconnection is its documented
// behavior.
func (c *carver) attachTerminals() {
	if s, ok := c.g.Start(); ok {
		c.attach(s)
	}
	if e, ok := c.g.End(); ok {
		c.attach(e)
	}
}

// attach tunnels from t through walls to the nearest open cell, opening the
// corridor. Only the corridor's last cell can border the open region more
// than once, so at most one local loop is introduced. No-op when t already
// touches an open cell.
func (c *carver) attach(t grid.Coord) {
	for _, d := range orthoSteps {
		n := grid.Coord{Row: t.Row + d[0], Col: t.Col + d[1]}
		if c.g.InBounds(n) && !c.g.At(n).Wall {
			return
		}
	}

	prev := make([]int, c.g.Len())
	for i := range prev {
		prev[i] = -1
	}
	seen := make([]bool, c.g.Len())
	seen[c.g.Index(t)] = true
	queue := []int{c.g.Index(t)}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		uc := c.g.CoordAt(u)
		for _, d := range orthoSteps {
			n := grid.Coord{Row: uc.Row + d[0], Col: uc.Col + d[1]}
			if !c.g.InBounds(n) {
				continue
			}
			v := c.g.Index(n)
			if seen[v] {
				continue
			}
			seen[v] = true
			prev[v] = u
			if !c.g.At(n).Wall {
				// Found the open region: open every wall on the way back.
				for i := u; i >= 0; i = prev[i] {
					c.open(c.g.CoordAt(i))
				}

				return
			}
			queue = append(queue, v)
		}
	}
}

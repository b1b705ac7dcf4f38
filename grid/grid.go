package grid

// Grid is a rectangular board of cells stored in a single row-major arena
// slice indexed row*cols+col. The arena keeps adjacency arithmetic cheap and
// lets run state (distances, predecessors) live in parallel flat slices.
//
// A Grid holds at most one start and one end cell, and a cell is never
// simultaneously a wall and a terminal. Grids are not safe for concurrent
// mutation; the caller serializes runs (one algorithm owns the grid at a time)
// and renders only from Snapshot copies.
type Grid struct {
	rows, cols int
	cells      []Cell
	startIdx   int // arena index of the start cell, -1 if unset
	endIdx     int // arena index of the end cell, -1 if unset
}

// New constructs a rows×cols grid with every cell open, weight DefaultWeight,
// and no start/end. Returns ErrBadDimensions unless both sizes are positive.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		rows:     rows,
		cols:     cols,
		cells:    make([]Cell, rows*cols),
		startIdx: -1,
		endIdx:   -1,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			g.cells[i].Row = r
			g.cells[i].Col = c
			g.cells[i].Weight = DefaultWeight
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total cell count.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps a coordinate to its arena index. The coordinate must be in
// bounds; Index performs no checking.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// CoordAt maps an arena index back to its coordinate.
func (g *Grid) CoordAt(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

// At returns the cell at c, or nil if c is out of bounds. The pointer stays
// valid for the grid's lifetime (the arena is never reallocated).
func (g *Grid) At(c Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}

	return &g.cells[g.Index(c)]
}

// Start returns the start coordinate and whether one is set.
func (g *Grid) Start() (Coord, bool) {
	if g.startIdx < 0 {
		return Coord{}, false
	}

	return g.CoordAt(g.startIdx), true
}

// End returns the end coordinate and whether one is set.
func (g *Grid) End() (Coord, bool) {
	if g.endIdx < 0 {
		return Coord{}, false
	}

	return g.CoordAt(g.endIdx), true
}

// SetStart moves the start marker to c, clearing any previous start.
// Returns ErrOutOfBounds for an invalid coordinate and ErrCellIsWall if the
// target is a wall (a terminal cell can never be a wall).
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	i := g.Index(c)
	if g.cells[i].Wall {
		return ErrCellIsWall
	}
	if g.startIdx >= 0 {
		g.cells[g.startIdx].Start = false
	}
	g.cells[i].Start = true
	g.startIdx = i

	return nil
}

// SetEnd moves the end marker to c, clearing any previous end.
// Same error contract as SetStart.
func (g *Grid) SetEnd(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	i := g.Index(c)
	if g.cells[i].Wall {
		return ErrCellIsWall
	}
	if g.endIdx >= 0 {
		g.cells[g.endIdx].End = false
	}
	g.cells[i].End = true
	g.endIdx = i

	return nil
}

// SetWall sets or clears the wall flag at c. Walling a start or end cell is
// rejected with ErrCellIsTerminal. Setting a wall resets the cell's weight to
// DefaultWeight (a wall has no traversal cost).
func (g *Grid) SetWall(c Coord, wall bool) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	i := g.Index(c)
	if wall && (g.cells[i].Start || g.cells[i].End) {
		return ErrCellIsTerminal
	}
	g.cells[i].Wall = wall
	if wall {
		g.cells[i].Weight = DefaultWeight
	}

	return nil
}

// ToggleWall flips the wall flag at c under the SetWall contract.
func (g *Grid) ToggleWall(c Coord) error {
	cell := g.At(c)
	if cell == nil {
		return ErrOutOfBounds
	}

	return g.SetWall(c, !cell.Wall)
}

// SetWeight assigns the traversal cost of entering c. Weights below 1 are
// rejected with ErrBadWeight; walls and terminals keep weight but the search
// package never reads a wall's weight.
func (g *Grid) SetWeight(c Coord, w int64) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if w < 1 {
		return ErrBadWeight
	}
	g.cells[g.Index(c)].Weight = w

	return nil
}

// neighborOffsets is the fixed 4-connected adjacency order: up, down, left,
// right. Every traversal in this module expands neighbors in exactly this
// order, which makes unseeded runs reproducible.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors appends the in-bounds orthogonal neighbors of c to dst in fixed
// up/down/left/right order and returns the extended slice. Passing a reused
// dst avoids per-call allocation in hot traversal loops.
func (g *Grid) Neighbors(c Coord, dst []Coord) []Coord {
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// ClearRunState resets the transient Visited and Path flags on every cell,
// leaving walls, weights, and terminals untouched. Running the same algorithm
// after ClearRunState reproduces the previous result exactly.
func (g *Grid) ClearRunState() {
	for i := range g.cells {
		g.cells[i].Visited = false
		g.cells[i].Path = false
	}
}

// ClearWalls opens every cell (and clears run state), preserving start, end,
// and weights. Maze generation begins from this state.
func (g *Grid) ClearWalls() {
	for i := range g.cells {
		g.cells[i].Wall = false
		g.cells[i].Visited = false
		g.cells[i].Path = false
	}
}

// Reset returns the grid to its freshly constructed state: no walls, no run
// state, all weights DefaultWeight. Start and end markers survive.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Wall = false
		g.cells[i].Visited = false
		g.cells[i].Path = false
		g.cells[i].Weight = DefaultWeight
	}
}

// Clone returns a deep copy sharing nothing with the receiver.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		rows:     g.rows,
		cols:     g.cols,
		cells:    make([]Cell, len(g.cells)),
		startIdx: g.startIdx,
		endIdx:   g.endIdx,
	}
	copy(cp.cells, g.cells)

	return cp
}

// Snapshot is the copy handed to update callbacks. It is a full deep copy,
// so a renderer may keep it for as long as it likes while the live grid
// mutates underneath.
func (g *Grid) Snapshot() *Grid {
	return g.Clone()
}

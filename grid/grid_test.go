package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.New(tc.rows, tc.cols); !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNew_FreshState checks that a new grid is fully open with unit weights
// and no terminals.
func TestNew_FreshState(t *testing.T) {
	g, err := grid.New(4, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Rows() != 4 || g.Cols() != 3 || g.Len() != 12 {
		t.Fatalf("dimensions = %dx%d len %d; want 4x3 len 12", g.Rows(), g.Cols(), g.Len())
	}
	if _, ok := g.Start(); ok {
		t.Error("fresh grid has a start")
	}
	if _, ok := g.End(); ok {
		t.Error("fresh grid has an end")
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := g.At(grid.Coord{Row: r, Col: c})
			if cell.Wall || cell.Visited || cell.Path || cell.Weight != grid.DefaultWeight {
				t.Fatalf("cell (%d,%d) not fresh: %+v", r, c, *cell)
			}
			if cell.Row != r || cell.Col != c {
				t.Fatalf("cell (%d,%d) carries coords (%d,%d)", r, c, cell.Row, cell.Col)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Indexing and adjacency
//----------------------------------------------------------------------------//

// TestIndex_RoundTrip checks Index/CoordAt are inverses over the arena.
func TestIndex_RoundTrip(t *testing.T) {
	g, _ := grid.New(5, 7)
	for i := 0; i < g.Len(); i++ {
		c := g.CoordAt(i)
		if g.Index(c) != i {
			t.Fatalf("Index(CoordAt(%d)) = %d", i, g.Index(c))
		}
	}
}

// TestNeighbors_OrderAndBounds verifies the fixed up/down/left/right order
// and bounds clipping at corners and edges.
func TestNeighbors_OrderAndBounds(t *testing.T) {
	g, _ := grid.New(3, 3)
	cases := []struct {
		name string
		at   grid.Coord
		want []grid.Coord
	}{
		{"Center", grid.Coord{Row: 1, Col: 1}, []grid.Coord{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}},
		{"TopLeft", grid.Coord{Row: 0, Col: 0}, []grid.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}}},
		{"BottomRight", grid.Coord{Row: 2, Col: 2}, []grid.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 1}}},
		{"MidLeftEdge", grid.Coord{Row: 1, Col: 0}, []grid.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 0}, {Row: 1, Col: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Neighbors(tc.at, nil)
			if len(got) != len(tc.want) {
				t.Fatalf("Neighbors(%v) = %v; want %v", tc.at, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Neighbors(%v)[%d] = %v; want %v", tc.at, i, got[i], tc.want[i])
				}
			}
		})
	}
}

// TestManhattan covers the heuristic in all quadrants.
func TestManhattan(t *testing.T) {
	a := grid.Coord{Row: 2, Col: 3}
	cases := []struct {
		b    grid.Coord
		want int64
	}{
		{grid.Coord{Row: 2, Col: 3}, 0},
		{grid.Coord{Row: 0, Col: 0}, 5},
		{grid.Coord{Row: 5, Col: 1}, 5},
		{grid.Coord{Row: 2, Col: 9}, 6},
	}
	for _, tc := range cases {
		if got := a.Manhattan(tc.b); got != tc.want {
			t.Errorf("Manhattan(%v,%v) = %d; want %d", a, tc.b, got, tc.want)
		}
		if got := tc.b.Manhattan(a); got != tc.want {
			t.Errorf("Manhattan(%v,%v) = %d; want %d (symmetry)", tc.b, a, got, tc.want)
		}
	}
}

//----------------------------------------------------------------------------//
// Terminal and wall invariants
//----------------------------------------------------------------------------//

// TestSetStart_MovesMarker checks the at-most-one-start invariant.
func TestSetStart_MovesMarker(t *testing.T) {
	g, _ := grid.New(3, 3)
	first := grid.Coord{Row: 0, Col: 0}
	second := grid.Coord{Row: 2, Col: 2}
	if err := g.SetStart(first); err != nil {
		t.Fatalf("SetStart(%v): %v", first, err)
	}
	if err := g.SetStart(second); err != nil {
		t.Fatalf("SetStart(%v): %v", second, err)
	}
	if g.At(first).Start {
		t.Error("old start marker not cleared")
	}
	if s, ok := g.Start(); !ok || s != second {
		t.Errorf("Start() = %v,%v; want %v,true", s, ok, second)
	}
}

// TestWallTerminalExclusion verifies a cell is never wall and terminal at once.
func TestWallTerminalExclusion(t *testing.T) {
	g, _ := grid.New(3, 3)
	c := grid.Coord{Row: 1, Col: 1}

	if err := g.SetWall(c, true); err != nil {
		t.Fatalf("SetWall: %v", err)
	}
	if err := g.SetStart(c); !errors.Is(err, grid.ErrCellIsWall) {
		t.Errorf("SetStart on wall error = %v; want ErrCellIsWall", err)
	}
	if err := g.SetEnd(c); !errors.Is(err, grid.ErrCellIsWall) {
		t.Errorf("SetEnd on wall error = %v; want ErrCellIsWall", err)
	}

	if err := g.SetWall(c, false); err != nil {
		t.Fatalf("SetWall(false): %v", err)
	}
	if err := g.SetEnd(c); err != nil {
		t.Fatalf("SetEnd: %v", err)
	}
	if err := g.SetWall(c, true); !errors.Is(err, grid.ErrCellIsTerminal) {
		t.Errorf("SetWall on terminal error = %v; want ErrCellIsTerminal", err)
	}
	if err := g.ToggleWall(c); !errors.Is(err, grid.ErrCellIsTerminal) {
		t.Errorf("ToggleWall on terminal error = %v; want ErrCellIsTerminal", err)
	}
}

// TestSetWall_ResetsWeight checks that walling a weighted cell drops its cost.
func TestSetWall_ResetsWeight(t *testing.T) {
	g, _ := grid.New(3, 3)
	c := grid.Coord{Row: 0, Col: 1}
	if err := g.SetWeight(c, grid.HeavyWeight); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}
	if err := g.SetWall(c, true); err != nil {
		t.Fatalf("SetWall: %v", err)
	}
	if w := g.At(c).Weight; w != grid.DefaultWeight {
		t.Errorf("walled cell weight = %d; want %d", w, grid.DefaultWeight)
	}
}

// TestSetWeight_Errors rejects out-of-bounds coords and weights below 1.
func TestSetWeight_Errors(t *testing.T) {
	g, _ := grid.New(2, 2)
	if err := g.SetWeight(grid.Coord{Row: 9, Col: 0}, 2); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("out-of-bounds error = %v; want ErrOutOfBounds", err)
	}
	if err := g.SetWeight(grid.Coord{Row: 0, Col: 0}, 0); !errors.Is(err, grid.ErrBadWeight) {
		t.Errorf("zero weight error = %v; want ErrBadWeight", err)
	}
}

//----------------------------------------------------------------------------//
// Bulk operations
//----------------------------------------------------------------------------//

// TestClearRunState clears only the transient flags.
func TestClearRunState(t *testing.T) {
	g, _ := grid.New(3, 3)
	c := grid.Coord{Row: 1, Col: 2}
	g.At(c).Visited = true
	g.At(c).Path = true
	_ = g.SetWall(grid.Coord{Row: 2, Col: 0}, true)
	_ = g.SetWeight(grid.Coord{Row: 0, Col: 0}, grid.HeavyWeight)

	g.ClearRunState()

	if cell := g.At(c); cell.Visited || cell.Path {
		t.Error("run state not cleared")
	}
	if !g.At(grid.Coord{Row: 2, Col: 0}).Wall {
		t.Error("wall cleared by ClearRunState")
	}
	if g.At(grid.Coord{Row: 0, Col: 0}).Weight != grid.HeavyWeight {
		t.Error("weight cleared by ClearRunState")
	}
}

// TestReset restores the fresh state but keeps terminals.
func TestReset(t *testing.T) {
	g, _ := grid.New(3, 3)
	_ = g.SetStart(grid.Coord{Row: 0, Col: 0})
	_ = g.SetEnd(grid.Coord{Row: 2, Col: 2})
	_ = g.SetWall(grid.Coord{Row: 1, Col: 1}, true)
	_ = g.SetWeight(grid.Coord{Row: 0, Col: 1}, grid.HeavyWeight)

	g.Reset()

	if g.At(grid.Coord{Row: 1, Col: 1}).Wall {
		t.Error("wall survived Reset")
	}
	if g.At(grid.Coord{Row: 0, Col: 1}).Weight != grid.DefaultWeight {
		t.Error("weight survived Reset")
	}
	if s, ok := g.Start(); !ok || (s != grid.Coord{Row: 0, Col: 0}) {
		t.Error("start lost in Reset")
	}
	if e, ok := g.End(); !ok || (e != grid.Coord{Row: 2, Col: 2}) {
		t.Error("end lost in Reset")
	}
}

// TestClone_Isolation verifies a clone shares nothing with its source.
func TestClone_Isolation(t *testing.T) {
	g, _ := grid.New(3, 3)
	_ = g.SetStart(grid.Coord{Row: 0, Col: 0})
	_ = g.SetWall(grid.Coord{Row: 1, Col: 1}, true)

	cp := g.Clone()
	_ = cp.SetWall(grid.Coord{Row: 2, Col: 2}, true)
	cp.At(grid.Coord{Row: 0, Col: 1}).Visited = true

	if g.At(grid.Coord{Row: 2, Col: 2}).Wall {
		t.Error("mutating clone walled the source")
	}
	if g.At(grid.Coord{Row: 0, Col: 1}).Visited {
		t.Error("mutating clone visited the source")
	}
	if !cp.At(grid.Coord{Row: 1, Col: 1}).Wall {
		t.Error("clone missing source wall")
	}
	if s, ok := cp.Start(); !ok || (s != grid.Coord{Row: 0, Col: 0}) {
		t.Error("clone missing start marker")
	}
}

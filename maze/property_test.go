package maze_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

// TestMazeProperties checks the carving invariants across randomly sized,
// randomly seeded grids rather than the handful of fixtures above.
func TestMazeProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	// Odd dimensions so the 2-step lattice spans the whole grid.
	oddSize := gen.IntRange(2, 12).Map(func(k int) int { return 2*k + 1 })

	properties.Property("structured mazes connect every open cell", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			g, err := grid.New(rows, cols)
			if err != nil {
				return false
			}
			for _, typ := range structured {
				out, err := maze.Generate(g, typ,
					maze.WithRand(rand.New(rand.NewSource(seed))))
				if err != nil || openComponents(out) != 1 {
					return false
				}
			}

			return true
		},
		oddSize,
		oddSize,
		gen.Int64(),
	))

	properties.Property("structured mazes on odd grids are spanning trees", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			g, err := grid.New(rows, cols)
			if err != nil {
				return false
			}
			for _, typ := range structured {
				out, err := maze.Generate(g, typ,
					maze.WithRand(rand.New(rand.NewSource(seed))))
				if err != nil {
					return false
				}
				if openEdges(out) != len(openCells(out))-1 {
					return false
				}
			}

			return true
		},
		oddSize,
		oddSize,
		gen.Int64(),
	))

	properties.Property("no procedure ever walls a terminal", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			g, err := grid.New(rows, cols)
			if err != nil {
				return false
			}
			r := rand.New(rand.NewSource(seed))
			start := grid.Coord{Row: r.Intn(rows), Col: r.Intn(cols)}
			end := grid.Coord{Row: r.Intn(rows), Col: r.Intn(cols)}
			if err := g.SetStart(start); err != nil {
				return false
			}
			if start == end {
				return true // a grid cannot carry both markers on one cell
			}
			if err := g.SetEnd(end); err != nil {
				return false
			}
			for _, typ := range maze.Types() {
				out, err := maze.Generate(g, typ, maze.WithRand(r))
				if err != nil || out.At(start).Wall || out.At(end).Wall {
					return false
				}
			}

			return true
		},
		gen.IntRange(5, 25),
		gen.IntRange(5, 25),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

package maze

import "github.com/katalvlaran/gridpath/grid"

// random walls each non-terminal cell independently with WallProbability.
// It gives no connectivity guarantee: start and end may end up separated,
// which a subsequent search reports as a normal negative result.
// Animation cadence: one snapshot per completed row.
func (c *carver) random() error {
	for r := 0; r < c.g.Rows(); r++ {
		for col := 0; col < c.g.Cols(); col++ {
			if c.opts.Rand.Float64() < WallProbability {
				c.wall(grid.Coord{Row: r, Col: col})
			}
		}
		if err := c.step(0.25); err != nil {
			return err
		}
	}

	return nil
}

package maze

import "github.com/katalvlaran/gridpath/grid"

// sidewinder sweeps lattice rows top to bottom. Within a row it accumulates
// a horizontal run of lattice cells: each cell either extends the run east
// or closes it by carving one north passage from a random cell in the run.
// The top row has no north to carve into, so it always extends east into one
// unbroken corridor. Every closed run has exactly one escape upward, which
// keeps the lattice a tree with a horizontal bias.
// Animation cadence: one snapshot per lattice cell.
func (c *carver) sidewinder() error {
	c.fill()
	rows, cols := c.g.Rows(), c.g.Cols()

	for r := 0; r < rows; r += 2 {
		runStart := 0
		for col := 0; col < cols; col += 2 {
			c.open(grid.Coord{Row: r, Col: col})

			canEast := col+2 < cols
			if r == 0 {
				// Top row: always extend east, never close.
				if canEast {
					c.open(grid.Coord{Row: r, Col: col + 1})
				}
			} else if canEast && c.opts.Rand.Intn(2) == 0 {
				c.open(grid.Coord{Row: r, Col: col + 1})
			} else {
				// Close the run with one random north carve.
				pick := runStart + 2*c.opts.Rand.Intn((col-runStart)/2+1)
				c.open(grid.Coord{Row: r - 1, Col: pick})
				runStart = col + 2
			}

			if err := c.step(0.25); err != nil {
				return err
			}
		}
	}

	c.attachTerminals()

	return nil
}

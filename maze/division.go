package maze

import "github.com/katalvlaran/gridpath/grid"

// division walls the perimeter and then recursively bisects each open
// chamber with a single-gap wall line, alternating orientation per level.
// Wall lines land on even rows/columns and gaps on odd ones, so a
// perpendicular wall can never seal another line's gap: every chamber stays
// traversable through its gap. Animation cadence: one snapshot per wall line.
func (c *carver) division() error {
	rows, cols := c.g.Rows(), c.g.Cols()
	for col := 0; col < cols; col++ {
		c.wall(grid.Coord{Row: 0, Col: col})
		c.wall(grid.Coord{Row: rows - 1, Col: col})
	}
	for r := 0; r < rows; r++ {
		c.wall(grid.Coord{Row: r, Col: 0})
		c.wall(grid.Coord{Row: r, Col: cols - 1})
	}
	if err := c.step(0.5); err != nil {
		return err
	}

	if err := c.divide(1, rows-2, 1, cols-2, rows >= cols); err != nil {
		return err
	}
	c.attachTerminals()

	return nil
}

// divide bisects the open chamber spanning rows r1..r2 and columns c1..c2.
// horizontal selects the preferred orientation for this level; when a wall
// line cannot fit that way the other orientation is tried, and a chamber
// with a dimension below 2 is left as-is.
func (c *carver) divide(r1, r2, c1, c2 int, horizontal bool) error {
	if r2-r1+1 < 2 || c2-c1+1 < 2 {
		return nil
	}
	canH := hasEven(r1+1, r2-1)
	canV := hasEven(c1+1, c2-1)
	if horizontal && !canH {
		horizontal = false
	} else if !horizontal && !canV {
		horizontal = true
	}

	if horizontal {
		if !canH {
			return nil
		}
		wr := c.randomEven(r1+1, r2-1)
		gap, ok := c.randomOdd(c1, c2)
		if !ok {
			return nil
		}
		for col := c1; col <= c2; col++ {
			if col != gap {
				c.wall(grid.Coord{Row: wr, Col: col})
			}
		}
		if err := c.step(0.5); err != nil {
			return err
		}
		if err := c.divide(r1, wr-1, c1, c2, false); err != nil {
			return err
		}

		return c.divide(wr+1, r2, c1, c2, false)
	}

	if !canV {
		return nil
	}
	wc := c.randomEven(c1+1, c2-1)
	gap, ok := c.randomOdd(r1, r2)
	if !ok {
		return nil
	}
	for r := r1; r <= r2; r++ {
		if r != gap {
			c.wall(grid.Coord{Row: r, Col: wc})
		}
	}
	if err := c.step(0.5); err != nil {
		return err
	}
	if err := c.divide(r1, r2, c1, wc-1, true); err != nil {
		return err
	}

	return c.divide(r1, r2, wc+1, c2, true)
}

// hasEven reports whether [a,b] contains an even number.
func hasEven(a, b int) bool {
	if a > b {
		return false
	}
	if a%2 != 0 {
		a++
	}

	return a <= b
}

// randomEven returns a uniform even number from [a,b]; callers check
// hasEven first.
func (c *carver) randomEven(a, b int) int {
	if a%2 != 0 {
		a++
	}

	return a + 2*c.opts.Rand.Intn((b-a)/2+1)
}

// randomOdd returns a uniform odd number from [a,b] and whether one exists.
func (c *carver) randomOdd(a, b int) (int, bool) {
	if a%2 == 0 {
		a++
	}
	if a > b {
		return 0, false
	}

	return a + 2*c.opts.Rand.Intn((b-a)/2+1), true
}

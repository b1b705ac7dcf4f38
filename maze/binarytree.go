package maze

import "github.com/katalvlaran/gridpath/grid"

// binaryTree opens every 2-step lattice cell and carves toward one randomly
// chosen available direction among north and east. Every lattice cell gains
// exactly one outward passage (the top-right corner gains none), so the
// lattice forms a tree with a pronounced top-right bias: the top row and the
// rightmost lattice column are unbroken corridors.
// Animation cadence: one snapshot per lattice cell.
func (c *carver) binaryTree() error {
	c.fill()

	for _, cell := range c.latticeCells() {
		c.open(cell)

		north := grid.Coord{Row: cell.Row - 2, Col: cell.Col}
		east := grid.Coord{Row: cell.Row, Col: cell.Col + 2}
		choices := make([]grid.Coord, 0, 2)
		if c.g.InBounds(north) {
			choices = append(choices, north)
		}
		if c.g.InBounds(east) {
			choices = append(choices, east)
		}
		if len(choices) > 0 {
			c.open(midpoint(cell, choices[c.opts.Rand.Intn(len(choices))]))
		}

		if err := c.step(0.25); err != nil {
			return err
		}
	}

	c.attachTerminals()

	return nil
}

package maze

import "github.com/katalvlaran/gridpath/grid"

// prim grows a maze outward from one random lattice seed. The frontier holds
// walled lattice cells two steps from a carved cell; each iteration pops a
// random frontier cell, opens it, and opens the midpoint wall toward one
// randomly chosen carved 2-step neighbor. Growth is single-seeded, so each
// carve joins one new cell to the tree through one passage: every lattice
// cell ends up carved and the carved cells form a spanning tree.
// Animation cadence: one snapshot per carved cell.
func (c *carver) prim() error {
	c.fill()
	rows, cols := c.g.Rows(), c.g.Cols()

	// carved tracks cells this procedure opened; open terminals are not part
	// of the growth and must not skew the neighbor count.
	carved := make([]bool, c.g.Len())

	seed := grid.Coord{
		Row: 2 * c.opts.Rand.Intn((rows+1)/2),
		Col: 2 * c.opts.Rand.Intn((cols+1)/2),
	}
	c.open(seed)
	carved[c.g.Index(seed)] = true
	if err := c.step(0.5); err != nil {
		return err
	}

	inFrontier := make([]bool, c.g.Len())
	frontier := make([]grid.Coord, 0, 64)
	pushFrontier := func(at grid.Coord) {
		for _, d := range latticeSteps {
			n := grid.Coord{Row: at.Row + d[0], Col: at.Col + d[1]}
			if !c.g.InBounds(n) {
				continue
			}
			i := c.g.Index(n)
			if carved[i] || inFrontier[i] {
				continue
			}
			inFrontier[i] = true
			frontier = append(frontier, n)
		}
	}
	pushFrontier(seed)

	for len(frontier) > 0 {
		pick := c.opts.Rand.Intn(len(frontier))
		f := frontier[pick]
		frontier[pick] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		inFrontier[c.g.Index(f)] = false

		var nbrs [4]grid.Coord
		count := 0
		for _, d := range latticeSteps {
			n := grid.Coord{Row: f.Row + d[0], Col: f.Col + d[1]}
			if c.g.InBounds(n) && carved[c.g.Index(n)] {
				nbrs[count] = n
				count++
			}
		}
		if count == 0 {
			continue
		}

		c.open(f)
		c.open(midpoint(f, nbrs[c.opts.Rand.Intn(count)]))
		carved[c.g.Index(f)] = true
		pushFrontier(f)
		if err := c.step(0.5); err != nil {
			return err
		}
	}

	c.attachTerminals()

	return nil
}

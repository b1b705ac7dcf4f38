package maze

import "github.com/katalvlaran/gridpath/grid"

// disjointSet is a union-find over lattice cell ordinals with path
// compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the set root of x, compressing the chain as it walks.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets of a and b and reports whether they were disjoint.
func (d *disjointSet) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}

	return true
}

// latticeEdge is one candidate passage between two 2-step lattice neighbors.
type latticeEdge struct {
	a, b grid.Coord
}

// kruskal builds a randomized spanning tree of the 2-step lattice: every
// horizontal and vertical lattice edge is a shuffled candidate, and an edge
// is carved (both endpoints plus the midpoint wall) exactly when its
// endpoints still belong to different union-find components. The result is a
// perfect maze: fully connected lattice, zero cycles.
// Animation cadence: one snapshot per accepted edge.
func (c *carver) kruskal() error {
	c.fill()
	cells := c.latticeCells()

	// Ordinal lookup for union-find, keyed by arena index.
	ordinal := make(map[int]int, len(cells))
	for i, cell := range cells {
		ordinal[c.g.Index(cell)] = i
	}

	edges := make([]latticeEdge, 0, 2*len(cells))
	for _, a := range cells {
		east := grid.Coord{Row: a.Row, Col: a.Col + 2}
		if c.g.InBounds(east) {
			edges = append(edges, latticeEdge{a: a, b: east})
		}
		south := grid.Coord{Row: a.Row + 2, Col: a.Col}
		if c.g.InBounds(south) {
			edges = append(edges, latticeEdge{a: a, b: south})
		}
	}
	c.opts.Rand.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	dsu := newDisjointSet(len(cells))
	for _, e := range edges {
		if !dsu.union(ordinal[c.g.Index(e.a)], ordinal[c.g.Index(e.b)]) {
			continue
		}
		c.open(e.a)
		c.open(e.b)
		c.open(midpoint(e.a, e.b))
		if err := c.step(0.5); err != nil {
			return err
		}
	}

	c.attachTerminals()

	return nil
}

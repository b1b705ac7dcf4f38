package search

import "github.com/katalvlaran/gridpath/grid"

// BFS runs unweighted breadth-first search from start to end. Cells are
// visited in FIFO discovery order, so the returned path has the minimum
// number of cells; Weight values are ignored.
//
// Complexity: O(N) time for N cells, O(N) memory.
func BFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	r, err := newRunner(g, AlgoBFS, start, end, opts)
	if err != nil {
		return nil, err
	}

	discovered := make([]bool, r.g.Len())
	discovered[r.startIdx] = true
	queue := make([]int, 0, r.g.Len()/4)
	queue = append(queue, r.startIdx)

	found := false
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if err = r.visit(u, 1); err != nil {
			return nil, err
		}
		if u == r.endIdx {
			found = true
			break
		}

		for _, nc := range r.neighbors(u) {
			v := r.g.Index(nc)
			if discovered[v] || r.g.At(nc).Wall {
				continue
			}
			discovered[v] = true
			r.prev[v] = u
			queue = append(queue, v)
		}
	}

	return r.resolve(found)
}

package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// Greedy runs greedy best-first search from start to end: the open set is
// ordered by the Manhattan estimate of the remaining distance alone, ties by
// discovery order. It tends to rush straight at the end and is complete on a
// finite grid, but the returned path carries no optimality guarantee.
//
// Complexity: O(N log N) time for N cells, O(N) memory.
func Greedy(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	r, err := newRunner(g, AlgoGreedy, start, end, opts)
	if err != nil {
		return nil, err
	}

	discovered := make([]bool, r.g.Len())
	discovered[r.startIdx] = true
	pq := make(cellPQ, 0, r.g.Len()/4)
	heap.Init(&pq)
	var seq int64
	push := func(i int, h int64) {
		heap.Push(&pq, pqItem{idx: i, pri: h, seq: seq})
		seq++
	}
	push(r.startIdx, r.start.Manhattan(r.end))

	found := false
	for pq.Len() > 0 {
		u := heap.Pop(&pq).(pqItem).idx
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
			push(v, nc.Manhattan(r.end))
		}
	}

	return r.resolve(found)
}

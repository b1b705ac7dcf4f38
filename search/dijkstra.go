package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// unreached is the distance sentinel for cells the frontier has not found.
const unreached = int64(math.MaxInt64)

// Dijkstra runs uniform-cost search from start to end. Cells are finalized in
// order of increasing accumulated cost (the cost of entering a cell is its
// Weight), ties broken by discovery order, so the returned path is optimal
// for any non-negative weights.
//
// Complexity: O(N log N) time for N cells, O(N) memory.
func Dijkstra(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	r, err := newRunner(g, AlgoDijkstra, start, end, opts)
	if err != nil {
		return nil, err
	}
	found, err := r.costSearch(false)
	if err != nil {
		return nil, err
	}

	return r.resolve(found)
}

// AStar runs heuristic-informed search from start to end: uniform-cost
// exploration ordered by accumulated cost plus the Manhattan estimate of the
// remaining cost. The heuristic is admissible and consistent on a
// 4-connected grid with non-negative weights, so the result is optimal.
//
// Complexity: O(N log N) time for N cells, O(N) memory.
func AStar(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	r, err := newRunner(g, AlgoAStar, start, end, opts)
	if err != nil {
		return nil, err
	}
	found, err := r.costSearch(true)
	if err != nil {
		return nil, err
	}

	return r.resolve(found)
}

// costSearch is the shared Dijkstra/A* loop; informed selects whether the
// frontier is ordered by g-cost alone or g-cost plus heuristic. It uses the
// lazy-decrease-key heap pattern: a strictly shorter route to a cell pushes
// a fresh entry, and entries for already-finalized cells are discarded when
// popped.
func (r *runner) costSearch(informed bool) (bool, error) {
	dist := make([]int64, r.g.Len())
	for i := range dist {
		dist[i] = unreached
	}
	dist[r.startIdx] = 0

	pq := make(cellPQ, 0, r.g.Len()/4)
	heap.Init(&pq)
	var seq int64
	push := func(i int, pri int64) {
		heap.Push(&pq, pqItem{idx: i, pri: pri, seq: seq})
		seq++
	}

	var startPri int64
	if informed {
		startPri = r.start.Manhattan(r.end)
	}
	push(r.startIdx, startPri)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pqItem)
		u := item.idx
		if r.visited[u] {
			continue // stale duplicate
		}
		if err := r.visit(u, 1); err != nil {
			return false, err
		}
		if u == r.endIdx {
			return true, nil
		}

		for _, nc := range r.neighbors(u) {
			v := r.g.Index(nc)
			cell := r.g.At(nc)
			if cell.Wall || r.visited[v] {
				continue
			}
			nd := dist[u] + cell.Weight
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			r.prev[v] = u
			pri := nd
			if informed {
				pri += nc.Manhattan(r.end)
			}
			push(v, pri)
		}
	}

	// Frontier emptied: the end is unreachable from the discovered region.
	return false, nil
}

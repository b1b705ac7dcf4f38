package search

import "github.com/katalvlaran/gridpath/grid"

// dfsSteps is the fixed exploration order: up, down, left, right.
var dfsSteps = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// dfsFrame is one explicit stack frame: a cell and the next neighbor
// direction to try. Using frames instead of recursion keeps memory bounded
// on large grids and makes the suspension points explicit.
type dfsFrame struct {
	idx  int
	next int // next index into dfsSteps
}

// DFS runs depth-first search from start to end, descending into the first
// unvisited open neighbor in fixed up/down/left/right order and backtracking
// when a branch is exhausted. The first path that reaches the end is
// returned; it carries no length guarantee.
//
// Complexity: O(N) time for N cells, O(N) memory.
func DFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	r, err := newRunner(g, AlgoDFS, start, end, opts)
	if err != nil {
		return nil, err
	}

	stack := make([]dfsFrame, 0, r.g.Len()/4)
	stack = append(stack, dfsFrame{idx: r.startIdx})
	if err = r.visit(r.startIdx, 1); err != nil {
		return nil, err
	}

	found := r.startIdx == r.endIdx
	for !found && len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(dfsSteps) {
			stack = stack[:len(stack)-1] // branch exhausted, backtrack
			continue
		}

		c := r.g.CoordAt(top.idx)
		step := dfsSteps[top.next]
		top.next++
		nc := grid.Coord{Row: c.Row + step[0], Col: c.Col + step[1]}
		if !r.g.InBounds(nc) {
			continue
		}
		v := r.g.Index(nc)
		if r.visited[v] || r.g.At(nc).Wall {
			continue
		}

		r.prev[v] = top.idx
		if err = r.visit(v, 1); err != nil {
			return nil, err
		}
		if v == r.endIdx {
			found = true
			break
		}
		stack = append(stack, dfsFrame{idx: v})
	}

	return r.resolve(found)
}

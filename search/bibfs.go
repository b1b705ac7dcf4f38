package search

import "github.com/katalvlaran/gridpath/grid"

// Side markers for bidirectional discovery.
const (
	sideNone  int8 = 0
	sideStart int8 = 1
	sideEnd   int8 = 2
)

// BiBFS runs breadth-first search simultaneously from the start and the end,
// alternating one dequeue per side per iteration, each side paced at half the
// usual visit pause. A cell discovered by one frontier that the other has
// already discovered is the meeting cell; the two predecessor chains are
// stitched there into a start→end path. Weights are ignored, so the result
// is optimal by cell count.
//
// Discovery is recorded when a neighbor is enqueued (not when dequeued),
// which is what makes the meeting test sound: a cell in the opposite side's
// queue has a complete predecessor chain back to its own terminal.
//
// Complexity: O(N) time for N cells, O(N) memory.
func BiBFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	r, err := newRunner(g, AlgoBiBFS, start, end, opts)
	if err != nil {
		return nil, err
	}

	if r.startIdx == r.endIdx {
		if err = r.visit(r.startIdx, 0.5); err != nil {
			return nil, err
		}

		return r.resolve(true)
	}

	n := r.g.Len()
	sideOf := make([]int8, n)
	prevEnd := make([]int, n)
	for i := range prevEnd {
		prevEnd[i] = -1
	}
	sideOf[r.startIdx] = sideStart
	sideOf[r.endIdx] = sideEnd

	startQ := []int{r.startIdx}
	endQ := []int{r.endIdx}

	meeting := -1
	for meeting < 0 && len(startQ) > 0 && len(endQ) > 0 {
		// One step outward from the start.
		u := startQ[0]
		startQ = startQ[1:]
		if err = r.visit(u, 0.5); err != nil {
			return nil, err
		}
		for _, nc := range r.neighbors(u) {
			v := r.g.Index(nc)
			if r.g.At(nc).Wall {
				continue
			}
			switch sideOf[v] {
			case sideNone:
				sideOf[v] = sideStart
				r.prev[v] = u
				startQ = append(startQ, v)
			case sideEnd:
				r.prev[v] = u
				meeting = v
			}
			if meeting >= 0 {
				break
			}
		}
		if meeting >= 0 {
			break
		}

		// One step outward from the end.
		u = endQ[0]
		endQ = endQ[1:]
		if err = r.visit(u, 0.5); err != nil {
			return nil, err
		}
		for _, nc := range r.neighbors(u) {
			v := r.g.Index(nc)
			if r.g.At(nc).Wall {
				continue
			}
			switch sideOf[v] {
			case sideNone:
				sideOf[v] = sideEnd
				prevEnd[v] = u
				endQ = append(endQ, v)
			case sideStart:
				prevEnd[v] = u
				meeting = v
			}
			if meeting >= 0 {
				break
			}
		}
	}

	if meeting < 0 {
		// The two explored regions never touched: no path exists.
		return r.finish(nil), nil
	}

	// Start-side chain gives start→meeting; the end-side chain is then
	// followed from the meeting cell's end-side parent out to the end.
	path, err := reconstruct(r.g, r.prev, meeting)
	if err != nil {
		return nil, err
	}
	for i, steps := prevEnd[meeting], 0; i >= 0; i = prevEnd[i] {
		if steps++; steps > n {
			return nil, ErrCorruptedPath
		}
		path = append(path, r.g.CoordAt(i))
	}

	if err = r.reveal(path); err != nil {
		return nil, err
	}

	return r.finish(path), nil
}

package search

// pqItem is one frontier entry: a cell index, its ordering priority, and the
// sequence number it was pushed with. seq gives equal-priority entries an
// explicit total order (first discovered wins), so visit order never depends
// on heap internals.
type pqItem struct {
	idx int
	pri int64
	seq int64
}

// cellPQ is a min-heap of pqItem ordered by (pri, seq) ascending. Algorithms
// use the lazy-decrease-key pattern: improved priorities push duplicates, and
// stale entries are skipped when popped (checked against the visited set).
type cellPQ []pqItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].pri != pq[j].pri {
		return pq[i].pri < pq[j].pri
	}

	return pq[i].seq < pq[j].seq
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Package search implements six traversal strategies over a grid.Grid and a
// single run contract shared by all of them.
//
// What
//
//   - Run(g, algo, start, end, opts...) dispatches on the closed Algorithm
//     enum; Dijkstra, AStar, BFS, DFS, Greedy, and BiBFS are the direct
//     entry points.
//   - Every run returns a Result: the start→end path (empty when none
//     exists), the visitation order, and summary Stats.
//   - An unreachable end is a normal negative result, never an error; errors
//     are reserved for contract violations (nil grid, out-of-bounds or
//     walled terminals, bad options) and cancellation.
//
// Guarantees
//
//   - Dijkstra and AStar return cost-optimal paths for non-negative weights;
//     BFS and BiBFS return cell-count-optimal paths (weights ignored); DFS
//     and Greedy return the first path found with no length guarantee.
//   - Ties in every priority frontier break by discovery order, and
//     neighbors always expand up/down/left/right, so unseeded runs are fully
//     deterministic: same grid in, same Result out.
//   - Predecessors live in a flat index-keyed table, never inside cells;
//     reconstruction is a backward walk with a cycle guard.
//
// Animation
//
//	Registering WithOnUpdate turns on paced animation: after every visit the
//	host receives a deep grid snapshot, followed by a (101-speed) ms pause
//	((101-speed)/2 per side for BiBFS) for non-terminal cells, and the found
//	path is revealed one interior cell at a time at 50 ms per cell. Without
//	the callback a run is headless: identical Result, zero pauses. WithSleep
//	substitutes the pause primitive so tests animate at full speed.
//
// Cancellation
//
//	The WithContext context is checked at every visit and reveal step; a
//	cancelled run stops mutating the grid and returns ctx.Err().
//
// Complexity (N = grid cells)
//
//   - BFS, DFS, BiBFS: O(N) time, O(N) memory.
//   - Dijkstra, AStar, Greedy: O(N log N) time, O(N) memory.
//
// Usage
//
//	res, err := search.Run(g, search.AlgoAStar, start, end,
//	    search.WithContext(ctx),
//	    search.WithSpeed(80),
//	    search.WithOnUpdate(func(snap *grid.Grid) { render(snap) }),
//	)
//	if err != nil {
//	    // ErrNilGrid, ErrOutOfBounds, ErrTerminalIsWall,
//	    // ErrUnknownAlgorithm, ErrOptionViolation, or ctx.Err()
//	}
//	if !res.Stats.PathFound {
//	    // negative outcome: end not reachable
//	}
package search

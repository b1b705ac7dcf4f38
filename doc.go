// Package gridpath is an animatable pathfinding and maze toolkit for
// rectangular grids: search a board, watch the frontier spread, carve a
// labyrinth, then compare the algorithms head to head.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• Board primitives: walls, weighted terrain, start/end terminals
//		• Searches: Dijkstra, A*, BFS, DFS, Greedy Best-First, Bidirectional BFS
//		• Maze carving: Random, Recursive Division, Prim, Kruskal,
//		  Binary Tree, Sidewinder
//		• Animation hooks: snapshot callbacks with speed-scaled pacing
//		• Run history: a rolling buffer of per-algorithm statistics
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seeded mazes and total-order tie-breaking, every run repeatable
//   - Headless or animated – the same call drives a UI or a benchmark
//   - Cancellable – every long operation honors a context
//
// Everything is organized under five packages:
//
//	grid/    — the board: cells, walls, weights, terminals, snapshots
//	search/  — the six algorithms behind one Run entry point
//	maze/    — the six carving procedures behind one Generate entry point
//	history/ — rolling statistics buffer for algorithm comparison
//	cmd/     — gridpath-tui, a terminal front-end for the whole library
//
// Quick ASCII example:
//
//	S . . #        S → → #
//	# # . #   ⇒    # # ↓ #
//	. . . E        . . → E
//
//	a 3×4 board, one BFS call, one shortest path.
//
// Dive into the per-package doc.go files for semantics, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/gridpath
package gridpath

// Package maze implements six wall-construction procedures over a grid.Grid
// behind a single generation contract.
//
// What
//
//   - Generate(g, typ, opts...) returns a freshly carved grid; the input is
//     cloned, its walls and run state cleared, and start/end/weights
//     preserved. No procedure ever walls a terminal cell.
//   - Random: independent per-cell walls (p = WallProbability); the one
//     procedure that may disconnect start from end.
//   - Division: recursive chamber bisection with single-gap wall lines.
//   - Prim: randomized frontier growth from one seed on the 2-step lattice.
//   - Kruskal: randomized spanning tree of the lattice via union-find.
//   - BinaryTree, Sidewinder: biased single-pass lattice sweeps.
//
// Structure
//
//	Division, Prim, and Kruskal carve perfect mazes (lattice passages form a
//	spanning tree: one simple route between any two carved cells, zero
//	cycles; Division's tree lives on odd-sized grids). BinaryTree and
//	Sidewinder are trees with strong directional bias. Every structured
//	procedure finishes by tunneling a corridor to any terminal left boxed
//	in, so only Random can isolate start or end. A terminal corridor can
//	land beside two existing passages at once, which adds one local loop;
//	terminal-free grids keep the strict tree guarantee.
//
// Determinism
//
//	All randomness flows through the Options.Rand source; WithRand with a
//	fixed seed reproduces a maze exactly, animated or headless.
//
// Animation
//
//	Registering WithOnUpdate turns on paced construction snapshots at each
//	procedure's cadence (per row, per wall line, or per carved cell) with
//	pauses proportional to (101-speed) ms. Without the callback generation
//	is headless: identical maze, zero pauses. WithContext cancellation is
//	honored at every carve step.
//
// Errors
//
//   - ErrNilGrid         nil grid pointer.
//   - ErrUnknownType     identifier outside the closed Type enum.
//   - ErrOptionViolation invalid option (e.g. speed out of [1,100]).
//   - ctx.Err()          run cancelled mid-carve.
package maze

// Package grid provides the shared board model for the gridpath module:
// a rectangular arena of cells carrying wall, weight, start/end, and
// transient run-state flags.
//
// What
//
//   - Grid: rows×cols cells in one row-major arena slice (index = row*cols+col).
//   - Cell: Row/Col, Start/End/Wall flags, Weight (cost of entering),
//     transient Visited/Path flags written by the search package.
//   - Coord: (row, col) value with Manhattan distance.
//   - Neighbors: the up-to-4 orthogonal in-bounds neighbors of a cell,
//     always in up/down/left/right order.
//
// Invariants
//
//   - At most one start and one end cell per grid.
//   - A cell is never both a wall and a terminal (start/end).
//   - Row/Col are fixed for a cell's lifetime; the arena never reallocates,
//     so *Cell pointers from At stay valid.
//
// Concurrency
//
//	A Grid is not safe for concurrent mutation. One algorithm owns the grid
//	for the duration of a run; renderers consume Snapshot deep copies, which
//	share nothing with the live grid.
//
// Complexity
//
//   - All point operations (At, SetWall, SetStart, ...): O(1).
//   - Bulk operations (New, Clear*, Reset, Clone): O(rows×cols).
//
// Errors
//
//   - ErrBadDimensions  non-positive construction size.
//   - ErrOutOfBounds    coordinate outside the grid.
//   - ErrCellIsWall     start/end placed on a wall.
//   - ErrCellIsTerminal wall placed on start/end.
//   - ErrBadWeight      weight below 1.
package grid

// Package lattice treats the tcg board as a 4-connected graph of cells,
// giving the route and trajectory packages an independent, graph-theoretic
// view of the same lattice the grid value model describes.
//
// What:
//
//   - Lattice wraps a Width×Height board (Standard() is the 3×3 game board).
//   - Bounds checks, row-major cell indexing and orthogonal neighbourhoods.
//   - BFS distances and shortest-path counts between two cells.
//   - Path checks: every position on the board, every step either
//     stationary or to an orthogonal neighbour.
//
// Why:
//
//   - Direct routes are exactly the shortest paths of this graph, so
//     CountShortestPaths cross-checks the combinatorial enumerator.
//   - Composed trajectories must be walkable on the board; CheckPath states
//     that rule once.
//
// Complexity:
//
//   - Distances / CountShortestPaths: O(W×H×4), Memory: O(W×H).
//   - CheckPath: O(len(path)).
//
// Errors:
//
//   - ErrEmptyLattice: width or height below one.
//   - ErrOffLattice: a location outside the board.
//   - ErrDiscontinuous: two consecutive path positions are not adjacent.
package lattice

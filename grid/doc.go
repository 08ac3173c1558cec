// Package grid provides 2D coordinates, neighbour offsets and rectangular
// ASCII maps for puzzles whose state space lives on a grid.
//
// What:
//
//   - Point: an (X, Y) pair usable as a map key and as a search state field.
//   - Connectivity: Conn4 (N, E, S, W) or Conn8 (including diagonals).
//   - Map: an immutable copy of rectangular ASCII rows with wall detection and
//     marker lookup.
//
// Complexity:
//
//   - Parse: O(W×H) time and memory.
//   - InBounds, At, Open: O(1).
//   - Find: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid

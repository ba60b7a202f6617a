// Package grid implements a 2D array of byte cells addressed by vec.Position
// and governed by a boundary Policy.
//
// What:
//
//   - Grid stores one byte per cell, row-major, over an inclusive bounding box
//     TopLeft..BottomRight that need not start at the origin.
//   - Policy decides what happens outside the box:
//     Reject: reads and writes panic with ErrOutOfBounds (Get/Put return it).
//     Grow:   reads return the default; writes extend the box, filling new
//     cells with the default, then store the value.
//     Clamp:  reads return the default; writes are discarded.
//   - StepUpdate runs an automaton-style generation into a second buffer and
//     swaps the buffers, so a transition always observes the previous
//     generation.
//
// Why:
//
//   - Puzzle maps arrive as text blocks; simulations that spill past the
//     input (falling sand, spreading elves) need a box that grows on any side
//     while keeping every earlier position bound to the same cell.
//
// Complexity:
//
//   - At / Set inside the box: O(1).
//   - Growing Set: O(W×H) to rebuild the backing buffers. The box is always
//     the tightest one, so growth is never amortised.
//   - Count, StepUpdate, Positions, Regions: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      text or dimensions describe no cells.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds:    access outside the box under Reject.
//
// A Grid is not safe for concurrent mutation.
package grid

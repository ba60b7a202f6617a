// Package vec provides the integer 2D vocabulary shared by the grid, area
// and search packages: positions, displacement vectors and the canonical
// neighbour enumerations.
//
// What:
//
//   - Position is an (X, Y) coordinate; Direction is a (DX, DY) displacement.
//   - Positions add Directions, subtract into Directions and compare
//     lexicographically (X first, then Y).
//   - Rect and CastRay produce lazy, restartable iter.Seq sequences.
//   - Conn4 / Conn8 select 4- or 8-neighbour adjacency.
//
// Coordinates follow screen convention: X grows to the right, Y grows
// downward, so Up is (0, -1).
//
// Complexity:
//
//   - All arithmetic is O(1).
//   - Rect is O(W×H) when fully consumed; CastRay is unbounded and the caller
//     must stop it (break out of the range loop).
//
// Errors:
//
//   - ErrNotAxisAligned: LineTo was asked for a diagonal segment.
package vec

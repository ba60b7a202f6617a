// Package area implements axis-aligned rectangles with inclusive corners and
// the small amount of rectangle algebra callers need to reason about
// constraint regions.
//
// What:
//
//   - Area{TopLeft, BottomRight} covers every Position p with
//     TopLeft.X <= p.X <= BottomRight.X and TopLeft.Y <= p.Y <= BottomRight.Y.
//   - LeftOf, RightOf, Above and Below build half-planes by pinning the open
//     side to math.MinInt / math.MaxInt.
//   - Intersect / IntersectAll compute the overlap of rectangles and
//     half-planes, reporting ok=false for an empty overlap.
//
// Why:
//
//   - Intersecting four half-planes in rotated (u = x+y, v = x-y) coordinates
//     describes a diamond exactly, so a set of Areas can approximate regions
//     that are not rectangles in the original frame.
//
// Intersection laws:
//
//	Intersect(a, b) == Intersect(b, a)
//	Intersect(a, a) == (a, true)
//	Intersect(a, h) == (a, true) when the half-plane h contains a
//
// Half-plane sentinels are never added to or subtracted from, so no
// arithmetic on an Area overflows; Size reports ok=false instead of wrapping.
package area

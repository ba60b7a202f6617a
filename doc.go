// Package lvgrid is a toolkit for puzzle-style 2D grids: parse a text map,
// walk it with vector arithmetic, reason about rectangles and half-planes,
// and find cheapest routes with Dijkstra.
//
// 🚀 What is lvgrid?
//
//	A small set of focused packages:
//		• vec:       Position/Direction arithmetic, rays, rectangles, 4/8-connectivity
//		• area:      axis-aligned rectangles, half-planes and their intersections
//		• grid:      byte grids with a boundary policy (Reject, Grow, Clamp)
//		• search:    Dijkstra over a grid with caller-supplied costs and targets
//		• visualize: stream search progress to a render loop and PNG frames
//
// ✨ Why choose lvgrid?
//
//   - Screen coordinates everywhere: x grows right, y grows down
//   - Explicit boundaries: every grid says what happens outside its box
//   - Lazy iterators: rays and rectangles are restartable iter.Seq values
//   - Observable search: watch Consider/Visit events without touching the algorithm
//
// Layout:
//
//	vec/        - Position, Direction, Connectivity, Rect, CastRay
//	area/       - Area, LeftOf/RightOf/Above/Below, Intersect
//	grid/       - Grid, Policy, FromText, StepUpdate, Regions, Fingerprint
//	search/     - FindPath, FindPathObserved, Run, Result.PathTo
//	visualize/  - Channel, Run, Sink, PNGSink
//	examples/   - runnable demos
//
// Quick start:
//
//	g, _ := grid.FromText(input, grid.Reject())
//	start, _ := g.Find('S')
//	steps, err := search.FindPath(g, start,
//		func(g *grid.Grid, p vec.Position) bool { return g.At(p) == 'E' },
//		func(g *grid.Grid, from, to vec.Position) (int, bool) { return 1, g.At(to) != '#' },
//	)
package lvgrid

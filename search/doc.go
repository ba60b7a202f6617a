// Package search runs Dijkstra's shortest-path algorithm over a grid.Grid,
// with the edge cost and the goal supplied by the caller as functions.
//
// Overview:
//
//   - The search starts at a single position with cost 0 and expands the 4
//     axis-aligned in-bounds neighbours of every finalized position.
//   - CostFunc decides whether a move from -> to is allowed and what it costs;
//     a move it rejects is simply not an edge.
//   - TargetFunc marks acceptable goals. Any number of positions may qualify;
//     the answer is the cheapest of them. Goals are evaluated after the
//     queue is exhausted, over the full best-known-cost table, so the
//     predicate may depend on anything the caller likes.
//
// When to use:
//
//   - "distance from S to E" as well as "distance from E to the nearest 'a'",
//     on height maps, mazes and cost fields held in a grid.Grid.
//
// Implementation notes:
//
//   - container/heap min-heap ordered by cost, ties broken by
//     vec.Position.Compare (affects order, never the result).
//   - Lazy decrease-key: an improved neighbour is pushed again and the
//     outdated entry is discarded when popped. Stale entries are expected.
//   - Relaxation happens only on strict improvement.
//
// Observation:
//
//   - WithObserver / FindPathObserved call an Observer synchronously with
//     Consider when a neighbour's tentative cost improves and Visit when a
//     position is popped and finalized. Observers must not modify the grid;
//     they never influence the result.
//
// Preconditions:
//
//   - CostFunc must never return a negative cost. This is not checked: a
//     negative edge silently breaks Dijkstra's optimality guarantee.
//   - The grid must not change while a search runs.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = W×H cells, E ≤ 4V candidate moves.
//   - Space: O(V) for the cost table plus O(E) heap entries in the worst case.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilCostFunc, ErrNilTarget: missing inputs.
//   - ErrStartOutOfBounds: the start lies outside the grid's box.
//   - ErrNoPath: no reachable position satisfies the target.
//   - ErrPathNotRecorded: PathTo without WithReturnPath.
//   - ErrBadMaxCost: WithMaxCost with a negative value (panics).
package search

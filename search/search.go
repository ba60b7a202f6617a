package search

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/vec"
)

// unreached marks a position with no known cost.
const unreached = math.MaxInt

// FindPath returns the minimum accumulated cost from start to any position
// satisfying target, moving between 4-adjacent in-bounds cells as allowed by
// cost. It returns ErrNoPath when no target is reachable.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. target must be non-nil (ErrNilTarget).
//  3. cost must be non-nil (ErrNilCostFunc).
//  4. start must be inside g (ErrStartOutOfBounds).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func FindPath(g *grid.Grid, start vec.Position, target TargetFunc, cost CostFunc, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if target == nil {
		return 0, ErrNilTarget
	}
	res, err := Run(g, start, cost, opts...)
	if err != nil {
		return 0, err
	}
	best, _, err := res.Min(target)
	return best, err
}

// FindPathObserved is FindPath reporting Consider and Visit events to obs.
// The observer does not affect the returned cost.
func FindPathObserved(g *grid.Grid, start vec.Position, target TargetFunc, cost CostFunc, obs Observer, opts ...Option) (int, error) {
	return FindPath(g, start, target, cost, append(slices.Clip(opts), WithObserver(obs))...)
}

// Run executes the search from start until the queue is exhausted and returns
// the table of best known costs. It is the building block of FindPath for
// callers that need several goals or the route itself.
func Run(g *grid.Grid, start vec.Position, cost CostFunc, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if cost == nil {
		return nil, ErrNilCostFunc
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}

	tl, _, _ := g.Bounds()
	n := g.Width() * g.Height()
	r := &runner{
		g:       g,
		cost:    cost,
		options: cfg,
		res: &Result{
			g:       g,
			start:   start,
			topLeft: tl,
			width:   g.Width(),
			best:    make([]int, n),
		},
		pq: make(stateQueue, 0, n),
	}
	if cfg.ReturnPath {
		r.res.prev = make([]int, n)
	}

	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *grid.Grid
	cost    CostFunc
	options Options
	res     *Result
	pq      stateQueue
}

// init marks every cell unreached and seeds the heap with the start at cost 0.
func (r *runner) init() {
	for i := range r.res.best {
		r.res.best[i] = unreached
	}
	for i := range r.res.prev {
		r.res.prev[i] = -1
	}
	r.res.best[r.res.index(r.res.start)] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, pathState{pos: r.res.start, cost: 0})
}

// process pops states in cost order until the heap is empty. A popped state
// whose cost is above the recorded best is stale and is dropped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		st := heap.Pop(&r.pq).(pathState)
		if st.cost > r.res.best[r.res.index(st.pos)] {
			continue
		}
		r.options.Observer(r.g, Visit, st.pos, st.cost)
		r.relax(st)
	}
}

// relax offers the 4 axis-aligned in-bounds neighbours of a finalized state
// to the cost function and pushes every strict improvement.
func (r *runner) relax(st pathState) {
	from := r.res.index(st.pos)
	for _, d := range vec.Dirs4() {
		next := st.pos.Add(d)
		if !r.g.InBounds(next) {
			continue
		}
		step, ok := r.cost(r.g, st.pos, next)
		if !ok {
			continue
		}
		total := st.cost + step
		if total > r.options.MaxCost {
			continue
		}
		i := r.res.index(next)
		if total >= r.res.best[i] {
			continue
		}
		r.res.best[i] = total
		if r.res.prev != nil {
			r.res.prev[i] = from
		}
		r.options.Observer(r.g, Consider, next, total)
		heap.Push(&r.pq, pathState{pos: next, cost: total})
	}
}

// pathState is a heap entry: a position and the cost it was reached with.
type pathState struct {
	pos  vec.Position
	cost int
}

// stateQueue is a min-heap of pathState ordered by cost, then position.
// Outdated entries stay in the heap until popped (lazy decrease-key).
type stateQueue []pathState

// Len returns the number of items in the heap.
func (pq stateQueue) Len() int { return len(pq) }

// Less orders by ascending cost; equal costs fall back to position order.
func (pq stateQueue) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].pos.Compare(pq[j].pos) < 0
}

// Swap swaps two elements in the heap.
func (pq stateQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a pathState.
func (pq *stateQueue) Push(x any) { *pq = append(*pq, x.(pathState)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *stateQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

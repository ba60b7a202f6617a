package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/vec"
)

// Result is the best-known-cost table of a finished search. It refers to the
// grid it was computed on and the grid's box at that time.
type Result struct {
	g       *grid.Grid
	start   vec.Position
	topLeft vec.Position
	width   int
	best    []int // unreached where no cost is known
	prev    []int // predecessor index, -1 for none; nil unless ReturnPath
}

func (r *Result) index(p vec.Position) int {
	return (p.Y-r.topLeft.Y)*r.width + (p.X - r.topLeft.X)
}

func (r *Result) position(i int) vec.Position {
	return vec.Pos(r.topLeft.X+i%r.width, r.topLeft.Y+i/r.width)
}

func (r *Result) inside(p vec.Position) bool {
	h := len(r.best) / r.width
	return p.InsideRect(r.topLeft, vec.Pos(r.topLeft.X+r.width-1, r.topLeft.Y+h-1))
}

// Start returns the source position of the search.
func (r *Result) Start() vec.Position { return r.start }

// Cost returns the minimum cost from the start to p; ok is false if p was
// not reached or lies outside the searched box.
func (r *Result) Cost(p vec.Position) (int, bool) {
	if !r.inside(p) {
		return 0, false
	}
	c := r.best[r.index(p)]
	return c, c != unreached
}

// Reached returns how many positions have a known cost, the start included.
func (r *Result) Reached() int {
	n := 0
	for _, c := range r.best {
		if c != unreached {
			n++
		}
	}
	return n
}

// Min scans every reached position in row-major order and returns the lowest
// cost among those satisfying target, together with the first position that
// attains it. It returns ErrNoPath if none qualifies.
func (r *Result) Min(target TargetFunc) (int, vec.Position, error) {
	if target == nil {
		return 0, vec.Position{}, ErrNilTarget
	}
	bestCost, bestAt := unreached, -1
	for i, c := range r.best {
		if c >= bestCost {
			continue
		}
		if target(r.g, r.position(i)) {
			bestCost, bestAt = c, i
		}
	}
	if bestAt < 0 {
		return 0, vec.Position{}, ErrNoPath
	}
	return bestCost, r.position(bestAt), nil
}

// PathTo rebuilds one cheapest route from the start to dest, both included.
// It needs WithReturnPath; unreached destinations yield ErrNoPath.
func (r *Result) PathTo(dest vec.Position) ([]vec.Position, error) {
	if r.prev == nil {
		return nil, ErrPathNotRecorded
	}
	if _, ok := r.Cost(dest); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, dest)
	}
	var path []vec.Position
	for at := r.index(dest); at >= 0; at = r.prev[at] {
		path = append(path, r.position(at))
	}
	slices.Reverse(path)

	return path, nil
}

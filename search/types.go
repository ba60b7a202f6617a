package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/vec"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilCostFunc indicates that no cost function was supplied.
	ErrNilCostFunc = errors.New("search: cost function is nil")

	// ErrNilTarget indicates that no target predicate was supplied.
	ErrNilTarget = errors.New("search: target predicate is nil")

	// ErrStartOutOfBounds indicates that the start position is not inside the grid.
	ErrStartOutOfBounds = errors.New("search: start position out of bounds")

	// ErrNoPath indicates that no reachable position satisfies the target.
	ErrNoPath = errors.New("search: no path to any target")

	// ErrPathNotRecorded indicates that predecessors were not kept (see WithReturnPath).
	ErrPathNotRecorded = errors.New("search: predecessors not recorded")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")
)

// CostFunc returns the cost of moving from the already reached position from
// to the adjacent in-bounds position to, or ok=false if the move is not
// allowed. Costs must be non-negative.
type CostFunc func(g *grid.Grid, from, to vec.Position) (cost int, ok bool)

// TargetFunc reports whether p is an acceptable goal.
type TargetFunc func(g *grid.Grid, p vec.Position) bool

// VisitKind distinguishes the two observation points of the search.
type VisitKind int

const (
	// Consider is reported when a neighbour's tentative cost strictly improves.
	Consider VisitKind = iota
	// Visit is reported when a position is popped with its final cost.
	Visit
)

// String implements fmt.Stringer.
func (k VisitKind) String() string {
	switch k {
	case Consider:
		return "Consider"
	case Visit:
		return "Visit"
	default:
		return fmt.Sprintf("VisitKind(%d)", int(k))
	}
}

// Observer receives search events. For Consider, cost is the new tentative
// cost of p; for Visit it is the final cost of p.
type Observer func(g *grid.Grid, kind VisitKind, p vec.Position, cost int)

// Options configures a search.
//
// Observer  : called on Consider and Visit; no-op by default.
// ReturnPath: keep predecessors so Result.PathTo can rebuild a route.
// MaxCost   : moves whose total would exceed MaxCost are not relaxed.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	Observer   Observer
	ReturnPath bool
	MaxCost    int
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the defaults: no-op observer, no predecessors, no cost cap.
func DefaultOptions() Options {
	return Options{
		Observer:   func(*grid.Grid, VisitKind, vec.Position, int) {},
		ReturnPath: false,
		MaxCost:    math.MaxInt,
	}
}

// WithObserver registers obs for Consider and Visit events. A nil obs is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithReturnPath keeps a predecessor table in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost stops relaxing moves whose accumulated cost would exceed max.
// Positions beyond the cap are reported as unreached.
// Panics with ErrBadMaxCost for a negative max.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

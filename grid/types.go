package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates an access outside the box of a Reject grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Kind enumerates the boundary policies.
type Kind int

const (
	// KindReject treats any out-of-bounds access as a precondition violation.
	KindReject Kind = iota
	// KindGrow extends the grid on out-of-bounds writes.
	KindGrow
	// KindClamp reads a default and drops writes outside the grid.
	KindClamp
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindReject:
		return "Reject"
	case KindGrow:
		return "Grow"
	case KindClamp:
		return "Clamp"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Policy is the boundary behaviour of a Grid together with the default value
// that Grow and Clamp report for cells outside the box. The zero Policy is Reject.
type Policy struct {
	kind Kind
	def  byte
}

// Reject returns the policy that refuses out-of-bounds access.
func Reject() Policy { return Policy{kind: KindReject} }

// Grow returns the policy that extends the grid on writes and reads def outside it.
func Grow(def byte) Policy { return Policy{kind: KindGrow, def: def} }

// Clamp returns the policy that reads def outside the grid and discards writes there.
func Clamp(def byte) Policy { return Policy{kind: KindClamp, def: def} }

// Kind reports which policy p is.
func (p Policy) Kind() Kind { return p.kind }

// Default returns the out-of-bounds value; it is zero for Reject.
func (p Policy) Default() byte { return p.def }

// String implements fmt.Stringer, e.g. "Grow('.')".
func (p Policy) String() string {
	if p.kind == KindReject {
		return p.kind.String()
	}
	return fmt.Sprintf("%s(%q)", p.kind, p.def)
}

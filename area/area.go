package area

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvgrid/vec"
)

// Area is an axis-aligned rectangle with inclusive corners.
// A non-empty Area has TopLeft <= BottomRight on both axes.
type Area struct {
	TopLeft     vec.Position
	BottomRight vec.Position
}

// New returns the Area spanned by topLeft and bottomRight. The corners are
// taken as given; use Intersect to normalise arbitrary boxes.
func New(topLeft, bottomRight vec.Position) Area {
	return Area{TopLeft: topLeft, BottomRight: bottomRight}
}

// LeftOf returns every position with X <= x.
func LeftOf(x int) Area {
	return New(vec.Pos(math.MinInt, math.MinInt), vec.Pos(x, math.MaxInt))
}

// RightOf returns every position with X >= x.
func RightOf(x int) Area {
	return New(vec.Pos(x, math.MinInt), vec.Pos(math.MaxInt, math.MaxInt))
}

// Above returns every position with Y <= y.
func Above(y int) Area {
	return New(vec.Pos(math.MinInt, math.MinInt), vec.Pos(math.MaxInt, y))
}

// Below returns every position with Y >= y.
func Below(y int) Area {
	return New(vec.Pos(math.MinInt, y), vec.Pos(math.MaxInt, math.MaxInt))
}

// Everything returns the whole representable plane.
func Everything() Area {
	return New(vec.Pos(math.MinInt, math.MinInt), vec.Pos(math.MaxInt, math.MaxInt))
}

// Intersect returns the overlap of a and b. ok is false when the overlap is
// empty on either axis.
func Intersect(a, b Area) (Area, bool) {
	tl := vec.Pos(max(a.TopLeft.X, b.TopLeft.X), max(a.TopLeft.Y, b.TopLeft.Y))
	br := vec.Pos(min(a.BottomRight.X, b.BottomRight.X), min(a.BottomRight.Y, b.BottomRight.Y))
	if tl.X > br.X || tl.Y > br.Y {
		return Area{}, false
	}
	return New(tl, br), true
}

// Intersect is the method form of the package-level Intersect.
func (a Area) Intersect(b Area) (Area, bool) {
	return Intersect(a, b)
}

// IntersectAll folds Intersect over areas. With no arguments it returns
// Everything(). It stops at the first empty overlap.
func IntersectAll(areas ...Area) (Area, bool) {
	acc := Everything()
	for _, a := range areas {
		var ok bool
		if acc, ok = Intersect(acc, a); !ok {
			return Area{}, false
		}
	}
	return acc, true
}

// Contains reports whether p lies inside a, bounds inclusive.
func (a Area) Contains(p vec.Position) bool {
	return p.InsideRect(a.TopLeft, a.BottomRight)
}

// Empty reports whether a covers no position.
func (a Area) Empty() bool {
	return a.TopLeft.X > a.BottomRight.X || a.TopLeft.Y > a.BottomRight.Y
}

// Corners returns the four corners in the order top-left, top-right,
// bottom-left, bottom-right.
func (a Area) Corners() [4]vec.Position {
	x0, y0 := a.TopLeft.X, a.TopLeft.Y
	x1, y1 := a.BottomRight.X, a.BottomRight.Y
	return [4]vec.Position{
		vec.Pos(x0, y0),
		vec.Pos(x1, y0),
		vec.Pos(x0, y1),
		vec.Pos(x1, y1),
	}
}

// Size returns the number of columns and rows covered by a. ok is false
// when a is empty or a dimension does not fit in an int (half-planes).
func (a Area) Size() (w, h int, ok bool) {
	if a.Empty() {
		return 0, 0, false
	}
	w, okW := span(a.TopLeft.X, a.BottomRight.X)
	h, okH := span(a.TopLeft.Y, a.BottomRight.Y)
	if !okW || !okH {
		return 0, 0, false
	}
	return w, h, true
}

// span returns hi-lo+1 when it is representable; lo <= hi is assumed.
func span(lo, hi int) (int, bool) {
	d := uint(hi) - uint(lo)
	if d >= math.MaxInt {
		return 0, false
	}
	return int(d) + 1, true
}

// Positions yields every position of a in row-major order.
// On a half-plane this is practically unbounded; the caller stops it.
func (a Area) Positions() iter.Seq[vec.Position] {
	return vec.Rect(a.TopLeft, a.BottomRight)
}

// String implements fmt.Stringer as "[(x0, y0) => (x1, y1)]".
func (a Area) String() string {
	return fmt.Sprintf("[%s => %s]", a.TopLeft, a.BottomRight)
}

package vec

import (
	"cmp"
	"fmt"
	"iter"
)

// Add returns p displaced by d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Sub returns the displacement that takes q to p, i.e. q.Add(p.Sub(q)) == p.
func (p Position) Sub(q Position) Direction {
	return Direction{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Manhattan returns |dx| + |dy| between p and q.
func (p Position) Manhattan(q Position) int {
	return p.Sub(q).Len1()
}

// InsideRect reports whether p lies in the rectangle spanned by low and high.
// Both bounds are inclusive.
func (p Position) InsideRect(low, high Position) bool {
	return p.X >= low.X && p.X <= high.X && p.Y >= low.Y && p.Y <= high.Y
}

// Compare orders positions lexicographically by X, then Y. It returns -1, 0 or +1.
// The ordering carries no spatial meaning; it exists for deterministic tie-breaks.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// String implements fmt.Stringer as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// CastRay yields p, p+d, p+2d, ... forever. The caller bounds it.
// The sequence is restartable: each range over it starts again from p.
func (p Position) CastRay(d Direction) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for cur := p; ; cur = cur.Add(d) {
			if !yield(cur) {
				return
			}
		}
	}
}

// LineTo yields every position on the axis-aligned segment between p and end,
// inclusive, in ascending coordinate order. Diagonal segments are rejected
// with ErrNotAxisAligned.
func (p Position) LineTo(end Position) (iter.Seq[Position], error) {
	switch {
	case p.X == end.X:
		lo, hi := min(p.Y, end.Y), max(p.Y, end.Y)
		return Rect(Position{X: p.X, Y: lo}, Position{X: p.X, Y: hi}), nil
	case p.Y == end.Y:
		lo, hi := min(p.X, end.X), max(p.X, end.X)
		return Rect(Position{X: lo, Y: p.Y}, Position{X: hi, Y: p.Y}), nil
	default:
		return nil, fmt.Errorf("%w: %s -> %s", ErrNotAxisAligned, p, end)
	}
}

// Rect yields every position of the inclusive rectangle low..high in row-major
// order: left to right, then top to bottom. It yields nothing when low exceeds
// high on either axis.
//
// Complexity: O(W×H) when fully consumed.
func Rect(low, high Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if low.X > high.X || low.Y > high.Y {
			return
		}
		for y := low.Y; ; y++ {
			for x := low.X; ; x++ {
				if !yield(Position{X: x, Y: y}) {
					return
				}
				// compare before incrementing so high.X == math.MaxInt terminates
				if x == high.X {
					break
				}
			}
			if y == high.Y {
				return
			}
		}
	}
}

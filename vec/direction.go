package vec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	dirs4 = [4]Direction{Right, Down, Left, Up}
	dirs8 = [8]Direction{UpLeft, Up, UpRight, Left, Right, DownLeft, Down, DownRight}
)

// Dirs4 returns the 4 axis-aligned directions in the order right, down, left, up.
// The returned slice is a fresh copy.
func Dirs4() []Direction {
	out := dirs4
	return out[:]
}

// Dirs8 returns all 8 neighbour directions in row-major order
// (top row left to right, then the middle row, then the bottom row).
func Dirs8() []Direction {
	out := dirs8
	return out[:]
}

// Add combines two displacements.
func (d Direction) Add(o Direction) Direction {
	return Direction{DX: d.DX + o.DX, DY: d.DY + o.DY}
}

// Scale multiplies both components by k.
func (d Direction) Scale(k int) Direction {
	return Direction{DX: d.DX * k, DY: d.DY * k}
}

// Neg returns the opposite displacement.
func (d Direction) Neg() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// TurnRight rotates d by 90° clockwise on screen (Y grows downward): Right -> Down -> Left -> Up.
func (d Direction) TurnRight() Direction {
	return Direction{DX: -d.DY, DY: d.DX}
}

// TurnLeft rotates d by 90° counter-clockwise on screen: Right -> Up -> Left -> Down.
func (d Direction) TurnLeft() Direction {
	return Direction{DX: d.DY, DY: -d.DX}
}

// Len1 returns the L1 (taxicab) length |dx| + |dy|.
func (d Direction) Len1() int {
	return Abs(d.DX) + Abs(d.DY)
}

// String implements fmt.Stringer as "<dx, dy>".
func (d Direction) String() string {
	return fmt.Sprintf("<%d, %d>", d.DX, d.DY)
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or +1 according to the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

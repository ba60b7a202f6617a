package vec

import (
	"errors"
	"fmt"
)

// ErrNotAxisAligned indicates that a segment is neither horizontal nor vertical.
var ErrNotAxisAligned = errors.New("vec: segment must be horizontal or vertical")

// Position is an integer 2D coordinate. It is a plain value type.
type Position struct {
	X, Y int
}

// Direction is an integer 2D displacement added to a Position.
type Direction struct {
	DX, DY int
}

// Pos returns the Position (x, y).
func Pos(x, y int) Position { return Position{X: x, Y: y} }

// Dir returns the Direction (dx, dy).
func Dir(dx, dy int) Direction { return Direction{DX: dx, DY: dy} }

// Origin is the (0, 0) position.
var Origin = Position{}

// Axis-aligned unit directions, screen coordinates.
var (
	Right = Direction{DX: 1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Up    = Direction{DX: 0, DY: -1}
)

// Diagonal unit directions.
var (
	UpLeft    = Direction{DX: -1, DY: -1}
	UpRight   = Direction{DX: 1, DY: -1}
	DownLeft  = Direction{DX: -1, DY: 1}
	DownRight = Direction{DX: 1, DY: 1}
)

// Connectivity selects neighbour adjacency: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses the 4 axis-aligned neighbours.
	Conn4 Connectivity = iota
	// Conn8 adds the 4 diagonal neighbours.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "Conn4"
	case Conn8:
		return "Conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Directions returns the neighbour offsets for c. Unknown values fall back to Conn4.
func (c Connectivity) Directions() []Direction {
	if c == Conn8 {
		return Dirs8()
	}
	return Dirs4()
}

package grid

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvgrid/vec"
)

// Grid is a rectangular array of byte cells over an inclusive bounding box.
// cells is row-major with len(cells) == width*height; next has the same
// length and only carries data during StepUpdate. A Grow grid with width 0
// has no bounding box yet.
type Grid struct {
	cells   []byte
	next    []byte
	width   int
	height  int
	topLeft vec.Position
	policy  Policy
}

// FromText builds a grid from newline-separated rows, one cell per byte, with
// the top-left cell at the origin. A single trailing newline and CRLF line
// endings are accepted. Rows of differing lengths fail with ErrNonRectangular;
// nothing is padded or truncated.
//
// Complexity: O(W×H).
func FromText(text string, p Policy) (*Grid, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	w := len(strings.TrimSuffix(lines[0], "\r"))
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]byte, 0, w*len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		cells = append(cells, line...)
	}

	return &Grid{
		cells:  cells,
		next:   make([]byte, len(cells)),
		width:  w,
		height: len(lines),
		policy: p,
	}, nil
}

// New builds a width×height grid at the origin with every cell set to fill.
func New(width, height int, fill byte, p Policy) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, width, height)
	}
	return &Grid{
		cells:  bytes.Repeat([]byte{fill}, width*height),
		next:   make([]byte, width*height),
		width:  width,
		height: height,
		policy: p,
	}, nil
}

// NewGrowable returns an empty Grow grid. Its bounding box is established by
// the first write; until then every read returns def.
func NewGrowable(def byte) *Grid {
	return &Grid{policy: Grow(def)}
}

// Policy returns the boundary policy of g.
func (g *Grid) Policy() Policy { return g.policy }

// Width returns the number of columns; 0 for an empty growable grid.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows; 0 for an empty growable grid.
func (g *Grid) Height() int { return g.height }

// Bounds returns the inclusive bounding box. ok is false while an empty
// growable grid has no box yet.
func (g *Grid) Bounds() (topLeft, bottomRight vec.Position, ok bool) {
	if g.width == 0 {
		return vec.Position{}, vec.Position{}, false
	}
	return g.topLeft, g.bottomRight(), true
}

func (g *Grid) bottomRight() vec.Position {
	return vec.Pos(g.topLeft.X+g.width-1, g.topLeft.Y+g.height-1)
}

// InBounds reports whether p addresses a backing cell.
func (g *Grid) InBounds(p vec.Position) bool {
	return g.width > 0 && p.InsideRect(g.topLeft, g.bottomRight())
}

// index maps an in-bounds p to its row-major slot.
func (g *Grid) index(p vec.Position) int {
	return (p.Y-g.topLeft.Y)*g.width + (p.X - g.topLeft.X)
}

// position is the inverse of index.
func (g *Grid) position(i int) vec.Position {
	return vec.Pos(g.topLeft.X+i%g.width, g.topLeft.Y+i/g.width)
}

// Get returns the cell at p. Outside the box it returns the policy default,
// or ErrOutOfBounds under Reject. Get never changes g.
func (g *Grid) Get(p vec.Position) (byte, error) {
	if g.InBounds(p) {
		return g.cells[g.index(p)], nil
	}
	if g.policy.kind == KindReject {
		return 0, g.outOfBounds(p)
	}
	return g.policy.def, nil
}

// At is Get for callers that have validated p; it panics with an error
// wrapping ErrOutOfBounds when a Reject grid is read outside its box.
func (g *Grid) At(p vec.Position) byte {
	v, err := g.Get(p)
	if err != nil {
		panic(err)
	}
	return v
}

// Put stores v at p. Outside the box a Reject grid returns ErrOutOfBounds,
// a Clamp grid drops the write and a Grow grid first extends its box.
func (g *Grid) Put(p vec.Position, v byte) error {
	if !g.InBounds(p) {
		switch g.policy.kind {
		case KindReject:
			return g.outOfBounds(p)
		case KindClamp:
			return nil
		case KindGrow:
			g.growTo(p)
		}
	}
	g.cells[g.index(p)] = v
	return nil
}

// Set is Put for callers that have validated p; it panics with an error
// wrapping ErrOutOfBounds when a Reject grid is written outside its box.
func (g *Grid) Set(p vec.Position, v byte) {
	if err := g.Put(p, v); err != nil {
		panic(err)
	}
}

func (g *Grid) outOfBounds(p vec.Position) error {
	if g.width == 0 {
		return fmt.Errorf("%w: %s, grid is empty", ErrOutOfBounds, p)
	}
	return fmt.Errorf("%w: %s outside [%s => %s]", ErrOutOfBounds, p, g.topLeft, g.bottomRight())
}

// growTo extends the box to the tightest one containing both the old box and
// p. Existing rows are copied at their offset inside the new buffer so every
// previously valid position keeps its value, including after growth towards
// negative coordinates.
func (g *Grid) growTo(p vec.Position) {
	def := g.policy.def
	if g.width == 0 {
		g.topLeft = p
		g.width, g.height = 1, 1
		g.cells = []byte{def}
		g.next = make([]byte, 1)
		return
	}

	oldTL, oldBR := g.topLeft, g.bottomRight()
	tl := vec.Pos(min(oldTL.X, p.X), min(oldTL.Y, p.Y))
	br := vec.Pos(max(oldBR.X, p.X), max(oldBR.Y, p.Y))
	w, h := br.X-tl.X+1, br.Y-tl.Y+1

	cells := bytes.Repeat([]byte{def}, w*h)
	dx, dy := oldTL.X-tl.X, oldTL.Y-tl.Y
	for y := 0; y < g.height; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		copy(cells[(y+dy)*w+dx:], row)
	}

	g.cells = cells
	g.next = make([]byte, w*h)
	g.topLeft = tl
	g.width, g.height = w, h
}

// Positions yields every in-bounds position in row-major order. It yields
// nothing for an empty growable grid. The box is read when ranging starts.
func (g *Grid) Positions() iter.Seq[vec.Position] {
	return func(yield func(vec.Position) bool) {
		if g.width == 0 {
			return
		}
		for p := range vec.Rect(g.topLeft, g.bottomRight()) {
			if !yield(p) {
				return
			}
		}
	}
}

// Count returns how many cells currently hold v.
func (g *Grid) Count(v byte) int {
	return bytes.Count(g.cells, []byte{v})
}

// CountAdjacent returns how many of the 4 axis-aligned neighbours of p hold v.
// Neighbours outside the box are read with the policy's read semantics, so
// on a Reject grid p must not touch the border.
func (g *Grid) CountAdjacent(p vec.Position, v byte) int {
	return g.countAt(p, vec.Dirs4(), v)
}

// CountAround is CountAdjacent over all 8 neighbours.
func (g *Grid) CountAround(p vec.Position, v byte) int {
	return g.countAt(p, vec.Dirs8(), v)
}

func (g *Grid) countAt(p vec.Position, dirs []vec.Direction, v byte) int {
	n := 0
	for _, d := range dirs {
		if g.At(p.Add(d)) == v {
			n++
		}
	}
	return n
}

// Neighbors yields the in-bounds neighbours of p under conn.
func (g *Grid) Neighbors(p vec.Position, conn vec.Connectivity) iter.Seq[vec.Position] {
	return func(yield func(vec.Position) bool) {
		for _, d := range conn.Directions() {
			q := p.Add(d)
			if !g.InBounds(q) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// CastFind walks from one step past p in direction d and returns the first
// in-bounds position accepted by match. It reports false once the ray leaves
// the box, or immediately for the zero direction.
func (g *Grid) CastFind(p vec.Position, d vec.Direction, match func(*Grid, vec.Position) bool) (vec.Position, bool) {
	if d == (vec.Direction{}) {
		return vec.Position{}, false
	}
	for q := range p.Add(d).CastRay(d) {
		if !g.InBounds(q) {
			break
		}
		if match(g, q) {
			return q, true
		}
	}
	return vec.Position{}, false
}

// Find returns the first position in row-major order holding v.
func (g *Grid) Find(v byte) (vec.Position, bool) {
	i := bytes.IndexByte(g.cells, v)
	if i < 0 {
		return vec.Position{}, false
	}
	return g.position(i), true
}

// StepUpdate computes fn(g, p) for every in-bounds p into the second buffer,
// then swaps the buffers. fn therefore observes only the previous generation.
// fn must not write to g. It reports whether any cell changed.
//
// Complexity: O(W×H) calls to fn, no allocation.
func (g *Grid) StepUpdate(fn func(*Grid, vec.Position) byte) bool {
	changed := false
	i := 0
	for p := range g.Positions() {
		v := fn(g, p)
		if v != g.cells[i] {
			changed = true
		}
		g.next[i] = v
		i++
	}
	g.cells, g.next = g.next, g.cells
	return changed
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = bytes.Clone(g.cells)
	c.next = make([]byte, len(g.next))
	return &c
}

// String renders the grid one newline-terminated row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)
	for y := 0; y < g.height; y++ {
		sb.Write(g.cells[y*g.width : (y+1)*g.width])
		sb.WriteByte('\n')
	}
	return sb.String()
}

package grid

import "github.com/katalvlaran/lvgrid/vec"

// Regions finds every connected set of in-bounds cells whose value satisfies
// match, under conn adjacency. Regions are ordered by their first cell in
// row-major order; cells inside a region are in breadth-first order from it.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(conn vec.Connectivity, match func(byte) bool) [][]vec.Position {
	seen := make([]bool, len(g.cells))
	var regions [][]vec.Position

	for i0, v := range g.cells {
		if seen[i0] || !match(v) {
			continue
		}
		seen[i0] = true
		queue := []vec.Position{g.position(i0)}
		for qi := 0; qi < len(queue); qi++ {
			for q := range g.Neighbors(queue[qi], conn) {
				i := g.index(q)
				if seen[i] || !match(g.cells[i]) {
					continue
				}
				seen[i] = true
				queue = append(queue, q)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

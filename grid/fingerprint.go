package grid

import (
	"tailscale.com/util/deephash"

	"github.com/katalvlaran/lvgrid/vec"
)

// snapshot is the hashed view of a grid: its box and its cells, not its
// scratch buffer or policy.
type snapshot struct {
	TopLeft vec.Position
	Width   int
	Height  int
	Cells   []byte
}

// Fingerprint returns a hash of the box and cell contents. Two grids with the
// same fingerprint hold the same cells at the same positions, which lets
// simulations detect a repeated generation by keeping a set of sums.
func (g *Grid) Fingerprint() deephash.Sum {
	s := snapshot{
		TopLeft: g.topLeft,
		Width:   g.width,
		Height:  g.height,
		Cells:   g.cells,
	}
	return deephash.Hash(&s)
}

package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/search"
	"github.com/katalvlaran/lvgrid/vec"
)

// BenchmarkFindPath measures a full search on a random 300×300 digit field.
// Complexity: O((V + E) log V)
func BenchmarkFindPath(b *testing.B) {
	const n = 300
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n, '1', grid.Reject())
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for p := range g.Positions() {
		g.Set(p, byte('1'+rng.Intn(9)))
	}
	goal := vec.Pos(n-1, n-1)
	target := func(_ *grid.Grid, p vec.Position) bool { return p == goal }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.FindPath(g, vec.Origin, target, digitCost); err != nil {
			b.Fatal(err)
		}
	}
}

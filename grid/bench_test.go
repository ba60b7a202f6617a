package grid_test

import (
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/vec"
)

// BenchmarkStepUpdate measures one automaton generation on a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkStepUpdate(b *testing.B) {
	g, err := grid.New(500, 500, '.', grid.Clamp('.'))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	g.Set(vec.Pos(250, 250), '#')
	rule := func(g *grid.Grid, p vec.Position) byte {
		if g.CountAdjacent(p, '#')%2 == 1 {
			return '#'
		}
		return '.'
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.StepUpdate(rule)
	}
}

// BenchmarkGrowSpiral measures growth on all four sides of an empty grid.
func BenchmarkGrowSpiral(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := grid.NewGrowable('.')
		p, d := vec.Origin, vec.Right
		for step := 1; step <= 64; step++ {
			p = p.Add(d.Scale(step))
			g.Set(p, '#')
			d = d.TurnRight()
		}
	}
}

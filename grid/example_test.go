package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/vec"
)

// ExampleNewGrowable shows a grid extending towards negative coordinates
// while earlier cells stay where they were written.
func ExampleNewGrowable() {
	g := grid.NewGrowable('.')
	g.Set(vec.Pos(0, 0), 'A')
	g.Set(vec.Pos(-2, 1), 'B')

	tl, br, _ := g.Bounds()
	fmt.Println(tl, br)
	fmt.Print(g)
	// Output:
	// (-2, 0) (0, 1)
	// ..A
	// B..
}

// ExampleGrid_StepUpdate runs one generation of a spreading rule.
func ExampleGrid_StepUpdate() {
	g, _ := grid.FromText(".....\n..#..\n.....", grid.Clamp('.'))
	changed := g.StepUpdate(func(g *grid.Grid, p vec.Position) byte {
		if g.At(p) == '#' || g.CountAdjacent(p, '#') > 0 {
			return '#'
		}
		return '.'
	})
	fmt.Println(changed)
	fmt.Print(g)
	// Output:
	// true
	// ..#..
	// .###.
	// ..#..
}

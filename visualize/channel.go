package visualize

import (
	"context"
	"time"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/search"
	"github.com/katalvlaran/lvgrid/vec"
)

// Channel is the producer side of a visualisation. The nil *Channel is a
// valid no-op: it sends nothing and never sleeps.
type Channel struct {
	ctx context.Context
	out chan<- Message
}

// Active reports whether messages reach a render loop.
func (c *Channel) Active() bool {
	return c != nil && c.out != nil && c.ctx.Err() == nil
}

// send delivers m unless the render loop has been cancelled.
func (c *Channel) send(m Message) {
	if !c.Active() {
		return
	}
	select {
	case c.out <- m:
	case <-c.ctx.Done():
	}
}

// DrawGrid replaces the view with the whole box of g, coloured by colorFn.
// An empty growable grid draws nothing.
func (c *Channel) DrawGrid(g *grid.Grid, colorFn func(byte) Color) {
	if !c.Active() {
		return
	}
	tl, br, ok := g.Bounds()
	if !ok {
		return
	}
	c.DrawRegion(g, tl, br, colorFn)
}

// DrawRegion replaces the view with the box topLeft..bottomRight of g.
// Cells outside g are read with g's boundary policy.
func (c *Channel) DrawRegion(g *grid.Grid, topLeft, bottomRight vec.Position, colorFn func(byte) Color) {
	if !c.Active() {
		return
	}
	var pixels []Color
	for p := range vec.Rect(topLeft, bottomRight) {
		pixels = append(pixels, colorFn(g.At(p)))
	}
	c.send(Canvas{TopLeft: topLeft, BottomRight: bottomRight, Pixels: pixels})
}

// DrawPixel recolours a single position of the current view.
func (c *Channel) DrawPixel(p vec.Position, col Color) {
	c.send(Pixel{Pos: p, Color: col})
}

// Sleep pauses the producer for d so animations stay watchable. It returns
// immediately when the channel is inactive or the run is cancelled.
func (c *Channel) Sleep(d time.Duration) {
	if !c.Active() {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-c.ctx.Done():
	}
}

// SearchObserver returns a search.Observer painting considered positions
// with consider and finalized ones with visit.
func (c *Channel) SearchObserver(consider, visit Color) search.Observer {
	return func(_ *grid.Grid, kind search.VisitKind, p vec.Position, _ int) {
		if kind == search.Visit {
			c.DrawPixel(p, visit)
			return
		}
		c.DrawPixel(p, consider)
	}
}

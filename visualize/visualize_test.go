package visualize_test

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/search"
	"github.com/katalvlaran/lvgrid/vec"
	"github.com/katalvlaran/lvgrid/visualize"
)

var (
	black = visualize.Color{}
	white = visualize.Color{R: 0xff, G: 0xff, B: 0xff}
	red   = visualize.Color{R: 0xff}
	blue  = visualize.Color{B: 0xff}
)

var palette = visualize.Palette{'#': black, '.': white}

func quietLogger() (*logrus.Logger, *logtest.Hook) {
	l, hook := logtest.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	return l, hook
}

func TestNilChannelIsNoop(t *testing.T) {
	var c *visualize.Channel
	g, err := grid.FromText("#.", grid.Reject())
	require.NoError(t, err)

	assert.False(t, c.Active())
	c.DrawGrid(g, palette.Func(red))
	c.DrawPixel(vec.Origin, red)

	start := time.Now()
	c.Sleep(time.Hour)
	assert.Less(t, time.Since(start), time.Second, "inactive channel never sleeps")

	obs := c.SearchObserver(red, blue)
	obs(g, search.Visit, vec.Origin, 0)
}

func TestRun_DrawsGridAndPixels(t *testing.T) {
	l, _ := quietLogger()
	g, err := grid.FromText("#.\n..", grid.Reject())
	require.NoError(t, err)

	frame, err := visualize.Run(context.Background(), func(c *visualize.Channel) error {
		require.True(t, c.Active())
		c.DrawGrid(g, palette.Func(red))
		c.DrawPixel(vec.Pos(1, 1), blue)
		return nil
	}, visualize.WithLogger(l))
	require.NoError(t, err)
	require.NotNil(t, frame)

	assert.Equal(t, image.Rect(0, 0, 2, 2), frame.Rect)
	assert.Equal(t, black.RGBA(), frame.RGBAAt(0, 0))
	assert.Equal(t, white.RGBA(), frame.RGBAAt(1, 0))
	assert.Equal(t, white.RGBA(), frame.RGBAAt(0, 1))
	assert.Equal(t, blue.RGBA(), frame.RGBAAt(1, 1))
}

func TestRun_OffsetViewAndDroppedPixels(t *testing.T) {
	l, hook := quietLogger()
	g := grid.NewGrowable('.')
	g.Set(vec.Pos(-2, -2), '#')
	g.Set(vec.Pos(-1, -1), '.')

	frame, err := visualize.Run(context.Background(), func(c *visualize.Channel) error {
		c.DrawPixel(vec.Pos(0, 0), red) // before any canvas
		c.DrawGrid(g, palette.Func(red))
		c.DrawPixel(vec.Pos(-1, -2), blue)
		c.DrawPixel(vec.Pos(5, 5), blue) // outside the view
		return nil
	}, visualize.WithLogger(l), visualize.WithBuffer(0))
	require.NoError(t, err)

	assert.Equal(t, black.RGBA(), frame.RGBAAt(0, 0))
	assert.Equal(t, blue.RGBA(), frame.RGBAAt(1, 0))
	assert.Equal(t, white.RGBA(), frame.RGBAAt(1, 1))

	dropped := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "pixel dropped" {
			dropped++
			assert.Equal(t, "visualize", e.Data["component"])
		}
	}
	assert.Equal(t, 2, dropped)
}

func TestRun_SinkReceivesFrames(t *testing.T) {
	l, _ := quietLogger()
	g, err := grid.New(3, 1, '.', grid.Reject())
	require.NoError(t, err)

	var sizes []image.Rectangle
	sink := visualize.SinkFunc(func(frame *image.RGBA) error {
		sizes = append(sizes, frame.Rect)
		return nil
	})
	_, err = visualize.Run(context.Background(), func(c *visualize.Channel) error {
		c.DrawGrid(g, palette.Func(red)) // frame 1
		for x := 0; x < 3; x++ {
			c.DrawPixel(vec.Pos(x, 0), red) // frame 2 after the second pixel
		}
		return nil // frame 3 flushes the remaining pixel
	}, visualize.WithLogger(l), visualize.WithSink(sink), visualize.WithFrameEvery(2))
	require.NoError(t, err)
	assert.Len(t, sizes, 3)
}

func TestRun_SinkErrorStopsLoop(t *testing.T) {
	l, _ := quietLogger()
	g, err := grid.New(1, 1, '.', grid.Reject())
	require.NoError(t, err)
	boom := errors.New("disk full")

	_, err = visualize.Run(context.Background(), func(c *visualize.Channel) error {
		c.DrawGrid(g, palette.Func(red))
		for i := 0; i < 100; i++ {
			c.DrawPixel(vec.Origin, blue)
		}
		return nil
	}, visualize.WithLogger(l), visualize.WithSink(visualize.SinkFunc(func(*image.RGBA) error { return boom })))
	assert.ErrorIs(t, err, visualize.ErrSink)
	assert.ErrorIs(t, err, boom)
}

func TestRun_WorkerError(t *testing.T) {
	l, _ := quietLogger()
	boom := errors.New("parse failed")
	frame, err := visualize.Run(context.Background(), func(*visualize.Channel) error { return boom }, visualize.WithLogger(l))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, frame)
}

func TestRun_CancelledContextUnblocksWorker(t *testing.T) {
	l, _ := quietLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := visualize.Run(ctx, func(c *visualize.Channel) error {
		for i := 0; i < 1000; i++ {
			c.DrawPixel(vec.Origin, red)
		}
		c.Sleep(time.Hour)
		assert.False(t, c.Active())
		return nil
	}, visualize.WithLogger(l), visualize.WithBuffer(0))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchObserver_PaintsVisitedCells(t *testing.T) {
	l, _ := quietLogger()
	g, err := grid.FromText("..#\n.##\n...", grid.Reject())
	require.NoError(t, err)
	walk := func(g *grid.Grid, _, to vec.Position) (int, bool) { return 1, g.At(to) == '.' }
	goal := func(_ *grid.Grid, p vec.Position) bool { return p == vec.Pos(2, 2) }

	var d int
	frame, err := visualize.Run(context.Background(), func(c *visualize.Channel) error {
		c.DrawGrid(g, palette.Func(red))
		var err error
		d, err = search.FindPathObserved(g, vec.Origin, goal, walk, c.SearchObserver(red, blue))
		return err
	}, visualize.WithLogger(l))
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	for p := range g.Positions() {
		want := blue.RGBA()
		if g.At(p) == '#' {
			want = black.RGBA()
		}
		assert.Equal(t, want, frame.RGBAAt(p.X, p.Y), "pixel %s", p)
	}
}

func TestPNGSink(t *testing.T) {
	l, _ := quietLogger()
	dir := filepath.Join(t.TempDir(), "frames")
	sink, err := visualize.NewPNGSink(dir)
	require.NoError(t, err)
	g, err := grid.FromText("#.", grid.Reject())
	require.NoError(t, err)

	_, err = visualize.Run(context.Background(), func(c *visualize.Channel) error {
		c.DrawGrid(g, palette.Func(red))
		return nil
	}, visualize.WithLogger(l), visualize.WithSink(sink))
	require.NoError(t, err)
	require.Equal(t, 1, sink.Frames())

	f, err := os.Open(filepath.Join(dir, "frame-00001.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	r, g2, b, _ := img.At(1, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g2, b})
}

func TestPalette(t *testing.T) {
	fn := palette.Func(red)
	assert.Equal(t, black, fn('#'))
	assert.Equal(t, red, fn('?'))
	assert.Equal(t, uint8(0xff), red.RGBA().A)
}

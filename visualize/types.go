package visualize

import (
	"errors"
	"image/color"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvgrid/vec"
)

// Sentinel errors for the render loop.
var (
	// ErrBadCanvas is logged when a Canvas pixel count does not match its box.
	ErrBadCanvas = errors.New("visualize: canvas pixel count does not match its size")
	// ErrSink indicates that the frame sink failed.
	ErrSink = errors.New("visualize: sink failed")
)

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// RGBA converts c to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Palette maps cell bytes to colours.
type Palette map[byte]Color

// Func returns a colour function for DrawGrid that falls back to def for
// bytes missing from p.
func (p Palette) Func(def Color) func(byte) Color {
	return func(b byte) Color {
		if c, ok := p[b]; ok {
			return c
		}
		return def
	}
}

// Message is a drawing instruction sent from a Channel to the render loop.
type Message interface {
	message()
}

// Canvas replaces the view with the box TopLeft..BottomRight (inclusive).
// Pixels is row-major with one entry per position.
type Canvas struct {
	TopLeft     vec.Position
	BottomRight vec.Position
	Pixels      []Color
}

// Pixel recolours Pos in the current view.
type Pixel struct {
	Pos   vec.Position
	Color Color
}

func (Canvas) message() {}
func (Pixel) message()  {}

// Options configures Run.
//
// Title     : logged with every render-loop entry.
// Buffer    : capacity of the message channel; 0 makes every send synchronous.
// FrameEvery: present a frame after this many pixel updates (≥ 1).
// Sink      : receives presented frames; nil keeps them in memory only.
// Logger    : logrus logger for the render loop.
type Options struct {
	Title      string
	Buffer     int
	FrameEvery int
	Sink       Sink
	Logger     *logrus.Logger
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns a 4096-message buffer, a frame every 256 pixels,
// no sink and the standard logrus logger.
func DefaultOptions() Options {
	return Options{
		Title:      "lvgrid",
		Buffer:     4096,
		FrameEvery: 256,
		Logger:     logrus.StandardLogger(),
	}
}

// WithTitle names the run in log entries.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithBuffer sets the message channel capacity. Negative values are ignored.
func WithBuffer(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Buffer = n
		}
	}
}

// WithFrameEvery presents a frame after every n pixel updates. Values below 1 are ignored.
func WithFrameEvery(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.FrameEvery = n
		}
	}
}

// WithSink sends presented frames to s.
func WithSink(s Sink) Option {
	return func(o *Options) {
		o.Sink = s
	}
}

// WithLogger routes render-loop logs to l. A nil l is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

package visualize

import (
	"context"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvgrid/vec"
)

// Run starts worker on its own goroutine with an active Channel and renders
// its messages until the worker returns and the channel is drained. It
// returns the last frame (nil if nothing was drawn) and the first error of
// the worker or the render loop.
func Run(ctx context.Context, worker func(*Channel) error, opts ...Option) (*image.RGBA, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	msgs := make(chan Message, cfg.Buffer)
	eg, ctx := errgroup.WithContext(ctx)
	r := &renderer{
		sink:  cfg.Sink,
		every: cfg.FrameEvery,
		log:   cfg.Logger.WithFields(logrus.Fields{"component": "visualize", "title": cfg.Title}),
	}

	eg.Go(func() error {
		defer close(msgs)
		return worker(&Channel{ctx: ctx, out: msgs})
	})
	eg.Go(func() error {
		return r.loop(ctx, msgs)
	})

	err := eg.Wait()
	r.log.WithFields(logrus.Fields{"frames": r.frames, "dropped": r.dropped}).Debug("render loop finished")
	return r.frame, err
}

// renderer is the consumer side. It is owned by the render goroutine.
type renderer struct {
	frame   *image.RGBA
	topLeft vec.Position
	sink    Sink
	every   int
	pending int
	frames  int
	dropped int
	log     *logrus.Entry
}

// loop applies messages until msgs is closed or ctx is cancelled.
func (r *renderer) loop(ctx context.Context, msgs <-chan Message) error {
	r.log.Debug("render loop started")
	for {
		select {
		case m, ok := <-msgs:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if r.pending > 0 {
					return r.present()
				}
				return nil
			}
			if err := r.apply(m); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *renderer) apply(m Message) error {
	switch m := m.(type) {
	case Canvas:
		return r.canvas(m)
	case Pixel:
		return r.pixel(m)
	default:
		r.log.WithField("type", fmt.Sprintf("%T", m)).Warn("unknown message ignored")
		return nil
	}
}

// canvas replaces the frame buffer and presents it at once.
func (r *renderer) canvas(c Canvas) error {
	w, h := c.BottomRight.X-c.TopLeft.X+1, c.BottomRight.Y-c.TopLeft.Y+1
	if w <= 0 || h <= 0 || len(c.Pixels) != w*h {
		r.log.WithError(ErrBadCanvas).WithFields(logrus.Fields{"width": w, "height": h, "pixels": len(c.Pixels)}).Warn("canvas ignored")
		return nil
	}
	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, col := range c.Pixels {
		frame.SetRGBA(i%w, i/w, col.RGBA())
	}
	r.frame, r.topLeft = frame, c.TopLeft
	r.log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("canvas initialised")
	return r.present()
}

// pixel recolours one position; positions outside the view are dropped.
func (r *renderer) pixel(px Pixel) error {
	if r.frame == nil {
		r.drop(px, "no canvas")
		return nil
	}
	d := px.Pos.Sub(r.topLeft)
	if !image.Pt(d.DX, d.DY).In(r.frame.Rect) {
		r.drop(px, "outside view")
		return nil
	}
	r.frame.SetRGBA(d.DX, d.DY, px.Color.RGBA())
	r.pending++
	if r.pending >= r.every {
		return r.present()
	}
	return nil
}

func (r *renderer) drop(px Pixel, reason string) {
	r.dropped++
	r.log.WithFields(logrus.Fields{"pos": px.Pos.String(), "reason": reason}).Debug("pixel dropped")
}

// present hands the current frame to the sink.
func (r *renderer) present() error {
	r.pending = 0
	r.frames++
	if r.sink == nil || r.frame == nil {
		return nil
	}
	if err := r.sink.Present(r.frame); err != nil {
		r.log.WithError(err).WithField("frame", r.frames).Error("sink failed")
		return fmt.Errorf("%w: frame %d: %w", ErrSink, r.frames, err)
	}
	return nil
}

package visualize

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Sink receives presented frames. The frame is reused by the render loop
// after Present returns, so a Sink that keeps it must copy it.
type Sink interface {
	Present(frame *image.RGBA) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(frame *image.RGBA) error

// Present calls f(frame).
func (f SinkFunc) Present(frame *image.RGBA) error { return f(frame) }

// PNGSink writes every frame to dir as frame-00001.png, frame-00002.png, ...
type PNGSink struct {
	dir string
	n   int
}

// NewPNGSink creates dir if needed and returns a sink writing into it.
func NewPNGSink(dir string) (*PNGSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("visualize: create frame dir: %w", err)
	}
	return &PNGSink{dir: dir}, nil
}

// Present encodes frame as the next numbered PNG file.
func (s *PNGSink) Present(frame *image.RGBA) error {
	s.n++
	path := filepath.Join(s.dir, fmt.Sprintf("frame-%05d.png", s.n))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Frames returns how many frames have been written.
func (s *PNGSink) Frames() int { return s.n }

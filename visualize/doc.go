// Package visualize animates grid computations without coupling them to a
// display. A producer (typically a search) sends drawing messages through a
// Channel; a render loop on its own goroutine owns the frame buffer and hands
// finished frames to a Sink.
//
// What:
//
//   - Canvas initialises a W×H view with one colour per position.
//   - Pixel recolours a single position of the current view.
//   - Sleep is an advisory throttle; it only waits when a render loop exists.
//
// Flow is strictly one-way: the producer never reads render state back, and
// a nil *Channel is a valid no-op, so non-visual runs send nothing and never
// synchronise.
//
// Run wires a worker and the render loop together with errgroup: the worker's
// channel is closed when it returns, the loop drains it, and Run returns the
// last frame. Cancelling the context stops the loop; pending sends are then
// dropped instead of blocking the worker.
//
// Logging goes through logrus (WithLogger); pixels outside the current view
// are dropped and logged at debug level.
package visualize

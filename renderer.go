package scribe

import "context"

// Renderer is the sink a layout engine drives with a stream of render
// operations. Implementations may suspend arbitrarily (a network write, a
// buffered flush); the engine awaits each call before proceeding and checks
// ctx before issuing the next one.
//
// Push and pop calls are always balanced: for every PushAnnotation the
// engine eventually calls a matching PopAnnotation, in proper nesting order.
type Renderer[A any] interface {
	// Text emits a contiguous run of non-newline characters.
	Text(ctx context.Context, s string) error
	// NewLine emits a line terminator.
	NewLine(ctx context.Context) error
	// WhiteSpace emits n spaces. The engine guarantees n > 0.
	WhiteSpace(ctx context.Context, n int) error
	// PushAnnotation marks the start of a region carrying value.
	PushAnnotation(ctx context.Context, value A) error
	// PopAnnotation marks the end of the most recently pushed region.
	PopAnnotation(ctx context.Context) error
}

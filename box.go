package scribe

import "context"

// Box is an externally-rendered 2-D block embedded in a [Document] via
// [BoxDoc]. The engine reads only Width and Height for its fits-checks;
// rendering a row is delegated entirely to the box, bypassing the line
// buffer.
type Box[A any] interface {
	// Width is the box's column width, used for the engine's fits-check
	// the same way a flattened document's width is used.
	Width() int
	// Height is the number of rows RenderRow may be called with, 0..Height-1.
	Height() int
	// RenderRow renders a single row directly to r. The engine calls this
	// once per row in order, issuing a new line and the current nesting's
	// indentation between rows itself.
	RenderRow(ctx context.Context, row int, r Renderer[A]) error
}

package render

import (
	"context"

	"github.com/inkwell-go/scribe"
)

// AnnotationMap wraps another renderer, transforming annotation values
// through fn as they pass. It is cheaper than [scribe.MapAnnotations]
// because the layout engine's choices are already resolved by the time an
// annotation reaches the renderer, so fn runs exactly once per emitted
// push, not once per branch a [scribe.Choice] might have rebuilt.
type AnnotationMap[A, B any] struct {
	inner scribe.Renderer[B]
	fn    func(A) B
}

// NewAnnotationMap returns a renderer over A that forwards every
// non-annotation call to inner unchanged and maps each pushed annotation
// through fn before forwarding it.
func NewAnnotationMap[A, B any](inner scribe.Renderer[B], fn func(A) B) *AnnotationMap[A, B] {
	return &AnnotationMap[A, B]{inner: inner, fn: fn}
}

func (a *AnnotationMap[A, B]) Text(ctx context.Context, s string) error {
	return a.inner.Text(ctx, s)
}

func (a *AnnotationMap[A, B]) NewLine(ctx context.Context) error {
	return a.inner.NewLine(ctx)
}

func (a *AnnotationMap[A, B]) WhiteSpace(ctx context.Context, n int) error {
	return a.inner.WhiteSpace(ctx, n)
}

func (a *AnnotationMap[A, B]) PushAnnotation(ctx context.Context, value A) error {
	return a.inner.PushAnnotation(ctx, a.fn(value))
}

func (a *AnnotationMap[A, B]) PopAnnotation(ctx context.Context) error {
	return a.inner.PopAnnotation(ctx)
}

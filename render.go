package scribe

import (
	"bytes"
	"context"
)

// Render drives r with the instruction stream produced by laying out doc
// under opts. It blocks until the whole document has been rendered, ctx is
// canceled, or r returns an error.
func Render[A any](ctx context.Context, doc Document[A], r Renderer[A], opts LayoutOptions) error {
	if opts.LayoutMode == Simple {
		return renderSimple(ctx, doc, r)
	}
	e := newEngine(ctx, r, opts)
	return e.render(doc)
}

// ToString is a synchronous convenience wrapper around [Render] backed by
// an in-memory plain-text sink. It never suspends: annotations are
// discarded, matching [Document.Append]'s own in-memory nature.
func ToString[A any](doc Document[A], opts ...LayoutOptions) (string, error) {
	o := DefaultLayoutOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	var buf bytes.Buffer
	if err := Render[A](context.Background(), doc, &stringRenderer[A]{buf: &buf}, o); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// stringRenderer is ToString's in-memory sink; it never blocks and
// discards annotations, since ToString has no way to surface them.
type stringRenderer[A any] struct {
	buf *bytes.Buffer
}

func (s *stringRenderer[A]) Text(_ context.Context, text string) error {
	s.buf.WriteString(text)
	return nil
}

func (s *stringRenderer[A]) NewLine(_ context.Context) error {
	s.buf.WriteByte('\n')
	return nil
}

func (s *stringRenderer[A]) WhiteSpace(_ context.Context, n int) error {
	for i := 0; i < n; i++ {
		s.buf.WriteByte(' ')
	}
	return nil
}

func (s *stringRenderer[A]) PushAnnotation(_ context.Context, _ A) error { return nil }

func (s *stringRenderer[A]) PopAnnotation(_ context.Context) error { return nil }

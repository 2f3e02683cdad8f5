// Package render provides thin [scribe.Renderer] adapters: a plain-text
// sink and an annotation-mapping wrapper.
package render

import (
	"bufio"
	"context"
	"io"

	"github.com/inkwell-go/scribe"
)

var spaces128 = func() string {
	b := make([]byte, 128)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}()

// PlainText writes a [scribe.Document]'s text, whitespace, and newlines to
// an underlying [io.Writer]; annotations are discarded.
type PlainText[A any] struct {
	w *bufio.Writer
}

var _ scribe.Renderer[int] = (*PlainText[int])(nil)

// NewPlainText wraps w in a buffered [PlainText] renderer.
func NewPlainText[A any](w io.Writer) *PlainText[A] {
	return &PlainText[A]{w: bufio.NewWriter(w)}
}

// Flush flushes any buffered output to the underlying writer. Call it after
// [scribe.Render] returns.
func (p *PlainText[A]) Flush() error {
	return p.w.Flush()
}

func (p *PlainText[A]) Text(_ context.Context, s string) error {
	_, err := p.w.WriteString(s)
	return err
}

func (p *PlainText[A]) NewLine(_ context.Context) error {
	return p.w.WriteByte('\n')
}

func (p *PlainText[A]) WhiteSpace(_ context.Context, n int) error {
	for n > len(spaces128) {
		if _, err := p.w.WriteString(spaces128); err != nil {
			return err
		}
		n -= len(spaces128)
	}
	_, err := p.w.WriteString(spaces128[:n])
	return err
}

func (p *PlainText[A]) PushAnnotation(_ context.Context, _ A) error { return nil }

func (p *PlainText[A]) PopAnnotation(_ context.Context) error { return nil }

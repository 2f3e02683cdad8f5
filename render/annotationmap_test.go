package render_test

import (
	"context"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/inkwell-go/scribe/render"
)

type recordingRenderer struct {
	pushed []string
	texts  []string
	lines  int
	spaces int
}

func (r *recordingRenderer) Text(_ context.Context, s string) error {
	r.texts = append(r.texts, s)
	return nil
}
func (r *recordingRenderer) NewLine(context.Context) error { r.lines++; return nil }
func (r *recordingRenderer) WhiteSpace(_ context.Context, n int) error {
	r.spaces += n
	return nil
}
func (r *recordingRenderer) PushAnnotation(_ context.Context, value string) error {
	r.pushed = append(r.pushed, value)
	return nil
}
func (r *recordingRenderer) PopAnnotation(context.Context) error { return nil }

func TestAnnotationMapTransformsPushedValues(t *testing.T) {
	inner := &recordingRenderer{}
	m := render.NewAnnotationMap[int, string](inner, func(v int) string {
		switch v {
		case 1:
			return "one"
		default:
			return "other"
		}
	})

	require.NoError(t, m.PushAnnotation(context.Background(), 1))
	require.NoError(t, m.PushAnnotation(context.Background(), 2))
	require.EqualValuesf(t, len(inner.pushed), 2, "push count")
	assert.EqualValues(t, inner.pushed[0], "one")
	assert.EqualValues(t, inner.pushed[1], "other")
}

func TestAnnotationMapForwardsEverythingElseUnchanged(t *testing.T) {
	inner := &recordingRenderer{}
	m := render.NewAnnotationMap[int, string](inner, func(v int) string { return "x" })
	ctx := context.Background()

	require.NoError(t, m.Text(ctx, "hello"))
	require.NoError(t, m.WhiteSpace(ctx, 3))
	require.NoError(t, m.NewLine(ctx))
	require.NoError(t, m.PopAnnotation(ctx))

	require.EqualValuesf(t, len(inner.texts), 1, "text count")
	assert.EqualValues(t, inner.texts[0], "hello")
	assert.EqualValues(t, inner.spaces, 3)
	assert.EqualValues(t, inner.lines, 1)
}

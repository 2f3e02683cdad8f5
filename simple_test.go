package scribe

import (
	"context"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

func TestRenderSimpleIgnoresNestingAndAlignment(t *testing.T) {
	doc := Text[int]("x").Append(Hanging(4, Text[int]("a").Append(HardLine[int]()).Append(Text[int]("b"))))

	got, err := ToString(doc, stringOpts(80, Simple))
	require.NoError(t, err)
	assert.EqualValues(t, got, "xa\nb")
}

func TestRenderSimpleAlwaysTakesChoiceSecond(t *testing.T) {
	doc := Choice(Text[int]("first"), Text[int]("second"))

	got, err := ToString(doc, stringOpts(80, Simple))
	require.NoError(t, err)
	assert.EqualValues(t, got, "second")
}

func TestRenderSimplePropagatesAnnotations(t *testing.T) {
	doc := Annotated("tag", Text[string]("x"))

	r := &recordingRenderer{}
	err := Render(context.Background(), doc, r, stringOpts(80, Simple))
	require.NoError(t, err)
	require.EqualValuesf(t, len(r.pushed), 1, "push count")
	assert.EqualValues(t, r.pushed[0], "tag")
}

package ansi_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/inkwell-go/scribe/ansi"
)

func TestRendererDisablesColorForNonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	r := ansi.NewRenderer(&buf)

	require.NoError(t, r.PushAnnotation(context.Background(), ansi.Keyword))
	require.NoError(t, r.Text(context.Background(), "if"))
	require.NoError(t, r.PopAnnotation(context.Background()))

	assert.EqualValues(t, buf.String(), "if")
}

func TestRendererForceEnablesColor(t *testing.T) {
	var buf bytes.Buffer
	r := ansi.NewRenderer(&buf)
	force := true
	r.Force = &force

	require.NoError(t, r.PushAnnotation(context.Background(), ansi.Keyword))
	require.NoError(t, r.Text(context.Background(), "if"))
	require.NoError(t, r.PopAnnotation(context.Background()))

	assert.EqualValues(t, buf.String(), "\x1b[35;1mif\x1b[0m")
}

func TestRendererForceDisablesColor(t *testing.T) {
	var buf bytes.Buffer
	r := ansi.NewRenderer(&buf)
	force := false
	r.Force = &force

	require.NoError(t, r.PushAnnotation(context.Background(), ansi.Error))
	require.NoError(t, r.Text(context.Background(), "boom"))
	require.NoError(t, r.PopAnnotation(context.Background()))

	assert.EqualValues(t, buf.String(), "boom")
}

func TestRendererPlainStyleEmitsNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := ansi.NewRenderer(&buf)
	force := true
	r.Force = &force

	require.NoError(t, r.PushAnnotation(context.Background(), ansi.Plain))
	require.NoError(t, r.Text(context.Background(), "plain"))
	require.NoError(t, r.PopAnnotation(context.Background()))

	assert.EqualValues(t, buf.String(), "plain")
}

func TestRendererWhiteSpaceAndNewLine(t *testing.T) {
	var buf bytes.Buffer
	r := ansi.NewRenderer(&buf)

	require.NoError(t, r.WhiteSpace(context.Background(), 3))
	require.NoError(t, r.NewLine(context.Background()))

	assert.EqualValues(t, buf.String(), "   \n")
}

func TestRendererNestedAnnotationsResetAfterEachPop(t *testing.T) {
	var buf bytes.Buffer
	r := ansi.NewRenderer(&buf)
	force := true
	r.Force = &force
	ctx := context.Background()

	require.NoError(t, r.PushAnnotation(ctx, ansi.String))
	require.NoError(t, r.Text(ctx, "outer"))
	require.NoError(t, r.PushAnnotation(ctx, ansi.Number))
	require.NoError(t, r.Text(ctx, "inner"))
	require.NoError(t, r.PopAnnotation(ctx))
	require.NoError(t, r.Text(ctx, "tail"))
	require.NoError(t, r.PopAnnotation(ctx))

	assert.EqualValues(t, buf.String(),
		"\x1b[32mouter\x1b[36minner\x1b[0mtail\x1b[0m")
}

package scribe

import (
	"context"

	"github.com/inkwell-go/scribe/internal/assert"
)

// renderSimple walks the document directly with no choice resolution and no
// backtracking: every [Choice] always takes its second (non-flat) branch,
// nesting and alignment are ignored entirely. It is used for
// machine-readable output where layout quality does not matter and the
// one-line-lookahead engine's cost is not worth paying.
func renderSimple[A any](ctx context.Context, doc Document[A], r Renderer[A]) error {
	return simpleWalk(ctx, doc.n, r)
}

func simpleWalk[A any](ctx context.Context, n node[A], r Renderer[A]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch t := n.(type) {
	case emptyNode[A]:
		return nil
	case hardLineNode[A]:
		return r.NewLine(ctx)
	case whiteSpaceNode[A]:
		if t.amount == 0 {
			return nil
		}
		return r.WhiteSpace(ctx, t.amount)
	case textNode[A]:
		if t.s == "" {
			return nil
		}
		return r.Text(ctx, t.s)
	case boxNode[A]:
		for row := 0; row < t.box.Height(); row++ {
			if row > 0 {
				if err := r.NewLine(ctx); err != nil {
					return err
				}
			}
			if err := t.box.RenderRow(ctx, row, r); err != nil {
				return err
			}
		}
		return nil
	case appendNode[A]:
		if err := simpleWalk(ctx, t.left, r); err != nil {
			return err
		}
		return simpleWalk(ctx, t.right, r)
	case alternativeNode[A]:
		return simpleWalk(ctx, t.def, r)
	case choiceNode[A]:
		return simpleWalk(ctx, t.second, r)
	case flattenedNode[A]:
		return simpleWalk(ctx, t.inner, r)
	case nestedNode[A]:
		return simpleWalk(ctx, t.inner, r)
	case alignedNode[A]:
		return simpleWalk(ctx, t.inner, r)
	case annotatedNode[A]:
		if err := r.PushAnnotation(ctx, t.value); err != nil {
			return err
		}
		if err := simpleWalk(ctx, t.inner, r); err != nil {
			return err
		}
		return r.PopAnnotation(ctx)
	default:
		assert.That(false, "unknown document node type %T", n)
		return nil
	}
}

package scribe

import "github.com/inkwell-go/scribe/internal/assert"

// MapAnnotations rebuilds doc, replacing each annotation value through
// selector. A single original value may be replaced by zero or more new
// values; when there is more than one, they are ordered left-to-right
// outward — selector(v)[0] ends up outermost (closest to where v itself
// was), selector(v)[len-1] innermost (closest to the wrapped content).
//
// This is a deep copy: Alternative and Choice rebuild both branches, so
// selector may run more than once per original annotation. Prefer an
// [github.com/inkwell-go/scribe/render.AnnotationMap]-style
// renderer-side mapping when annotation replacement is the only change you
// need, since it resolves choices first and runs the mapping function
// exactly once per emitted annotation.
func MapAnnotations[A, B any](doc Document[A], selector func(A) []B) Document[B] {
	return mapDoc(doc, selector)
}

func mapDoc[A, B any](d Document[A], selector func(A) []B) Document[B] {
	switch t := d.n.(type) {
	case emptyNode[A]:
		return Empty[B]()
	case hardLineNode[A]:
		return HardLine[B]()
	case whiteSpaceNode[A]:
		return WhiteSpace[B](t.amount)
	case textNode[A]:
		return wrap[B](textNode[B]{s: t.s})
	case boxNode[A]:
		panic("scribe: MapAnnotations cannot map a document containing a Box; a Box's own annotations are that Box implementation's concern")
	case appendNode[A]:
		return mapDoc(wrap[A](t.left), selector).Append(mapDoc(wrap[A](t.right), selector))
	case alternativeNode[A]:
		return Alternative(mapDoc(wrap[A](t.def), selector), mapDoc(wrap[A](t.flattened), selector))
	case choiceNode[A]:
		return Choice(mapDoc(wrap[A](t.first), selector), mapDoc(wrap[A](t.second), selector))
	case flattenedNode[A]:
		return Flattened(mapDoc(wrap[A](t.inner), selector))
	case nestedNode[A]:
		inner := mapDoc(wrap[A](t.inner), selector)
		if t.hasAmount {
			return Nested(t.amount, inner)
		}
		return NestedDefault(inner)
	case alignedNode[A]:
		return Aligned(mapDoc(wrap[A](t.inner), selector))
	case annotatedNode[A]:
		inner := mapDoc(wrap[A](t.inner), selector)
		values := selector(t.value)
		result := inner
		for i := len(values) - 1; i >= 0; i-- {
			result = Annotated(values[i], result)
		}
		return result
	default:
		assert.That(false, "unknown document node type %T", d.n)
		return Document[B]{}
	}
}

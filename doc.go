// Package scribe implements a Wadler/Leijen-style pretty-printing engine.
//
// A [Document] is not a string but a value in an algebra of layouts: it
// describes a family of admissible renderings, and a layout engine picks
// among them the flattest one that still respects a page-width budget. The
// core type is generic over an annotation value A, which a caller can use to
// carry styling or syntax-highlighting information through to a [Renderer]
// without the algebra itself knowing anything about colors or fonts.
//
// Build a document with the constructors in this package ([Text],
// [WhiteSpace], [Append], [Grouped], [Indented], ...), then hand it to
// [Render] or [ToString] together with a [Renderer] and [LayoutOptions].
//
// # Acknowledgments
//
// The algebra and the backtracking layout algorithm follow the line of work
// started by Wadler's "A Prettier Printer" and refined by Leijen's
// wl-pprint/prettyprinter family of libraries.
package scribe

import "fmt"

// unflattenable marks a node whose subtree contains a [HardLine], so it has
// no finite flattened width. A [Flattened] wrapper does not change this,
// since a HardLine defeats flattening.
const unflattenable = -1

// node is the unexported interface every document variant implements. It is
// generic so the tree can carry a caller-supplied annotation type without
// type assertions at render time.
type node[A any] interface {
	// flatWidth returns the total printable width assuming every enclosed
	// line break flattens, or unflattenable if that is impossible.
	flatWidth() int
}

// Document is an immutable, persistent, shareable tree of layout
// primitives. The zero value is not useful; construct one with [Empty] or
// another constructor in this package.
type Document[A any] struct {
	n node[A]
}

func wrap[A any](n node[A]) Document[A] {
	return Document[A]{n: n}
}

// FlattenedWidth reports the document's precomputed flattened width and
// whether it has one (false means the subtree contains a [HardLine], even
// one inside a [Flattened] wrapper).
func (d Document[A]) FlattenedWidth() (int, bool) {
	w := d.n.flatWidth()
	return w, w != unflattenable
}

type emptyNode[A any] struct{}

func (emptyNode[A]) flatWidth() int { return 0 }

// Empty is a document with no text and no effect on layout. It is the
// identity element for [Document.Append].
func Empty[A any]() Document[A] {
	return wrap[A](emptyNode[A]{})
}

type hardLineNode[A any] struct{}

func (hardLineNode[A]) flatWidth() int { return unflattenable }

// HardLine is a mandatory line break. It defeats any enclosing [Flattened]:
// a document containing a HardLine can never render on a single line.
func HardLine[A any]() Document[A] {
	return wrap[A](hardLineNode[A]{})
}

type whiteSpaceNode[A any] struct{ amount int }

func (w whiteSpaceNode[A]) flatWidth() int { return w.amount }

// WhiteSpace is amount horizontal spaces. It panics if amount is negative.
func WhiteSpace[A any](amount int) Document[A] {
	if amount < 0 {
		panic(fmt.Sprintf("scribe: WhiteSpace amount must be non-negative, got %d", amount))
	}
	return wrap[A](whiteSpaceNode[A]{amount: amount})
}

type textNode[A any] struct{ s string }

func (t textNode[A]) flatWidth() int { return len(t.s) }

// Text is a run of text containing no newline. It panics if s contains
// '\n'; use [FromString] to convert a multi-line string into a document
// with flattenable line breaks.
func Text[A any](s string) Document[A] {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			panic(fmt.Sprintf("scribe: Text must not contain a newline, got %q", s))
		}
	}
	return wrap[A](textNode[A]{s: s})
}

type boxNode[A any] struct{ box Box[A] }

func (b boxNode[A]) flatWidth() int { return b.box.Width() }

// BoxDoc embeds an externally-rendered 2-D block. The engine only reads the
// box's Width and Height for layout decisions; rendering a row is delegated
// to the box itself.
func BoxDoc[A any](b Box[A]) Document[A] {
	return wrap[A](boxNode[A]{box: b})
}

type appendNode[A any] struct {
	left, right node[A]
	w           int
}

func (a appendNode[A]) flatWidth() int { return a.w }

// Append composes left and right sequentially. An empty operand is elided
// as an optimization; this does not change rendered output.
func (d Document[A]) Append(other Document[A]) Document[A] {
	if _, ok := d.n.(emptyNode[A]); ok {
		return other
	}
	if _, ok := other.n.(emptyNode[A]); ok {
		return d
	}
	lw := d.n.flatWidth()
	rw := other.n.flatWidth()
	w := unflattenable
	if lw != unflattenable && rw != unflattenable {
		w = lw + rw
	}
	return wrap[A](appendNode[A]{left: d.n, right: other.n, w: w})
}

// Append concatenates zero or more documents left to right, skipping Empty
// operands.
func Append[A any](ds ...Document[A]) Document[A] {
	result := Empty[A]()
	for _, d := range ds {
		result = result.Append(d)
	}
	return result
}

type alternativeNode[A any] struct {
	def, flattened node[A]
	w              int
}

func (a alternativeNode[A]) flatWidth() int { return a.w }

// Alternative renders def when the enclosing context is not flattened, and
// flattened when it is. The two branches may have different widths; see
// [LineOr] for the common case.
func Alternative[A any](def, flattened Document[A]) Document[A] {
	return wrap[A](alternativeNode[A]{def: def.n, flattened: flattened.n, w: flattened.n.flatWidth()})
}

type choiceNode[A any] struct {
	first, second node[A]
	w             int
}

func (c choiceNode[A]) flatWidth() int { return c.w }

// Choice tries first; if it would overflow the current line, second is used
// instead. Unlike [Alternative], both branches share the same abstract
// meaning — only their widths differ. See [Grouped] for the common case.
func Choice[A any](first, second Document[A]) Document[A] {
	return wrap[A](choiceNode[A]{first: first.n, second: second.n, w: first.n.flatWidth()})
}

type flattenedNode[A any] struct {
	inner node[A]
	w     int
}

func (f flattenedNode[A]) flatWidth() int { return f.w }

// Flattened renders inner as if every enclosed flattenable line break
// collapsed to its flat alternative.
func Flattened[A any](inner Document[A]) Document[A] {
	return wrap[A](flattenedNode[A]{inner: inner.n, w: inner.n.flatWidth()})
}

type nestedNode[A any] struct {
	amount    int
	hasAmount bool
	inner     node[A]
	w         int
}

func (n nestedNode[A]) flatWidth() int { return n.w }

// Nested increases the indent level by amount while rendering inner. It
// panics if amount is negative.
func Nested[A any](amount int, inner Document[A]) Document[A] {
	if amount < 0 {
		panic(fmt.Sprintf("scribe: Nested amount must be non-negative, got %d", amount))
	}
	return wrap[A](nestedNode[A]{amount: amount, hasAmount: true, inner: inner.n, w: inner.n.flatWidth()})
}

// NestedDefault increases the indent level by the engine's configured
// default indent ([LayoutOptions.DefaultNesting]) while rendering inner.
func NestedDefault[A any](inner Document[A]) Document[A] {
	return wrap[A](nestedNode[A]{hasAmount: false, inner: inner.n, w: inner.n.flatWidth()})
}

type alignedNode[A any] struct {
	inner node[A]
	w     int
}

func (a alignedNode[A]) flatWidth() int { return a.w }

// Aligned sets the indent level to the current column while rendering
// inner, so that wrapped lines line up under the block's first character.
func Aligned[A any](inner Document[A]) Document[A] {
	return wrap[A](alignedNode[A]{inner: inner.n, w: inner.n.flatWidth()})
}

type annotatedNode[A any] struct {
	value A
	inner node[A]
	w     int
}

func (a annotatedNode[A]) flatWidth() int { return a.w }

// Annotated wraps inner in push/pop events carrying value. Annotations are
// opaque to the engine; renderers interpret them (for styling, syntax
// highlighting, and similar concerns).
func Annotated[A any](value A, inner Document[A]) Document[A] {
	return wrap[A](annotatedNode[A]{value: value, inner: inner.n, w: inner.n.flatWidth()})
}

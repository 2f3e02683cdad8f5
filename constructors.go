package scribe

import "strings"

// LineOr is [Alternative] with [HardLine] as the default branch: a line
// break that renders as s when flattened.
func LineOr[A any](s string) Document[A] {
	return Alternative[A](HardLine[A](), Text[A](s))
}

// LineBreak is a line break that renders as a single space when flattened.
func LineBreak[A any]() Document[A] {
	return LineOr[A](" ")
}

// ZeroWidthLineBreak is a line break that renders as nothing when
// flattened.
func ZeroWidthLineBreak[A any]() Document[A] {
	return LineOr[A]("")
}

// LineBreakHint tries a single space first; if that does not fit on the
// current line, it breaks instead.
func LineBreakHint[A any]() Document[A] {
	return Choice(Text[A](" "), HardLine[A]())
}

// ZeroWidthLineBreakHint is [LineBreakHint] with an empty flat
// representation instead of a space.
func ZeroWidthLineBreakHint[A any]() Document[A] {
	return Choice(Text[A](""), HardLine[A]())
}

// Grouped tries to render d flat; if it does not fit, d is rendered with
// its own internal choices resolved normally. This is the Wadler "group"
// operation.
func Grouped[A any](d Document[A]) Document[A] {
	return Choice(Flattened(d), d)
}

// Indented prepends n spaces and sets the indent level to the resulting
// column for the remainder of d, so wrapped continuation lines line up
// under the first line of content rather than under the enclosing block.
func Indented[A any](n int, d Document[A]) Document[A] {
	return WhiteSpace[A](n).Append(Aligned(d))
}

// Hanging aligns d to the current column, then additionally nests it by n —
// useful for a "hanging indent" where wrapped lines sit n columns past the
// block's own start column.
func Hanging[A any](n int, d Document[A]) Document[A] {
	return Aligned(Nested(n, d))
}

// FromString splits s on '\n' and interleaves [LineBreak], so embedded line
// breaks are flattenable rather than mandatory.
func FromString[A any](s string) Document[A] {
	lines := strings.Split(s, "\n")
	parts := make([]Document[A], 0, len(lines)*2-1)
	for i, line := range lines {
		if i > 0 {
			parts = append(parts, LineBreak[A]())
		}
		parts = append(parts, Text[A](line))
	}
	return Append(parts...)
}

// UnsafeFromString wraps s directly as a single [Text] node without
// splitting on newlines. The caller must guarantee s contains no '\n'; this
// skips the per-byte scan [Text] performs.
func UnsafeFromString[A any](s string) Document[A] {
	return wrap[A](textNode[A]{s: s})
}

// Reflow splits s on whitespace and interleaves [LineBreakHint], so the
// words rewrap to fit the page width rather than preserving the source's
// original line breaks.
func Reflow[A any](s string) Document[A] {
	words := strings.Fields(s)
	if len(words) == 0 {
		return Empty[A]()
	}
	parts := make([]Document[A], 0, len(words)*2-1)
	for i, w := range words {
		if i > 0 {
			parts = append(parts, LineBreakHint[A]())
		}
		parts = append(parts, Text[A](w))
	}
	return Append(parts...)
}

// Separated intersperses sep between consecutive elements of ds.
func Separated[A any](sep Document[A], ds []Document[A]) Document[A] {
	result := Empty[A]()
	for i, d := range ds {
		if i > 0 {
			result = result.Append(sep)
		}
		result = result.Append(d)
	}
	return result
}

// SeparatedAndTerminated is [Separated] with an additional trailing sep
// after the last element.
func SeparatedAndTerminated[A any](sep Document[A], ds []Document[A]) Document[A] {
	result := Empty[A]()
	for _, d := range ds {
		result = result.Append(d).Append(sep)
	}
	return result
}

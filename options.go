package scribe

import "fmt"

// LayoutMode selects which layout algorithm [Render] uses.
type LayoutMode int

const (
	// Default is the stack-driven backtracking engine with one-line
	// lookahead (see §4.2 of the design).
	Default LayoutMode = iota
	// Simple performs a direct recursive tree walk with no backtracking;
	// every [Choice] always takes its second branch. Useful for
	// machine-readable output where layout quality does not matter.
	Simple
	// Smart is Default extended to defer flushing across [Aligned] blocks,
	// widening the engine's lookahead past a single line at the cost of
	// unbounded buffering within the aligned region.
	Smart
)

func (m LayoutMode) String() string {
	switch m {
	case Default:
		return "default"
	case Simple:
		return "simple"
	case Smart:
		return "smart"
	default:
		return fmt.Sprintf("LayoutMode(%d)", int(m))
	}
}

// PageWidth bounds how much a line may hold. A nil *PageWidth on
// [LayoutOptions] means unbounded: every [Choice] then picks its first
// branch and no line break is ever introduced by the engine.
type PageWidth struct {
	// Width is the total column budget per line, including indentation.
	Width int
	// RibbonRatio further bounds the non-indentation portion of a line to
	// Width * RibbonRatio columns. 1.0 disables the extra bound.
	RibbonRatio float64
}

// DefaultPageWidth is the conventional 80-column page with no extra ribbon
// restriction.
var DefaultPageWidth = PageWidth{Width: 80, RibbonRatio: 1.0}

// LayoutOptions configures a render.
type LayoutOptions struct {
	// PageWidth bounds line width; nil means unbounded.
	PageWidth *PageWidth
	// LayoutMode selects the layout algorithm.
	LayoutMode LayoutMode
	// DefaultNesting is the indent amount used by [NestedDefault].
	DefaultNesting int
	// StripTrailingWhitespace suppresses whitespace instructions that are
	// not followed by text before the next newline.
	StripTrailingWhitespace bool
}

// DefaultLayoutOptions returns the conventional options: an 80-column page,
// the Default layout mode, a 4-space default indent, and trailing
// whitespace stripped.
func DefaultLayoutOptions() LayoutOptions {
	pw := DefaultPageWidth
	return LayoutOptions{
		PageWidth:               &pw,
		LayoutMode:              Default,
		DefaultNesting:          4,
		StripTrailingWhitespace: true,
	}
}

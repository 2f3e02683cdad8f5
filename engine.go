package scribe

import (
	"context"

	"github.com/inkwell-go/scribe/internal/assert"
)

// stackItemKind tags a work-stack entry's payload.
type stackItemKind int

const (
	itemNode stackItemKind = iota
	itemSetNesting
	itemPopAnnotation
	itemEndFlatten
	itemChoicePoint
)

// choicePoint is a backtrack record: a snapshot of engine state taken right
// before trying a [Choice]'s first branch, plus enough bookkeeping to drive
// the branch's shared continuation forward once it succeeds.
type choicePoint[A any] struct {
	fallback            node[A]
	nesting             int
	lineBufferLen       int
	lineTextLen         int
	flatten             bool
	priorCanBacktrack   bool
	bufferUntilDeindent int
	resumeAt            int
	// spent marks a choice point whose fallback has already been pushed by
	// a backtrack; it must not be offered as a backtrack target again, but
	// it still participates in the resume_at continuation mechanism.
	spent bool
}

// stackItem is the work stack's single unified sum type (Design Notes §9
// prefers one sum over two parallel ones plus a trampoline).
type stackItem[A any] struct {
	kind    stackItemKind
	node    node[A]
	nesting int
	cp      *choicePoint[A]
}

// engine drives a [Renderer] with a stream of instructions computed from a
// document, using a stack-driven, single-line-lookahead backtracking
// algorithm. One engine renders exactly one document; it is not reused.
type engine[A any] struct {
	ctx   context.Context
	r     Renderer[A]
	opts  LayoutOptions
	smart bool

	stack      []stackItem[A]
	lineBuffer []instruction[A]

	flatten             bool
	nesting             int
	indentWritten       int
	lineTextLen         int
	canBacktrack        bool
	bufferUntilDeindent int

	cpPool []*choicePoint[A]
}

func newEngine[A any](ctx context.Context, r Renderer[A], opts LayoutOptions) *engine[A] {
	return &engine[A]{
		ctx:                 ctx,
		r:                   r,
		opts:                opts,
		smart:               opts.LayoutMode == Smart,
		bufferUntilDeindent: -1,
	}
}

func (e *engine[A]) render(doc Document[A]) error {
	e.push(stackItem[A]{kind: itemNode, node: doc.n})
	for len(e.stack) > 0 {
		if err := e.ctx.Err(); err != nil {
			return err
		}
		item := e.pop()
		if err := e.dispatch(item); err != nil {
			return err
		}
	}
	return e.flushLine(false)
}

func (e *engine[A]) push(item stackItem[A]) {
	e.stack = append(e.stack, item)
}

func (e *engine[A]) pop() stackItem[A] {
	n := len(e.stack) - 1
	item := e.stack[n]
	e.stack = e.stack[:n]
	return item
}

func (e *engine[A]) newChoicePoint() *choicePoint[A] {
	if n := len(e.cpPool); n > 0 {
		cp := e.cpPool[n-1]
		e.cpPool = e.cpPool[:n-1]
		*cp = choicePoint[A]{}
		return cp
	}
	return &choicePoint[A]{}
}

func (e *engine[A]) releaseChoicePoint(cp *choicePoint[A]) {
	cp.fallback = nil
	e.cpPool = append(e.cpPool, cp)
}

// willFit reports whether k more printable characters still satisfy the
// page-width and ribbon bounds for the current line.
func (e *engine[A]) willFit(k int) bool {
	pw := e.opts.PageWidth
	if pw == nil {
		return true
	}
	if e.indentWritten+e.lineTextLen+k > pw.Width {
		return false
	}
	return float64(e.lineTextLen+k) <= float64(pw.Width)*pw.RibbonRatio
}

// locate walks i past any contiguous ChoicePoint predecessors, following
// each one's resumeAt link, so nested Choices converge on a single shared
// continuation slot.
func (e *engine[A]) locate(i int) int {
	for i >= 0 && e.stack[i].kind == itemChoicePoint {
		i = e.stack[i].cp.resumeAt
	}
	return i
}

// backtrack unwinds the stack until it finds a live (non-spent) choice
// point, restores engine state from its snapshot, resets its continuation
// position, and pushes its fallback.
func (e *engine[A]) backtrack() {
	for {
		assert.That(len(e.stack) > 0, "couldn't backtrack")
		top := &e.stack[len(e.stack)-1]
		if top.kind == itemChoicePoint && !top.cp.spent {
			cp := top.cp
			cp.spent = true
			cp.resumeAt = e.locate(len(e.stack) - 2)
			e.nesting = cp.nesting
			e.lineBuffer = e.lineBuffer[:cp.lineBufferLen]
			e.lineTextLen = cp.lineTextLen
			e.flatten = cp.flatten
			e.canBacktrack = cp.priorCanBacktrack
			e.bufferUntilDeindent = cp.bufferUntilDeindent
			e.push(stackItem[A]{kind: itemNode, node: cp.fallback})
			return
		}
		e.stack = e.stack[:len(e.stack)-1]
	}
}

func (e *engine[A]) dispatch(item stackItem[A]) error {
	switch item.kind {
	case itemNode:
		return e.dispatchNode(item.node)
	case itemSetNesting:
		if e.bufferUntilDeindent >= 0 && item.nesting < e.bufferUntilDeindent {
			e.bufferUntilDeindent = -1
		}
		e.nesting = item.nesting
		return nil
	case itemPopAnnotation:
		e.lineBuffer = append(e.lineBuffer, popAnnotationInstr[A]())
		return nil
	case itemEndFlatten:
		e.flatten = false
		return nil
	case itemChoicePoint:
		return e.dispatchChoicePoint(item.cp)
	default:
		assert.That(false, "unknown stack item kind %d", item.kind)
		return nil
	}
}

// dispatchChoicePoint implements the resume_at continuation mechanism: the
// slot at resumeAt is copied above cp and resumeAt moves down one slot,
// leaving the slot itself in place so a backtrack to cp can start over from
// it. Once resumeAt is below zero every slot has been processed, so the
// stack is dropped and a nested choice point sharing the same slots does
// not re-emit them.
func (e *engine[A]) dispatchChoicePoint(cp *choicePoint[A]) error {
	if cp.resumeAt < 0 {
		e.stack = e.stack[:0]
		return nil
	}
	next := e.stack[cp.resumeAt]
	cp.resumeAt--
	e.push(stackItem[A]{kind: itemChoicePoint, cp: cp})
	e.push(next)
	return nil
}

func (e *engine[A]) dispatchNode(n node[A]) error {
	switch t := n.(type) {
	case emptyNode[A]:
		return nil
	case hardLineNode[A]:
		return e.dispatchHardLine()
	case whiteSpaceNode[A]:
		e.lineBuffer = append(e.lineBuffer, whiteSpaceInstr[A](t.amount))
		e.lineTextLen += t.amount
		if e.canBacktrack && !e.willFit(0) {
			e.backtrack()
		}
		return nil
	case textNode[A]:
		e.lineBuffer = append(e.lineBuffer, textInstr[A](t.s))
		e.lineTextLen += len(t.s)
		if e.canBacktrack && !e.willFit(0) {
			e.backtrack()
		}
		return nil
	case boxNode[A]:
		return e.dispatchBox(t.box)
	case appendNode[A]:
		e.push(stackItem[A]{kind: itemNode, node: t.right})
		e.push(stackItem[A]{kind: itemNode, node: t.left})
		return nil
	case alternativeNode[A]:
		if e.flatten {
			e.push(stackItem[A]{kind: itemNode, node: t.flattened})
		} else {
			e.push(stackItem[A]{kind: itemNode, node: t.def})
		}
		return nil
	case choiceNode[A]:
		return e.dispatchChoice(t)
	case flattenedNode[A]:
		if !e.flatten {
			e.flatten = true
			e.push(stackItem[A]{kind: itemEndFlatten})
		}
		e.push(stackItem[A]{kind: itemNode, node: t.inner})
		return nil
	case nestedNode[A]:
		e.push(stackItem[A]{kind: itemSetNesting, nesting: e.nesting})
		if t.hasAmount {
			e.nesting += t.amount
		} else {
			e.nesting += e.opts.DefaultNesting
		}
		e.push(stackItem[A]{kind: itemNode, node: t.inner})
		return nil
	case alignedNode[A]:
		return e.dispatchAligned(t)
	case annotatedNode[A]:
		e.lineBuffer = append(e.lineBuffer, pushAnnotationInstr[A](t.value))
		e.push(stackItem[A]{kind: itemPopAnnotation})
		e.push(stackItem[A]{kind: itemNode, node: t.inner})
		return nil
	default:
		assert.That(false, "unknown document node type %T", n)
		return nil
	}
}

func (e *engine[A]) dispatchHardLine() error {
	if e.flatten {
		e.backtrack()
		return nil
	}
	e.lineBuffer = append(e.lineBuffer, newLineInstr[A]())
	if e.bufferUntilDeindent < 0 {
		if err := e.flushLine(false); err != nil {
			return err
		}
	}
	e.lineTextLen = 0
	e.lineBuffer = append(e.lineBuffer, whiteSpaceInstr[A](e.nesting))
	e.indentWritten = e.nesting
	return nil
}

func (e *engine[A]) dispatchChoice(t choiceNode[A]) error {
	if flat, ok := t.first.(flattenedNode[A]); ok {
		if flat.w != unflattenable && e.willFit(flat.w) {
			e.push(stackItem[A]{kind: itemNode, node: t.first})
		} else {
			e.push(stackItem[A]{kind: itemNode, node: t.second})
		}
		return nil
	}

	cp := e.newChoicePoint()
	cp.fallback = t.second
	cp.nesting = e.nesting
	cp.lineBufferLen = len(e.lineBuffer)
	cp.lineTextLen = e.lineTextLen
	cp.flatten = e.flatten
	cp.priorCanBacktrack = e.canBacktrack
	cp.bufferUntilDeindent = e.bufferUntilDeindent
	cp.resumeAt = e.locate(len(e.stack) - 1)
	e.canBacktrack = true
	e.push(stackItem[A]{kind: itemChoicePoint, cp: cp})
	e.push(stackItem[A]{kind: itemNode, node: t.first})
	return nil
}

func (e *engine[A]) dispatchAligned(t alignedNode[A]) error {
	col := e.indentWritten + e.lineTextLen
	if e.smart && e.canBacktrack && e.bufferUntilDeindent < 0 && col > 0 {
		e.bufferUntilDeindent = col
	}
	e.push(stackItem[A]{kind: itemSetNesting, nesting: e.nesting})
	e.push(stackItem[A]{kind: itemNode, node: t.inner})
	e.push(stackItem[A]{kind: itemSetNesting, nesting: col})
	return nil
}

func (e *engine[A]) dispatchBox(box Box[A]) error {
	w, h := box.Width(), box.Height()
	if e.flatten && h > 1 {
		e.backtrack()
		return nil
	}
	if e.canBacktrack && !e.willFit(w) {
		e.backtrack()
		return nil
	}
	if h == 0 || w == 0 {
		return nil
	}
	saved := e.nesting
	e.nesting = e.indentWritten + e.lineTextLen
	if err := e.flushLine(true); err != nil {
		return err
	}
	for row := 0; row < h; row++ {
		if row > 0 {
			if err := e.r.NewLine(e.ctx); err != nil {
				return err
			}
			if e.nesting > 0 {
				if err := e.r.WhiteSpace(e.ctx, e.nesting); err != nil {
					return err
				}
			}
		}
		if err := box.RenderRow(e.ctx, row, e.r); err != nil {
			return err
		}
	}
	e.indentWritten = e.nesting
	e.lineTextLen = 0
	e.nesting = saved
	return nil
}

// commitChoices retires every choice point currently on the stack: their
// decisions produced the line about to be flushed and can never be
// reconsidered, since renderer output cannot be un-emitted.
func (e *engine[A]) commitChoices() {
	for i := range e.stack {
		if e.stack[i].kind != itemChoicePoint {
			continue
		}
		cp := e.stack[i].cp
		for j := cp.resumeAt + 1; j <= i; j++ {
			e.stack[j] = stackItem[A]{kind: itemNode, node: emptyNode[A]{}}
		}
		e.releaseChoicePoint(cp)
	}
	e.canBacktrack = false
}

// stripTrailingWhitespace elides whitespace instructions with no following
// Text before the next NewLine (or end of buffer), unless the current
// flush is for a box, which this is deliberately never applied to.
func (e *engine[A]) stripTrailingWhitespace() {
	sawText := false
	for i := len(e.lineBuffer) - 1; i >= 0; i-- {
		switch e.lineBuffer[i].kind {
		case instrNewLine:
			sawText = false
		case instrText:
			sawText = true
		case instrWhiteSpace:
			if !sawText {
				e.lineBuffer[i].amount = 0
			}
		}
	}
}

func (e *engine[A]) flushLine(fromBox bool) error {
	e.commitChoices()
	if e.opts.StripTrailingWhitespace && !fromBox {
		e.stripTrailingWhitespace()
	}
	for _, instr := range e.lineBuffer {
		if err := e.ctx.Err(); err != nil {
			return err
		}
		switch instr.kind {
		case instrText:
			if instr.text != "" {
				if err := e.r.Text(e.ctx, instr.text); err != nil {
					return err
				}
			}
		case instrWhiteSpace:
			if instr.amount > 0 {
				if err := e.r.WhiteSpace(e.ctx, instr.amount); err != nil {
					return err
				}
			}
		case instrNewLine:
			if err := e.r.NewLine(e.ctx); err != nil {
				return err
			}
		case instrPushAnnotation:
			if err := e.r.PushAnnotation(e.ctx, instr.value); err != nil {
				return err
			}
		case instrPopAnnotation:
			if err := e.r.PopAnnotation(e.ctx); err != nil {
				return err
			}
		}
	}
	e.lineBuffer = e.lineBuffer[:0]
	return nil
}

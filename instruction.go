package scribe

// instructionKind tags an instruction's payload field.
type instructionKind int

const (
	instrText instructionKind = iota
	instrWhiteSpace
	instrNewLine
	instrPushAnnotation
	instrPopAnnotation
)

// instruction is a compact sum type buffered in the current line until
// commit. Only one of the payload fields is meaningful, selected by kind.
type instruction[A any] struct {
	kind   instructionKind
	text   string
	amount int
	value  A
}

func textInstr[A any](s string) instruction[A] {
	return instruction[A]{kind: instrText, text: s}
}

func whiteSpaceInstr[A any](n int) instruction[A] {
	return instruction[A]{kind: instrWhiteSpace, amount: n}
}

func newLineInstr[A any]() instruction[A] {
	return instruction[A]{kind: instrNewLine}
}

func pushAnnotationInstr[A any](v A) instruction[A] {
	return instruction[A]{kind: instrPushAnnotation, value: v}
}

func popAnnotationInstr[A any]() instruction[A] {
	return instruction[A]{kind: instrPopAnnotation}
}

// Package assert provides runtime assertion checking for invariants the
// layout engine's design relies on but cannot express in Go's type system.
package assert

import "fmt"

// That panics if condition is false. Used for states the design calls
// unreachable (an empty backtrack stack, an unknown stack item kind);
// anything a caller can trigger through public API misuse is reported as a
// regular error or a validation panic instead, never through That.
func That(condition bool, msg string, args ...any) {
	if condition {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	panic("scribe: internal invariant violated, please file a bug: " + msg)
}

// Package ansi is a worked example [scribe.Renderer] adapter: it maps a
// small [Style] annotation enum to ANSI SGR escape sequences, built from
// [github.com/fatih/color]'s attribute catalog, auto-disabling color when
// the underlying writer is not a terminal.
package ansi

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Style is an annotation a [scribe.Document] can carry to request styling
// from [Renderer].
type Style int

const (
	// Plain applies no styling.
	Plain Style = iota
	// Keyword styles language keywords.
	Keyword
	// String styles string literals.
	String
	// Number styles numeric literals.
	Number
	// Comment styles comments.
	Comment
	// Error styles error text.
	Error
)

var attrs = map[Style][]color.Attribute{
	Plain:   nil,
	Keyword: {color.FgMagenta, color.Bold},
	String:  {color.FgGreen},
	Number:  {color.FgCyan},
	Comment: {color.FgHiBlack},
	Error:   {color.FgRed, color.Bold},
}

const resetSeq = "\x1b[0m"

func startSeq(s Style) string {
	as := attrs[s]
	if len(as) == 0 {
		return ""
	}
	codes := make([]string, len(as))
	for i, a := range as {
		codes[i] = strconv.Itoa(int(a))
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// Renderer is a scribe.Renderer over [Style] that writes ANSI-colored
// output to w. Color is auto-disabled when w does not look like a
// terminal; set Force to override the detection.
type Renderer struct {
	w     io.Writer
	Force *bool
	stack []Style
}

// NewRenderer wraps w, auto-detecting whether it is a terminal via
// [isatty.IsTerminal] before emitting any escape sequence.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) colorEnabled() bool {
	if r.Force != nil {
		return *r.Force
	}
	f, ok := r.w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Renderer) Text(_ context.Context, s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

func (r *Renderer) NewLine(_ context.Context) error {
	_, err := io.WriteString(r.w, "\n")
	return err
}

func (r *Renderer) WhiteSpace(_ context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := fmt.Fprint(r.w, strings.Repeat(" ", n))
	return err
}

func (r *Renderer) PushAnnotation(_ context.Context, value Style) error {
	r.stack = append(r.stack, value)
	if !r.colorEnabled() {
		return nil
	}
	if seq := startSeq(value); seq != "" {
		_, err := io.WriteString(r.w, seq)
		return err
	}
	return nil
}

func (r *Renderer) PopAnnotation(_ context.Context) error {
	n := len(r.stack) - 1
	value := r.stack[n]
	r.stack = r.stack[:n]
	if !r.colorEnabled() {
		return nil
	}
	if startSeq(value) == "" {
		return nil
	}
	_, err := io.WriteString(r.w, resetSeq)
	return err
}

// Package output provides context-aware output for cdhist.
//
// Stdout carries exactly one thing: the directory the calling shell function
// should change into. Listings and prompts go to the terminal device, and
// diagnostics go to stderr via the log package.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes the resolved directory to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Path writes a resolved directory followed by a newline. The shell wrapper
// reads this line verbatim, so nothing else may be written alongside it.
func (p *Printer) Path(path string) {
	fmt.Fprintln(p.w, path)
}

// Print writes output without a newline. Used for shell init code.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

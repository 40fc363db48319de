// Package tty is the terminal boundary. Listings, prompts and the picker
// are drawn on the controlling terminal so that stdout carries nothing but
// the resolved path.
package tty

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned by ReadLine when the read is interrupted.
var ErrInterrupted = errors.New("interrupted")

// DevicePath is the controlling terminal on unix systems.
const DevicePath = "/dev/tty"

// Terminal reads lines from and writes to an interactive device.
type Terminal struct {
	in      io.Reader
	inFd    uintptr
	inTTY   bool
	raw     io.Writer
	out     *colorprofile.Writer
	reader  *bufio.Reader
	closers []io.Closer
}

// Open opens the controlling terminal. When there is none (cron, CI,
// a detached session) it falls back to stdin and stderr.
func Open() (*Terminal, error) {
	f, err := os.OpenFile(DevicePath, os.O_RDWR, 0)
	if err != nil {
		t := New(os.Stdin, os.Stderr)
		return t, nil
	}
	t := New(f, f)
	t.closers = append(t.closers, f)
	return t, nil
}

// New wraps an explicit reader and writer. Color is enabled only when out
// is a terminal whose environment allows it.
func New(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:     in,
		raw:    out,
		out:    colorprofile.NewWriter(out, os.Environ()),
		reader: bufio.NewReader(in),
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = f.Fd()
		t.inTTY = isatty.IsTerminal(t.inFd) || isatty.IsCygwinTerminal(t.inFd)
	}
	return t
}

// Write writes to the terminal, downsampling or stripping ANSI sequences
// to what the device supports.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Color reports whether styled output will reach the device.
func (t *Terminal) Color() bool {
	return t.out.Profile > colorprofile.ASCII
}

// Interactive reports whether input comes from a terminal.
func (t *Terminal) Interactive() bool {
	return t.inTTY
}

// Input returns the underlying reader, for full-screen programs.
func (t *Terminal) Input() io.Reader { return t.in }

// Output returns the underlying writer, for full-screen programs that do
// their own color handling.
func (t *Terminal) Output() io.Writer { return t.raw }

// ReadLine reads one line without its line ending. End of input with
// nothing typed yields an empty line. If ctx is cancelled first, ReadLine
// returns ErrInterrupted.
func (t *Terminal) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		err  error
	}
	// Buffered so the reader goroutine can finish after an interrupt.
	ch := make(chan result, 1)
	go func() {
		line, err := t.reader.ReadString('\n')
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case r := <-ch:
		line := strings.TrimRight(r.line, "\r\n")
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return line, r.err
		}
		return line, nil
	}
}

// Close releases the device if Open opened one.
func (t *Terminal) Close() error {
	var errs []error
	for _, c := range t.closers {
		errs = append(errs, c.Close())
	}
	t.closers = nil
	return errors.Join(errs...)
}

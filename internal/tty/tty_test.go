package tty

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReadLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single line", "3\n", []string{"3"}},
		{"crlf", "foo\r\n", []string{"foo"}},
		{"no trailing newline", "abc", []string{"abc"}},
		{"empty input", "", []string{""}},
		{"two lines", "a\nb\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			term := New(strings.NewReader(tt.input), io.Discard)
			for _, want := range tt.want {
				got, err := term.ReadLine(context.Background())
				if err != nil {
					t.Fatalf("ReadLine() error = %v", err)
				}
				if got != want {
					t.Errorf("ReadLine() = %q, want %q", got, want)
				}
			}
		})
	}
}

func TestReadLine_Interrupted(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()

	term := New(pr, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := term.ReadLine(ctx)
	if !errors.Is(err, ErrInterrupted) {
		t.Errorf("ReadLine() error = %v, want ErrInterrupted", err)
	}
}

func TestReadLine_ReadError(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	pw.CloseWithError(errors.New("device gone"))

	term := New(pr, io.Discard)
	_, err := term.ReadLine(context.Background())
	if err == nil || !strings.Contains(err.Error(), "device gone") {
		t.Errorf("ReadLine() error = %v, want device gone", err)
	}
}

func TestWrite_StripsColorWhenNotATerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	term := New(strings.NewReader(""), &buf)

	if term.Color() {
		t.Error("Color() = true for a buffer, want false")
	}
	if term.Interactive() {
		t.Error("Interactive() = true for a string reader, want false")
	}

	if _, err := io.WriteString(term, "\x1b[31mred\x1b[0m\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "red\n" {
		t.Errorf("output = %q, want %q", got, "red\n")
	}
}

func TestClose_NoDevice(t *testing.T) {
	t.Parallel()

	term := New(strings.NewReader(""), io.Discard)
	if err := term.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

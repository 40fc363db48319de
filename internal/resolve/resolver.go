package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/raphi011/cdhist/internal/tty"
	"github.com/raphi011/cdhist/internal/ui"
)

// PromptText is written after a listing when asking for a selection.
const PromptText = "Select index [or <enter> to quit]: "

// Outcome says whether a resolution produced a directory.
type Outcome int

const (
	Quit Outcome = iota
	Selected
)

// Result is the outcome of a resolution. The zero value is Quit.
type Result struct {
	Outcome Outcome
	Path    string
}

// Select returns a Selected result for path.
func Select(path string) Result {
	return Result{Outcome: Selected, Path: path}
}

// Terminal is where listings and prompts are drawn.
type Terminal interface {
	io.Writer
	ReadLine(ctx context.Context) (string, error)
}

// PickFunc shows options, nearest first, and returns the index chosen.
// ok is false when the user declined.
type PickFunc func(ctx context.Context, options []string) (index int, ok bool, err error)

// Resolver maps selectors onto a candidate list.
type Resolver struct {
	// Candidates are the paths a selector can resolve to.
	Candidates []string

	// Rows are the display rows, one per candidate. Candidates are shown
	// when Rows is nil.
	Rows []string

	// InOrder marks candidates whose default is the last element, such as
	// worktrees. History has its default first.
	InOrder bool

	// Lookup resolves free text typed at the prompt. When nil the text is
	// searched with Search.
	Lookup func(text string) (string, bool)

	Painter ui.Painter
}

func (r *Resolver) rows() []string {
	if r.Rows != nil {
		return r.Rows
	}
	return r.Candidates
}

// Pick returns the candidate shown with number n in a listing.
func (r *Resolver) Pick(n int) (string, error) {
	if n < 0 || n >= len(r.Candidates) {
		return "", &IndexError{Index: n}
	}
	if r.InOrder {
		n = len(r.Candidates) - n - 1
	}
	return r.Candidates[n], nil
}

// Resolve maps sel onto a candidate. Literal paths are returned unchanged.
func (r *Resolver) Resolve(sel Selector) (string, error) {
	switch sel.Kind {
	case KindIndex:
		return r.Pick(sel.Index)
	case KindPrevious:
		if len(r.Candidates) < 2 {
			return "", ErrNoPrevious
		}
		return r.Pick(1)
	case KindSearch:
		return Search(sel.Text, r.Candidates)
	case KindText:
		if r.Lookup == nil {
			return Search(sel.Text, r.Candidates)
		}
		if path, ok := r.Lookup(sel.Text); ok {
			return path, nil
		}
		return "", &NoMatchError{Query: sel.Text}
	case KindPath:
		return sel.Text, nil
	default:
		return "", fmt.Errorf("cannot resolve %s selector", sel.Kind)
	}
}

// List writes the numbered listing, limited to numLines rows when
// numLines is non-negative.
func (r *Resolver) List(w io.Writer, numLines int) error {
	if len(r.Candidates) == 0 {
		return ErrNoDirectories
	}
	lines := ui.Listing(r.rows(), r.InOrder, numLines, r.Painter)
	_, err := io.WriteString(w, ui.JoinLines(lines))
	return err
}

// Prompt lists the candidates, asks for a selection and resolves it.
// An empty answer or an interrupt is a Quit result, not an error.
func (r *Resolver) Prompt(ctx context.Context, term Terminal, numLines int) (Result, error) {
	if err := r.List(term, numLines); err != nil {
		return Result{}, err
	}
	if _, err := io.WriteString(term, r.Painter.Prompt(PromptText)); err != nil {
		return Result{}, err
	}

	line, err := term.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, tty.ErrInterrupted) {
			// Keep the shell prompt off the selection line.
			_, _ = io.WriteString(term, "\n")
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("read selection: %w", err)
	}

	sel := ParseInput(line)
	if sel.Kind == KindEmpty {
		return Result{}, nil
	}
	path, err := r.Resolve(sel)
	if err != nil {
		return Result{}, err
	}
	return Select(path), nil
}

// Choose offers the rows to pick, nearest the default first, and resolves
// the chosen row.
func (r *Resolver) Choose(ctx context.Context, pick PickFunc) (Result, error) {
	if len(r.Candidates) == 0 {
		return Result{}, ErrNoDirectories
	}

	rows := r.rows()
	options := make([]string, len(rows))
	for n := range rows {
		idx := n
		if r.InOrder {
			idx = len(rows) - n - 1
		}
		options[n] = rows[idx]
	}

	n, ok, err := pick(ctx, options)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, nil
	}
	path, err := r.Pick(n)
	if err != nil {
		return Result{}, err
	}
	return Select(path), nil
}

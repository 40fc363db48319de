package resolve

import (
	"errors"
	"fmt"
)

// ErrNoDirectories is returned when a listing or prompt has no candidates.
var ErrNoDirectories = errors.New("no directories")

// ErrNoPrevious is returned for "-" when there is no previous directory.
var ErrNoPrevious = errors.New("no previous directory")

// IndexError reports an index outside the candidate list.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf(`Index "%d" out of range.`, e.Index)
}

// NoMatchError reports a search that matched nothing at any depth.
type NoMatchError struct {
	Query string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("No match on %q.", e.Query)
}

// Package history maintains the persisted stack of recently visited
// directories.
//
// The stack is most-recent-first. Every fetch puts the live session's current
// directory ($PWD) at index 0 and its previous directory ($OLDPWD) at index 1,
// so "-0" and "-1" always agree with what the shell itself considers current
// and previous. The file accumulates directories visited from every shell on
// the machine; concurrent writers are not coordinated and the last write wins.
package history

import (
	"os"

	"github.com/raphi011/cdhist/internal/storage"
)

// Store reads and writes the history file.
type Store struct {
	path string
	size int
}

// New returns a Store for the file at path holding at most size entries.
func New(path string, size int) *Store {
	return &Store{path: path, size: max(size, 0)}
}

// Path returns the history file location.
func (s *Store) Path() string {
	return s.path
}

// Size returns the configured capacity.
func (s *Store) Size() int {
	return s.size
}

// Load returns the entries stored on disk, in file order.
// A missing or unreadable file is an empty history.
func (s *Store) Load() []string {
	lines, err := storage.LoadLines(s.path)
	if err != nil {
		return nil
	}
	return lines
}

// Fetch returns the history stack for a session whose current directory is
// current and previous directory is previous (empty if none). The result is
// [current, previous] followed by the stored entries with those two removed,
// de-duplicated keeping the first occurrence and truncated to capacity.
// current and previous may be equal; that pair is kept as is.
func (s *Store) Fetch(current, previous string) []string {
	var head []string
	for _, p := range []string{current, previous} {
		if p != "" {
			head = append(head, p)
		}
	}

	seen := make(map[string]bool, len(head))
	for _, p := range head {
		seen[p] = true
	}

	stack := head
	for _, p := range s.Load() {
		if seen[p] {
			continue
		}
		seen[p] = true
		stack = append(stack, p)
	}

	return truncate(stack, s.size)
}

// Persist writes stack to the history file, optionally dropping directories
// that no longer exist, truncated to capacity. The returned error is
// informational: callers are expected to carry on without history.
func (s *Store) Persist(stack []string, purge bool) error {
	if purge {
		stack = Existing(stack)
	}
	return storage.SaveLines(s.path, truncate(stack, s.size))
}

// Purge writes stack back with every non-existent directory removed.
func (s *Store) Purge(stack []string) error {
	return s.Persist(stack, true)
}

// RecordVisit moves path to the top of stack, removing any other occurrence,
// and persists the result. It is called once per successful directory change.
func (s *Store) RecordVisit(stack []string, path string, purge bool) error {
	return s.Persist(Visit(stack, path), purge)
}

// Visit returns a copy of stack with path moved to the top.
func Visit(stack []string, path string) []string {
	next := make([]string, 0, len(stack)+1)
	next = append(next, path)
	for _, p := range stack {
		if p != path {
			next = append(next, p)
		}
	}
	return next
}

// Existing returns the entries of paths that still exist, in order.
func Existing(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func truncate(stack []string, size int) []string {
	if len(stack) > size {
		return stack[:size]
	}
	return stack
}

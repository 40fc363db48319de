package git

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// ListError reports that the worktree listing itself failed, for example
// because the directory is not inside a repository. It is an environment
// problem, not a search miss.
type ListError struct {
	Dir string
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("cannot list git worktrees in %s: %v", e.Dir, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

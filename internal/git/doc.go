// Package git discovers the worktrees of the repository enclosing a
// directory.
//
// Worktrees come from a single "git worktree list --porcelain" call made
// through the git CLI, so user configuration such as safe.directory and
// GIT_DIR is honoured. [Parse] turns the porcelain records into [Worktree]
// values and [Order] moves the nearest enclosing worktree to the end of the
// list, where listings put the default choice.
package git

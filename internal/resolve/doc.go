// Package resolve turns a user's shorthand selector into one directory.
//
// A selector is parsed from the command line with [ParseArg] or from a
// line typed at the prompt with [ParseInput]. A [Resolver] then maps it
// onto a candidate list: an index into the displayed numbering, a
// hierarchical search over path segments ([Search]), or a source-specific
// text lookup such as a branch name.
//
// # Numbering
//
// Listings always show 0 on the row printed directly above the prompt.
// History candidates are most-recent-first and printed reversed, so the
// shown number is the stack index. Worktree candidates keep provider order
// with the default last, so a shown number n selects candidates[len-n-1].
//
// # Outcomes
//
// [Result] is either Selected with a path or Quit. Quit is not an error: it
// is what an empty prompt line or an interrupt produces, and the process
// exits non-zero without a message.
package resolve

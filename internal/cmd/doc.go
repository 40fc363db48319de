// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// Commands run with a context so an interrupt from the shell stops them,
// and stderr is captured and used as the error text, making failures such as
// "fatal: not a git repository" readable without extra wrapping.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, "", "git", "worktree", "list", "--porcelain")
//	if err != nil {
//	    // err contains stderr output if available
//	    return fmt.Errorf("list worktrees: %w", err)
//	}
//
// In verbose mode every invocation is logged to stderr together with its
// duration via [log.Logger.Command].
package cmd

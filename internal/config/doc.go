// Package config handles loading and validation of cdhist configuration.
//
// Configuration is read from ~/.config/cdhist/config.toml with environment
// variable overrides for the history file and its size. Command-line flags
// override both, but only when given explicitly.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags
//   - CDHIST_FILE env var: history file location
//   - CDHIST_SIZE (or the older CDHISTSIZE) env var: history capacity
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - size: maximum number of directories kept in history (default: 50)
//   - history_file: where history is stored (default: "~/.cd_history")
//   - purge_always: drop directories that no longer exist on every write
//   - git_relative: show worktree paths relative to the working directory
//   - no_user: do not substitute "~" for the home directory in listings
//   - num_lines: cap the number of listed rows (-1 for no limit)
//   - follow_physical: resolve symlinks before changing directory
//   - fuzzy: use the interactive filter list instead of the numbered prompt
//
// # Path Validation
//
// history_file must be absolute or start with ~ (no relative paths like "."
// or "..") since the program runs from whatever directory the shell is in.
package config

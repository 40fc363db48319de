// Package ui renders listings and the interactive picker on the terminal.
//
// [Listing] produces the numbered rows shown above the selection prompt.
// Row 0 is always the last line, nearest the prompt. A [Painter] applies
// lipgloss styles to row numbers, hashes and branch names when the device
// supports color and leaves text untouched otherwise.
//
// [Pick] runs a small bubbletea program: a text input filters the options
// with fuzzy matching and the arrow keys move the cursor. It reads from and
// draws on the given terminal, never stdout.
package ui

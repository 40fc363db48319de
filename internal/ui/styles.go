package ui

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// Palette used for listings and the picker
var (
	// Primary is used for branch names (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent highlights the default row and the picker cursor (pink)
	Accent = lipgloss.Color("212")

	// Warning is used for commit hashes (orange)
	Warning = lipgloss.Color("214")

	// Muted is used for row numbers and comments (gray)
	Muted = lipgloss.Color("240")
)

var (
	indexStyle   = lipgloss.NewStyle().Foreground(Muted)
	defaultStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	hashStyle    = lipgloss.NewStyle().Foreground(Warning)
	branchStyle  = lipgloss.NewStyle().Foreground(Primary)
	commentStyle = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	promptStyle  = lipgloss.NewStyle().Bold(true)
	matchStyle   = lipgloss.NewStyle().Underline(true)
)

// Painter applies styles when color output is enabled and is a no-op
// otherwise, so plain output stays byte-for-byte predictable.
type Painter struct {
	color bool
}

// NewPainter returns a Painter. Pass false for pipes and NO_COLOR.
func NewPainter(color bool) Painter {
	return Painter{color: color}
}

// Plain is a Painter that never emits escape sequences.
var Plain = Painter{}

func (p Painter) render(s lipgloss.Style, text string) string {
	if !p.color || text == "" {
		return text
	}
	return s.Render(text)
}

// Index formats a row number right-aligned to three columns.
// Row 0 is the default choice and is highlighted.
func (p Painter) Index(n int) string {
	text := fmt.Sprintf("%3d", n)
	if n == 0 {
		return p.render(defaultStyle, text)
	}
	return p.render(indexStyle, text)
}

// Hash styles a short commit hash.
func (p Painter) Hash(s string) string { return p.render(hashStyle, s) }

// Branch styles a bracketed branch name.
func (p Painter) Branch(s string) string { return p.render(branchStyle, s) }

// Comment styles a worktree annotation such as "locked".
func (p Painter) Comment(s string) string { return p.render(commentStyle, s) }

// Prompt styles the selection prompt.
func (p Painter) Prompt(s string) string { return p.render(promptStyle, s) }

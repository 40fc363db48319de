package git

import (
	"bufio"
	"context"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/cdhist/internal/pathtext"
	"github.com/raphi011/cdhist/internal/ui"
)

// HashLen is the number of commit hash characters kept.
const HashLen = 7

// Worktree is one entry of the porcelain listing.
type Worktree struct {
	Path    string // absolute
	Display string // path as shown in listings
	Hash    string // short HEAD hash, may be empty
	Branch  string // short branch name, may be empty
	Comment string // "bare", "detached", "locked", ...
}

// Parse reads "git worktree list --porcelain" output. Each record starts
// with a "worktree <path>" line and ends at a blank line. Lines outside a
// record are ignored.
func Parse(porcelain string) []Worktree {
	var (
		trees []Worktree
		cur   *Worktree
	)

	scanner := bufio.NewScanner(strings.NewReader(porcelain))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			cur = nil
			continue
		}

		field, rest, _ := strings.Cut(line, " ")
		if field == "worktree" {
			trees = append(trees, Worktree{Path: rest, Display: rest})
			cur = &trees[len(trees)-1]
			continue
		}
		if cur == nil {
			continue
		}

		switch field {
		case "HEAD":
			cur.Hash = rest[:min(len(rest), HashLen)]
		case "branch":
			cur.Branch = rest[strings.LastIndex(rest, "/")+1:]
		default:
			cur.Comment = field
		}
	}
	return trees
}

// Order moves the worktree that is, or most closely encloses, dir to the
// end of the list. Other worktrees keep their relative order. Nothing moves
// when no worktree encloses dir. The input slice is not modified.
func Order(trees []Worktree, dir string) []Worktree {
	out := append([]Worktree(nil), trees...)

	best, bestLevel := -1, -1
	for i, t := range trees {
		level := enclosingLevel(t.Path, dir)
		if level < 0 {
			continue
		}
		if best < 0 || level < bestLevel {
			best, bestLevel = i, level
		}
	}
	if best < 0 || best == len(out)-1 {
		return out
	}

	chosen := out[best]
	out = append(out[:best], out[best+1:]...)
	return append(out, chosen)
}

// enclosingLevel returns 0 when path equals dir, n when path is the n-th
// parent of dir, and -1 when path does not enclose dir.
func enclosingLevel(path, dir string) int {
	path = filepath.Clean(path)
	dir = filepath.Clean(dir)
	for level := 0; ; level++ {
		if dir == path {
			return level
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return -1
		}
		dir = parent
	}
}

// Provider holds the worktrees of one repository in listing order.
type Provider struct {
	Worktrees []Worktree
}

// DisplayOptions control how worktree paths are shown.
type DisplayOptions struct {
	Home     string
	Base     string // working directory, for relative display
	Relative bool
	NoUser   bool
}

// Discover lists the worktrees of the repository enclosing dir with a
// single git call, orders them for dir and fills in display paths.
func Discover(ctx context.Context, dir string, opts DisplayOptions) (*Provider, error) {
	if err := CheckGit(); err != nil {
		return nil, err
	}

	out, err := outputGit(ctx, dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, &ListError{Dir: dir, Err: err}
	}

	// git reports worktree paths with symlinks resolved.
	trees := Order(Parse(string(out)), physical(dir))
	base := physical(opts.Base)
	for i := range trees {
		trees[i].Display = pathtext.Display(trees[i].Path, opts.Home, base, opts.Relative, opts.NoUser)
	}
	return &Provider{Worktrees: trees}, nil
}

// physical returns path with symlinks resolved, or path itself when it
// cannot be resolved.
func physical(path string) string {
	if path == "" {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}

// Paths returns the worktree paths in listing order.
func (p *Provider) Paths() []string {
	paths := make([]string, len(p.Worktrees))
	for i, t := range p.Worktrees {
		paths[i] = t.Path
	}
	return paths
}

// LookupByBranchOrHash returns the first worktree whose branch starts with
// prefix, or failing that the first whose hash does.
func (p *Provider) LookupByBranchOrHash(prefix string) (string, bool) {
	for _, t := range p.Worktrees {
		if t.Branch != "" && strings.HasPrefix(t.Branch, prefix) {
			return t.Path, true
		}
	}
	for _, t := range p.Worktrees {
		if t.Hash != "" && strings.HasPrefix(t.Hash, prefix) {
			return t.Path, true
		}
	}
	return "", false
}

// Rows renders one listing row per worktree: the padded display path,
// then hash, [branch] and comment when known.
func (p *Provider) Rows(painter ui.Painter) []string {
	width := 0
	for _, t := range p.Worktrees {
		width = max(width, lipgloss.Width(t.Display))
	}

	rows := make([]string, len(p.Worktrees))
	for i, t := range p.Worktrees {
		cols := []string{ui.PadRight(t.Display, width)}
		if t.Hash != "" {
			cols = append(cols, painter.Hash(t.Hash))
		}
		if t.Branch != "" {
			cols = append(cols, painter.Branch("["+t.Branch+"]"))
		}
		if t.Comment != "" {
			cols = append(cols, painter.Comment(t.Comment))
		}
		rows[i] = strings.Join(cols, " ")
	}
	return rows
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raphi011/cdhist/internal/config"
	"github.com/raphi011/cdhist/internal/git"
	"github.com/raphi011/cdhist/internal/history"
	"github.com/raphi011/cdhist/internal/log"
	"github.com/raphi011/cdhist/internal/output"
	"github.com/raphi011/cdhist/internal/pathtext"
	"github.com/raphi011/cdhist/internal/resolve"
	"github.com/raphi011/cdhist/internal/ui"
)

// execute performs one invocation: maintenance (purge, record) or a
// resolution whose result is validated, recorded and printed.
func (a *app) execute(ctx context.Context, cfg config.Config, o options, sel resolve.Selector, dashLast bool) error {
	l := log.FromContext(ctx)

	histPath, err := cfg.HistoryPath()
	if err != nil {
		return err
	}
	store := history.New(histPath, cfg.Size)
	stack := store.Fetch(a.session.Current, a.session.Previous)
	l.Debug("history fetched", "file", store.Path(), "size", store.Size(), "entries", len(stack))

	if o.purge {
		if err := store.Purge(stack); err != nil {
			l.Debug("history write failed", "file", store.Path(), "error", err)
		}
		return nil
	}
	if o.record {
		if err := store.Persist(stack, cfg.PurgeAlways); err != nil {
			l.Debug("history write failed", "file", store.Path(), "error", err)
		}
		return nil
	}

	var res resolve.Result
	if o.git {
		res, err = a.resolveWorktree(ctx, cfg, o, sel)
	} else {
		res, err = a.resolveHistory(ctx, cfg, o, stack, sel, dashLast)
	}
	if err != nil {
		return err
	}
	if res.Outcome == resolve.Quit {
		return errQuit
	}

	path := pathtext.Abs(pathtext.Expand(res.Path, a.session.Home), config.WorkDirFromContext(ctx))
	path, err = checkDir(path, cfg.FollowPhysical)
	if err != nil {
		return err
	}

	if err := store.RecordVisit(stack, path, cfg.PurgeAlways); err != nil {
		l.Debug("history write failed", "file", store.Path(), "error", err)
	}

	if o.copy {
		if err := a.copy(path); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	output.FromContext(ctx).Path(path)
	return nil
}

func (a *app) resolveHistory(ctx context.Context, cfg config.Config, o options, stack []string, sel resolve.Selector, dashLast bool) (resolve.Result, error) {
	r := &resolve.Resolver{Candidates: stack}

	interactive := o.list || (sel.Kind == resolve.KindEmpty && dashLast)
	if !interactive {
		if sel.Kind == resolve.KindEmpty {
			return resolve.Select(a.session.Home), nil
		}
		path, err := r.Resolve(sel)
		if err != nil {
			return resolve.Result{}, err
		}
		return resolve.Select(path), nil
	}

	return a.interact(ctx, cfg, o, r, func(p ui.Painter) []string {
		rows := make([]string, len(stack))
		for i, dir := range stack {
			rows[i] = pathtext.Display(dir, a.session.Home, "", false, cfg.NoUser)
		}
		return rows
	})
}

func (a *app) resolveWorktree(ctx context.Context, cfg config.Config, o options, sel resolve.Selector) (resolve.Result, error) {
	workDir := config.WorkDirFromContext(ctx)
	provider, err := git.Discover(ctx, workDir, git.DisplayOptions{
		Home:     a.session.Home,
		Base:     workDir,
		Relative: cfg.GitRelative,
		NoUser:   cfg.NoUser,
	})
	if err != nil {
		return resolve.Result{}, err
	}
	log.FromContext(ctx).Debug("worktrees discovered", "dir", workDir, "count", len(provider.Worktrees))

	r := &resolve.Resolver{
		Candidates: provider.Paths(),
		InOrder:    true,
		Lookup:     provider.LookupByBranchOrHash,
	}

	if !o.list && sel.Kind != resolve.KindEmpty {
		if sel.Kind == resolve.KindPath {
			sel = resolve.Selector{Kind: resolve.KindText, Text: sel.Text}
		}
		path, err := r.Resolve(sel)
		if err != nil {
			return resolve.Result{}, err
		}
		return resolve.Select(path), nil
	}

	return a.interact(ctx, cfg, o, r, provider.Rows)
}

// interact draws on the terminal: a plain listing with --list, the fuzzy
// picker with --fuzzy, else a numbered listing and prompt. Rows are built
// once the terminal's color support is known.
func (a *app) interact(ctx context.Context, cfg config.Config, o options, r *resolve.Resolver, rows func(ui.Painter) []string) (resolve.Result, error) {
	if len(r.Candidates) == 0 {
		return resolve.Result{}, resolve.ErrNoDirectories
	}

	term, err := a.openTerminal()
	if err != nil {
		return resolve.Result{}, fmt.Errorf("open terminal: %w", err)
	}
	defer term.Close()
	if !term.Interactive() {
		log.FromContext(ctx).Debug("terminal input is not interactive")
	}

	r.Painter = ui.NewPainter(term.Color())
	if cfg.Fuzzy && !o.list {
		// The picker styles its own rows.
		r.Painter = ui.Plain
	}
	r.Rows = rows(r.Painter)

	switch {
	case o.list:
		if err := r.List(term, cfg.NumLines); err != nil {
			return resolve.Result{}, err
		}
		return resolve.Result{}, nil
	case cfg.Fuzzy:
		return r.Choose(ctx, func(ctx context.Context, options []string) (int, bool, error) {
			return a.pick(ctx, term, options)
		})
	default:
		return r.Prompt(ctx, term, cfg.NumLines)
	}
}

// checkDir verifies that path is a listable directory. With physical set
// the symlink-free form of path is returned.
func checkDir(path string, physical bool) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%q does not exist.", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory.", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%q is not accessible.", path)
	}
	_, err = f.Readdirnames(1)
	f.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%q is not accessible.", path)
	}

	if physical {
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return "", fmt.Errorf("%q can not be resolved.", path)
		}
		path = resolved
	}
	return path, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/cdhist/internal/config"
	"github.com/raphi011/cdhist/internal/log"
	"github.com/raphi011/cdhist/internal/output"
	"github.com/raphi011/cdhist/internal/resolve"
	"github.com/raphi011/cdhist/internal/tty"
	"github.com/raphi011/cdhist/internal/ui"
)

// errQuit ends the process with a non-zero status and no message, telling
// the shell function not to cd.
var errQuit = errors.New("quit")

// terminal is the device listings and prompts are drawn on.
type terminal interface {
	resolve.Terminal
	Color() bool
	Interactive() bool
	Input() io.Reader
	Output() io.Writer
	Close() error
}

// app carries what the command needs from the outside world.
type app struct {
	session      config.Session
	selector     string
	openTerminal func() (terminal, error)
	copy         func(string) error
	pick         func(ctx context.Context, term terminal, options []string) (int, bool, error)
}

func newApp(session config.Session) *app {
	return &app{
		session: session,
		openTerminal: func() (terminal, error) {
			return tty.Open()
		},
		copy: clipboard.WriteAll,
		pick: fuzzyPick,
	}
}

func fuzzyPick(ctx context.Context, term terminal, options []string) (int, bool, error) {
	res, err := ui.Pick(ctx, term.Input(), term.Output(), "", options)
	if err != nil {
		return 0, false, err
	}
	return res.Index, !res.Cancelled, nil
}

// Execute runs the root command and exits non-zero on error or when no
// directory was selected.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	session := config.SessionFromEnv(os.Getenv)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)
	ctx = config.WithWorkDir(ctx, session.Current)
	ctx = output.WithPrinter(ctx, os.Stdout)

	if err := run(ctx, newApp(session), os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, errQuit) {
			fmt.Fprintln(os.Stderr, err)
		}
		cancel()
		os.Exit(1)
	}
}

// run parses argv and executes the command. Selector arguments that look
// like flags ("-", "-3", "-/src") are taken off the end of argv first.
func run(ctx context.Context, a *app, argv []string, stderr io.Writer) error {
	argv, a.selector = splitSelector(argv)

	root := newRootCmd(a)
	root.SetArgs(argv)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// splitSelector removes a trailing "-", "-N" or "-/text" argument.
func splitSelector(argv []string) ([]string, string) {
	if len(argv) == 0 {
		return argv, ""
	}
	last := argv[len(argv)-1]
	if !resolve.IsSelectorArg(last) {
		return argv, ""
	}
	return argv[:len(argv)-1], last
}

type options struct {
	init           bool
	shell          string
	purge          bool
	purgeAlways    bool
	git            bool
	gitRelative    bool
	noGitRelative  bool
	noUser         bool
	user           bool
	list           bool
	size           int
	numLines       int
	followLinks    bool
	followPhysical bool
	fuzzy          bool
	copy           bool
	record         bool
	verbose        bool
	quiet          bool
}

func newRootCmd(a *app) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "cdhist [flags] [DIR | -N | -/TEXT | --]",
		Short: "Shell cd history",
		Long: `cdhist keeps a stack of recently visited directories and resolves a
short selector into one of them. A shell function installed with --init
changes into the printed directory.

Selectors:
  DIR       change to DIR
  -         previous directory
  -N        N'th directory of the stack (0 is the current one)
  -/TEXT    directory whose path best matches TEXT
  --        list the stack and prompt for a selection

At the prompt enter a number, /TEXT to search, or nothing to quit.
With --git the candidates are the worktrees of the current repository and
a bare name selects a worktree by branch or commit hash prefix.`,
		Example: `  eval "$(cdhist --init)"            # install as "cd" (add to ~/.bashrc)
  eval "$(cdhist --init 'cd -a')"    # pass options to every call
  cdhist --init c --shell fish | source
  cd --                              # list and prompt
  cd -/src                           # search
  cd -g --                           # pick a git worktree`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), o.verbose, o.quiet))

			if o.init {
				var funcDef string
				if len(args) > 0 {
					funcDef = args[0]
				}
				return printInit(ctx, funcDef, o.shell)
			}

			cfg, err := o.apply(cmd, config.FromContext(ctx))
			if err != nil {
				return err
			}

			if len(args) > 0 && a.selector != "" {
				return fmt.Errorf("only one directory may be given, got %q and %q", args[0], a.selector)
			}
			sel := a.selector
			if len(args) > 0 {
				sel = args[0]
			}
			dashLast := cmd.ArgsLenAtDash() >= 0 && cmd.ArgsLenAtDash() == len(args)

			return a.execute(ctx, cfg, o, resolve.ParseArg(sel), dashLast)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&o.init, "init", "i", false, "Output shell initialization code; optional argument \"NAME [OPTS]\" (default NAME is cd)")
	f.StringVar(&o.shell, "shell", "sh", "Shell for --init: sh (bash, zsh, ...) or fish")
	f.BoolVarP(&o.purge, "purge", "p", false, "Just purge non-existent directories from history")
	f.BoolVarP(&o.purgeAlways, "purge-always", "a", false, "Purge non-existent directories on every write")
	f.BoolVarP(&o.git, "git", "g", false, "Select among git worktrees instead of history")
	f.BoolVarP(&o.gitRelative, "git-relative", "r", false, "Show git worktree paths relative to the working directory")
	f.BoolVarP(&o.noGitRelative, "no-git-relative", "R", false, "Show absolute git worktree paths (default)")
	f.BoolVarP(&o.noUser, "no-user", "u", false, "Do not substitute \"~\" for the home directory")
	f.BoolVarP(&o.user, "user", "U", false, "Substitute \"~\" for the home directory (default)")
	f.BoolVarP(&o.list, "list", "l", false, "Just list directories")
	f.IntVarP(&o.size, "size", "m", config.DefaultSize, "Maximum size of directory history")
	f.IntVarP(&o.numLines, "num-lines", "n", -1, "Limit listings to this many lines")
	f.BoolVarP(&o.followLinks, "follow-links", "L", false, "Keep symbolic links in the selected path (default)")
	f.BoolVarP(&o.followPhysical, "follow-physical", "P", false, "Resolve symbolic links in the selected path")
	f.BoolVarP(&o.fuzzy, "fuzzy", "f", false, "Use an interactive fuzzy filter instead of the numbered prompt")
	f.BoolVarP(&o.copy, "copy", "c", false, "Also copy the selected path to the clipboard")
	f.BoolVar(&o.record, "record", false, "Record the current and previous directories and exit")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Show external commands being executed")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress all log output")
	f.BoolP("version", "V", false, "Print version and exit")

	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkFlagsMutuallyExclusive("git-relative", "no-git-relative")
	cmd.MarkFlagsMutuallyExclusive("no-user", "user")
	cmd.MarkFlagsMutuallyExclusive("follow-links", "follow-physical")
	cmd.MarkFlagsMutuallyExclusive("init", "purge", "record")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}

// apply returns cfg with explicitly set flags layered on top.
func (o *options) apply(cmd *cobra.Command, base *config.Config) (config.Config, error) {
	cfg := config.Default()
	if base != nil {
		cfg = *base
	}

	f := cmd.Flags()
	if f.Changed("size") {
		cfg.Size = o.size
	}
	if f.Changed("num-lines") {
		cfg.NumLines = o.numLines
	}
	if f.Changed("purge-always") {
		cfg.PurgeAlways = o.purgeAlways
	}
	if f.Changed("git-relative") {
		cfg.GitRelative = o.gitRelative
	}
	if f.Changed("no-git-relative") {
		cfg.GitRelative = !o.noGitRelative
	}
	if f.Changed("no-user") {
		cfg.NoUser = o.noUser
	}
	if f.Changed("user") {
		cfg.NoUser = !o.user
	}
	if f.Changed("follow-physical") {
		cfg.FollowPhysical = o.followPhysical
	}
	if f.Changed("follow-links") {
		cfg.FollowPhysical = !o.followLinks
	}
	if f.Changed("fuzzy") {
		cfg.Fuzzy = o.fuzzy
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

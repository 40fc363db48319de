package config

import (
	"context"
	"os"
	"path/filepath"
)

type ctxKey struct{}

type workDirKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns nil if none is attached.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	return cfg
}

// WithWorkDir attaches the logical working directory to the context.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the working directory stored in ctx,
// falling back to os.Getwd.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	wd, _ := os.Getwd()
	return wd
}

// Session describes the shell session that invoked the program.
type Session struct {
	Current  string // $PWD, the logical working directory
	Previous string // $OLDPWD, empty if the shell has not changed directory yet
	Home     string
}

// SessionFromEnv builds a Session from the shell environment. $PWD is
// preferred over os.Getwd so that directories reached through symlinks keep
// the name the user typed.
func SessionFromEnv(getenv func(string) string) Session {
	s := Session{
		Current:  getenv("PWD"),
		Previous: getenv("OLDPWD"),
	}
	if s.Current == "" || !filepath.IsAbs(s.Current) {
		s.Current, _ = os.Getwd()
	}
	if s.Previous != "" && !filepath.IsAbs(s.Previous) {
		s.Previous = ""
	}
	s.Home = getenv("HOME")
	if s.Home == "" {
		s.Home, _ = os.UserHomeDir()
	}
	return s
}

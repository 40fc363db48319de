// Package pathtext converts between absolute directory paths and the forms
// shown to the user: "~" for the home directory and paths relative to the
// working directory.
package pathtext

import (
	"path/filepath"
	"strings"
)

// Tilde replaces a leading home directory in path with "~".
// Paths outside home, and an empty or root home, are returned unchanged.
func Tilde(path, home string) string {
	home = filepath.Clean(home)
	if home == "" || home == "." || home == string(filepath.Separator) {
		return path
	}

	clean := filepath.Clean(path)
	if clean == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(clean, home+string(filepath.Separator)); ok {
		return filepath.Join("~", rest)
	}
	return path
}

// Expand is the inverse of Tilde: "~" and "~/..." are resolved against home.
// "~user" forms are not expanded.
func Expand(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}

// Relative returns path relative to base, or path itself when no relative
// form exists.
func Relative(path, base string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}

// Abs makes path absolute against base (not the process working directory,
// which the shell may have reached through a symlink) and cleans it.
func Abs(path, base string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// Display returns the form of path shown in listings: relative to base when
// relative is set, else with "~" substituted unless noUser is set.
func Display(path, home, base string, relative, noUser bool) string {
	switch {
	case relative:
		return Relative(path, base)
	case noUser:
		return path
	default:
		return Tilde(path, home)
	}
}

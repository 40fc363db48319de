// Package storage provides line-oriented file operations for cdhist state.
//
// Files are plain text with one record per line and a trailing newline.
// Writes go to a temporary file in the same directory which is then renamed
// over the target, so a reader never sees a half-written file. Concurrent
// writers are not coordinated: the last rename wins.
package storage

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// FileMode is the permission used for every file written by this package.
const FileMode os.FileMode = 0o600

// LoadLines reads path and returns its non-empty lines.
// Returns os.ErrNotExist if file doesn't exist (caller should handle).
func LoadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

// SaveLines atomically writes lines to path, one per line with a trailing
// newline, readable and writable by the owner only. The parent directory is
// created if needed. A symlinked path is followed and its target replaced.
func SaveLines(path string, lines []string) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(FileMode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

package resolve

import (
	"path/filepath"
	"strings"
)

// Search finds the path that best matches query, looking at the final path
// segment first and moving one segment toward the root on each pass.
// Within a pass an exact segment match wins immediately. Otherwise the first
// path whose segment starts with query is returned, then the first whose
// segment contains it. Ties go to the earliest path in input order.
func Search(query string, paths []string) (string, error) {
	segs := make([][]string, len(paths))
	for i, p := range paths {
		segs[i] = segments(p)
	}

	for level := 1; ; level++ {
		complete := true
		prefix, substr := -1, -1

		for i, parts := range segs {
			if len(parts) < level {
				continue
			}
			complete = false

			name := parts[len(parts)-level]
			if name == query {
				return paths[i], nil
			}
			if prefix < 0 {
				if strings.HasPrefix(name, query) {
					prefix = i
				} else if substr < 0 && strings.Contains(name, query) {
					substr = i
				}
			}
		}

		if prefix >= 0 {
			return paths[prefix], nil
		}
		if substr >= 0 {
			return paths[substr], nil
		}
		if complete {
			return "", &NoMatchError{Query: query}
		}
	}
}

// segments splits a path into its non-empty components. The root itself is
// not a segment.
func segments(path string) []string {
	path = filepath.ToSlash(filepath.Clean(path))
	var parts []string
	for _, s := range strings.Split(path, "/") {
		if s != "" && s != "." {
			parts = append(parts, s)
		}
	}
	return parts
}

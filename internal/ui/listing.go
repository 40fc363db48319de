package ui

import "strings"

// Listing renders rows as numbered lines. Numbering is arranged so that 0
// is always the last line printed, directly above the prompt, and numbers
// grow upward.
//
// With inOrder false, rows[0] is the freshest entry and the rows are
// printed reversed, so the number shown for rows[i] is i. With inOrder true,
// rows are printed as given and the last row is the default, so rows[i]
// is shown as len(rows)-i-1.
//
// A non-negative limit smaller than len(rows) keeps only the rows nearest
// the default.
func Listing(rows []string, inOrder bool, limit int, p Painter) []string {
	if limit >= 0 && limit < len(rows) {
		if inOrder {
			rows = rows[len(rows)-limit:]
		} else {
			rows = rows[:limit]
		}
	}

	n := len(rows)
	lines := make([]string, 0, n)
	for x := 1; x <= n; x++ {
		row := rows[x-1]
		if !inOrder {
			row = rows[n-x]
		}
		lines = append(lines, p.Index(n-x)+" "+row)
	}
	return lines
}

// JoinLines joins listing lines with a trailing newline.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

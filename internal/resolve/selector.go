package resolve

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies what a Selector asks for.
type Kind int

const (
	KindEmpty    Kind = iota // nothing given
	KindPath                 // literal path
	KindPrevious             // "-"
	KindIndex                // "-N" or a number typed at the prompt
	KindSearch               // "-/text" or "/text" at the prompt
	KindText                 // other text typed at the prompt
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPath:
		return "path"
	case KindPrevious:
		return "previous"
	case KindIndex:
		return "index"
	case KindSearch:
		return "search"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Selector is a parsed selector expression.
type Selector struct {
	Kind  Kind
	Index int    // KindIndex
	Text  string // KindPath, KindSearch, KindText
}

// ParseArg parses a selector given on the command line.
//
//	""       empty
//	"-"      previous directory
//	"-N"     index N
//	"-/text" search for text; "-/" alone is empty
//	other    literal path, including "-foo"
func ParseArg(arg string) Selector {
	switch {
	case arg == "", arg == "-/":
		return Selector{Kind: KindEmpty}
	case arg == "-":
		return Selector{Kind: KindPrevious}
	case strings.HasPrefix(arg, "-/"):
		return Selector{Kind: KindSearch, Text: arg[2:]}
	case strings.HasPrefix(arg, "-") && isDigits(arg[1:]):
		return Selector{Kind: KindIndex, Index: atoi(arg[1:])}
	default:
		return Selector{Kind: KindPath, Text: arg}
	}
}

// ParseInput parses a line typed at the prompt. Surrounding whitespace is
// ignored.
func ParseInput(line string) Selector {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return Selector{Kind: KindEmpty}
	case isDigits(line):
		return Selector{Kind: KindIndex, Index: atoi(line)}
	case strings.HasPrefix(line, "/"):
		return Selector{Kind: KindSearch, Text: strings.TrimLeft(line, "/")}
	default:
		return Selector{Kind: KindText, Text: line}
	}
}

// IsSelectorArg reports whether arg is "-", "-N" or "-/text", the forms
// a flag parser would otherwise mistake for options.
func IsSelectorArg(arg string) bool {
	if arg == "-/" {
		return true
	}
	switch k := ParseArg(arg).Kind; k {
	case KindPrevious, KindIndex, KindSearch:
		return true
	default:
		return false
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// atoi parses a string of digits, saturating at math.MaxInt so that a huge
// index is reported as out of range rather than wrapping.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return math.MaxInt
	}
	return n
}

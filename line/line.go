// Package line tokenizes single GEDCOM lines.
//
// The grammar is
//
//	LEVEL [ "@" XREF "@" ] TAG [ VALUE ]
//
// where LEVEL is a non-negative integer, the xref (if present) is an
// @-delimited identifier, and everything after the tag is the value
// verbatim, embedded spaces included. No escaping is performed.
// Continuation tags (CONT/CONC) are kept as ordinary sibling lines,
// never concatenated into the preceding value.
package line

import (
	"strconv"
	"strings"
)

// Line is one parsed GEDCOM line. Lines are values and are never
// edited in place; mutation happens by constructing new lines.
type Line struct {
	Level int
	XRef  string // @I1@-style identifier, only on record-opening lines
	Tag   string
	Value string
}

// Parse tokenizes a raw text line. The second return is false when the
// line is blank or does not match the grammar; such lines are dropped
// by callers, never treated as fatal.
func Parse(s string) (Line, bool) {
	s = strings.Trim(s, " \t\r\n")
	if s == "" {
		return Line{}, false
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return Line{}, false
	}
	level, err := strconv.Atoi(s[:i])
	if err != nil {
		return Line{}, false
	}
	rest := skipSpace(s[i:])
	if rest == s[i:] && rest != "" {
		// no separator after the level
		return Line{}, false
	}

	xref := ""
	if strings.HasPrefix(rest, "@") {
		end := strings.IndexByte(rest[1:], '@')
		if end < 0 || end == 0 {
			return Line{}, false
		}
		xref = rest[:end+2]
		rest = skipSpace(rest[end+2:])
	}

	if rest == "" {
		return Line{}, false
	}
	tag := rest
	value := ""
	if sp := strings.IndexAny(rest, " \t"); sp >= 0 {
		tag = rest[:sp]
		value = skipSpace(rest[sp:])
	}
	return Line{Level: level, XRef: xref, Tag: tag, Value: value}, true
}

func skipSpace(s string) string {
	return strings.TrimLeft(s, " \t")
}

// String re-emits the line in wire form. The result re-tokenizes to an
// equivalent Line under Parse.
func (l Line) String() string {
	parts := make([]string, 0, 4)
	parts = append(parts, strconv.Itoa(l.Level))
	if l.XRef != "" {
		parts = append(parts, l.XRef)
	}
	parts = append(parts, l.Tag)
	if l.Value != "" {
		parts = append(parts, l.Value)
	}
	return strings.Join(parts, " ")
}

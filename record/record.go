// Package record models one top-level GEDCOM record: a level-0 opening
// line plus its subordinate lines, with path queries over them.
package record

import (
	"github.com/lineage-format/go-gedcom/line"
)

// Record is a level-0 entity and its subordinate lines. The record
// owns its lines exclusively; Lines[0] is the opening line with level
// 0, all others have level >= 1.
type Record struct {
	ID    string // @X1@-style xref, empty for HEAD/TRLR
	Tag   string // level-0 tag: INDI, FAM, SOUR, ...
	Lines []line.Line
}

// New constructs a record with its opening line.
func New(id, tag string) *Record {
	return &Record{
		ID:    id,
		Tag:   tag,
		Lines: []line.Line{{Level: 0, XRef: id, Tag: tag}},
	}
}

// Open starts a record from a parsed level-0 line.
func Open(l line.Line) *Record {
	return &Record{ID: l.XRef, Tag: l.Tag, Lines: []line.Line{l}}
}

func (r *Record) Kind() Kind {
	return KindOfTag(r.Tag)
}

// Append adds a subordinate line.
func (r *Record) Append(l line.Line) {
	r.Lines = append(r.Lines, l)
}

// Key returns the identifier the record is stored under: its xref, or
// its tag for records without one (HEAD, TRLR).
func (r *Record) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Tag
}

// Value resolves a tag path like ("BIRT", "DATE") and returns the
// first matching value.
//
// Resolution is a linear scan of the flat line list with level-based
// scope tracking: a line at level N matching path[N-1] opens the next
// scope, and a later line at or below an open scope's level closes it.
// First match wins. This is a
// behavioral contract, not an implementation detail: it is
// intentionally tolerant of slightly irregular nesting and callers
// depend on it. Tree gives the strict-tree view instead.
func (r *Record) Value(path ...string) (string, bool) {
	if len(path) == 0 || len(r.Lines) == 0 {
		return "", false
	}
	// depth counts how many leading path components are currently
	// matched; a line at or above the matched depth closes scopes back
	// down to its level.
	depth := 0
	for _, ln := range r.Lines[1:] {
		if ln.Level < 1 {
			continue
		}
		if ln.Level <= depth {
			depth = ln.Level - 1
		}
		if ln.Level != depth+1 || ln.Tag != path[depth] {
			continue
		}
		if depth+1 == len(path) {
			return ln.Value, true
		}
		depth++
	}
	return "", false
}

// AllValues returns every value carried by the tag anywhere in the
// record, in line order.
func (r *Record) AllValues(tag string) []string {
	return r.AllValuesUnder("", tag)
}

// AllValuesUnder returns every value for tag inside the scope of a
// named level-1 parent tag. Scope opens at the parent tag and closes
// at the next level-1 line with a different tag.
func (r *Record) AllValuesUnder(parent, tag string) []string {
	if len(r.Lines) == 0 {
		return nil
	}
	var vals []string
	in := parent == ""
	for _, ln := range r.Lines[1:] {
		if parent != "" && ln.Tag == parent {
			in = true
		} else if parent != "" && ln.Level == 1 && ln.Tag != parent {
			in = false
		}
		if in && ln.Tag == tag {
			vals = append(vals, ln.Value)
		}
	}
	return vals
}

// Package diff compares two record stores: per-record textual diffs
// for human review, and a JSON merge patch of the domain view for
// machine consumption.
package diff

import (
	"encoding/json"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/lineage-format/go-gedcom/record"
	"github.com/lineage-format/go-gedcom/store"
)

// RecordDiff is the textual diff of one record between two stores. A
// record missing on one side diffs against the empty string.
type RecordDiff struct {
	Key   string
	Diffs []diffpatch.Diff
}

// Stores diffs every record that changed between from and to, in
// from's store order with to's additions after.
func Stores(from, to *store.Store) []RecordDiff {
	keys := from.Keys()
	seen := map[string]bool{}
	for _, k := range keys {
		seen[k] = true
	}
	for _, k := range to.Keys() {
		if !seen[k] {
			keys = append(keys, k)
		}
	}

	dmp := diffpatch.New()
	var out []RecordDiff
	for _, key := range keys {
		a := recordText(from.All[key])
		b := recordText(to.All[key])
		if a == b {
			continue
		}
		diffs := dmp.DiffMain(a, b, true)
		diffs = dmp.DiffCleanupSemantic(diffs)
		out = append(out, RecordDiff{Key: key, Diffs: diffs})
	}
	return out
}

// Pretty renders a record diff with insertions and deletions marked
// for terminal display.
func Pretty(d RecordDiff) string {
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(d.Diffs)
}

func recordText(rec *record.Record) string {
	if rec == nil {
		return ""
	}
	parts := make([]string, len(rec.Lines))
	for i, ln := range rec.Lines {
		parts[i] = ln.String()
	}
	return strings.Join(parts, "\n") + "\n"
}

// MergePatch produces an RFC 7386 merge patch turning from's domain
// view into to's.
func MergePatch(from, to *store.Store) ([]byte, error) {
	a, err := json.Marshal(from.Export())
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(to.Export())
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

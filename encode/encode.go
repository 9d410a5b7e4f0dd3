// Package encode serializes records back to GEDCOM text.
//
// Every emitted line re-tokenizes to an equivalent Line, and
// re-loading the output reproduces the same per-type record counts:
// the structure round-trips even when whitespace does not.
package encode

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lineage-format/go-gedcom/line"
	"github.com/lineage-format/go-gedcom/record"
)

// Encode writes the records in the given order, one line per Line,
// and a synthetic trailer last. Callers pass the header first;
// trailer records in the input are skipped in favor of the synthetic
// one.
func Encode(recs []*record.Record, w io.Writer, opts ...Option) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	for _, rec := range recs {
		if rec.Kind() == record.KindTrailer {
			continue
		}
		lines := rec.Lines
		if rec.Kind() == record.KindHeader && es.timestamp != nil {
			lines = refreshHeader(lines, *es.timestamp)
		}
		for _, ln := range lines {
			if err := writeLine(w, ln, es); err != nil {
				return err
			}
		}
	}
	return writeLine(w, line.Line{Level: 0, Tag: "TRLR"}, es)
}

// refreshHeader rebuilds the header lines with DATE and TIME set to
// the given timestamp. Lines are immutable, so replacements are new
// values.
func refreshHeader(lines []line.Line, t time.Time) []line.Line {
	out := make([]line.Line, len(lines))
	for i, ln := range lines {
		switch ln.Tag {
		case "DATE":
			ln.Value = strings.ToUpper(t.Format("02 Jan 2006"))
		case "TIME":
			ln.Value = t.Format("15:04:05")
		}
		out[i] = ln
	}
	return out
}

func writeLine(w io.Writer, ln line.Line, es *EncState) error {
	var s string
	if es.Color != nil {
		s = colorLine(ln, es)
	} else {
		s = ln.String()
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}

func colorLine(ln line.Line, es *EncState) string {
	parts := make([]string, 0, 4)
	parts = append(parts, es.Color(LevelColor, strconv.Itoa(ln.Level)))
	if ln.XRef != "" {
		parts = append(parts, es.Color(XRefColor, ln.XRef))
	}
	parts = append(parts, es.Color(TagColor, ln.Tag))
	if ln.Value != "" {
		parts = append(parts, es.Color(ValueColor, ln.Value))
	}
	return strings.Join(parts, " ")
}

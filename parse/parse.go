// Package parse assembles a GEDCOM line stream into records.
package parse

import (
	"bufio"
	"bytes"
	"io"

	"github.com/lineage-format/go-gedcom/debug"
	"github.com/lineage-format/go-gedcom/line"
	"github.com/lineage-format/go-gedcom/record"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// Result is the outcome of assembling a document: the records in
// input order, the header and trailer when present, and (in strict
// mode) the lines that did not make it into a record.
type Result struct {
	Records []*record.Record
	Header  *record.Record
	Trailer *record.Record
	Skipped []Skip
}

// Skip describes one dropped input line, reported in strict mode.
type Skip struct {
	LineNumber int
	Text       string
	Reason     string
}

// Parse assembles records from raw document bytes. A leading UTF-8
// byte-order mark is tolerated. Lines outside the grammar and lines
// arriving before any level-0 line are skipped, never fatal; strict
// mode records them in Result.Skipped.
func Parse(d []byte, opts ...Option) *Result {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	d = bytes.TrimPrefix(d, bom)

	res := &Result{}
	var current *record.Record
	flush := func() {
		if current == nil {
			return
		}
		res.Records = append(res.Records, current)
		current = nil
	}

	sc := bufio.NewScanner(bytes.NewReader(d))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		ln, ok := line.Parse(raw)
		if !ok {
			if isBlank(raw) {
				continue
			}
			if debug.Parse() {
				debug.Logf("parse: line %d outside grammar: %q\n", lineNo, raw)
			}
			pOpts.skip(res, lineNo, raw, "line does not match the grammar")
			continue
		}
		if ln.Level == 0 {
			flush()
			current = record.Open(ln)
			switch current.Kind() {
			case record.KindHeader:
				res.Header = current
			case record.KindTrailer:
				res.Trailer = current
			}
			continue
		}
		if current == nil {
			// a file opening above level 0 loses these lines
			if debug.Parse() {
				debug.Logf("parse: line %d before any record: %q\n", lineNo, raw)
			}
			pOpts.skip(res, lineNo, raw, "line arrived before any level-0 record")
			continue
		}
		current.Append(ln)
	}
	flush()
	return res
}

// Read assembles records from a reader.
func Read(r io.Reader, opts ...Option) (*Result, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...), nil
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}

// Package store holds an indexed, in-memory collection of GEDCOM
// records with per-type indexes, identifier allocation and mutation.
//
// A store is not safe for concurrent mutation. Reads may run
// concurrently with each other but not with a mutator on the same
// store; callers serialize access.
package store

import (
	"os"
	"regexp"

	"github.com/lineage-format/go-gedcom/debug"
	"github.com/lineage-format/go-gedcom/parse"
	"github.com/lineage-format/go-gedcom/record"
)

// Store is an indexed record collection. Every record in a typed map
// also appears in All; All is keyed by xref, or by tag for the
// header and trailer, which carry none.
type Store struct {
	All          map[string]*record.Record
	Individuals  map[string]*record.Record
	Families     map[string]*record.Record
	Sources      map[string]*record.Record
	Repositories map[string]*record.Record
	Header       *record.Record
	Trailer      *record.Record

	// Duplicates lists keys that occurred more than once on load, in
	// input order. Later records win; the validator reports these.
	Duplicates []string
	// Skipped carries dropped input lines when parsed in strict mode.
	Skipped []parse.Skip

	order []string

	nextIndi, nextFam, nextSour, nextRepo int
}

// New returns an empty store with allocator counters at 1.
func New() *Store {
	return &Store{
		All:          map[string]*record.Record{},
		Individuals:  map[string]*record.Record{},
		Families:     map[string]*record.Record{},
		Sources:      map[string]*record.Record{},
		Repositories: map[string]*record.Record{},
		nextIndi:     1,
		nextFam:      1,
		nextSour:     1,
		nextRepo:     1,
	}
}

// Load reads and assembles a GEDCOM file. A missing or unreadable
// file is the only hard failure; content problems surface through the
// validator instead.
func Load(path string, opts ...parse.Option) (*Store, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Read(d, opts...), nil
}

// Read assembles a store from raw document bytes.
func Read(d []byte, opts ...parse.Option) *Store {
	return FromResult(parse.Parse(d, opts...))
}

// FromResult indexes an assembled parse result.
func FromResult(res *parse.Result) *Store {
	s := New()
	for _, rec := range res.Records {
		s.insert(rec)
	}
	s.Skipped = res.Skipped
	s.seedCounters()
	if debug.Store() {
		debug.Logf("store: loaded %d records, %d duplicate keys\n", len(s.order), len(s.Duplicates))
	}
	return s
}

func (s *Store) insert(rec *record.Record) {
	key := rec.Key()
	if _, dup := s.All[key]; dup {
		s.Duplicates = append(s.Duplicates, key)
	} else {
		s.order = append(s.order, key)
	}
	s.All[key] = rec
	switch rec.Kind() {
	case record.KindIndividual:
		s.Individuals[key] = rec
	case record.KindFamily:
		s.Families[key] = rec
	case record.KindSource:
		s.Sources[key] = rec
	case record.KindRepository:
		s.Repositories[key] = rec
	case record.KindHeader:
		s.Header = rec
	case record.KindTrailer:
		s.Trailer = rec
	}
}

// Records returns the records in serialization order: the header
// first, then every other record in insertion order. The trailer is
// omitted; the serializer emits a synthetic one.
func (s *Store) Records() []*record.Record {
	recs := make([]*record.Record, 0, len(s.order)+1)
	if s.Header != nil {
		recs = append(recs, s.Header)
	}
	for _, key := range s.order {
		rec := s.All[key]
		if rec == s.Header || rec == s.Trailer {
			continue
		}
		recs = append(recs, rec)
	}
	return recs
}

// Keys returns the store keys in insertion order.
func (s *Store) Keys() []string {
	return append([]string(nil), s.order...)
}

var (
	indiIDRe = regexp.MustCompile(`^@I(\d+)@$`)
	famIDRe  = regexp.MustCompile(`^@F(\d+)@$`)
	sourIDRe = regexp.MustCompile(`^@S(\d+)@$`)
	repoIDRe = regexp.MustCompile(`^@R(\d+)@$`)
)

func (s *Store) seedCounters() {
	seed(&s.nextIndi, s.Individuals, indiIDRe)
	seed(&s.nextFam, s.Families, famIDRe)
	seed(&s.nextSour, s.Sources, sourIDRe)
	seed(&s.nextRepo, s.Repositories, repoIDRe)
}

package store

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/lineage-format/go-gedcom/record"
)

// The allocator issues collision-free xrefs per record type. Counters
// live on the store value, so independent stores never share
// allocation state; each counter is seeded past the highest numeric
// suffix loaded and only ever moves forward.

func seed(counter *int, recs map[string]*record.Record, re *regexp.Regexp) {
	for key := range recs {
		m := re.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// suffix overflows or is otherwise unusable for seeding
			continue
		}
		if n+1 > *counter {
			*counter = n + 1
		}
	}
}

// NextIndividualID returns a fresh @I<n>@ xref.
func (s *Store) NextIndividualID() string {
	return next(&s.nextIndi, record.KindIndividual)
}

// NextFamilyID returns a fresh @F<n>@ xref.
func (s *Store) NextFamilyID() string {
	return next(&s.nextFam, record.KindFamily)
}

// NextSourceID returns a fresh @S<n>@ xref.
func (s *Store) NextSourceID() string {
	return next(&s.nextSour, record.KindSource)
}

// NextRepositoryID returns a fresh @R<n>@ xref.
func (s *Store) NextRepositoryID() string {
	return next(&s.nextRepo, record.KindRepository)
}

func next(counter *int, kind record.Kind) string {
	id := fmt.Sprintf("@%s%d@", kind.IDPrefix(), *counter)
	*counter++
	return id
}

package store

import (
	"strings"

	"github.com/lineage-format/go-gedcom/model"
)

// FindPersonIDs returns the xrefs of individuals whose NAME lines
// contain the given surname and given name, case-insensitively.
// Empty arguments match everyone; results follow store order.
func (s *Store) FindPersonIDs(surname, givenName string) []string {
	surname = strings.ToLower(surname)
	givenName = strings.ToLower(givenName)
	var ids []string
	for _, key := range s.order {
		rec, ok := s.Individuals[key]
		if !ok {
			continue
		}
		for _, name := range rec.AllValues("NAME") {
			lower := strings.ToLower(name)
			if strings.Contains(lower, surname) && strings.Contains(lower, givenName) {
				ids = append(ids, key)
				break
			}
		}
	}
	return ids
}

// FindPersons converts every match of FindPersonIDs.
func (s *Store) FindPersons(surname, givenName string) []*model.Person {
	ids := s.FindPersonIDs(surname, givenName)
	persons := make([]*model.Person, 0, len(ids))
	for _, id := range ids {
		persons = append(persons, s.Person(id))
	}
	return persons
}

// Stats are the per-type record counts.
type Stats struct {
	Individuals  int `json:"individuals"`
	Families     int `json:"families"`
	Sources      int `json:"sources"`
	Repositories int `json:"repositories"`
	Records      int `json:"records"`
}

// Stats counts the records by type.
func (s *Store) Stats() Stats {
	return Stats{
		Individuals:  len(s.Individuals),
		Families:     len(s.Families),
		Sources:      len(s.Sources),
		Repositories: len(s.Repositories),
		Records:      len(s.All),
	}
}

package store

import (
	"github.com/lineage-format/go-gedcom/debug"
	"github.com/lineage-format/go-gedcom/line"
	"github.com/lineage-format/go-gedcom/model"
	"github.com/lineage-format/go-gedcom/record"
)

// AddPerson constructs an individual record from the model and
// inserts it. When the person carries no xref one is allocated. The
// assigned xref is returned.
func (s *Store) AddPerson(p *model.Person) string {
	id := p.ID
	if id == "" {
		id = s.NextIndividualID()
	}
	rec := record.New(id, "INDI")
	if n := p.PrimaryName(); n != nil {
		rec.Append(line.Line{Level: 1, Tag: "NAME", Value: n.GEDCOM()})
		if n.Given != "" {
			rec.Append(line.Line{Level: 2, Tag: "GIVN", Value: n.Given})
		}
		if n.Surname != "" {
			rec.Append(line.Line{Level: 2, Tag: "SURN", Value: n.Surname})
		}
		if n.Nickname != "" {
			rec.Append(line.Line{Level: 2, Tag: "NICK", Value: n.Nickname})
		}
	}
	sex := p.Sex
	if sex != "M" && sex != "F" {
		sex = "U"
	}
	rec.Append(line.Line{Level: 1, Tag: "SEX", Value: sex})
	appendEvent(rec, "BIRT", p.Birth)
	appendEvent(rec, "DEAT", p.Death)
	s.insert(rec)
	if debug.Store() {
		debug.Logf("store: added person %s\n", id)
	}
	return id
}

// AddFamily constructs a family record and inserts it, patching the
// other side of every link it creates: a FAMS line on each spouse's
// record and a FAMC line on each child's. A reference to an xref not
// in the store still lands in the family record but the back-link is
// skipped; the validator reports the dangling reference later.
func (s *Store) AddFamily(husbandID, wifeID string, childIDs []string, marriageDate *model.Date, marriagePlace *model.Place) string {
	id := s.NextFamilyID()
	rec := record.New(id, "FAM")
	if husbandID != "" {
		rec.Append(line.Line{Level: 1, Tag: "HUSB", Value: husbandID})
		s.addSpouseLink(husbandID, id)
	}
	if wifeID != "" {
		rec.Append(line.Line{Level: 1, Tag: "WIFE", Value: wifeID})
		s.addSpouseLink(wifeID, id)
	}
	if marriageDate != nil || marriagePlace != nil {
		rec.Append(line.Line{Level: 1, Tag: "MARR"})
		if marriageDate != nil {
			rec.Append(line.Line{Level: 2, Tag: "DATE", Value: marriageDate.GEDCOM()})
		}
		if marriagePlace != nil {
			rec.Append(line.Line{Level: 2, Tag: "PLAC", Value: marriagePlace.GEDCOM()})
		}
	}
	for _, childID := range childIDs {
		rec.Append(line.Line{Level: 1, Tag: "CHIL", Value: childID})
		s.addChildLink(childID, id)
	}
	s.insert(rec)
	if debug.Store() {
		debug.Logf("store: added family %s\n", id)
	}
	return id
}

// AddSource constructs a source record and inserts it. No
// bidirectional links are involved.
func (s *Store) AddSource(src *model.Source) string {
	id := src.ID
	if id == "" {
		id = s.NextSourceID()
	}
	rec := record.New(id, "SOUR")
	rec.Append(line.Line{Level: 1, Tag: "TITL", Value: src.Title})
	if src.Author != "" {
		rec.Append(line.Line{Level: 1, Tag: "AUTH", Value: src.Author})
	}
	if src.Publisher != "" {
		rec.Append(line.Line{Level: 1, Tag: "PUBL", Value: src.Publisher})
	}
	if src.Notes != "" {
		rec.Append(line.Line{Level: 1, Tag: "NOTE", Value: src.Notes})
	}
	s.insert(rec)
	return id
}

// appendEvent writes a dated/placed event under the record: the event
// tag at level 1 with DATE and PLAC beneath it. A nil event appends
// nothing.
func appendEvent(rec *record.Record, tag string, ev *model.Event) {
	if ev == nil {
		return
	}
	rec.Append(line.Line{Level: 1, Tag: tag})
	if ev.Date != nil {
		rec.Append(line.Line{Level: 2, Tag: "DATE", Value: ev.Date.GEDCOM()})
	}
	if ev.Place != nil {
		rec.Append(line.Line{Level: 2, Tag: "PLAC", Value: ev.Place.GEDCOM()})
	}
}

func (s *Store) addSpouseLink(indiID, famID string) {
	rec, ok := s.Individuals[indiID]
	if !ok {
		if debug.Store() {
			debug.Logf("store: FAMS back-link skipped, %s not in store\n", indiID)
		}
		return
	}
	rec.Append(line.Line{Level: 1, Tag: "FAMS", Value: famID})
}

func (s *Store) addChildLink(indiID, famID string) {
	rec, ok := s.Individuals[indiID]
	if !ok {
		if debug.Store() {
			debug.Logf("store: FAMC back-link skipped, %s not in store\n", indiID)
		}
		return
	}
	rec.Append(line.Line{Level: 1, Tag: "FAMC", Value: famID})
}

package store

import (
	"github.com/lineage-format/go-gedcom/model"
	"github.com/lineage-format/go-gedcom/record"
)

// Converters map records onto the domain model. Model values are
// built fresh on every call and never written back; the store changes
// only through the mutators.

// Person converts an individual record, or returns nil when the xref
// is unknown.
func (s *Store) Person(id string) *model.Person {
	rec, ok := s.Individuals[id]
	if !ok {
		return nil
	}
	p := &model.Person{ID: id, Sex: "U"}
	for _, nv := range rec.AllValues("NAME") {
		if n, ok := model.ParseName(nv); ok {
			p.Names = append(p.Names, n)
		}
	}
	if sx, ok := rec.Value("SEX"); ok && (sx == "M" || sx == "F") {
		p.Sex = sx
	}
	p.Birth = eventOf(rec, "BIRT")
	p.Death = eventOf(rec, "DEAT")
	p.ParentFamilyIDs = rec.AllValues("FAMC")
	p.SpouseFamilyIDs = rec.AllValues("FAMS")
	return p
}

// Family converts a family record, or returns nil when the xref is
// unknown.
func (s *Store) Family(id string) *model.Family {
	rec, ok := s.Families[id]
	if !ok {
		return nil
	}
	f := &model.Family{ID: id}
	if husb := rec.AllValues("HUSB"); len(husb) > 0 {
		f.HusbandID = husb[0]
	}
	if wife := rec.AllValues("WIFE"); len(wife) > 0 {
		f.WifeID = wife[0]
	}
	f.ChildIDs = rec.AllValues("CHIL")
	f.Marriage = eventOf(rec, "MARR")
	return f
}

// Source converts a source record, or returns nil when the xref is
// unknown.
func (s *Store) Source(id string) *model.Source {
	rec, ok := s.Sources[id]
	if !ok {
		return nil
	}
	src := &model.Source{ID: id}
	src.Title, _ = rec.Value("TITL")
	src.Author, _ = rec.Value("AUTH")
	src.Publisher, _ = rec.Value("PUBL")
	src.Notes, _ = rec.Value("NOTE")
	return src
}

// eventOf extracts a dated/placed event from the record tree. Events
// with neither date nor place are treated as absent.
func eventOf(rec *record.Record, tag string) *model.Event {
	n := rec.Tree().Child(tag)
	if n == nil {
		return nil
	}
	ev := &model.Event{Type: tag}
	if v, ok := n.ChildValue("DATE"); ok {
		d := model.ParseDate(v)
		ev.Date = &d
	}
	if v, ok := n.ChildValue("PLAC"); ok {
		pl := model.ParsePlace(v)
		ev.Place = &pl
	}
	if ev.Date == nil && ev.Place == nil {
		return nil
	}
	return ev
}

// Export builds the whole-file domain view.
func (s *Store) Export() *model.Export {
	ex := &model.Export{
		Individuals: map[string]*model.Person{},
		Families:    map[string]*model.Family{},
		Sources:     map[string]*model.Source{},
	}
	for id := range s.Individuals {
		ex.Individuals[id] = s.Person(id)
	}
	for id := range s.Families {
		ex.Families[id] = s.Family(id)
	}
	for id := range s.Sources {
		ex.Sources[id] = s.Source(id)
	}
	return ex
}

package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lineage-format/go-gedcom/model"
)

func TestPersonConversion(t *testing.T) {
	s := loadFamilyDoc(t)
	p := s.Person("@I1@")
	if p == nil {
		t.Fatal("no person")
	}
	if n := p.PrimaryName(); n == nil || n.Given != "Jan" || n.Surname != "Herinckx" {
		t.Errorf("name: %+v", n)
	}
	if p.Sex != "M" {
		t.Errorf("sex: got %q", p.Sex)
	}
	if p.Birth == nil || p.Birth.Date == nil {
		t.Fatal("no birth")
	}
	if p.BirthYear() != 1895 {
		t.Errorf("birth year: got %d", p.BirthYear())
	}
	if p.Birth.Date.Modifier != model.About {
		t.Errorf("birth modifier: got %v", p.Birth.Date.Modifier)
	}
	if p.Birth.Place == nil || p.Birth.Place.Country != "Belgium" {
		t.Errorf("birth place: %+v", p.Birth.Place)
	}
	if p.Death != nil {
		t.Errorf("death: %+v", p.Death)
	}
	if d := cmp.Diff([]string{"@F1@"}, p.SpouseFamilyIDs); d != "" {
		t.Errorf("FAMS: %s", d)
	}
	if p.ParentFamilyIDs != nil {
		t.Errorf("FAMC: %v", p.ParentFamilyIDs)
	}
}

func TestPersonUnknown(t *testing.T) {
	if p := loadFamilyDoc(t).Person("@I99@"); p != nil {
		t.Errorf("got %+v", p)
	}
}

func TestPersonSexDefaultsUnknown(t *testing.T) {
	s := Read([]byte("0 @I1@ INDI\n1 NAME X /Y/\n"))
	if p := s.Person("@I1@"); p.Sex != "U" {
		t.Errorf("sex: got %q want U", p.Sex)
	}
}

func TestFamilyConversion(t *testing.T) {
	s := loadFamilyDoc(t)
	f := s.Family("@F1@")
	if f == nil {
		t.Fatal("no family")
	}
	if f.HusbandID != "@I1@" || f.WifeID != "@I2@" {
		t.Errorf("spouses: %q %q", f.HusbandID, f.WifeID)
	}
	if d := cmp.Diff([]string{"@I3@"}, f.ChildIDs); d != "" {
		t.Errorf("children: %s", d)
	}
	if f.Marriage == nil || f.Marriage.Date == nil || f.Marriage.Date.Year != 1920 {
		t.Errorf("marriage: %+v", f.Marriage)
	}
}

func TestSourceConversion(t *testing.T) {
	s := loadFamilyDoc(t)
	src := s.Source("@S1@")
	if src == nil {
		t.Fatal("no source")
	}
	if src.Title != "Parish register Antwerpen" || src.Author != "Parish clerk" {
		t.Errorf("source: %+v", src)
	}
}

func TestExport(t *testing.T) {
	ex := loadFamilyDoc(t).Export()
	if len(ex.Individuals) != 3 || len(ex.Families) != 1 || len(ex.Sources) != 1 {
		t.Errorf("export: %d indi, %d fam, %d sour",
			len(ex.Individuals), len(ex.Families), len(ex.Sources))
	}
	if ex.Individuals["@I3@"].PrimaryName().Given != "Piet" {
		t.Errorf("export person: %+v", ex.Individuals["@I3@"])
	}
}

func TestFindPersonIDs(t *testing.T) {
	s := loadFamilyDoc(t)
	fts := []struct {
		surname, given string
		want           []string
	}{
		{"herinckx", "", []string{"@I1@", "@I3@"}},
		{"HERINCKX", "jan", []string{"@I1@"}},
		{"janssens", "", []string{"@I2@"}},
		{"", "", []string{"@I1@", "@I2@", "@I3@"}},
		{"nobody", "", nil},
	}
	for _, ft := range fts {
		got := s.FindPersonIDs(ft.surname, ft.given)
		if d := cmp.Diff(ft.want, got); d != "" {
			t.Errorf("FindPersonIDs(%q, %q): %s", ft.surname, ft.given, d)
		}
	}
}

func TestFindPersons(t *testing.T) {
	ps := loadFamilyDoc(t).FindPersons("herinckx", "")
	if len(ps) != 2 {
		t.Fatalf("got %d persons", len(ps))
	}
	if ps[0].ID != "@I1@" || ps[1].ID != "@I3@" {
		t.Errorf("order: %s, %s", ps[0].ID, ps[1].ID)
	}
}

package gedcom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lineage-format/go-gedcom/model"
	"github.com/lineage-format/go-gedcom/validate"
)

const sampleDoc = `0 HEAD
1 SOUR go-gedcom
1 DATE 01 JAN 2000
2 TIME 00:00:00
1 GEDC
2 VERS 5.5.1
0 @I1@ INDI
1 NAME Jan /Herinckx/
1 SEX M
1 BIRT
2 DATE ABT 1895
1 FAMS @F1@
0 @I2@ INDI
1 NAME Maria /Janssens/
1 SEX F
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
0 TRLR
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.ged")
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := writeSample(t)
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "out.ged")
	ts := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	if err := SaveAt(s, out, ts); err != nil {
		t.Fatal(err)
	}

	back, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := back.Stats(), s.Stats(); got != want {
		t.Errorf("stats after round trip: got %+v want %+v", got, want)
	}
	if v, _ := back.Header.Value("DATE"); v != "30 AUG 2026" {
		t.Errorf("header date: got %q", v)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.ged")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestStatistics(t *testing.T) {
	s, err := Load(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	st := Statistics(s)
	if st.Individuals != 2 || st.Families != 1 || st.Errors != 0 || st.Warnings != 0 {
		t.Errorf("stats: %+v", st)
	}
}

func TestMutateAndRevalidate(t *testing.T) {
	s, err := Load(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	childID := s.AddPerson(&model.Person{
		Names: []model.Name{{Given: "Piet", Surname: "Herinckx"}},
		Sex:   "M",
	})
	if childID != "@I3@" {
		t.Fatalf("child id: got %s", childID)
	}
	famID := s.AddFamily("@I1@", "@I2@", []string{childID}, nil, nil)
	if famID != "@F2@" {
		t.Fatalf("family id: got %s", famID)
	}
	if issues := Validate(s); len(issues) != 0 {
		t.Errorf("issues after mutation: %v", issues)
	}
}

func TestDanglingChildReported(t *testing.T) {
	s, err := Load(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	s.AddFamily("@I1@", "", []string{"@I9@"}, nil, nil)
	issues := Validate(s)
	found := false
	for _, issue := range issues {
		if issue.Severity == validate.SeverityError &&
			strings.Contains(issue.Message, "@I9@") {
			found = true
		}
	}
	if !found {
		t.Errorf("no error mentioning @I9@: %v", issues)
	}
}

func TestSurnameVariants(t *testing.T) {
	vs := SurnameVariants("HERINCKX")
	found := false
	for _, v := range vs {
		if v == "Herincx" {
			found = true
		}
	}
	if !found {
		t.Errorf("variants %v missing Herincx", vs)
	}
}

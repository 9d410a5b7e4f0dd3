package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	fts := []struct {
		in string
		f  Format
	}{
		{"g", GEDFormat},
		{"ged", GEDFormat},
		{"gedcom", GEDFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	}
	for _, ft := range fts {
		f, err := ParseFormat(ft.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", ft.in, err)
		}
		if f != ft.f {
			t.Errorf("ParseFormat(%q): got %v want %v", ft.in, f, ft.f)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(xml): got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range []Format{GEDFormat, JSONFormat, YAMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("round trip %v: got %v", f, back)
		}
	}
}

func TestSuffix(t *testing.T) {
	if Suffix(GEDFormat) != ".ged" || Suffix(JSONFormat) != ".json" || Suffix(YAMLFormat) != ".yaml" {
		t.Error("bad suffixes")
	}
}

package model

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSurnameVariants(t *testing.T) {
	got := SurnameVariants("HERINCKX")
	want := []string{
		"Herincckx",
		"Herinckcks",
		"Herinckkx",
		"Herincks",
		"Herinckx",
		"Herincx",
		"Herinkx",
		"Herinnckx",
		"Herrinckx",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("HERINCKX: %s", d)
	}
}

func TestSurnameVariantsDoubling(t *testing.T) {
	got := SurnameVariants("Smit")
	want := []string{"Smidt", "Smit", "Smitt", "Smmit", "Ssmit"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Smit: %s", d)
	}
}

func TestSurnameVariantsProperties(t *testing.T) {
	for _, s := range []string{"HERINCKX", "Janssens", "van dyck", "Moeyaert"} {
		vs := SurnameVariants(s)
		if !sort.StringsAreSorted(vs) {
			t.Errorf("%s: not sorted: %v", s, vs)
		}
		seen := map[string]bool{}
		hasInput := false
		for _, v := range vs {
			if seen[v] {
				t.Errorf("%s: duplicate %q", s, v)
			}
			seen[v] = true
			if v == titleCase(strings.ToLower(s)) {
				hasInput = true
			}
		}
		if !hasInput {
			t.Errorf("%s: variants %v missing the input itself", s, vs)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tts := []struct{ in, out string }{
		{"herinckx", "Herinckx"},
		{"van dyck", "Van Dyck"},
		{"HERINCKX", "HERINCKX"},
		{"", ""},
	}
	for _, tt := range tts {
		if got := titleCase(tt.in); got != tt.out {
			t.Errorf("titleCase(%q): got %q want %q", tt.in, got, tt.out)
		}
	}
}

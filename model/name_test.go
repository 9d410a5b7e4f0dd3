package model

import "testing"

func TestParseName(t *testing.T) {
	nts := []struct {
		in string
		n  Name
		ok bool
	}{
		{
			in: "Jan /Herinckx/",
			n:  Name{Given: "Jan", Surname: "Herinckx"},
			ok: true,
		},
		{
			in: "Jean Joseph /HERINCKX/",
			n:  Name{Given: "Jean Joseph", Surname: "HERINCKX"},
			ok: true,
		},
		{
			in: "Jan /Herinckx/ Jr",
			n:  Name{Given: "Jan", Surname: "Herinckx", Suffix: "Jr"},
			ok: true,
		},
		{
			in: "/Herinckx/",
			n:  Name{Surname: "Herinckx"},
			ok: true,
		},
		{
			in: "Jan //",
			n:  Name{Given: "Jan"},
			ok: true,
		},
		{in: "Jan Herinckx"},
		{in: ""},
	}
	for _, nt := range nts {
		n, ok := ParseName(nt.in)
		if ok != nt.ok {
			t.Errorf("ParseName(%q): ok=%t want %t", nt.in, ok, nt.ok)
			continue
		}
		if ok && n != nt.n {
			t.Errorf("ParseName(%q): got %+v want %+v", nt.in, n, nt.n)
		}
	}
}

func TestNameFull(t *testing.T) {
	fts := []struct {
		n Name
		s string
	}{
		{Name{Given: "Jan", Surname: "Herinckx"}, "Jan Herinckx"},
		{Name{Given: "Jan", Surname: "Herinckx", Suffix: "Jr"}, "Jan Herinckx Jr"},
		{Name{Given: "Jan", Nickname: "Jantje", Surname: "Herinckx"}, `Jan "Jantje" Herinckx`},
		{Name{Given: "Jan", Prefix: "van", Surname: "Dam"}, "Jan van Dam"},
		{Name{Surname: "Herinckx"}, "Herinckx"},
	}
	for _, ft := range fts {
		if got := ft.n.Full(); got != ft.s {
			t.Errorf("Full(%+v): got %q want %q", ft.n, got, ft.s)
		}
	}
}

func TestNameGEDCOM(t *testing.T) {
	n := Name{Given: "Jan", Surname: "Herinckx"}
	if got := n.GEDCOM(); got != "Jan /Herinckx/" {
		t.Errorf("GEDCOM: got %q", got)
	}
	back, ok := ParseName(n.GEDCOM())
	if !ok || back != n {
		t.Errorf("round trip: got (%+v, %t)", back, ok)
	}
}

package encode

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lineage-format/go-gedcom/parse"
)

const doc = `0 HEAD
1 SOUR go-gedcom
1 DATE 01 JAN 2000
2 TIME 00:00:00
1 GEDC
2 VERS 5.5.1
0 @I1@ INDI
1 NAME Jan /Herinckx/
1 SEX M
0 @F1@ FAM
1 HUSB @I1@
0 TRLR
`

func TestEncodeRoundTrip(t *testing.T) {
	res := parse.Parse([]byte(doc))
	var sb strings.Builder
	if err := Encode(res.Records, &sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != doc {
		t.Errorf("output differs:\n%s", sb.String())
	}

	back := parse.Parse([]byte(sb.String()))
	if len(back.Records) != len(res.Records) {
		t.Errorf("records: got %d want %d", len(back.Records), len(res.Records))
	}
}

func TestEncodeSyntheticTrailer(t *testing.T) {
	res := parse.Parse([]byte("0 HEAD\n0 @I1@ INDI\n1 SEX M\n"))
	var sb strings.Builder
	if err := Encode(res.Records, &sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.HasSuffix(out, "0 TRLR\n") {
		t.Errorf("no trailer:\n%s", out)
	}
	if strings.Count(out, "0 TRLR") != 1 {
		t.Errorf("trailer count:\n%s", out)
	}
}

func TestEncodeTimestamp(t *testing.T) {
	res := parse.Parse([]byte(doc))
	ts := time.Date(2026, time.August, 30, 14, 5, 9, 0, time.UTC)
	var sb strings.Builder
	if err := Encode(res.Records, &sb, WithTimestamp(ts)); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "1 DATE 30 AUG 2026") {
		t.Errorf("date not refreshed:\n%s", out)
	}
	if !strings.Contains(out, "2 TIME 14:05:09") {
		t.Errorf("time not refreshed:\n%s", out)
	}
	if strings.Contains(out, "01 JAN 2000") {
		t.Errorf("stale date kept:\n%s", out)
	}
	// only the header changes
	if !strings.Contains(out, "1 NAME Jan /Herinckx/") {
		t.Errorf("body disturbed:\n%s", out)
	}
}

func TestEncodeColors(t *testing.T) {
	res := parse.Parse([]byte("0 @I1@ INDI\n1 SEX M\n"))
	marks := &Colors{
		Default: func(format string, args ...any) string {
			return "<" + fmt.Sprintf(format, args...) + ">"
		},
	}
	var sb strings.Builder
	if err := Encode(res.Records, &sb, WithColors(marks)); err != nil {
		t.Fatal(err)
	}
	want := "<0> <@I1@> <INDI>\n<1> <SEX> <M>\n<0> <TRLR>\n"
	if sb.String() != want {
		t.Errorf("got %q want %q", sb.String(), want)
	}
}

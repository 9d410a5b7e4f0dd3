// Package model holds the in-memory genealogical model the record
// engine converts to and from: persons, families, events, dates,
// places, sources. Model values are created fresh on each read and are
// write-once; mutating the underlying store goes through the store's
// mutators, never through a previously returned model value.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Modifier qualifies a date: exact, approximate, bounded or ranged.
type Modifier int

const (
	Exact Modifier = iota
	About
	Before
	After
	Between
	Calculated
	Estimated
)

var modifierTokens = map[string]Modifier{
	"ABT": About,
	"BEF": Before,
	"AFT": After,
	"BET": Between,
	"CAL": Calculated,
	"EST": Estimated,
}

// ParseModifier maps a GEDCOM modifier token to a Modifier.
func ParseModifier(v string) (Modifier, bool) {
	m, ok := modifierTokens[v]
	return m, ok
}

func (m Modifier) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Modifier) MarshalText() ([]byte, error) {
	if m == Exact {
		return []byte(""), nil
	}
	for tok, mod := range modifierTokens {
		if mod == m {
			return []byte(tok), nil
		}
	}
	return nil, fmt.Errorf("<err: %d is not a modifier>", m)
}

func (m *Modifier) UnmarshalText(d []byte) error {
	if len(d) == 0 {
		*m = Exact
		return nil
	}
	pm, ok := ParseModifier(string(d))
	if !ok {
		return fmt.Errorf("bad date modifier %q", d)
	}
	*m = pm
	return nil
}

var monthNames = [...]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

func monthNumber(tok string) int {
	for i, m := range monthNames {
		if m == tok {
			return i + 1
		}
	}
	return 0
}

// Date is a GEDCOM date. Zero fields mean "not stated". Text keeps
// the original source text so free-form dates round-trip unchanged.
type Date struct {
	Year     int      `json:"year,omitempty"`
	Month    int      `json:"month,omitempty"`
	Day      int      `json:"day,omitempty"`
	Modifier Modifier `json:"modifier,omitempty"`

	// end of a BET ... AND ... range
	EndYear  int `json:"endYear,omitempty"`
	EndMonth int `json:"endMonth,omitempty"`
	EndDay   int `json:"endDay,omitempty"`

	Text string `json:"text,omitempty"`
}

// ParseDate reads a modifier-prefixed, optionally ranged date value.
// It never fails: values outside the grammar come back with only Text
// set, preserving them for round-trip.
func ParseDate(s string) Date {
	d := Date{Text: s}
	parts := strings.Fields(strings.ToUpper(s))
	i := 0
	if i < len(parts) {
		if m, ok := ParseModifier(parts[i]); ok {
			d.Modifier = m
			i++
		}
	}
	for i < len(parts) && parts[i] != "AND" {
		tok := parts[i]
		if m := monthNumber(tok); m != 0 {
			d.Month = m
		} else if n, err := strconv.Atoi(tok); err == nil {
			if n > 31 {
				d.Year = n
			} else {
				d.Day = n
			}
		}
		i++
	}
	if d.Modifier == Between && i < len(parts) && parts[i] == "AND" {
		i++
		for i < len(parts) {
			tok := parts[i]
			if m := monthNumber(tok); m != 0 {
				d.EndMonth = m
			} else if n, err := strconv.Atoi(tok); err == nil {
				if n > 31 {
					d.EndYear = n
				} else {
					d.EndDay = n
				}
			}
			i++
		}
	}
	return d
}

// GEDCOM renders the date in wire form: optional modifier token, then
// DD MMM YYYY with absent fields skipped, then AND plus the end date
// for ranges.
func (d Date) GEDCOM() string {
	parts := []string{}
	if d.Modifier != Exact {
		parts = append(parts, d.Modifier.String())
	}
	if d.Day != 0 {
		parts = append(parts, strconv.Itoa(d.Day))
	}
	if d.Month >= 1 && d.Month <= 12 {
		parts = append(parts, monthNames[d.Month-1])
	}
	if d.Year != 0 {
		parts = append(parts, strconv.Itoa(d.Year))
	}
	if d.Modifier == Between && d.EndYear != 0 {
		parts = append(parts, "AND")
		if d.EndDay != 0 {
			parts = append(parts, strconv.Itoa(d.EndDay))
		}
		if d.EndMonth >= 1 && d.EndMonth <= 12 {
			parts = append(parts, monthNames[d.EndMonth-1])
		}
		parts = append(parts, strconv.Itoa(d.EndYear))
	}
	if len(parts) == 0 {
		return d.Text
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether the date carries no information at all.
func (d Date) IsZero() bool {
	return d == Date{}
}

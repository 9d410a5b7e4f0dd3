package model

import "strings"

// Place is a GEDCOM place: the full display name plus an optional
// decomposition by comma-separated jurisdiction.
type Place struct {
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	County  string `json:"county,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// ParsePlace decomposes a comma-separated place string. Recognized
// arities:
//
//	City, Country
//	City, State, Country
//	City, County, State, Country
//
// Extra parts beyond four are folded into the display name only.
func ParsePlace(s string) Place {
	p := Place{Name: s}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch len(parts) {
	case 0:
	case 1:
		p.City = parts[0]
	case 2:
		p.City, p.Country = parts[0], parts[1]
	case 3:
		p.City, p.State, p.Country = parts[0], parts[1], parts[2]
	default:
		p.City, p.County, p.State, p.Country = parts[0], parts[1], parts[2], parts[3]
	}
	return p
}

// GEDCOM renders the place in wire form.
func (p Place) GEDCOM() string {
	return p.Name
}

package model

import (
	"regexp"
	"strings"
)

// Name is one name borne by a person.
type Name struct {
	Given    string `json:"given"`
	Surname  string `json:"surname"`
	Prefix   string `json:"prefix,omitempty"`
	Suffix   string `json:"suffix,omitempty"`
	Nickname string `json:"nickname,omitempty"`
}

// gedcomNameRe matches the wire form "Given /Surname/ suffix".
var gedcomNameRe = regexp.MustCompile(`^([^/]*)\s*/([^/]*)/(.*)$`)

// ParseName reads a GEDCOM NAME value. The second return is false
// when the value carries no /Surname/ markers.
func ParseName(v string) (Name, bool) {
	m := gedcomNameRe.FindStringSubmatch(v)
	if m == nil {
		return Name{}, false
	}
	return Name{
		Given:   strings.TrimSpace(m[1]),
		Surname: strings.TrimSpace(m[2]),
		Suffix:  strings.TrimSpace(m[3]),
	}, true
}

// Full returns the display form: Given "Nickname" prefix Surname Suffix.
func (n Name) Full() string {
	parts := []string{}
	if n.Given != "" {
		parts = append(parts, n.Given)
	}
	if n.Nickname != "" {
		parts = append(parts, `"`+n.Nickname+`"`)
	}
	if n.Prefix != "" {
		parts = append(parts, n.Prefix)
	}
	if n.Surname != "" {
		parts = append(parts, n.Surname)
	}
	if n.Suffix != "" {
		parts = append(parts, n.Suffix)
	}
	return strings.Join(parts, " ")
}

// GEDCOM returns the wire form "Given /Surname/".
func (n Name) GEDCOM() string {
	return n.Given + " /" + n.Surname + "/"
}

package model

import (
	"sort"
	"strings"
)

// surnameSubs are orthographic equivalence pairs common in Belgian,
// Dutch and German records. Both directions of each pair are applied.
var surnameSubs = [][2]string{
	{"ck", "k"}, {"ck", "c"},
	{"x", "cks"}, {"x", "ks"},
	{"ae", "a"}, {"oe", "o"}, {"ue", "u"},
	{"y", "ij"}, {"ij", "y"},
	{"dt", "t"}, {"dt", "d"},
	{"sch", "sh"},
}

const doublableConsonants = "bcdfglmnprst"

// SurnameVariants generates historically plausible spelling variants
// of a surname. The result is sorted, de-duplicated, rendered in
// title case, and always contains the title-cased input. The function
// is pure and safe for concurrent use.
func SurnameVariants(surname string) []string {
	lower := strings.ToLower(surname)
	set := map[string]struct{}{lower: {}}

	for _, sub := range surnameSubs {
		from, to := sub[0], sub[1]
		if strings.Contains(lower, from) {
			set[strings.Replace(lower, from, to, -1)] = struct{}{}
		}
		if strings.Contains(lower, to) {
			set[strings.Replace(lower, to, from, -1)] = struct{}{}
		}
	}

	for _, c := range doublableConsonants {
		single := string(c)
		double := single + single
		if strings.Contains(lower, double) {
			set[strings.Replace(lower, double, single, -1)] = struct{}{}
		} else if strings.Contains(lower, single) {
			set[strings.Replace(lower, single, double, 1)] = struct{}{}
		}
	}

	variants := make([]string, 0, len(set))
	for v := range set {
		variants = append(variants, titleCase(v))
	}
	sort.Strings(variants)
	return dedupe(variants)
}

// titleCase uppercases the letter at the start of each word, like the
// display case genealogical indexes use.
func titleCase(s string) string {
	b := []byte(s)
	upNext := true
	for i := range b {
		c := b[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !isLetter {
			upNext = true
			continue
		}
		if upNext && c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
		upNext = false
	}
	return string(b)
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || sorted[i-1] != v {
			out = append(out, v)
		}
	}
	return out
}

// Package validate checks a record store's graph invariants:
// identifier uniqueness, referential integrity between individuals
// and families, and date-grammar conformance. Content problems are
// reported as issues, never as errors; a partially valid file remains
// usable.
package validate

import (
	"fmt"
	"regexp"

	"github.com/lineage-format/go-gedcom/debug"
	"github.com/lineage-format/go-gedcom/store"
)

// Severity of an issue.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	default:
		return fmt.Sprintf("<err: %d is not a severity>", s)
	}
}

// Issue is one validation finding.
type Issue struct {
	Severity Severity `json:"severity"`
	RecordID string   `json:"recordId,omitempty"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	if i.RecordID == "" {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", i.Severity, i.RecordID, i.Message)
}

// Check runs every validation over the store and accumulates the
// findings. Checks run independently; one failing never hides
// another.
func Check(s *store.Store) []Issue {
	var issues []Issue
	issues = checkStructure(s, issues)
	issues = checkIDs(s, issues)
	issues = checkLinks(s, issues)
	issues = checkDates(s, issues)
	if debug.Validate() {
		debug.Logf("validate: %d issues\n", len(issues))
	}
	return issues
}

// Counts tallies issues by severity.
func Counts(issues []Issue) (errors, warnings int) {
	for _, i := range issues {
		if i.Severity == SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

func checkStructure(s *store.Store, issues []Issue) []Issue {
	if s.Header == nil {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  "file has no header record",
		})
	}
	for _, skip := range s.Skipped {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("line %d dropped: %s", skip.LineNumber, skip.Reason),
		})
	}
	return issues
}

func checkIDs(s *store.Store, issues []Issue) []Issue {
	for _, id := range s.Duplicates {
		issues = append(issues, Issue{
			Severity: SeverityError,
			RecordID: id,
			Message:  fmt.Sprintf("duplicate identifier %s", id),
		})
	}
	return issues
}

// checkLinks verifies referential integrity between individuals and
// families. The checks are asymmetric on purpose: FAMC is verified
// back against the family's CHIL list (as a warning), but FAMS is not
// verified against HUSB/WIFE; only its target's existence is.
func checkLinks(s *store.Store, issues []Issue) []Issue {
	for _, key := range s.Keys() {
		indi, ok := s.Individuals[key]
		if !ok {
			continue
		}
		for _, famRef := range indi.AllValues("FAMC") {
			fam, ok := s.Families[famRef]
			if !ok {
				issues = append(issues, Issue{
					Severity: SeverityError,
					RecordID: key,
					Message:  fmt.Sprintf("FAMC references non-existent family %s", famRef),
				})
				continue
			}
			if !contains(fam.AllValues("CHIL"), key) {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					RecordID: key,
					Message:  fmt.Sprintf("FAMC %s does not list this person as CHIL", famRef),
				})
			}
		}
		for _, famRef := range indi.AllValues("FAMS") {
			if _, ok := s.Families[famRef]; !ok {
				issues = append(issues, Issue{
					Severity: SeverityError,
					RecordID: key,
					Message:  fmt.Sprintf("FAMS references non-existent family %s", famRef),
				})
			}
		}
	}
	for _, key := range s.Keys() {
		fam, ok := s.Families[key]
		if !ok {
			continue
		}
		spouses := append(fam.AllValues("HUSB"), fam.AllValues("WIFE")...)
		for _, spouseRef := range spouses {
			if _, ok := s.Individuals[spouseRef]; !ok {
				issues = append(issues, Issue{
					Severity: SeverityError,
					RecordID: key,
					Message:  fmt.Sprintf("spouse references non-existent individual %s", spouseRef),
				})
			}
		}
		for _, childRef := range fam.AllValues("CHIL") {
			if _, ok := s.Individuals[childRef]; !ok {
				issues = append(issues, Issue{
					Severity: SeverityError,
					RecordID: key,
					Message:  fmt.Sprintf("CHIL references non-existent individual %s", childRef),
				})
			}
		}
	}
	return issues
}

// dateRe is the modifier-prefixed, optionally ranged date grammar.
// Free-text dates are common in real data, so misses are warnings.
var dateRe = regexp.MustCompile(`(?i)^(ABT|BEF|AFT|BET|CAL|EST)?\s*(\d{1,2})?\s*(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)?\s*(\d{4})?(\s+AND\s+.*)?$`)

func checkDates(s *store.Store, issues []Issue) []Issue {
	for _, key := range s.Keys() {
		rec := s.All[key]
		for _, ln := range rec.Lines {
			if ln.Tag != "DATE" || ln.Value == "" {
				continue
			}
			if !dateRe.MatchString(ln.Value) {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					RecordID: key,
					Message:  fmt.Sprintf("non-standard date format: %s", ln.Value),
				})
			}
		}
	}
	return issues
}

func contains(vals []string, v string) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

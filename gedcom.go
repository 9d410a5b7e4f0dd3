// Package gedcom is the programmatic surface of the GEDCOM record
// engine: load and save whole files, look up and add persons,
// families and sources, validate graph invariants, and generate
// surname variants.
//
// The engine is synchronous: every operation runs to completion on
// the calling goroutine, files are read and written whole, and a
// loaded store lives in memory until dropped. Callers own
// concurrency: reads may overlap each other but not mutations on the
// same store.
package gedcom

import (
	"os"
	"time"

	"github.com/lineage-format/go-gedcom/encode"
	"github.com/lineage-format/go-gedcom/model"
	"github.com/lineage-format/go-gedcom/parse"
	"github.com/lineage-format/go-gedcom/store"
	"github.com/lineage-format/go-gedcom/validate"
)

// Load reads a GEDCOM file into a store. A missing or unreadable file
// is the only hard failure; callers are expected to run Validate
// afterwards and render errors and warnings separately rather than
// assume a loaded file is clean.
func Load(path string, opts ...parse.Option) (*store.Store, error) {
	return store.Load(path, opts...)
}

// Save writes the store back to disk with the header timestamp
// refreshed to now.
func Save(s *store.Store, path string) error {
	return SaveAt(s, path, time.Now())
}

// SaveAt writes the store with the header timestamp set to t.
func SaveAt(s *store.Store, path string, t time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := encode.Encode(s.Records(), f, encode.WithTimestamp(t)); err != nil {
		return err
	}
	return f.Close()
}

// Validate runs every store-wide check and returns the accumulated
// issues. Content problems never fail; they are reported.
func Validate(s *store.Store) []validate.Issue {
	return validate.Check(s)
}

// Stats are the per-type record counts plus issue counts from a full
// validation pass.
type Stats struct {
	store.Stats
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Statistics counts records by type and issues by severity.
func Statistics(s *store.Store) Stats {
	errors, warnings := validate.Counts(validate.Check(s))
	return Stats{Stats: s.Stats(), Errors: errors, Warnings: warnings}
}

// SurnameVariants generates orthographic variants of a surname.
func SurnameVariants(surname string) []string {
	return model.SurnameVariants(surname)
}

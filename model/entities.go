package model

// Event is a dated, placed occurrence: birth, death, marriage.
type Event struct {
	Type  string `json:"type"` // BIRT, DEAT, MARR, ...
	Date  *Date  `json:"date,omitempty"`
	Place *Place `json:"place,omitempty"`
}

// Person is an individual. Family links are xref lists in record
// order.
type Person struct {
	ID    string `json:"id,omitempty"` // @I1@-style xref
	Names []Name `json:"names,omitempty"`
	Sex   string `json:"sex,omitempty"` // M, F or U
	Birth *Event `json:"birth,omitempty"`
	Death *Event `json:"death,omitempty"`

	ParentFamilyIDs []string `json:"parentFamilyIds,omitempty"` // FAMC
	SpouseFamilyIDs []string `json:"spouseFamilyIds,omitempty"` // FAMS
}

// PrimaryName returns the first name, or nil when the person carries
// none.
func (p *Person) PrimaryName() *Name {
	if len(p.Names) == 0 {
		return nil
	}
	return &p.Names[0]
}

// BirthYear returns the birth year, or 0 when unknown.
func (p *Person) BirthYear() int {
	if p.Birth != nil && p.Birth.Date != nil {
		return p.Birth.Date.Year
	}
	return 0
}

// DeathYear returns the death year, or 0 when unknown.
func (p *Person) DeathYear() int {
	if p.Death != nil && p.Death.Date != nil {
		return p.Death.Date.Year
	}
	return 0
}

// Family links spouses and their children. Child order follows the
// record.
type Family struct {
	ID        string   `json:"id,omitempty"` // @F1@-style xref
	HusbandID string   `json:"husbandId,omitempty"`
	WifeID    string   `json:"wifeId,omitempty"`
	ChildIDs  []string `json:"childIds,omitempty"`
	Marriage  *Event   `json:"marriage,omitempty"`
}

// Source is a cited record source.
type Source struct {
	ID        string `json:"id,omitempty"` // @S1@-style xref
	Title     string `json:"title"`
	Author    string `json:"author,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Repository is an archive holding sources.
type Repository struct {
	ID   string `json:"id,omitempty"` // @R1@-style xref
	Name string `json:"name"`
}

// Export is the whole-file domain view, used for JSON/YAML conversion
// and merge-patch diffs.
type Export struct {
	Individuals map[string]*Person `json:"individuals"`
	Families    map[string]*Family `json:"families"`
	Sources     map[string]*Source `json:"sources"`
}

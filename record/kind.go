package record

import "fmt"

// Kind is the closed set of record types the engine recognizes.
// Records with other level-0 tags carry KindUnknown and round-trip
// untouched.
type Kind int

const (
	KindUnknown Kind = iota
	KindHeader
	KindTrailer
	KindIndividual
	KindFamily
	KindSource
	KindRepository
)

var kindTags = map[Kind]string{
	KindHeader:     "HEAD",
	KindTrailer:    "TRLR",
	KindIndividual: "INDI",
	KindFamily:     "FAM",
	KindSource:     "SOUR",
	KindRepository: "REPO",
}

// KindOfTag maps a level-0 tag to a Kind.
func KindOfTag(tag string) Kind {
	for k, t := range kindTags {
		if t == tag {
			return k
		}
	}
	return KindUnknown
}

// Tag returns the level-0 tag for the kind, or "" for KindUnknown.
func (k Kind) Tag() string {
	return kindTags[k]
}

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindTrailer:
		return "trailer"
	case KindIndividual:
		return "individual"
	case KindFamily:
		return "family"
	case KindSource:
		return "source"
	case KindRepository:
		return "repository"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("<err: %d is not a kind>", k)
	}
}

// IDPrefix returns the letter used in xrefs for the kind (@I1@, @F1@,
// @S1@, @R1@), or "" for kinds that never carry an xref.
func (k Kind) IDPrefix() string {
	switch k {
	case KindIndividual:
		return "I"
	case KindFamily:
		return "F"
	case KindSource:
		return "S"
	case KindRepository:
		return "R"
	default:
		return ""
	}
}

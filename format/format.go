// Package format names the serialization formats the tooling can
// emit: GEDCOM wire text, or the JSON/YAML domain view.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	GEDFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"g":      GEDFormat,
		"ged":    GEDFormat,
		"gedcom": GEDFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case GEDFormat:
		return []byte("ged"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for the format.
func Suffix(f Format) string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ".ged"
	}
}

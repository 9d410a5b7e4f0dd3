// Package query compiles boolean filter expressions over persons,
// e.g. for `gedcom find -where 'surname == "HERINCKX" and birth_year > 1850'`.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/lineage-format/go-gedcom/debug"
	"github.com/lineage-format/go-gedcom/model"
)

// Filter is a compiled person predicate, safe for reuse across calls.
type Filter struct {
	src string
	prg *vm.Program
}

// Compile builds a filter from an expression over the person
// environment (see Env).
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

// Match evaluates the filter against one person.
func (f *Filter) Match(p *model.Person) (bool, error) {
	env := Env(p)
	if debug.Query() {
		debug.Logf("query: %q on %s\n", f.src, p.ID)
	}
	res, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("running filter %q on %s: %w", f.src, p.ID, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not produce a boolean", f.src)
	}
	return b, nil
}

// Env builds the expression environment for a person. Absent fields
// come through as zero values, so filters can test them directly.
func Env(p *model.Person) map[string]any {
	env := map[string]any{
		"id":              p.ID,
		"sex":             p.Sex,
		"name":            "",
		"given":           "",
		"surname":         "",
		"birth_year":      p.BirthYear(),
		"death_year":      p.DeathYear(),
		"birth_place":     "",
		"death_place":     "",
		"parent_families": p.ParentFamilyIDs,
		"spouse_families": p.SpouseFamilyIDs,
	}
	if n := p.PrimaryName(); n != nil {
		env["name"] = n.Full()
		env["given"] = n.Given
		env["surname"] = n.Surname
	}
	if p.Birth != nil && p.Birth.Place != nil {
		env["birth_place"] = p.Birth.Place.Name
	}
	if p.Death != nil && p.Death.Place != nil {
		env["death_place"] = p.Death.Place.Name
	}
	return env
}

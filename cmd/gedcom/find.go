package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lineage-format/go-gedcom/model"
	"github.com/lineage-format/go-gedcom/query"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: find requires one file", cli.ErrUsage)
	}
	var filter *query.Filter
	if cfg.Where != "" {
		filter, err = query.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	s, err := cfg.loadArg(args[0])
	if err != nil {
		return err
	}
	for _, p := range s.FindPersons(cfg.Surname, cfg.Given) {
		if filter != nil {
			ok, err := filter.Match(p)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		fmt.Fprintln(cc.Out, personLine(p))
	}
	return nil
}

func personLine(p *model.Person) string {
	name := "(no name)"
	if n := p.PrimaryName(); n != nil {
		name = n.Full()
	}
	years := ""
	if by, dy := p.BirthYear(), p.DeathYear(); by != 0 || dy != 0 {
		years = fmt.Sprintf(" (%s-%s)", yearString(by), yearString(dy))
	}
	return fmt.Sprintf("%s\t%s%s", p.ID, name, years)
}

func yearString(y int) string {
	if y == 0 {
		return "?"
	}
	return fmt.Sprintf("%d", y)
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	gedcom "github.com/lineage-format/go-gedcom"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: stats requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		s, err := cfg.loadArg(arg)
		if err != nil {
			return err
		}
		st := gedcom.Statistics(s)
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", arg)
		}
		fmt.Fprintf(cc.Out, "individuals:  %d\n", st.Individuals)
		fmt.Fprintf(cc.Out, "families:     %d\n", st.Families)
		fmt.Fprintf(cc.Out, "sources:      %d\n", st.Sources)
		fmt.Fprintf(cc.Out, "repositories: %d\n", st.Repositories)
		fmt.Fprintf(cc.Out, "records:      %d\n", st.Records)
		fmt.Fprintf(cc.Out, "errors:       %d\n", st.Errors)
		fmt.Fprintf(cc.Out, "warnings:     %d\n", st.Warnings)
	}
	return nil
}

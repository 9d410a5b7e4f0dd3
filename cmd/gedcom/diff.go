package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lineage-format/go-gedcom/diff"
)

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	from, err := cfg.loadArg(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.loadArg(args[1])
	if err != nil {
		return err
	}
	if cfg.MergePatch {
		d, err := diff.MergePatch(from, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
		return nil
	}
	for _, rd := range diff.Stores(from, to) {
		fmt.Fprintf(cc.Out, "# %s\n%s\n", rd.Key, diff.Pretty(rd))
	}
	return nil
}

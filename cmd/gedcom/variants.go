package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lineage-format/go-gedcom/model"
)

func variants(cfg *VariantsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Variants.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: variants requires at least one surname", cli.ErrUsage)
	}
	for _, surname := range args {
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", surname)
		}
		for _, v := range model.SurnameVariants(surname) {
			fmt.Fprintln(cc.Out, v)
		}
	}
	return nil
}

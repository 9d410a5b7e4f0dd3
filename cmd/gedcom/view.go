package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lineage-format/go-gedcom/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		s, err := cfg.loadArg(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(s.Records(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

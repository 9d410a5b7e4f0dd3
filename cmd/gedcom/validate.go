package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/lineage-format/go-gedcom/validate"
)

func runValidate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: validate requires at least one file", cli.ErrUsage)
	}
	if cfg.Color {
		color.NoColor = false
	}
	hadErrors := false
	for _, arg := range args {
		s, err := cfg.loadArg(arg)
		if err != nil {
			return err
		}
		issues := validate.Check(s)
		// errors first, warnings after, rendered separately
		for _, issue := range issues {
			if issue.Severity != validate.SeverityError {
				continue
			}
			hadErrors = true
			fmt.Fprintln(cc.Out, color.RedString("%s", issue))
		}
		if !cfg.Quiet {
			for _, issue := range issues {
				if issue.Severity != validate.SeverityWarning {
					continue
				}
				fmt.Fprintln(cc.Out, color.YellowString("%s", issue))
			}
		}
	}
	if hadErrors {
		return cli.ExitCodeErr(1)
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: get requires <xref> <tag.path> <file>", cli.ErrUsage)
	}
	xref, path, file := args[0], args[1], args[2]
	s, err := cfg.loadArg(file)
	if err != nil {
		return err
	}
	rec, ok := s.All[xref]
	if !ok {
		return fmt.Errorf("no record %s in %s", xref, file)
	}
	tags := strings.Split(strings.ToUpper(path), ".")
	v, ok := rec.Value(tags...)
	if !ok {
		// absent path prints nothing
		return nil
	}
	fmt.Fprintln(cc.Out, v)
	return nil
}

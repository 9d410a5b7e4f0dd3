package main

import (
	"fmt"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/lineage-format/go-gedcom/encode"
)

func save(cfg *SaveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Save.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: save requires exactly one file", cli.ErrUsage)
	}
	s, err := cfg.loadArg(args[0])
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.WithTimestamp(time.Now()))
	return encode.Encode(s.Records(), cc.Out, opts...)
}

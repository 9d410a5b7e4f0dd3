package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/lineage-format/go-gedcom/encode"
	"github.com/lineage-format/go-gedcom/format"
	"github.com/lineage-format/go-gedcom/store"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: convert requires at least one file", cli.ErrUsage)
	}
	of := format.JSONFormat
	if cfg.OutFormat != nil {
		of = *cfg.OutFormat
	}
	for _, arg := range args {
		s, err := cfg.loadArg(arg)
		if err != nil {
			return err
		}
		if err := convertOne(cfg, cc, s, of); err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}

func convertOne(cfg *ConvertConfig, cc *cli.Context, s *store.Store, of format.Format) error {
	switch of {
	case format.GEDFormat:
		return encode.Encode(s.Records(), cc.Out, cfg.encOpts(cc.Out)...)
	case format.JSONFormat:
		d, err := json.MarshalIndent(s.Export(), "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = cc.Out.Write(d)
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(s.Export())
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, of)
	}
}

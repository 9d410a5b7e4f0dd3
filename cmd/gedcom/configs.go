package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/lineage-format/go-gedcom/encode"
	"github.com/lineage-format/go-gedcom/format"
	"github.com/lineage-format/go-gedcom/parse"
	"github.com/lineage-format/go-gedcom/store"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='force colored output'"`
	Strict bool `cli:"name=strict desc='report skipped input lines as warnings'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	if cfg.Strict {
		return []parse.Option{parse.Strict()}
	}
	return nil
}

// loadArg reads a store from a file path, or stdin for "-".
func (cfg *MainConfig) loadArg(arg string) (*store.Store, error) {
	if arg == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return store.Read(d, cfg.parseOpts()...), nil
	}
	s, err := store.Load(arg, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", arg, err)
	}
	return s, nil
}

// encOpts enables colors when forced or when writing to a terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	if cfg.Color {
		return []encode.Option{encode.WithColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.Option{encode.WithColors(encode.NewColors())}
	}
	return nil
}

type StatsConfig struct {
	*MainConfig
	Stats *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='suppress warnings'"`

	Validate *cli.Command
}

type FindConfig struct {
	*MainConfig
	Surname string `cli:"name=surname desc='surname substring to match'"`
	Given   string `cli:"name=given desc='given-name substring to match'"`
	Where   string `cli:"name=where desc='boolean filter expression over persons'"`

	Find *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type VariantsConfig struct {
	*MainConfig
	Variants *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	OutFormat *format.Format

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig
	MergePatch bool `cli:"name=merge-patch desc='emit a JSON merge patch of the domain view'"`

	Diff *cli.Command
}

type SaveConfig struct {
	*MainConfig
	Save *cli.Command
}

func (cfg *ConvertConfig) fmtOpt(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

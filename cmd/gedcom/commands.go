package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "gedcom").
		WithSynopsis("gedcom [opts] command [opts]").
		WithDescription("gedcom is a tool for working with GEDCOM family-tree files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gedcomMain(cfg, cc, args)
		}).
		WithSubs(
			StatsCommand(cfg),
			ValidateCommand(cfg),
			FindCommand(cfg),
			GetCommand(cfg),
			VariantsCommand(cfg),
			ViewCommand(cfg),
			ConvertCommand(cfg),
			DiffCommand(cfg),
			SaveCommand(cfg))
}

func gedcomMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("stats").
		WithAliases("st").
		WithSynopsis("stats [files]").
		WithDescription("show per-type record counts and issue counts").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
	cfg.Stats = cmd
	return cmd
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("validate").
		WithAliases("val", "v").
		WithSynopsis("validate [files]").
		WithDescription("check identifier uniqueness, family links and date grammar").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runValidate(cfg, cc, args)
		})
	cfg.Validate = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("find").
		WithAliases("f").
		WithSynopsis("find [-surname s] [-given g] [-where expr] [file]").
		WithDescription("find persons by name, with an optional filter expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <xref> <tag.path> [file]").
		WithDescription("get a value at a tag path inside a record").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func VariantsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VariantsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("variants").
		WithAliases("var").
		WithSynopsis("variants [surnames]").
		WithDescription("generate orthographic surname variants").
		WithRun(func(cc *cli.Context, args []string) error {
			return variants(cfg, cc, args)
		})
	cfg.Variants = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithSynopsis("view [files]").
		WithDescription("view GEDCOM files with records re-emitted in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("convert").
		WithAliases("conv", "c").
		WithSynopsis("convert [-O format] [files]").
		WithDescription("convert files to the ged/json/yaml domain view").
		WithOpts(&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: ged/g, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt(&cfg.OutFormat), "(format)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-merge-patch] <from> <to>").
		WithDescription("diff two GEDCOM files record by record").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func SaveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SaveConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("save").
		WithSynopsis("save [-o out] <file>").
		WithDescription("rewrite a file with a refreshed header timestamp").
		WithRun(func(cc *cli.Context, args []string) error {
			return save(cfg, cc, args)
		})
	cfg.Save = cmd
	return cmd
}

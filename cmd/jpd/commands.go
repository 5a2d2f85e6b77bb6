package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	return newMainCommand(&MainConfig{})
}

func newMainCommand(cfg *MainConfig) *cli.Command {
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "ignore",
			Description: "json pointer to leave out of diffs, may be repeated",
			Type:        cli.NamedFuncOpt(cfg.ignoreOpt, "(pointer)"),
		},
		&cli.Opt{
			Name:        "env",
			Description: "load settings from a dotenv file",
			Type:        cli.NamedFuncOpt(cfg.envOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jpd").
		WithSynopsis("jpd [opts] [command [opts] args]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jpdMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			PatchCommand(cfg))
}

const mainDescription = `jpd computes and applies JSON Patch (RFC 6902) documents.

Without a command, jpd reads three lines from standard input:

  1. the mode, 'diff' or 'patch'
  2. a JSON document A
  3. a JSON document B

In diff mode it prints a JSON Patch which transforms A into B.  In patch
mode it prints A with the patch B applied.  The result is printed on a
single line.

The diff and patch commands do the same with documents read from files.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [opts] <a> <b>").
		WithDescription("print a json patch transforming a into b").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <doc> <patch>").
		WithDescription("apply a json patch to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

package main

import (
	"fmt"

	"github.com/signadot/jpd"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	docs, err := getDocs(cc.In, cfg.String, args)
	if err != nil {
		return err
	}
	return runDocs(cfg.MainConfig, cc.Out, jpd.DiffMode, docs[0], docs[1])
}

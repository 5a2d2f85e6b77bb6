package main

import (
	"fmt"

	"github.com/signadot/jpd"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a document and a patch to apply to it", cli.ErrUsage)
	}
	docs, err := getDocs(cc.In, cfg.String, args)
	if err != nil {
		return err
	}
	return runDocs(cfg.MainConfig, cc.Out, jpd.PatchMode, docs[0], docs[1])
}

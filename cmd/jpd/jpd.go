package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/jpd"

	"github.com/scott-cotton/cli"
)

func jpdMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		err = cfg.closeOut(err)
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.check(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cfg.fail(runLines(cfg, cc.In, cc.Out))
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
	return cfg.fail(err)
}

// closeOut closes the -o file.  A failure to close is reported only
// if nothing else went wrong.
func (cfg *MainConfig) closeOut(err error) error {
	if cfg.CloseOut == nil {
		return err
	}
	cerr := cfg.CloseOut()
	cfg.CloseOut = nil
	if cerr == nil || err != nil {
		return err
	}
	return cfg.fail(fmt.Errorf("error closing %s: %w", cfg.Out, cerr))
}

func (cfg *MainConfig) check() error {
	if countSet(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if cfg.Verify && (len(cfg.Ignores) != 0 || cfg.Equivalent) {
		return fmt.Errorf("%w: -verify cannot be used with -ignore or -equivalent", cli.ErrUsage)
	}
	return nil
}

// fail reports err and turns it into an exit status.
func (cfg *MainConfig) fail(err error) error {
	if err == nil {
		return nil
	}
	code := exitCode(err)
	newLog(cfg.errOut()).Error(err.Error(), "exit", code)
	return cli.ExitCodeErr(code)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, jpd.ErrInvalidMode):
		return 2
	case errors.Is(err, jpd.ErrMalformed):
		return 3
	case errors.Is(err, jpd.ErrPatch):
		return 4
	case errors.Is(err, jpd.ErrVerify):
		return 5
	}
	return 1
}

func countSet(flags ...bool) (n int) {
	for _, f := range flags {
		if f {
			n++
		}
	}
	return
}

// outOpt redirects the result to the file a, "-" meaning stdout.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return a, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open output %q: %w", cli.ErrUsage, a, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return a, nil
}

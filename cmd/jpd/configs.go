package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jpd"
	"github.com/signadot/jpd/debug"
	"github.com/signadot/jpd/encode"
	"github.com/signadot/jpd/format"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent bool `cli:"name=indent desc='indent json output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Reverse     bool `cli:"name=r desc='reverse the diff'"`
	Verify      bool `cli:"name=verify desc='check that the diff patches a into b'"`
	Factorize   bool `cli:"name=factorize desc='diff with move and copy operations'"`
	Rationalize bool `cli:"name=rationalize desc='replace whole objects when shorter'"`
	Invertible  bool `cli:"name=invertible desc='test old values before remove and replace'"`
	Equivalent  bool `cli:"name=equivalent desc='ignore array order'"`
	LCS         bool `cli:"name=lcs desc='diff arrays by longest common subsequence'"`

	Ignores []string

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	// Err receives error reports, os.Stderr if nil.
	Err io.Writer

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ignoreOpt(_ *cli.Context, a string) (any, error) {
	cfg.Ignores = append(cfg.Ignores, a)
	return a, nil
}

func (cfg *MainConfig) envOpt(_ *cli.Context, a string) (any, error) {
	if err := godotenv.Load(a); err != nil {
		return nil, fmt.Errorf("%w: could not load %q: %w", cli.ErrUsage, a, err)
	}
	debug.Load()
	return a, nil
}

// inFormat and outFormat resolve, in order of precedence, -I/-O, then
// -j/-y, then $JPD_IFMT/$JPD_OFMT.  The default is json.
func (cfg *MainConfig) inFormat() (format.Format, error) {
	return cfg.resolveFormat(cfg.InFormat, "JPD_IFMT")
}

func (cfg *MainConfig) outFormat() (format.Format, error) {
	return cfg.resolveFormat(cfg.OutFormat, "JPD_OFMT")
}

func (cfg *MainConfig) resolveFormat(f *format.Format, envVar string) (format.Format, error) {
	switch {
	case f != nil:
		return *f, nil
	case cfg.Y:
		return format.YAMLFormat, nil
	case cfg.J:
		return format.JSONFormat, nil
	}
	v := os.Getenv(envVar)
	if v == "" {
		return format.JSONFormat, nil
	}
	pf, err := format.ParseFormat(v)
	if err != nil {
		return 0, fmt.Errorf("%w: $%s: %w", cli.ErrUsage, envVar, err)
	}
	return pf, nil
}

func (cfg *MainConfig) diffOpts() []jpd.DiffOpt {
	return []jpd.DiffOpt{
		jpd.DiffFactorize(cfg.Factorize),
		jpd.DiffRationalize(cfg.Rationalize),
		jpd.DiffInvertible(cfg.Invertible),
		jpd.DiffEquivalent(cfg.Equivalent),
		jpd.DiffLCS(cfg.LCS),
		jpd.DiffIgnores(cfg.Ignores...),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) ([]encode.EncodeOption, error) {
	f, err := cfg.outFormat()
	if err != nil {
		return nil, err
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodePretty(cfg.Indent),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res, nil
}

var isTerminal = isatty.IsTerminal

// useColor reports whether to colour output written to w: -color or
// -no-color if given, otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	fd, ok := w.(*os.File)
	return ok && isTerminal(fd.Fd())
}

func (cfg *MainConfig) errOut() io.Writer {
	if cfg.Err != nil {
		return cfg.Err
	}
	return os.Stderr
}

type DiffConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='args are json strings rather than files'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='args are json strings rather than files'"`

	Patch *cli.Command
}

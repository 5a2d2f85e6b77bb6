package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/jpd"
	"github.com/signadot/jpd/encode"
	"github.com/signadot/jpd/format"
)

// runDocs computes the result of mode on a and b and encodes it to w.
// Nothing is written unless the computation succeeds.
func runDocs(cfg *MainConfig, w io.Writer, mode jpd.Mode, a, b []byte) error {
	res, err := compute(cfg, mode, a, b)
	if err != nil {
		return err
	}
	opts, err := cfg.encOpts(w)
	if err != nil {
		return err
	}
	if err := encode.Encode(res, w, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func compute(cfg *MainConfig, mode jpd.Mode, a, b []byte) ([]byte, error) {
	inFmt, err := cfg.inFormat()
	if err != nil {
		return nil, err
	}
	a, err = format.ToJSON(inFmt, a)
	if err != nil {
		return nil, err
	}
	b, err = format.ToJSON(inFmt, b)
	if err != nil {
		return nil, err
	}
	a, b = bytes.TrimSpace(a), bytes.TrimSpace(b)
	switch mode {
	case jpd.DiffMode:
		return diffDocs(cfg, a, b)
	case jpd.PatchMode:
		return jpd.Patch(a, b)
	}
	return nil, fmt.Errorf("%w (got %s)", jpd.ErrInvalidMode, mode)
}

func diffDocs(cfg *MainConfig, a, b []byte) ([]byte, error) {
	if cfg.Reverse {
		a, b = b, a
	}
	d, err := jpd.Diff(a, b, cfg.diffOpts()...)
	if err != nil {
		return nil, err
	}
	if cfg.Verify {
		if err := jpd.Verify(a, b, d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

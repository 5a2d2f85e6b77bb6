package jpd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/jpd/debug"

	"github.com/wI2L/jsondiff"
)

// Diff produces a JSON Patch (RFC 6902) which, applied to from with
// [Patch], yields a document equal to to.
//
// The operations, their order and the choice between e.g. replace and
// remove+add are those of github.com/wI2L/jsondiff, tuned by opts.
//
// If there are no differences, Diff returns an empty array, `[]`.
func Diff(from, to []byte, opts ...DiffOpt) ([]byte, error) {
	cfg := &DiffConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := Validate(from); err != nil {
		return nil, err
	}
	if err := Validate(to); err != nil {
		return nil, err
	}
	p, err := jsondiff.CompareJSON(from, to, cfg.options()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if debug.Diff() {
		debug.Logf("diff produced %d operations", len(p))
	}
	if len(p) == 0 {
		return []byte("[]"), nil
	}
	d, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error encoding diff: %w", err)
	}
	return d, nil
}

type DiffConfig struct {
	Factorize   bool
	Rationalize bool
	Invertible  bool
	Equivalent  bool
	LCS         bool
	// Ignores holds JSON Pointers whose values are left out of the
	// comparison.
	Ignores []string
}

type DiffOpt func(*DiffConfig)

// DiffFactorize produces move and copy operations where a value moved
// or was duplicated.
func DiffFactorize(v bool) DiffOpt {
	return func(c *DiffConfig) {
		c.Factorize = v
	}
}

// DiffRationalize replaces an object's field by field operations with
// a single replace when that is shorter.
func DiffRationalize(v bool) DiffOpt {
	return func(c *DiffConfig) {
		c.Rationalize = v
	}
}

// DiffInvertible precedes each remove and replace with a test of the
// old value, so that the patch can be inverted.
func DiffInvertible(v bool) DiffOpt {
	return func(c *DiffConfig) {
		c.Invertible = v
	}
}

// DiffEquivalent treats arrays holding the same elements in a
// different order as equal.
func DiffEquivalent(v bool) DiffOpt {
	return func(c *DiffConfig) {
		c.Equivalent = v
	}
}

// DiffLCS compares arrays with a longest common subsequence rather
// than index by index.
func DiffLCS(v bool) DiffOpt {
	return func(c *DiffConfig) {
		c.LCS = v
	}
}

func DiffIgnores(ptrs ...string) DiffOpt {
	return func(c *DiffConfig) {
		c.Ignores = append(c.Ignores, ptrs...)
	}
}

// unmarshalNumbers decodes documents for comparison keeping numbers
// as [json.Number], so that large integers are not rounded to float64.
func unmarshalNumbers(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(v)
}

func (c *DiffConfig) options() []jsondiff.Option {
	res := []jsondiff.Option{jsondiff.UnmarshalFunc(unmarshalNumbers)}
	if c.Factorize {
		res = append(res, jsondiff.Factorize())
	}
	if c.Rationalize {
		res = append(res, jsondiff.Rationalize())
	}
	if c.Invertible {
		res = append(res, jsondiff.Invertible())
	}
	if c.Equivalent {
		res = append(res, jsondiff.Equivalent())
	}
	if c.LCS {
		res = append(res, jsondiff.LCS())
	}
	if len(c.Ignores) != 0 {
		res = append(res, jsondiff.Ignores(c.Ignores...))
	}
	return res
}

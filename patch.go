package jpd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/signadot/jpd/debug"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/google/go-cmp/cmp"
)

// Patch applies patch, a JSON Patch (RFC 6902) document, to doc and
// returns the resulting document.  doc is not modified.
//
// Operation semantics, including the handling of paths which do not
// exist in doc, are those of github.com/evanphx/json-patch.  Operations
// on the whole document (path "") are applied here, so that documents
// whose root is a scalar or changes type can be patched.  Any failure
// to decode or apply patch wraps [ErrPatch].
func Patch(doc, patch []byte) ([]byte, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	if err := Validate(patch); err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: decode patch: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("applying %d operations", len(ops))
	}
	res := compact(doc)
	var run jsonpatch.Patch
	for i, op := range ops {
		if !isRootOp(op) {
			run = append(run, op)
			continue
		}
		if res, err = applyRun(run, res); err != nil {
			return nil, err
		}
		run = nil
		if res, err = applyRoot(op, res); err != nil {
			return nil, fmt.Errorf("%w: apply patch: operation %d: %w", ErrPatch, i, err)
		}
	}
	return applyRun(run, res)
}

func applyRun(run jsonpatch.Patch, doc []byte) ([]byte, error) {
	if len(run) == 0 {
		return doc, nil
	}
	res, err := run.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: apply patch: %w", ErrPatch, err)
	}
	return res, nil
}

// isRootOp reports whether op targets the whole document with an
// operation carrying a value.
func isRootOp(op jsonpatch.Operation) bool {
	switch op.Kind() {
	case "add", "replace", "test":
	default:
		return false
	}
	p, err := op.Path()
	return err == nil && p == ""
}

func applyRoot(op jsonpatch.Operation, doc []byte) ([]byte, error) {
	raw, ok := op["value"]
	if !ok {
		return nil, fmt.Errorf("%s operation on document root: %w", op.Kind(), jsonpatch.ErrMissing)
	}
	val := []byte("null")
	if raw != nil {
		val = compact(*raw)
	}
	if op.Kind() != "test" {
		return val, nil
	}
	if !Equal(doc, val) {
		return nil, fmt.Errorf("%w: document root", jsonpatch.ErrTestFailed)
	}
	return doc, nil
}

func compact(doc []byte) []byte {
	buf := &bytes.Buffer{}
	if err := json.Compact(buf, doc); err != nil {
		return doc
	}
	return buf.Bytes()
}

// Equal reports whether a and b are structurally equal JSON documents.
// Numbers are compared by exact value, so 1, 1.0 and 1e0 are equal
// while integers beyond float64 precision are not rounded together.
func Equal(a, b []byte) bool {
	va, err := decodeNumbers(a)
	if err != nil {
		return false
	}
	vb, err := decodeNumbers(b)
	if err != nil {
		return false
	}
	return cmp.Equal(va, vb, cmp.Comparer(numberEqual))
}

func numberEqual(x, y json.Number) bool {
	rx, ok := new(big.Rat).SetString(string(x))
	if !ok {
		return x == y
	}
	ry, ok := new(big.Rat).SetString(string(y))
	if !ok {
		return false
	}
	return rx.Cmp(ry) == 0
}

// decodeNumbers decodes a JSON document keeping numbers as
// [json.Number].
func decodeNumbers(doc []byte) (any, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

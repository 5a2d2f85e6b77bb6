// Package jpd computes and applies JSON Patch (RFC 6902) documents.
//
// # Usage
//
//	// A patch turning a into b
//	p, err := jpd.Diff(a, b)
//
//	// Apply it
//	res, err := jpd.Patch(a, p)
//
//	// Check the round trip
//	err = jpd.Verify(a, b, p)
//
// Documents are JSON text.  Diff is computed by github.com/wI2L/jsondiff
// and patches are applied by github.com/evanphx/json-patch; this
// package validates input, tunes the diff and classifies errors as
// [ErrMalformed], [ErrPatch] or [ErrVerify].
//
// # Related Packages
//
//   - github.com/signadot/jpd/format - YAML input and output
//   - github.com/signadot/jpd/encode - write results, optionally in colour
//   - github.com/signadot/jpd/cmd/jpd - the jpd command
package jpd

package jpd

import (
	"encoding/json"
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Verify checks that applying patch to from yields to.  On a mismatch
// the error wraps [ErrVerify] and shows where the expected and actual
// documents differ.
func Verify(from, to, patch []byte) error {
	got, err := Patch(from, patch)
	if err != nil {
		return err
	}
	if Equal(got, to) {
		return nil
	}
	return fmt.Errorf("%w: patched document differs from target:\n%s", ErrVerify, textDiff(to, got))
}

// textDiff renders a character diff of the indented forms of want and
// got, with deletions as [-x-] and insertions as {+x+}.
func textDiff(want, got []byte) string {
	w, g := indented(want), indented(got)
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(w, g, strings.Contains(w, "\n") && strings.Contains(g, "\n"))
	diffs = dmp.DiffCleanupSemantic(diffs)
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
		}
	}
	return buf.String()
}

func indented(doc []byte) string {
	v, err := decodeNumbers(doc)
	if err != nil {
		return string(doc)
	}
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(doc)
	}
	return string(d)
}

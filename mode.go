package jpd

import (
	"fmt"
)

// Mode selects what a run computes from its two input documents.
type Mode int

const (
	// DiffMode computes a JSON Patch transforming the first document
	// into the second.
	DiffMode Mode = iota
	// PatchMode applies the second document, a JSON Patch, to the first.
	PatchMode
)

// ParseMode parses a mode token.  Tokens are matched exactly: no case
// folding and no whitespace trimming.
func ParseMode(v string) (Mode, error) {
	switch v {
	case "diff":
		return DiffMode, nil
	case "patch":
		return PatchMode, nil
	}
	return 0, fmt.Errorf("%w (got %q)", ErrInvalidMode, v)
}

func (m Mode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case DiffMode:
		return []byte("diff"), nil
	case PatchMode:
		return []byte("patch"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a mode>", m)
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	pm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

package jpd

import (
	"errors"
)

var (
	ErrInvalidMode = errors.New("Valid modes: diff, patch")
	ErrMalformed   = errors.New("malformed json")
	ErrPatch       = errors.New("patch error")
	ErrVerify      = errors.New("verify error")
)

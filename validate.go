package jpd

import (
	"encoding/json"
	"fmt"
)

// Validate reports whether doc is a single well formed JSON text.  The
// returned error wraps [ErrMalformed] and carries the parser's message.
func Validate(doc []byte) error {
	if json.Valid(doc) {
		return nil
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return fmt.Errorf("%w: invalid json text", ErrMalformed)
}

package format

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/jpd"

	"github.com/goccy/go-yaml"
)

// ToJSON converts a document in format f to compact JSON.  JSON input
// is returned as is so that the parser's own error reporting applies
// to it downstream.
func ToJSON(f Format, d []byte) ([]byte, error) {
	switch f {
	case JSONFormat:
		return d, nil
	case YAMLFormat:
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", jpd.ErrMalformed, err)
		}
		buf := bytes.NewBuffer(nil)
		if err := json.Compact(buf, bytes.TrimSpace(j)); err != nil {
			return nil, fmt.Errorf("%w: %w", jpd.ErrMalformed, err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

// FromJSON converts a JSON document to format f.  The result carries no
// trailing newline.
func FromJSON(f Format, d []byte) ([]byte, error) {
	switch f {
	case JSONFormat:
		return d, nil
	case YAMLFormat:
		y, err := yaml.JSONToYAML(d)
		if err != nil {
			return nil, fmt.Errorf("error converting to yaml: %w", err)
		}
		return bytes.TrimRight(y, "\n"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

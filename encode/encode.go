package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jpd/format"

	"github.com/tidwall/pretty"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int
	pretty bool

	format format.Format

	Color *Colors
}

// Encode writes the JSON document d to w followed by a newline.
//
// By default the output is compact JSON on a single line.  Options
// select indentation, colours, or conversion to another format.
// Nothing is written if d is not valid JSON.
func Encode(d []byte, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	d = bytes.TrimSpace(d)
	if es.format.IsYAML() {
		y, err := format.FromJSON(es.format, d)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, string(y)+"\n")
		return err
	}
	if !json.Valid(d) {
		return fmt.Errorf("%w: %w", ErrEncoding, invalidErr(d))
	}
	var out []byte
	if es.pretty {
		// Width 0 puts every array element on its own line.
		out = pretty.PrettyOptions(d, &pretty.Options{
			Indent: strings.Repeat(" ", es.indent),
		})
		out = bytes.TrimRight(out, "\n")
	} else {
		out = pretty.Ugly(d)
	}
	if es.Color != nil {
		out = pretty.Color(out, es.Color.Style())
	}
	out = append(out, '\n')
	_, err := w.Write(out)
	return err
}

func invalidErr(d []byte) error {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return err
	}
	return errors.New("invalid json")
}

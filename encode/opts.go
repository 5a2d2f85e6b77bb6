package encode

import "github.com/signadot/jpd/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c }
}
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

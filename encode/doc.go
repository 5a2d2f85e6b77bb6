// Package encode writes JSON results: compact on one line by default,
// or indented, coloured, or as YAML.
package encode

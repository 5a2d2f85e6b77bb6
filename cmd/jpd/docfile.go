package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// getDocs reads the documents named by args, or takes args as the
// documents themselves if isString is set.
func getDocs(stdin io.Reader, isString bool, args []string) ([][]byte, error) {
	if isString {
		res := make([][]byte, len(args))
		for i, arg := range args {
			res[i] = []byte(arg)
		}
		return res, nil
	}
	if countSet(isStdin(args)...) > 1 {
		return nil, fmt.Errorf("%w: at most one document may be read from stdin", cli.ErrUsage)
	}
	res := make([][]byte, len(args))
	for i, arg := range args {
		d, err := getDocFile(stdin, arg)
		if err != nil {
			return nil, err
		}
		res[i] = d
	}
	return res, nil
}

func isStdin(args []string) []bool {
	res := make([]bool, len(args))
	for i, arg := range args {
		res[i] = arg == "-"
	}
	return res
}

// getDocFile reads the document at path, or stdin if path is "-".
func getDocFile(stdin io.Reader, path string) ([]byte, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = stdin
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

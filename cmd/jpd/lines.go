package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jpd"
	"github.com/signadot/jpd/debug"
)

// runLines reads a mode and two documents, one per line, from r and
// writes the result to w.  The mode is checked before anything else is
// read.
func runLines(cfg *MainConfig, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	line, err := readLine(br)
	if err != nil {
		return err
	}
	mode, err := jpd.ParseMode(line)
	if err != nil {
		return err
	}
	a, err := readLine(br)
	if err != nil {
		return err
	}
	b, err := readLine(br)
	if err != nil {
		return err
	}
	if debug.IO() {
		debug.Logf("mode %s: read documents of %d and %d bytes", mode, len(a), len(b))
	}
	return runDocs(cfg, w, mode, []byte(a), []byte(b))
}

// readLine reads up to and excluding the next '\n'.  A missing line
// reads as empty, leaving it to the mode and json parsers to reject.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}

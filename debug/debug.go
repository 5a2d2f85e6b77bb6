package debug

import (
	"os"
	"strconv"
)

type debug struct {
	IO    bool
	Diff  bool
	Patch bool
}

var d *debug

func init() {
	Load()
}

// Load (re)reads the debug settings from the environment.
func Load() {
	d = &debug{}
	d.IO = boolEnv("JPD_DEBUG_IO")
	d.Diff = boolEnv("JPD_DEBUG_DIFF")
	d.Patch = boolEnv("JPD_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func IO() bool {
	return d.IO
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}

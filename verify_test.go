package jpd

import (
	"errors"
	"strings"
	"testing"
)

func TestVerify(t *testing.T) {
	for _, rt := range roundTripTests {
		from, to := []byte(rt.from), []byte(rt.to)
		d, err := Diff(from, to)
		if err != nil {
			t.Fatal(err)
		}
		if err := Verify(from, to, d); err != nil {
			t.Fatalf("verify %s -> %s: %v", rt.from, rt.to, err)
		}
	}
}

func TestVerifyMismatch(t *testing.T) {
	err := Verify([]byte(`{"a":1}`), []byte(`{"a":3}`), []byte(`[{"op":"replace","path":"/a","value":2}]`))
	if !errors.Is(err, ErrVerify) {
		t.Fatalf("expected ErrVerify, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "[-3-]") || !strings.Contains(msg, "{+2+}") {
		t.Fatalf("expected a text diff in %q", msg)
	}
}

func TestVerifyBadPatch(t *testing.T) {
	err := Verify([]byte(`{}`), []byte(`{}`), []byte(`[{"op":"remove","path":"/x"}]`))
	if !errors.Is(err, ErrPatch) {
		t.Fatalf("expected ErrPatch, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	good := []string{`null`, ` {"a" : [1, 2.5e3, "x"]} `, `true`, `"s"`}
	bad := []string{``, `{"a":}`, `{} {}`, `[1,]`, `nul`}
	for _, g := range good {
		if err := Validate([]byte(g)); err != nil {
			t.Fatalf("%q: %v", g, err)
		}
	}
	for _, b := range bad {
		if err := Validate([]byte(b)); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%q: expected ErrMalformed, got %v", b, err)
		}
	}
}

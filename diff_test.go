package jpd

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func decode(t *testing.T, d []byte) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		t.Fatalf("could not decode %q: %v", d, err)
	}
	return v
}

func TestDiffReplace(t *testing.T) {
	d, err := Diff([]byte(`{"a":1}`), []byte(`{"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		map[string]any{"op": "replace", "path": "/a", "value": float64(2)},
	}
	if diff := cmp.Diff(want, decode(t, d)); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestDiffSame(t *testing.T) {
	docs := []string{
		`null`,
		`1`,
		`"x"`,
		`[]`,
		`{}`,
		`{"a":[1,{"b":null}],"c":"d"}`,
	}
	for _, doc := range docs {
		d, err := Diff([]byte(doc), []byte(doc))
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		if string(d) != "[]" {
			t.Fatalf("%s: expected empty patch, got %s", doc, d)
		}
	}
}

func TestDiffMalformed(t *testing.T) {
	good := []byte(`{}`)
	bad := []byte(`{"a":}`)
	if _, err := Diff(bad, good); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if _, err := Diff(good, bad); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if _, err := Diff(good, nil); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for empty input, got %v", err)
	}
}

func TestDiffIgnores(t *testing.T) {
	from := []byte(`{"a":1,"b":1}`)
	to := []byte(`{"a":2,"b":2}`)
	d, err := Diff(from, to, DiffIgnores("/b"))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		map[string]any{"op": "replace", "path": "/a", "value": float64(2)},
	}
	if diff := cmp.Diff(want, decode(t, d)); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestDiffConfigOptions(t *testing.T) {
	cfg := &DiffConfig{}
	for _, opt := range []DiffOpt{
		DiffFactorize(true),
		DiffRationalize(true),
		DiffInvertible(true),
		DiffEquivalent(true),
		DiffLCS(true),
		DiffIgnores("/x", "/y"),
	} {
		opt(cfg)
	}
	if n := len(cfg.options()); n != 7 {
		t.Fatalf("expected 7 options, got %d", n)
	}
	if n := len((&DiffConfig{}).options()); n != 1 {
		t.Fatalf("expected only the number decoding option, got %d", n)
	}
}

func TestDiffLargeIntegers(t *testing.T) {
	from := []byte(`{"a":1}`)
	to := []byte(`{"a":12345678901234567891}`)
	d, err := Diff(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"value":12345678901234567891,"op":"replace","path":"/a"}]`
	if !Equal(d, []byte(want)) {
		t.Fatalf("expected %s, got %s", want, d)
	}
	got, err := Patch(from, d)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(to) {
		t.Fatalf("expected %s, got %s", to, got)
	}
	if err := Verify(from, to, d); err != nil {
		t.Fatal(err)
	}
	if err := Verify(from, []byte(`{"a":12345678901234567000}`), d); !errors.Is(err, ErrVerify) {
		t.Fatalf("expected %v, got %v", ErrVerify, err)
	}
}

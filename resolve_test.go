package treeval_test

import (
	"encoding/json"
	"errors"
	"testing"

	treeval "github.com/reoring/treeval"
)

func resolveDoc() any {
	return map[string]any{
		"a": []any{json.Number("1"), json.Number("2")},
		"o": map[string]any{"k": "v"},
	}
}

func TestResolve_EmptyPathIsRoot(t *testing.T) {
	doc := resolveDoc()
	got, err := treeval.Resolve(doc, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, ok := got.(map[string]any); !ok {
		t.Fatalf("expected the root back, got %T", got)
	}
}

func TestResolve_WalksKeysAndIndexes(t *testing.T) {
	doc := resolveDoc()
	got, err := treeval.Resolve(doc, treeval.MustParsePath(".a[1]"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != json.Number("2") {
		t.Fatalf("got %v", got)
	}
	got, err = treeval.Resolve(doc, treeval.MustParsePath(".o.k"))
	if err != nil || got != "v" {
		t.Fatalf("got %v %v", got, err)
	}
}

func TestResolve_MissingKey(t *testing.T) {
	_, err := treeval.Resolve(resolveDoc(), treeval.MustParsePath(".o.zzz"))
	var re *treeval.ResolveError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResolveError, got %v", err)
	}
	if re.Code != treeval.CodeMissingKey {
		t.Fatalf("code: %q", re.Code)
	}
	if re.Path.String() != ".o.zzz" {
		t.Fatalf("path: %q", re.Path)
	}
}

func TestResolve_IndexOutOfRange(t *testing.T) {
	for _, p := range []string{".a[2]", ".a[-1]"} {
		_, err := treeval.Resolve(resolveDoc(), treeval.MustParsePath(p))
		var re *treeval.ResolveError
		if !errors.As(err, &re) {
			t.Fatalf("expected ResolveError for %s, got %v", p, err)
		}
		if re.Code != treeval.CodeIndexOutOfRange {
			t.Fatalf("code for %s: %q", p, re.Code)
		}
	}
}

func TestResolve_WrongKind(t *testing.T) {
	// Keyed descent into an array, indexed descent into an object.
	for _, p := range []string{".a.k", ".o[0]"} {
		_, err := treeval.Resolve(resolveDoc(), treeval.MustParsePath(p))
		var re *treeval.ResolveError
		if !errors.As(err, &re) {
			t.Fatalf("expected ResolveError for %s, got %v", p, err)
		}
		if re.Code != treeval.CodeWrongKind {
			t.Fatalf("code for %s: %q", p, re.Code)
		}
	}
}

func TestResolve_ErrorPathIsPrefixOfRequest(t *testing.T) {
	_, err := treeval.Resolve(resolveDoc(), treeval.MustParsePath(".o.zzz.deeper[4]"))
	var re *treeval.ResolveError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResolveError, got %v", err)
	}
	// The failing step was .zzz; anything after it never resolved.
	if re.Path.String() != ".o.zzz" {
		t.Fatalf("path: %q", re.Path)
	}
}

package treeval_test

import (
	"testing"

	treeval "github.com/reoring/treeval"
)

func TestPath_StringDottedForm(t *testing.T) {
	p := treeval.Path{treeval.KeyElement("a"), treeval.KeyElement("b"), treeval.IndexElement(3)}
	if got := p.String(); got != ".a.b[3]" {
		t.Fatalf("expected .a.b[3], got %q", got)
	}
	if got := (treeval.Path{}).String(); got != "" {
		t.Fatalf("expected empty string for root, got %q", got)
	}
}

func TestPath_StringQuotesNonIdentifierKeys(t *testing.T) {
	p := treeval.Path{treeval.KeyElement("a b"), treeval.KeyElement("x")}
	if got := p.String(); got != `["a b"].x` {
		t.Fatalf("got %q", got)
	}
	// Keys starting with a digit are not simple identifiers either.
	p = treeval.Path{treeval.KeyElement("0k")}
	if got := p.String(); got != `["0k"]` {
		t.Fatalf("got %q", got)
	}
}

func TestParsePath_RoundTrip(t *testing.T) {
	for _, s := range []string{".a.b[3]", `["a b"].x`, ".a[0][1]", ""} {
		p, err := treeval.ParsePath(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if got := p.String(); got != s {
			t.Fatalf("round trip of %q gave %q", s, got)
		}
	}
}

func TestParsePath_LeadingDotOptional(t *testing.T) {
	a, err := treeval.ParsePath("a.b[3]")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	b := treeval.MustParsePath(".a.b[3]")
	if a.String() != b.String() {
		t.Fatalf("expected %q == %q", a, b)
	}
}

func TestParsePath_Errors(t *testing.T) {
	for _, s := range []string{"a..b", "[3", "[x]", `["a]`, `["a" b]`} {
		if _, err := treeval.ParsePath(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestMustParsePath_PanicsOnBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	treeval.MustParsePath("[oops")
}

func TestPath_ChildAndAppendDoNotMutate(t *testing.T) {
	base := treeval.Path{treeval.KeyElement("a")}
	c := base.Child(treeval.IndexElement(1))
	d := base.Append(treeval.Path{treeval.KeyElement("b"), treeval.IndexElement(2)})
	if base.String() != ".a" {
		t.Fatalf("receiver mutated: %q", base)
	}
	if c.String() != ".a[1]" {
		t.Fatalf("child: %q", c)
	}
	if d.String() != ".a.b[2]" {
		t.Fatalf("append: %q", d)
	}
}

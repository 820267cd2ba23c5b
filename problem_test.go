package treeval_test

import (
	"errors"
	"strings"
	"testing"

	treeval "github.com/reoring/treeval"
)

func TestNewProblem_EmptyMessageDefaults(t *testing.T) {
	p := treeval.NewProblem(nil, "")
	if p.Message() != "Unknown problem" {
		t.Fatalf("got %q", p.Message())
	}
}

func TestProblemFromCause_UsesCauseText(t *testing.T) {
	cause := errors.New("boom")
	p := treeval.ProblemFromCause(treeval.MustParsePath(".a"), cause)
	if p.Message() != "boom" {
		t.Fatalf("got %q", p.Message())
	}
	if p.Cause() != cause {
		t.Fatalf("cause not preserved")
	}
	if p.Path().String() != ".a" {
		t.Fatalf("path: %q", p.Path())
	}
}

func TestExtractionError_SingleProblemText(t *testing.T) {
	err := treeval.NewExtractionError([]treeval.Problem{
		treeval.NewProblem(treeval.MustParsePath(".a[2]"), "value out of range"),
	})
	want := "Extraction error at .a[2]: value out of range"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestExtractionError_RootProblemOmitsLocation(t *testing.T) {
	err := treeval.NewExtractionError([]treeval.Problem{treeval.NewProblem(nil, "bad document")})
	if got := err.Error(); got != "Extraction error: bad document" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractionError_MultiProblemText(t *testing.T) {
	err := treeval.NewExtractionError([]treeval.Problem{
		treeval.NewProblem(treeval.MustParsePath(".a"), "first"),
		treeval.NewProblem(treeval.MustParsePath(".b"), "second"),
	})
	msg := err.Error()
	if !strings.HasPrefix(msg, "2 extraction errors:") {
		t.Fatalf("got %q", msg)
	}
	if !strings.Contains(msg, "at .a: first") || !strings.Contains(msg, "at .b: second") {
		t.Fatalf("got %q", msg)
	}
}

func TestNewExtractionError_EmptyListSynthesizesProblem(t *testing.T) {
	err := treeval.NewExtractionError(nil)
	probs := err.Problems()
	if len(probs) != 1 {
		t.Fatalf("expected 1 problem, got %d", len(probs))
	}
	if probs[0].Message() != "Unspecified problem" {
		t.Fatalf("got %q", probs[0].Message())
	}
}

func TestExtractionError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("inner")
	err := treeval.NewExtractionError([]treeval.Problem{
		treeval.NewProblemCause(nil, "outer", cause),
	})
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the cause")
	}
	if err.Cause() != cause {
		t.Fatalf("Cause() mismatch")
	}
}

func TestAsExtractionError(t *testing.T) {
	if _, ok := treeval.AsExtractionError(nil); ok {
		t.Fatalf("nil should not convert")
	}
	if _, ok := treeval.AsExtractionError(errors.New("plain")); ok {
		t.Fatalf("plain error should not convert")
	}
	src := treeval.NewExtractionError([]treeval.Problem{treeval.NewProblem(nil, "x")})
	got, ok := treeval.AsExtractionError(src)
	if !ok || got != src {
		t.Fatalf("expected pass-through, got %v %v", got, ok)
	}
}

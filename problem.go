package treeval

import (
	"errors"
	"fmt"
	"strings"
)

// Problem describes a single failure encountered at one location during
// extraction. The message is never empty; constructors substitute
// "Unknown problem" when given an empty one.
type Problem struct {
	path    Path
	message string
	cause   error
}

// NewProblem creates a Problem for the given path and message.
func NewProblem(path Path, message string) Problem {
	return NewProblemCause(path, message, nil)
}

// NewProblemCause creates a Problem for the given path, message, and
// underlying cause.
func NewProblemCause(path Path, message string, cause error) Problem {
	if message == "" {
		message = "Unknown problem"
	}
	return Problem{path: path, message: message, cause: cause}
}

// ProblemFromCause creates a Problem whose message is derived from cause. When
// the cause carries no text of its own, a generic note with the cause's type
// is used instead.
func ProblemFromCause(path Path, cause error) Problem {
	return NewProblemCause(path, describeCause(cause), cause)
}

// Path reports the location this problem was encountered at.
func (p Problem) Path() Path { return p.path }

// Message reports human-readable details about the encountered problem.
func (p Problem) Message() string { return p.message }

// Cause reports the underlying error, if any.
func (p Problem) Cause() error { return p.cause }

// describeCause produces a best-effort human-readable description of an
// arbitrary failure.
func describeCause(cause error) string {
	if cause == nil {
		return ""
	}
	if msg := cause.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("error with type %T", cause)
}

// ExtractionError is the terminal failure returned from extraction. It always
// carries at least one Problem; constructing it from an empty list yields a
// single synthetic problem about an unspecified error.
type ExtractionError struct {
	problems []Problem
}

// NewExtractionError creates an ExtractionError from the given problems,
// normalizing an empty list to one synthetic Problem.
func NewExtractionError(problems []Problem) *ExtractionError {
	if len(problems) == 0 {
		problems = []Problem{NewProblem(nil, "Unspecified problem")}
	}
	return &ExtractionError{problems: problems}
}

func newExtractionErrorAt(path Path, message string, cause error) *ExtractionError {
	return &ExtractionError{problems: []Problem{NewProblemCause(path, message, cause)}}
}

// Path reports the path the first problem came from.
func (e *ExtractionError) Path() Path { return e.problems[0].path }

// Cause reports the first problem's underlying error. It can be nil.
func (e *ExtractionError) Cause() error { return e.problems[0].cause }

// Problems reports the full ordered problem list. It always has at least one
// entry.
func (e *ExtractionError) Problems() []Problem { return e.problems }

// Unwrap exposes the first problem's cause to errors.Is / errors.As.
func (e *ExtractionError) Unwrap() error { return e.problems[0].cause }

func (e *ExtractionError) Error() string {
	var b strings.Builder
	if len(e.problems) == 1 {
		b.WriteString("Extraction error")
		writeProblem(&b, e.problems[0])
		return b.String()
	}
	fmt.Fprintf(&b, "%d extraction errors:", len(e.problems))
	for _, p := range e.problems {
		b.WriteString("\n -")
		writeProblem(&b, p)
	}
	return b.String()
}

func writeProblem(b *strings.Builder, p Problem) {
	if len(p.path) != 0 {
		fmt.Fprintf(b, " at %s: ", p.path)
	} else {
		b.WriteString(": ")
	}
	b.WriteString(p.message)
}

// AsExtractionError extracts an *ExtractionError from err using errors.As.
func AsExtractionError(err error) (*ExtractionError, bool) {
	if err == nil {
		return nil, false
	}
	var xe *ExtractionError
	if errors.As(err, &xe) {
		return xe, true
	}
	return nil, false
}

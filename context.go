package treeval

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrNotExtracted is the sentinel an Extractor returns after recording one or
// more problems that did not (yet) escalate. It lets extractor authors write
// `return nil, ec.Problem(path, msg)` as a one-line failure return; the
// dispatch layer converts it into an ExtractionError over the context's
// accumulated problems.
var ErrNotExtracted = errors.New("treeval: value not extracted")

// Version optionally identifies the schema revision an extraction targets.
// Extractors can branch on it to decode older document layouts.
type Version struct {
	Major uint64
	Minor uint64
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// ExtractionContext carries per-call extraction state: the Formats registry,
// the policy, the current path prefix, and the problems recorded so far.
//
// A context and its problem list must not be shared between concurrent
// extractions; derived contexts are independent copies, so separate top-level
// calls over the same Formats and options are safe on separate goroutines.
type ExtractionContext struct {
	formats  *Formats
	options  ExtractOptions
	version  *Version
	userData any
	path     Path
	problems []Problem
}

// NewContext creates a top-level context over the given registry and options.
func NewContext(formats *Formats, opts ExtractOptions) *ExtractionContext {
	return NewContextVersion(formats, opts, nil, nil)
}

// NewContextVersion creates a top-level context with an optional schema
// version and an opaque user payload that extractors can read back.
func NewContextVersion(formats *Formats, opts ExtractOptions, version *Version, userData any) *ExtractionContext {
	if formats == nil {
		formats = NewFormats()
	}
	return &ExtractionContext{formats: formats, options: opts, version: version, userData: userData}
}

// Formats reports the registry this context dispatches through.
func (ec *ExtractionContext) Formats() *Formats { return ec.formats }

// Options reports the policy this context was created with.
func (ec *ExtractionContext) Options() ExtractOptions { return ec.options }

// Version reports the optional schema version. It can be nil.
func (ec *ExtractionContext) Version() *Version { return ec.version }

// UserData reports the opaque payload supplied at context creation.
func (ec *ExtractionContext) UserData() any { return ec.userData }

// Path reports the current path prefix. It only grows along a single
// extraction chain.
func (ec *ExtractionContext) Path() Path { return ec.path }

// Problems reports the problems recorded on this context so far.
func (ec *ExtractionContext) Problems() []Problem { return ec.problems }

// Problem records a problem with the given path and message. See record for
// the escalation rules.
func (ec *ExtractionContext) Problem(path Path, message string) error {
	return ec.record(NewProblem(path, message))
}

// ProblemCause records a problem with an underlying cause attached.
func (ec *ExtractionContext) ProblemCause(path Path, message string, cause error) error {
	return ec.record(NewProblemCause(path, message, cause))
}

// ProblemFrom records a problem whose message is derived from cause.
func (ec *ExtractionContext) ProblemFrom(path Path, cause error) error {
	return ec.record(ProblemFromCause(path, cause))
}

// record appends a problem to this context's private list and evaluates
// escalation: under FailImmediately every problem escalates at once; under
// CollectAll the context accumulates until MaxFailures is reached. Escalation
// returns an *ExtractionError over the current full list; otherwise the
// sentinel ErrNotExtracted is returned.
func (ec *ExtractionContext) record(p Problem) error {
	if len(ec.problems) == 0 && ec.options.failureMode == CollectAll {
		ec.problems = make([]Problem, 0, ec.options.maxFailures)
	}
	ec.problems = append(ec.problems, p)
	if ec.options.failureMode == FailImmediately || len(ec.problems) >= ec.options.maxFailures {
		return NewExtractionError(slices.Clone(ec.problems))
	}
	return ErrNotExtracted
}

// ExtractValue asks the registry to produce a value of run-time type rt from
// the given node. Failures that are not already an *ExtractionError --
// including panics out of extractor internals -- are normalized into one at
// this context's current path, with the original failure preserved as the
// wrapped cause. An *ExtractionError passes through unchanged so inner paths
// are never overwritten.
func (ec *ExtractionContext) ExtractValue(rt reflect.Type, from any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause := panicCause(r)
			out, err = nil, newExtractionErrorAt(ec.path, describeCause(cause), cause)
		}
	}()
	v, err := ec.formats.extract(rt, from, ec)
	if err != nil {
		return nil, ec.normalize(err)
	}
	return v, nil
}

func (ec *ExtractionContext) normalize(err error) error {
	var xe *ExtractionError
	if errors.As(err, &xe) {
		return xe
	}
	if errors.Is(err, ErrNotExtracted) {
		return NewExtractionError(slices.Clone(ec.problems))
	}
	return newExtractionErrorAt(ec.path, describeCause(err), err)
}

// derive produces a child context for a nested extraction: the path is
// extended by sub and the problem list is cloned. From that point on the
// child's list is separate storage; problems it records surface to the parent
// only through the ExtractionError the nested call returns. Under CollectAll
// this means accumulation is scoped per subtree rather than global across
// sibling fields.
func (ec *ExtractionContext) derive(sub Path) *ExtractionContext {
	d := *ec
	d.path = ec.path.Append(sub)
	d.problems = slices.Clone(ec.problems)
	return &d
}

// panicCause converts a recovered panic value into an error.
func panicCause(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic with type %T: %v", r, r)
}

// Extract produces a T from the given node using ec's registry. It is a free
// function because Go methods cannot take type parameters.
func Extract[T any](ec *ExtractionContext, from any) (T, error) {
	var zero T
	v, err := ec.ExtractValue(reflect.TypeFor[T](), from)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, newExtractionErrorAt(ec.path,
			fmt.Sprintf("extractor for %v produced %T", reflect.TypeFor[T](), v), nil)
	}
	return t, nil
}

// ExtractSub produces a T from the node at `sub` below `from`. The nested
// extraction runs on a derived context whose path is ec's path plus sub;
// resolution failures (missing key, bad index, wrong node kind) surface as an
// ExtractionError at the derived path.
func ExtractSub[T any](ec *ExtractionContext, from any, sub Path) (T, error) {
	var zero T
	d := ec.derive(sub)
	node, err := Resolve(from, sub)
	if err != nil {
		var xe *ExtractionError
		if errors.As(err, &xe) {
			return zero, xe
		}
		return zero, newExtractionErrorAt(d.path, describeCause(err), err)
	}
	return Extract[T](d, node)
}

// ExtractElem is ExtractSub for a single path step.
func ExtractElem[T any](ec *ExtractionContext, from any, elem PathElement) (T, error) {
	return ExtractSub[T](ec, from, Path{elem})
}

package treeval

import (
	"reflect"

	"github.com/reoring/treeval/i18n"
)

// Extractor is a pluggable per-type conversion routine. TypeKey must be stable
// -- it is not allowed to change once the extractor is registered with a
// Formats.
//
// Extract either returns the fully constructed value, or records at least one
// problem on the context and returns the error that recording produced. For
// recoverable semantic failures (a value out of range, a wrong node kind) that
// is the whole contract: record, return, never panic. Panics are reserved for
// failures the extractor cannot express as a problem; the dispatch layer
// normalizes them into an ExtractionError.
//
//	func (boundedExtractor) Extract(ec *treeval.ExtractionContext, from any) (any, error) {
//	    n, err := treeval.Extract[int32](ec, from)
//	    if err != nil {
//	        return nil, err
//	    }
//	    if n < 500 || n > 2500 {
//	        return nil, ec.Problem(ec.Path(), "expected a value between 500 and 2500")
//	    }
//	    return n, nil
//	}
type Extractor interface {
	TypeKey() reflect.Type
	Extract(ec *ExtractionContext, from any) (any, error)
}

// Formats is the registry mapping run-time types to their Extractor. Build it
// up with Register, then treat it as immutable: once a Formats is handed to an
// ExtractionContext it may be shared between goroutines and must not be
// mutated further.
type Formats struct {
	extractors map[reflect.Type]Extractor
	parents    []*Formats
}

// NewFormats creates an empty registry.
func NewFormats() *Formats {
	return &Formats{extractors: make(map[reflect.Type]Extractor)}
}

// Register adds an extractor keyed by its TypeKey. Registering a nil extractor
// or a second extractor for the same type is rejected.
func (f *Formats) Register(e Extractor) error {
	if e == nil {
		return errRegister{msg: "nil extractor"}
	}
	rt := e.TypeKey()
	if rt == nil {
		return errRegister{msg: "extractor has nil type key"}
	}
	if _, dup := f.extractors[rt]; dup {
		return errRegister{msg: "extractor already registered for type " + rt.String()}
	}
	f.extractors[rt] = e
	return nil
}

type errRegister struct{ msg string }

func (e errRegister) Error() string { return "treeval: " + e.msg }

// Compose creates a registry that consults the given registries in order. The
// composite holds no extractors of its own; lookups search each operand until
// one matches, so earlier operands win.
func Compose(fmts ...*Formats) *Formats {
	kept := make([]*Formats, 0, len(fmts))
	for _, f := range fmts {
		if f != nil {
			kept = append(kept, f)
		}
	}
	return &Formats{extractors: make(map[reflect.Type]Extractor), parents: kept}
}

// Lookup finds the extractor registered for rt, searching this registry and
// then any composed operands in order.
func (f *Formats) Lookup(rt reflect.Type) (Extractor, bool) {
	if e, ok := f.extractors[rt]; ok {
		return e, true
	}
	for _, p := range f.parents {
		if e, ok := p.Lookup(rt); ok {
			return e, true
		}
	}
	return nil, false
}

// extract performs the type-keyed lookup and invokes the extractor. A lookup
// miss is a conversion failure recorded at the context's current path.
func (f *Formats) extract(rt reflect.Type, from any, ec *ExtractionContext) (any, error) {
	e, ok := f.Lookup(rt)
	if !ok {
		return nil, ec.Problem(ec.path, i18n.T(CodeNoExtractor, map[string]string{"type": rt.String()}))
	}
	return e.Extract(ec, from)
}

// extractorFunc adapts a typed conversion function to the Extractor interface.
type extractorFunc[T any] struct {
	fn func(*ExtractionContext, any) (T, error)
}

func (e extractorFunc[T]) TypeKey() reflect.Type { return reflect.TypeFor[T]() }

func (e extractorFunc[T]) Extract(ec *ExtractionContext, from any) (any, error) {
	v, err := e.fn(ec, from)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ExtractorFor wraps a strongly typed conversion function as an Extractor
// keyed by T.
func ExtractorFor[T any](fn func(*ExtractionContext, any) (T, error)) Extractor {
	return extractorFunc[T]{fn: fn}
}

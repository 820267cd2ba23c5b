package treeval

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"github.com/reoring/treeval/i18n"
)

// DefaultFormats returns a fresh registry with extractors for the builtin
// scalar targets: every signed and unsigned integer width, float32/float64,
// string, bool, json.Number, and `any` (identity). Callers typically compose
// their own registrations on top:
//
//	fmts := treeval.Compose(mine, treeval.DefaultFormats())
func DefaultFormats() *Formats {
	f := NewFormats()
	mustRegister(f, ExtractorFor[any](func(_ *ExtractionContext, from any) (any, error) {
		return from, nil
	}))
	mustRegister(f, ExtractorFor[string](func(ec *ExtractionContext, from any) (string, error) {
		s, ok := from.(string)
		if !ok {
			return "", ec.Problem(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "string"}))
		}
		return s, nil
	}))
	mustRegister(f, ExtractorFor[bool](func(ec *ExtractionContext, from any) (bool, error) {
		b, ok := from.(bool)
		if !ok {
			return false, ec.Problem(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "bool"}))
		}
		return b, nil
	}))
	mustRegister(f, ExtractorFor[json.Number](func(ec *ExtractionContext, from any) (json.Number, error) {
		switch v := from.(type) {
		case json.Number:
			return v, nil
		case float64:
			return json.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
		default:
			return "", ec.Problem(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "number"}))
		}
	}))

	mustRegister(f, signedExtractor[int](math.MinInt, math.MaxInt))
	mustRegister(f, signedExtractor[int8](math.MinInt8, math.MaxInt8))
	mustRegister(f, signedExtractor[int16](math.MinInt16, math.MaxInt16))
	mustRegister(f, signedExtractor[int32](math.MinInt32, math.MaxInt32))
	mustRegister(f, signedExtractor[int64](math.MinInt64, math.MaxInt64))
	mustRegister(f, unsignedExtractor[uint](math.MaxUint))
	mustRegister(f, unsignedExtractor[uint8](math.MaxUint8))
	mustRegister(f, unsignedExtractor[uint16](math.MaxUint16))
	mustRegister(f, unsignedExtractor[uint32](math.MaxUint32))
	mustRegister(f, unsignedExtractor[uint64](math.MaxUint64))
	mustRegister(f, floatExtractor[float32](32))
	mustRegister(f, floatExtractor[float64](64))
	return f
}

func mustRegister(f *Formats, e Extractor) {
	if err := f.Register(e); err != nil {
		panic(err)
	}
}

type signedInt interface {
	int | int8 | int16 | int32 | int64
}

type unsignedInt interface {
	uint | uint8 | uint16 | uint32 | uint64
}

type floatKind interface {
	float32 | float64
}

func signedExtractor[T signedInt](min, max int64) Extractor {
	return ExtractorFor[T](func(ec *ExtractionContext, from any) (T, error) {
		var zero T
		i64, err := nodeInt64(ec, from)
		if err != nil {
			return zero, err
		}
		if i64 < min || i64 > max {
			return zero, ec.Problem(ec.path, i18n.T(CodeOverflow, nil))
		}
		return T(i64), nil
	})
}

func unsignedExtractor[T unsignedInt](max uint64) Extractor {
	return ExtractorFor[T](func(ec *ExtractionContext, from any) (T, error) {
		var zero T
		u64, err := nodeUint64(ec, from)
		if err != nil {
			return zero, err
		}
		if u64 > max {
			return zero, ec.Problem(ec.path, i18n.T(CodeOverflow, nil))
		}
		return T(u64), nil
	})
}

func floatExtractor[T floatKind](bits int) Extractor {
	return ExtractorFor[T](func(ec *ExtractionContext, from any) (T, error) {
		var zero T
		f64, err := nodeFloat64(ec, from)
		if err != nil {
			return zero, err
		}
		if bits == 32 && !math.IsInf(f64, 0) && math.Abs(f64) > math.MaxFloat32 {
			return zero, ec.Problem(ec.path, i18n.T(CodeOverflow, nil))
		}
		return T(f64), nil
	})
}

// nodeInt64 interprets a tree node as an integral value. Numbers on the wire
// arrive as json.Number; direct Go ints are accepted as well so that
// hand-built trees behave like parsed ones. Fractional values are rejected.
func nodeInt64(ec *ExtractionContext, from any) (int64, error) {
	switch v := from.(type) {
	case json.Number:
		if i64, err := v.Int64(); err == nil {
			return i64, nil
		}
		f64, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, ec.ProblemCause(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}), err)
		}
		return integralFloat(ec, f64)
	case int, int8, int16, int32, int64:
		return reflect.ValueOf(v).Int(), nil
	case uint, uint8, uint16, uint32, uint64:
		u64 := reflect.ValueOf(v).Uint()
		if u64 > math.MaxInt64 {
			return 0, ec.Problem(ec.path, i18n.T(CodeOverflow, nil))
		}
		return int64(u64), nil
	case float64:
		return integralFloat(ec, v)
	default:
		return 0, ec.Problem(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}))
	}
}

func integralFloat(ec *ExtractionContext, f64 float64) (int64, error) {
	if math.Trunc(f64) != f64 {
		return 0, ec.Problem(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}))
	}
	if f64 < math.MinInt64 || f64 >= math.MaxInt64 {
		return 0, ec.Problem(ec.path, i18n.T(CodeOverflow, nil))
	}
	return int64(f64), nil
}

// nodeUint64 interprets a tree node as a non-negative integral value. ParseUint
// is preferred over the float path to avoid precision pitfalls near 2^64.
func nodeUint64(ec *ExtractionContext, from any) (uint64, error) {
	switch v := from.(type) {
	case json.Number:
		if u64, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return u64, nil
		}
		f64, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, ec.ProblemCause(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}), err)
		}
		if math.Trunc(f64) != f64 {
			return 0, ec.Problem(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}))
		}
		if f64 < 0 || f64 >= math.MaxUint64 {
			return 0, ec.Problem(ec.path, i18n.T(CodeOverflow, nil))
		}
		return uint64(f64), nil
	case uint, uint8, uint16, uint32, uint64:
		return reflect.ValueOf(v).Uint(), nil
	case int, int8, int16, int32, int64:
		i64 := reflect.ValueOf(v).Int()
		if i64 < 0 {
			return 0, ec.Problem(ec.path, i18n.T(CodeOverflow, nil))
		}
		return uint64(i64), nil
	case float64:
		if math.Trunc(v) != v {
			return 0, ec.Problem(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}))
		}
		if v < 0 || v >= math.MaxUint64 {
			return 0, ec.Problem(ec.path, i18n.T(CodeOverflow, nil))
		}
		return uint64(v), nil
	default:
		return 0, ec.Problem(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "integer"}))
	}
}

func nodeFloat64(ec *ExtractionContext, from any) (float64, error) {
	switch v := from.(type) {
	case json.Number:
		f64, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, ec.ProblemCause(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "number"}), err)
		}
		return f64, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int, int8, int16, int32, int64:
		return float64(reflect.ValueOf(v).Int()), nil
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(v).Uint()), nil
	default:
		return 0, ec.Problem(ec.path, i18n.T(CodeInvalidType, map[string]string{"expected": "number"}))
	}
}

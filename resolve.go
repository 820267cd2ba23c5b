package treeval

import (
	"slices"

	"github.com/reoring/treeval/i18n"
)

// ResolveError reports a path that could not be resolved against a tree. Path
// holds the prefix of the requested path up to and including the failing step;
// Error() carries only the step diagnostic, since callers wrapping the failure
// supply their own (absolute) location.
type ResolveError struct {
	Path    Path
	Code    string
	Message string
}

func (e *ResolveError) Error() string { return e.Message }

// Resolve walks p from v and returns the addressed node. Trees use the
// materialized shape: map[string]any for objects, []any for arrays, and
// json.Number / string / bool / nil scalars. The empty path resolves to v
// itself.
func Resolve(v any, p Path) (any, error) {
	cur := v
	for i, el := range p {
		switch el.Kind {
		case ElementKey:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, resolveErr(p, i, CodeWrongKind, map[string]string{"expected": "object"})
			}
			nv, ok := m[el.Key]
			if !ok {
				return nil, resolveErr(p, i, CodeMissingKey, map[string]string{"key": el.Key})
			}
			cur = nv
		case ElementIndex:
			arr, ok := cur.([]any)
			if !ok {
				return nil, resolveErr(p, i, CodeWrongKind, map[string]string{"expected": "array"})
			}
			if el.Index < 0 || el.Index >= len(arr) {
				return nil, resolveErr(p, i, CodeIndexOutOfRange, nil)
			}
			cur = arr[el.Index]
		}
	}
	return cur, nil
}

func resolveErr(p Path, i int, code string, data map[string]string) *ResolveError {
	return &ResolveError{
		Path:    slices.Clone(p[:i+1]),
		Code:    code,
		Message: i18n.T(code, data),
	}
}

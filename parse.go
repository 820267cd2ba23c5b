package treeval

import (
	"errors"
	"io"

	eng "github.com/reoring/treeval/internal/engine"
)

// ParseBytes materializes a JSON document into a generic tree, applying the
// duplicate-key action and the parse-time depth/size caps from the options.
// Failures are reported as *ExtractionError with the problem located at the
// point the decoder had reached.
func ParseBytes(data []byte, opts ...ExtractOptions) (any, error) {
	return ParseSource(JSONBytes(data), lastOpt(opts))
}

// ParseReader is ParseBytes over an io.Reader.
func ParseReader(r io.Reader, opts ...ExtractOptions) (any, error) {
	return ParseSource(JSONReader(r), lastOpt(opts))
}

// ParseSource materializes a tree from an arbitrary token Source.
func ParseSource(src Source, opt ExtractOptions) (any, error) {
	v, err := eng.DecodeAny(engineTokenSource(src), eng.DecodeOptions{
		OnDuplicate: toEngineDup(opt.onDuplicateKey),
		MaxDepth:    opt.maxDepth,
		MaxBytes:    opt.maxBytes,
	})
	if err != nil {
		return nil, parseError(err)
	}
	return v, nil
}

func parseError(err error) *ExtractionError {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return NewExtractionError([]Problem{NewProblemCause(pathFromSteps(ie.Steps), ie.Message, err)})
	}
	return newExtractionErrorAt(nil, describeCause(err), err)
}

func pathFromSteps(steps []eng.Step) Path {
	if len(steps) == 0 {
		return nil
	}
	p := make(Path, 0, len(steps))
	for _, s := range steps {
		if s.IsKey {
			p = append(p, KeyElement(s.Key))
		} else {
			p = append(p, IndexElement(s.Index))
		}
	}
	return p
}

func toEngineDup(a DuplicateKeyAction) eng.DuplicateAction {
	switch a {
	case DuplicateKeyIgnore:
		return eng.DupIgnore
	case DuplicateKeyError:
		return eng.DupError
	default:
		return eng.DupReplace
	}
}

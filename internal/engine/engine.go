// Package engine materializes generic document trees from streaming token
// sources, applying duplicate-key, depth, and size policy while the tree is
// built.
package engine

import (
	"encoding/json"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is the minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// DuplicateAction controls object construction when a key repeats.
type DuplicateAction int

const (
	DupReplace DuplicateAction = iota
	DupIgnore
	DupError
)

// Step is one element of the location at which an Issue was raised.
type Step struct {
	Key   string
	Index int
	IsKey bool
}

// Issue is a lightweight diagnostic with the location the decoder had reached.
type Issue struct {
	Steps   []Step
	Code    string
	Message string
}

// IssueError carries an Issue as an error.
type IssueError struct{ Issue }

func (e IssueError) Error() string { return e.Message }

// DecodeOptions controls tree materialization behavior.
type DecodeOptions struct {
	OnDuplicate DuplicateAction
	// MaxDepth caps container nesting; 0 means unlimited.
	MaxDepth int
	// MaxBytes caps consumed input, checked against TokenSource.Location;
	// 0 means unlimited.
	MaxBytes int64
}

// DecodeAny builds an "any" tree (map[string]any / []any / json.Number /
// string / bool / nil) from the token source, enforcing the options while
// decoding. A trailing token after the top-level value is a parse error.
func DecodeAny(src TokenSource, opt DecodeOptions) (any, error) {
	d := &decoder{src: src, opt: opt}
	tok, err := d.next()
	if err != nil {
		return nil, unexpectedEOF(err)
	}
	v, err := d.value(tok)
	if err != nil {
		return nil, err
	}
	if _, err := d.src.NextToken(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, IssueError{Issue{Code: "parse_error", Message: "trailing content after document"}}
	}
	return v, nil
}

type decoder struct {
	src   TokenSource
	opt   DecodeOptions
	path  []Step
	depth int
}

func (d *decoder) next() (Token, error) {
	tok, err := d.src.NextToken()
	if err != nil {
		return Token{}, err
	}
	if d.opt.MaxBytes > 0 {
		if off := d.src.Location(); off >= 0 && off > d.opt.MaxBytes {
			return Token{}, d.issue("truncated", "max bytes exceeded")
		}
	}
	return tok, nil
}

func (d *decoder) issue(code, message string) IssueError {
	return IssueError{Issue{Steps: slices.Clone(d.path), Code: code, Message: message}}
}

func (d *decoder) value(tok Token) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return d.object()
	case KindBeginArray:
		return d.array()
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func (d *decoder) enter() error {
	d.depth++
	if d.opt.MaxDepth > 0 && d.depth > d.opt.MaxDepth {
		return d.issue("max_depth", "max depth exceeded")
	}
	return nil
}

func (d *decoder) object() (any, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	m := make(map[string]any)
	for {
		tok, err := d.next()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		key := tok.String
		_, seen := m[key]
		d.path = append(d.path, Step{Key: key, IsKey: true})
		if seen && d.opt.OnDuplicate == DupError {
			return nil, d.issue("duplicate_key", "key "+strconv.Quote(key)+" duplicated")
		}
		vt, err := d.next()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		v, err := d.value(vt)
		if err != nil {
			return nil, err
		}
		d.path = d.path[:len(d.path)-1]
		if !seen || d.opt.OnDuplicate != DupIgnore {
			m[key] = v
		}
	}
}

func (d *decoder) array() (any, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	var arr []any
	for {
		tok, err := d.next()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		d.path = append(d.path, Step{Index: len(arr)})
		v, err := d.value(tok)
		if err != nil {
			return nil, err
		}
		d.path = d.path[:len(d.path)-1]
		arr = append(arr, v)
	}
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// RenderSteps is a debugging aid that renders a Step sequence in dotted form.
func RenderSteps(steps []Step) string {
	var b strings.Builder
	for _, s := range steps {
		if s.IsKey {
			b.WriteString(".")
			b.WriteString(s.Key)
		} else {
			b.WriteString("[")
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteString("]")
		}
	}
	return b.String()
}

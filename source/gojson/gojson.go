// Package gojson adapts goccy/go-json's token stream to the engine's
// TokenSource. It is the default driver; the stdlib-backed source/json
// package remains available for environments that prefer encoding/json.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/treeval/internal/engine"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec        *j.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return s.tok(eng.Token{Kind: eng.KindBeginObject}), nil
		case '}':
			s.pop()
			s.afterValue()
			return s.tok(eng.Token{Kind: eng.KindEndObject}), nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return s.tok(eng.Token{Kind: eng.KindBeginArray}), nil
		default: // ']'
			s.pop()
			s.afterValue()
			return s.tok(eng.Token{Kind: eng.KindEndArray}), nil
		}
	case string:
		if top := s.top(); top != nil && top.kind == kindObject && top.expectingKey {
			top.expectingKey = false
			return s.tok(eng.Token{Kind: eng.KindKey, String: v}), nil
		}
		s.afterValue()
		return s.tok(eng.Token{Kind: eng.KindString, String: v}), nil
	case bool:
		s.afterValue()
		return s.tok(eng.Token{Kind: eng.KindBool, Bool: v}), nil
	case j.Number:
		s.afterValue()
		return s.tok(eng.Token{Kind: eng.KindNumber, Number: string(v)}), nil
	case float64:
		s.afterValue()
		return s.tok(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}), nil
	default: // nil
		s.afterValue()
		return s.tok(eng.Token{Kind: eng.KindNull}), nil
	}
}

func (s *source) Location() int64 { return s.lastOffset }

func (s *source) tok(t eng.Token) eng.Token {
	t.Offset = s.lastOffset
	return t
}

func (s *source) top() *frame {
	if n := len(s.stack); n > 0 {
		return &s.stack[n-1]
	}
	return nil
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}

func (s *source) afterValue() {
	if top := s.top(); top != nil && top.kind == kindObject && !top.expectingKey {
		top.expectingKey = true
	}
}

package treeval

import (
	"fmt"
	"strconv"
	"strings"
)

// ElementKind discriminates the two step kinds of a Path.
type ElementKind int

const (
	ElementKey ElementKind = iota
	ElementIndex
)

// PathElement is a single step within a document tree: an object key or an
// array index.
type PathElement struct {
	Kind  ElementKind
	Key   string
	Index int
}

// KeyElement returns a PathElement that descends into an object by key.
func KeyElement(name string) PathElement { return PathElement{Kind: ElementKey, Key: name} }

// IndexElement returns a PathElement that descends into an array by index.
func IndexElement(i int) PathElement { return PathElement{Kind: ElementIndex, Index: i} }

func (e PathElement) String() string {
	if e.Kind == ElementIndex {
		return "[" + strconv.Itoa(e.Index) + "]"
	}
	if isSimpleKey(e.Key) {
		return "." + e.Key
	}
	return "[" + strconv.Quote(e.Key) + "]"
}

// Path addresses a node within a document tree as an ordered sequence of
// steps. The empty Path addresses the root.
type Path []PathElement

// Child returns a new Path with e appended. The receiver is not modified.
func (p Path) Child(e PathElement) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, e)
}

// Append returns a new Path with q appended. The receiver is not modified.
func (p Path) Append(q Path) Path {
	if len(q) == 0 {
		return p
	}
	out := make(Path, 0, len(p)+len(q))
	out = append(out, p...)
	return append(out, q...)
}

// String renders the path in dotted form: ".a.b[3]". The root renders as "".
// Keys that are not simple identifiers are quoted: `["a b"]`.
func (p Path) String() string {
	var b strings.Builder
	for _, e := range p {
		b.WriteString(e.String())
	}
	return b.String()
}

// ParsePath parses the dotted form produced by Path.String. The leading dot of
// the first key is optional, so both ".a.b[3]" and "a.b[3]" are accepted.
func ParsePath(s string) (Path, error) {
	var p Path
	i := 0
	for i < len(s) {
		switch s[i] {
		case '.':
			i++
			start := i
			for i < len(s) && s[i] != '.' && s[i] != '[' {
				i++
			}
			if i == start {
				return nil, fmt.Errorf("treeval: empty key at offset %d in path %q", start, s)
			}
			p = append(p, KeyElement(s[start:i]))
		case '[':
			i++
			if i < len(s) && s[i] == '"' {
				rest := s[i:]
				key, err := strconv.QuotedPrefix(rest)
				if err != nil {
					return nil, fmt.Errorf("treeval: bad quoted key at offset %d in path %q", i, s)
				}
				unq, err := strconv.Unquote(key)
				if err != nil {
					return nil, fmt.Errorf("treeval: bad quoted key at offset %d in path %q", i, s)
				}
				i += len(key)
				if i >= len(s) || s[i] != ']' {
					return nil, fmt.Errorf("treeval: missing ']' at offset %d in path %q", i, s)
				}
				i++
				p = append(p, KeyElement(unq))
				continue
			}
			start := i
			for i < len(s) && s[i] != ']' {
				i++
			}
			if i >= len(s) {
				return nil, fmt.Errorf("treeval: missing ']' in path %q", s)
			}
			idx, err := strconv.Atoi(s[start:i])
			if err != nil {
				return nil, fmt.Errorf("treeval: bad index %q in path %q", s[start:i], s)
			}
			i++
			p = append(p, IndexElement(idx))
		default:
			// First segment may omit the leading dot.
			if len(p) == 0 {
				start := i
				for i < len(s) && s[i] != '.' && s[i] != '[' {
					i++
				}
				p = append(p, KeyElement(s[start:i]))
				continue
			}
			return nil, fmt.Errorf("treeval: unexpected %q at offset %d in path %q", s[i], i, s)
		}
	}
	return p, nil
}

// MustParsePath is ParsePath for statically known inputs; it panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func isSimpleKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

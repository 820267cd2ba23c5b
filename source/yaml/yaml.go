// Package yaml materializes YAML documents into the same generic tree shape
// the JSON sources produce, so the extraction engine stays input-format
// agnostic.
package yaml

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeBytes decodes the first YAML document in data into a generic tree:
// map[string]any objects, []any arrays, json.Number for numbers, and
// string / bool / nil scalars.
func DecodeBytes(data []byte) (any, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes the first YAML document from r.
func DecodeReader(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r)
	var node any
	if err := dec.Decode(&node); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	return normalize(node), nil
}

// normalize converts yaml.v3's decoded shapes into the tree shape shared with
// the JSON path: string-keyed maps and json.Number numbers.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			out[k] = normalize(mv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, mv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = stringifyKey(k)
			}
			out[ks] = normalize(mv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, ev := range t {
			out[i] = normalize(ev)
		}
		return out
	case int:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	default:
		return v
	}
}

func stringifyKey(k any) string {
	switch t := k.(type) {
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case nil:
		return ""
	default:
		b, err := yaml.Marshal(t)
		if err != nil {
			return ""
		}
		return string(bytes.TrimRight(b, "\n"))
	}
}

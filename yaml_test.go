package treeval_test

import (
	"reflect"
	"strings"
	"testing"

	treeval "github.com/reoring/treeval"
)

// YAML and JSON input must materialize into the same tree shape so the same
// extractors serve both.
func TestParseYAMLBytes_MatchesJSONTree(t *testing.T) {
	fromYAML, err := treeval.ParseYAMLBytes([]byte("i: 5\nd: 4.5\ns: thing\na: [1, 2, 3]\n"))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	fromJSON, err := treeval.ParseBytes([]byte(`{"i":5,"d":4.5,"s":"thing","a":[1,2,3]}`))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, fromJSON) {
		t.Fatalf("trees differ:\n%v\n%v", fromYAML, fromJSON)
	}
}

func TestParseYAMLBytes_ExtractsLikeJSON(t *testing.T) {
	doc, err := treeval.ParseYAMLBytes([]byte("a:\n  - 10\n  - 20\n"))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	v, err := treeval.ExtractPath[int](doc, treeval.MustParsePath(".a[1]"), treeval.DefaultFormats())
	if err != nil || v != 20 {
		t.Fatalf("got %v %v", v, err)
	}
}

func TestParseYAMLReader_DecodeFailure(t *testing.T) {
	_, err := treeval.ParseYAMLReader(strings.NewReader("a: [1, 2"))
	if _, ok := treeval.AsExtractionError(err); !ok {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}

package treeval

import (
	"io"

	yamlsrc "github.com/reoring/treeval/source/yaml"
)

// ParseYAMLBytes materializes the first YAML document in data into the same
// generic tree shape ParseBytes produces, so YAML input can feed the same
// extractors. Duplicate-key and depth/size policy are JSON-source features;
// the YAML path reports decode failures as-is.
func ParseYAMLBytes(data []byte) (any, error) {
	v, err := yamlsrc.DecodeBytes(data)
	if err != nil {
		return nil, newExtractionErrorAt(nil, describeCause(err), err)
	}
	return v, nil
}

// ParseYAMLReader is ParseYAMLBytes over an io.Reader.
func ParseYAMLReader(r io.Reader) (any, error) {
	v, err := yamlsrc.DecodeReader(r)
	if err != nil {
		return nil, newExtractionErrorAt(nil, describeCause(err), err)
	}
	return v, nil
}

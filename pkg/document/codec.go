package document

import (
	"github.com/goccy/go-yaml"

	"github.com/seasonhq/scorecard/pkg/errors"
)

// Format selects the serialization format for Encode.
type Format string

// Supported encodings. YAML is a superset of JSON, so Decode accepts both
// without being told which one it is looking at.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Decode parses a JSON or YAML scorecard document. Mapping key order is
// preserved; the merge's output ordering rules depend on it.
func Decode(data []byte) (*Mapping, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, errors.NewParseError("document", err.Error(), err)
	}
	v := FromInterface(raw)
	if v.Kind() != KindMapping {
		return nil, errors.NewParseError("document", "top level is not a mapping", nil)
	}
	return v.Mapping(), nil
}

// Encode serializes a document in the requested format.
func Encode(m *Mapping, format Format) ([]byte, error) {
	out, err := yaml.Marshal(m.Interface())
	if err != nil {
		return nil, errors.NewParseError("document", err.Error(), err)
	}
	if format == FormatJSON {
		out, err = yaml.YAMLToJSON(out)
		if err != nil {
			return nil, errors.NewParseError("document", err.Error(), err)
		}
	}
	return out, nil
}

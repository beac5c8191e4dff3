package jsonschema

import (
	stdjson "encoding/json"

	gojsonschema "github.com/google/jsonschema-go/jsonschema"

	fjson "github.com/utlx-lang/utlx/format/json"
	"github.com/utlx-lang/utlx/udm"
)

// ToSubSchema converts a UDM sub-tree (typically a property pulled
// out of a parsed schema document, e.g. via a path expression) into a
// *jsonschema.Schema by marshaling through JSON, which gets the
// library's own unmarshaling rules for free.
func ToSubSchema(v *udm.Value) *gojsonschema.Schema {
	if v == nil || v.IsNull() {
		return nil
	}

	b, err := fjson.Serialize(v, fjson.Options{Pretty: false})
	if err != nil {
		return nil
	}

	var schema gojsonschema.Schema

	if err := stdjson.Unmarshal(b, &schema); err != nil {
		return nil
	}

	return &schema
}

// TrueSchema returns a schema that validates everything.
func TrueSchema() *gojsonschema.Schema { return &gojsonschema.Schema{} }

// FalseSchema returns a schema that validates nothing.
func FalseSchema() *gojsonschema.Schema {
	return &gojsonschema.Schema{Not: &gojsonschema.Schema{}}
}

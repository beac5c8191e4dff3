package jsonschema

import (
	"strings"

	"github.com/utlx-lang/utlx/format/json"
	"github.com/utlx-lang/utlx/udm"
)

// Parse decodes JSON-Schema bytes into a udm.Value using the JSON
// adapter, then attaches a `__metadata` property describing the
// document's draft and `$defs`/`definitions` usage.
func Parse(data []byte, raw map[string]any) (*udm.Value, error) {
	v, err := json.Parse(data, raw)
	if err != nil {
		return nil, err
	}

	if v.Kind() != udm.KindObject {
		return v, nil
	}

	meta := udm.Object()
	meta.SetProperty("draft", udm.String(detectDraft(v)))
	meta.SetProperty("usesDefs", udm.Bool(v.HasProperty("$defs")))
	meta.SetProperty("usesDefinitions", udm.Bool(v.HasProperty("definitions")))
	v.SetProperty("__metadata", meta)

	return v, nil
}

// detectDraft inspects the document's `$schema` URI: a URI naming
// 2020-12, 2019-09 or draft-07 yields that draft, and any other
// non-empty URI is returned as-is. When `$schema` is absent it infers
// 2020-12 from `$defs` usage, draft-07 from `definitions` usage, and
// returns "" otherwise.
func detectDraft(v *udm.Value) string {
	schemaURI, _ := v.GetProperty("$schema").StringValue()

	switch {
	case strings.Contains(schemaURI, "2020-12"):
		return "2020-12"
	case strings.Contains(schemaURI, "2019-09"):
		return "2019-09"
	case strings.Contains(schemaURI, "draft-07"):
		return "draft-07"
	case schemaURI != "":
		return schemaURI
	case v.HasProperty("$defs"):
		return "2020-12"
	case v.HasProperty("definitions"):
		return "draft-07"
	default:
		return ""
	}
}

// Package jsonschema adapts JSON-Schema documents to udm.Value: the
// JSON adapter's parser plus a post-process that annotates a
// top-level `__metadata` property with the detected draft
// (`draft-07`, `2019-09`, `2020-12`) and whether `$defs` or
// `definitions` is used. The sub-schema conversion helpers
// (ToSubSchema, TrueSchema, FalseSchema) convert a UDM
// sub-tree into a github.com/google/jsonschema-go/jsonschema.Schema.
package jsonschema

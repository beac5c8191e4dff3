// Package yaml adapts between YAML 1.2 bytes and udm.Value, built on
// github.com/goccy/go-yaml. Parsing walks the parsed AST directly
// (github.com/goccy/go-yaml/ast, github.com/goccy/go-yaml/parser)
// rather than unmarshaling into a Go map: a plain map[string]any
// would lose property insertion order, which must survive a
// parse/transform/serialize round trip.
//
// Serialization is a hand-rolled block-style emitter in the same
// style as format/xml's and format/csv's serializers in this repo,
// for the same reason: goccy/go-yaml's Marshal projects from a Go
// value whose map type has no stable iteration order, and the
// engine's UDM Object already carries the order that needs to reach
// the page.
package yaml

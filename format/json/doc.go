// Package json adapts between JSON bytes and udm.Value.
// Parsing keeps the integer/float distinction by decoding
// numbers with json.Decoder's UseNumber mode and classifying each
// token instead of letting encoding/json collapse everything to
// float64. Serialization renders attributes (if present on an input
// Object, e.g. one built by the XML adapter) as `@key` properties,
// since JSON has no attribute namespace of its own — a documented
// lossy edge of the JSON <-> XML <-> JSON triangle.
package json

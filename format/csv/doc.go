// Package csv adapts between CSV bytes and udm.Value, built on
// encoding/csv for RFC 4180 tokenizing on the parse side, with the
// dialect, regional-format, and explicit-tabular-shape logic layered
// on top. Serialization writes rows by hand:
// regionally formatted numbers must stay unquoted even when their
// separators collide with the delimiter, which encoding/csv's writer
// cannot express.
package csv

// Package udm implements the Universal Data Model: the single tagged
// value tree that every format adapter, the lexer/parser, and the
// interpreter agree on.
//
// A [Value] is one of nine variants (see [Kind]): Scalar, Array,
// Object, Date, DateTime, LocalDateTime, Time, Binary, and Lambda.
// Values are immutable once constructed except for the mutating
// builder methods on Object values ([Value.SetProperty],
// [Value.SetAttribute], [Value.SetMetadata]), which are intended for
// use only while a tree is being assembled by a parser or by the
// interpreter's object constructor.
//
// Object values keep properties and attributes in two disjoint,
// order-preserving maps; "properties" and "attributes" are never the
// same namespace: a bare path segment selects a property, `@name`
// selects an attribute.
package udm

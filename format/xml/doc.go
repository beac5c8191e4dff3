// Package xml adapts between XML 1.0 bytes and udm.Value, built
// directly on encoding/xml's token stream: none of the available XML
// tree packages expose a generic element/attribute tree that maps
// onto udm.Value's split property/attribute namespaces.
//
// A leaf element with only text content and no attributes collapses
// to a plain string scalar, so `$input.Customer` yields the text
// directly. A leaf with attributes, or an element with
// mixed text/element content, becomes an Object carrying a
// conventional `#text` property for its text runs alongside its
// attributes and/or child properties — an intentionally lossy
// decision for exact text/element interleaving, documented as Open
// Question #2.
package xml

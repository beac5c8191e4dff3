// Package xsd adapts XSD (XML Schema) documents to udm.Value. It is
// format/xml with a pre-populated `arrays` hint for the element names
// an XSD document always repeats at the schema level, plus a
// synthetic `__metadata` property per global and local schema node recording
// scope, schema element type, and detected XSD version.
package xsd

package xml

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

// SerializeOptions configures XML serialization. RootName supplies a
// tag name when the top-level Object does not unambiguously name one
// (it has zero or more than one top-level property, or it carries
// attributes).
type SerializeOptions struct {
	RootName string
	Indent   string
}

// DefaultSerializeOptions mirrors the adapter's documented defaults.
func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{RootName: "root", Indent: "  "}
}

// Serialize renders v as an XML document. v must be an Object; an
// Array at the top level is rejected, since XML requires a single
// root and the script is responsible for wrapping.
func Serialize(v *udm.Value, opts SerializeOptions) ([]byte, error) {
	if v.Kind() == udm.KindArray {
		return nil, errs.FormatSerialize("xml", "top-level value is an array; wrap it in an object before serializing to XML")
	}

	if v.Kind() != udm.KindObject {
		return nil, errs.FormatSerialize("xml", "top-level value must be an object")
	}

	rootName, rootVal := rootNameAndValue(v, opts)

	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteByte('\n')

	if err := writeElement(&buf, rootName, rootVal, opts, 0); err != nil {
		return nil, errs.FormatSerialize("xml", err.Error())
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// rootNameAndValue unwraps a single top-level property into the root
// element name/content when the object has no attributes; with zero
// or multiple properties, or with any attributes, it falls back to
// opts.RootName wrapping the whole object.
func rootNameAndValue(v *udm.Value, opts SerializeOptions) (string, *udm.Value) {
	props := v.Properties()
	if len(props) == 1 && len(v.Attributes()) == 0 {
		return props[0].Key, props[0].Value
	}

	return opts.RootName, v
}

func writeElement(buf *bytes.Buffer, name string, v *udm.Value, opts SerializeOptions, depth int) error {
	indent := strings.Repeat(opts.Indent, depth)

	switch v.Kind() {
	case udm.KindObject:
		return writeObjectElement(buf, name, v, opts, depth, indent)
	case udm.KindArray:
		for _, item := range v.Items() {
			if err := writeElement(buf, name, item, opts, depth); err != nil {
				return err
			}
		}

		return nil
	default:
		text := scalarText(v)

		buf.WriteString(indent)

		if text == "" {
			fmt.Fprintf(buf, "<%s/>", name)
		} else {
			fmt.Fprintf(buf, "<%s>%s</%s>", name, escapeText(text), name)
		}

		return nil
	}
}

func writeObjectElement(buf *bytes.Buffer, name string, v *udm.Value, opts SerializeOptions, depth int, indent string) error {
	attrs := v.Attributes()
	props := v.Properties()

	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(name)

	for _, a := range attrs {
		fmt.Fprintf(buf, ` %s="%s"`, a.Key, escapeAttr(a.Value))
	}

	if len(props) == 0 {
		buf.WriteString("/>")

		return nil
	}

	buf.WriteByte('>')

	onlyText := len(props) == 1 && props[0].Key == "#text"
	if onlyText {
		buf.WriteString(escapeText(scalarText(props[0].Value)))
		fmt.Fprintf(buf, "</%s>", name)

		return nil
	}

	for _, kv := range props {
		if kv.Key == "#text" {
			buf.WriteString(escapeText(scalarText(kv.Value)))

			continue
		}

		buf.WriteByte('\n')

		if err := writeElement(buf, kv.Key, kv.Value, opts, depth+1); err != nil {
			return err
		}
	}

	buf.WriteByte('\n')
	buf.WriteString(indent)
	fmt.Fprintf(buf, "</%s>", name)

	return nil
}

func scalarText(v *udm.Value) string {
	if v.IsNull() {
		return ""
	}

	if v.Kind() == udm.KindBinary {
		return base64.StdEncoding.EncodeToString(v.Bytes())
	}

	return udm.CoerceToString(v)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	return r.Replace(s)
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

	return r.Replace(s)
}

package xml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

// Parse decodes XML bytes into a udm.Value. It reads raw tokens (no
// namespace URI resolution) so that a namespace-prefixed element name
// like `ns:Item` survives literally as part of the element's name.
func Parse(data []byte, raw map[string]any) (*udm.Value, error) {
	return ParseWithOptions(data, NewOptions(raw))
}

// ParseWithOptions is [Parse] for a caller that already holds a typed
// [Options] value, e.g. the XSD adapter pre-populating array hints for
// known schema-repeating element names.
func ParseWithOptions(data []byte, opts Options) (*udm.Value, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false

	for {
		tok, err := dec.RawToken()
		if err != nil {
			return nil, errs.FormatParse("xml", "failed to find a root element", err)
		}

		if start, ok := tok.(xml.StartElement); ok {
			v, perr := parseElement(dec, start, opts)
			if perr != nil {
				return nil, errs.FormatParse("xml", perr.Error(), perr)
			}

			return v, nil
		}
	}
}

func elementKey(name xml.Name) string {
	if name.Space != "" {
		return name.Space + ":" + name.Local
	}

	return name.Local
}

func isNamespaceAttr(name xml.Name) bool {
	return name.Space == "xmlns" || name.Local == "xmlns"
}

type child struct {
	name string
	val  *udm.Value
}

func parseElement(dec *xml.Decoder, start xml.StartElement, opts Options) (*udm.Value, error) {
	var attrs []xml.Attr

	for _, a := range start.Attr {
		if isNamespaceAttr(a.Name) {
			continue
		}

		attrs = append(attrs, a)
	}

	var (
		children []child
		textBuf  strings.Builder
	)

	for {
		tok, err := dec.RawToken()
		if err != nil {
			if err == io.EOF {
				return nil, errUnexpectedEOF(start.Name.Local)
			}

			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			childVal, cerr := parseElement(dec, t, opts)
			if cerr != nil {
				return nil, cerr
			}

			children = append(children, child{name: elementKey(t.Name), val: childVal})
		case xml.EndElement:
			return assemble(start, attrs, children, textBuf.String(), opts), nil
		case xml.CharData:
			textBuf.Write(t)
		}
	}
}

func assemble(start xml.StartElement, attrs []xml.Attr, children []child, text string, opts Options) *udm.Value {
	trimmed := strings.TrimSpace(text)

	if len(children) == 0 {
		if len(attrs) == 0 {
			return udm.String(trimmed)
		}

		obj := udm.Object()
		setAttrs(obj, attrs)

		if trimmed != "" {
			obj.SetProperty("#text", udm.String(trimmed))
		}

		return obj
	}

	obj := udm.Object()
	setAttrs(obj, attrs)

	if trimmed != "" {
		obj.SetProperty("#text", udm.String(trimmed))
	}

	appendGroupedChildren(obj, children, opts)

	return obj
}

func setAttrs(obj *udm.Value, attrs []xml.Attr) {
	for _, a := range attrs {
		obj.SetAttribute(elementKey(a.Name), a.Value)
	}
}

func appendGroupedChildren(obj *udm.Value, children []child, opts Options) {
	seen := map[string]bool{}

	for _, c := range children {
		if seen[c.name] {
			continue
		}

		seen[c.name] = true

		var group []*udm.Value

		for _, c2 := range children {
			if c2.name == c.name {
				group = append(group, c2.val)
			}
		}

		if len(group) > 1 || opts.Arrays[c.name] {
			obj.SetProperty(c.name, udm.ArrayOf(group))
		} else {
			obj.SetProperty(c.name, group[0])
		}
	}
}

type unexpectedEOFError struct{ elem string }

func (e *unexpectedEOFError) Error() string {
	return "unexpected end of document inside <" + e.elem + ">"
}

func errUnexpectedEOF(elem string) error { return &unexpectedEOFError{elem: elem} }

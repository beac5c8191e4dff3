package json

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

// Serialize renders v as JSON bytes. Attributes on an Object (if any)
// are merged into properties as `@key` entries ahead of the object's
// own properties, since JSON carries no attribute namespace.
func Serialize(v *udm.Value, opts Options) ([]byte, error) {
	var buf bytes.Buffer

	if err := writeValue(&buf, v, opts, 0); err != nil {
		return nil, errs.FormatSerialize("json", err.Error())
	}

	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v *udm.Value, opts Options, depth int) error {
	if v == nil || v.IsNull() {
		buf.WriteString("null")

		return nil
	}

	switch v.Kind() {
	case udm.KindScalar:
		return writeScalar(buf, v)
	case udm.KindArray:
		return writeArray(buf, v, opts, depth)
	case udm.KindObject:
		return writeObject(buf, v, opts, depth)
	case udm.KindDate, udm.KindDateTime, udm.KindLocalDateTime, udm.KindTime:
		writeJSONString(buf, isoString(v))

		return nil
	case udm.KindBinary:
		writeJSONString(buf, base64.StdEncoding.EncodeToString(v.Bytes()))

		return nil
	default:
		buf.WriteString("null")

		return nil
	}
}

func isoString(v *udm.Value) string {
	switch v.Kind() {
	case udm.KindDate:
		return v.Time().Format("2006-01-02")
	case udm.KindDateTime:
		return v.Time().Format("2006-01-02T15:04:05Z07:00")
	case udm.KindLocalDateTime:
		return v.Time().Format("2006-01-02T15:04:05")
	case udm.KindTime:
		return v.Time().Format("15:04:05")
	default:
		return ""
	}
}

func writeScalar(buf *bytes.Buffer, v *udm.Value) error {
	switch v.ScalarKind() {
	case udm.ScalarNull:
		buf.WriteString("null")
	case udm.ScalarBool:
		b, _ := v.BoolValue()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case udm.ScalarInt:
		i, _ := v.IntValue()
		buf.WriteString(strconv.FormatInt(i, 10))
	case udm.ScalarFloat:
		f, _ := v.FloatValue()
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case udm.ScalarString:
		s, _ := v.StringValue()
		writeJSONString(buf, s)
	}

	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04X`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}

	buf.WriteByte('"')
}

func writeArray(buf *bytes.Buffer, v *udm.Value, opts Options, depth int) error {
	items := v.Items()

	if len(items) == 0 {
		buf.WriteString("[]")

		return nil
	}

	buf.WriteByte('[')

	for i, it := range items {
		if i > 0 {
			buf.WriteByte(',')
		}

		writeNewlineIndent(buf, opts, depth+1)

		if err := writeValue(buf, it, opts, depth+1); err != nil {
			return err
		}
	}

	writeNewlineIndent(buf, opts, depth)
	buf.WriteByte(']')

	return nil
}

func writeObject(buf *bytes.Buffer, v *udm.Value, opts Options, depth int) error {
	attrs := v.Attributes()
	props := v.Properties()

	if len(attrs) == 0 && len(props) == 0 {
		buf.WriteString("{}")

		return nil
	}

	buf.WriteByte('{')

	first := true

	for _, kv := range attrs {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		writeNewlineIndent(buf, opts, depth+1)
		writeJSONString(buf, "@"+kv.Key)
		buf.WriteByte(':')

		if opts.Pretty {
			buf.WriteByte(' ')
		}

		writeJSONString(buf, kv.Value)
	}

	for _, kv := range props {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		writeNewlineIndent(buf, opts, depth+1)
		writeJSONString(buf, kv.Key)
		buf.WriteByte(':')

		if opts.Pretty {
			buf.WriteByte(' ')
		}

		if err := writeValue(buf, kv.Value, opts, depth+1); err != nil {
			return err
		}
	}

	writeNewlineIndent(buf, opts, depth)
	buf.WriteByte('}')

	return nil
}

func writeNewlineIndent(buf *bytes.Buffer, opts Options, depth int) {
	if !opts.Pretty {
		return
	}

	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", opts.Indent*depth))
}

package yaml

import (
	"bytes"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

// Serialize renders v as a single-document YAML block-style stream:
// 2-space indentation, strings quoted only when necessary.
func Serialize(v *udm.Value, opts Options) ([]byte, error) {
	var buf bytes.Buffer

	if err := writeValue(&buf, v, opts, 0, true); err != nil {
		return nil, errs.FormatSerialize("yaml", err.Error())
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// writeValue renders v at the given indentation depth. positioned
// reports whether the caller has already placed the write cursor at
// the start of v's first line (true for the document root, and for a
// nested block value whose parent already wrote the leading `- ` or
// `key:\n`+indent); when false, writeValue emits the leading indent
// for its own first line.
func writeValue(buf *bytes.Buffer, v *udm.Value, opts Options, depth int, positioned bool) error {
	if v == nil || v.IsNull() {
		writeIndentIfNeeded(buf, opts, depth, positioned)
		buf.WriteString("null")

		return nil
	}

	switch v.Kind() {
	case udm.KindObject:
		return writeObject(buf, v, opts, depth, positioned)
	case udm.KindArray:
		return writeArray(buf, v, opts, depth, positioned)
	default:
		writeIndentIfNeeded(buf, opts, depth, positioned)
		buf.WriteString(scalarLiteral(v))

		return nil
	}
}

func writeIndentIfNeeded(buf *bytes.Buffer, opts Options, depth int, positioned bool) {
	if !positioned {
		buf.WriteString(indent(opts, depth))
	}
}

func indent(opts Options, depth int) string {
	return strings.Repeat(" ", opts.Indent*depth)
}

func scalarLiteral(v *udm.Value) string {
	switch v.Kind() {
	case udm.KindScalar:
		switch v.ScalarKind() {
		case udm.ScalarNull:
			return "null"
		case udm.ScalarBool:
			b, _ := v.BoolValue()

			return strconv.FormatBool(b)
		case udm.ScalarInt:
			i, _ := v.IntValue()

			return strconv.FormatInt(i, 10)
		case udm.ScalarFloat:
			f, _ := v.FloatValue()

			return strconv.FormatFloat(f, 'g', -1, 64)
		case udm.ScalarString:
			s, _ := v.StringValue()

			return quoteIfNeeded(s)
		}
	case udm.KindDate, udm.KindDateTime, udm.KindLocalDateTime, udm.KindTime:
		return isoString(v)
	case udm.KindBinary:
		return quoteIfNeeded(base64.StdEncoding.EncodeToString(v.Bytes()))
	}

	return "null"
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

// quoteIfNeeded quotes s only when it would otherwise be ambiguous
// with a YAML structural character or another scalar type: it is
// empty, contains `:`, `#`, a quote character or a newline, has
// leading/trailing whitespace, or reads as another scalar
// (see looksLikeOtherScalar).
func quoteIfNeeded(s string) string {
	needsQuote := s == "" ||
		strings.ContainsAny(s, ":#\n\"'") ||
		strings.TrimSpace(s) != s ||
		looksLikeOtherScalar(s)

	if !needsQuote {
		return s
	}

	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

func looksLikeOtherScalar(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "null", "~", "yes", "no":
		return true
	}

	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}

	return false
}

func isScalarLike(v *udm.Value) bool {
	if v == nil {
		return true
	}

	switch v.Kind() {
	case udm.KindObject:
		return v.Len() == 0
	case udm.KindArray:
		return v.Len() == 0
	default:
		return true
	}
}

type entry struct {
	key    string
	isAttr bool
	val    *udm.Value
}

func writeObject(buf *bytes.Buffer, v *udm.Value, opts Options, depth int, positioned bool) error {
	attrs := v.Attributes()
	props := v.Properties()

	entries := make([]entry, 0, len(attrs)+len(props))
	for _, a := range attrs {
		entries = append(entries, entry{key: a.Key, isAttr: true, val: udm.String(a.Value)})
	}

	for _, kv := range props {
		entries = append(entries, entry{key: kv.Key, val: kv.Value})
	}

	if len(entries) == 0 {
		writeIndentIfNeeded(buf, opts, depth, positioned)
		buf.WriteString("{}")

		return nil
	}

	for i, e := range entries {
		if i > 0 {
			buf.WriteByte('\n')
		}

		if i > 0 || !positioned {
			buf.WriteString(indent(opts, depth))
		}

		if e.isAttr {
			buf.WriteByte('@')
		}

		buf.WriteString(e.key)
		buf.WriteByte(':')

		if isScalarLike(e.val) {
			buf.WriteByte(' ')

			if err := writeValue(buf, e.val, opts, depth, true); err != nil {
				return err
			}

			continue
		}

		buf.WriteByte('\n')
		buf.WriteString(indent(opts, depth+1))

		if err := writeValue(buf, e.val, opts, depth+1, true); err != nil {
			return err
		}
	}

	return nil
}

func writeArray(buf *bytes.Buffer, v *udm.Value, opts Options, depth int, positioned bool) error {
	items := v.Items()

	if len(items) == 0 {
		writeIndentIfNeeded(buf, opts, depth, positioned)
		buf.WriteString("[]")

		return nil
	}

	for i, it := range items {
		if i > 0 {
			buf.WriteByte('\n')
		}

		if i > 0 || !positioned {
			buf.WriteString(indent(opts, depth))
		}

		buf.WriteString("- ")

		if isScalarLike(it) {
			if err := writeValue(buf, it, opts, depth, true); err != nil {
				return err
			}

			continue
		}

		if err := writeValue(buf, it, opts, depth+1, true); err != nil {
			return err
		}
	}

	return nil
}

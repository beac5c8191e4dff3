package csv

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/numfmt"
	"github.com/utlx-lang/utlx/udm"
)

// cell is one rendered field. Regionally formatted numbers are
// written raw: their decimal separator may equal the delimiter
// ("1.234,50" in a comma-delimited european file), and quoting them
// would turn them back into strings on the matching regional parse.
type cell struct {
	text string
	raw  bool
}

// Serialize renders v as CSV bytes. v may be an Array of Objects
// (headers taken from the first element's properties, in insertion
// order), an Array of Arrays (headerless), or the explicit tabular
// shape `{ headers: [...], rows: [[...]] }`. Rows are terminated with
// CRLF per RFC 4180.
func Serialize(v *udm.Value, opts Options) ([]byte, error) {
	headers, rows, err := tabularShape(v, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	if opts.IncludeBOM {
		buf.Write([]byte{0xEF, 0xBB, 0xBF})
	}

	if headers != nil {
		headerCells := make([]cell, len(headers))
		for i, h := range headers {
			headerCells[i] = cell{text: h}
		}

		writeRow(&buf, headerCells, opts)
	}

	for _, row := range rows {
		writeRow(&buf, row, opts)
	}

	return buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, cells []cell, opts Options) {
	for i, c := range cells {
		if i > 0 {
			buf.WriteRune(opts.Delimiter)
		}

		if c.raw {
			buf.WriteString(c.text)

			continue
		}

		buf.WriteString(quoteIfNeeded(c.text, opts))
	}

	buf.WriteString("\r\n")
}

func quoteIfNeeded(s string, opts Options) string {
	if !strings.ContainsAny(s, string(opts.Delimiter)+string(opts.Quote)+"\r\n") {
		return s
	}

	q := string(opts.Quote)

	return q + strings.ReplaceAll(s, q, q+q) + q
}

func tabularShape(v *udm.Value, opts Options) (headers []string, rows [][]cell, err error) {
	if v.Kind() == udm.KindObject && v.HasProperty("headers") && v.HasProperty("rows") {
		return explicitShape(v, opts)
	}

	if v.Kind() != udm.KindArray {
		return nil, nil, errs.FormatSerialize("csv", "top-level value must be an array or an explicit {headers, rows} object")
	}

	items := v.Items()
	if len(items) == 0 {
		return nil, nil, nil
	}

	if items[0].Kind() == udm.KindObject {
		return objectsShape(items, opts)
	}

	return nil, arraysShape(items, opts), nil
}

func explicitShape(v *udm.Value, opts Options) ([]string, [][]cell, error) {
	headerItems := v.GetProperty("headers")
	if headerItems.Kind() != udm.KindArray {
		return nil, nil, errs.FormatSerialize("csv", "headers property must be an array")
	}

	headers := make([]string, 0, headerItems.Len())
	for _, h := range headerItems.Items() {
		headers = append(headers, udm.CoerceToString(h))
	}

	rowItems := v.GetProperty("rows")
	if rowItems.Kind() != udm.KindArray {
		return nil, nil, errs.FormatSerialize("csv", "rows property must be an array")
	}

	rows := make([][]cell, 0, rowItems.Len())

	for _, r := range rowItems.Items() {
		if r.Kind() != udm.KindArray {
			return nil, nil, errs.FormatSerialize("csv", "each row must be an array")
		}

		row := make([]cell, 0, r.Len())
		for _, c := range r.Items() {
			row = append(row, cellText(c, opts))
		}

		rows = append(rows, row)
	}

	return headers, rows, nil
}

func objectsShape(items []*udm.Value, opts Options) ([]string, [][]cell, error) {
	headers := items[0].PropertyKeys()

	rows := make([][]cell, 0, len(items))

	for _, it := range items {
		row := make([]cell, len(headers))

		for i, h := range headers {
			row[i] = cellText(it.GetProperty(h), opts)
		}

		rows = append(rows, row)
	}

	return headers, rows, nil
}

func arraysShape(items []*udm.Value, opts Options) [][]cell {
	rows := make([][]cell, 0, len(items))

	for _, it := range items {
		if it.Kind() != udm.KindArray {
			rows = append(rows, []cell{cellText(it, opts)})

			continue
		}

		row := make([]cell, 0, it.Len())
		for _, c := range it.Items() {
			row = append(row, cellText(c, opts))
		}

		rows = append(rows, row)
	}

	return rows
}

func cellText(v *udm.Value, opts Options) cell {
	if v.IsNumeric() && opts.RegionalFormat != numfmt.None && opts.RegionalFormat != "" {
		f, _ := v.AsFloat64()

		s, err := numfmt.Render(f, opts.RegionalFormat, opts.Decimals, opts.UseThousands)
		if err == nil {
			return cell{text: s, raw: true}
		}
	}

	if v.Kind() == udm.KindBinary {
		return cell{text: base64.StdEncoding.EncodeToString(v.Bytes())}
	}

	return cell{text: udm.CoerceToString(v)}
}

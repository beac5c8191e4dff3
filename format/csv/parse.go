package csv

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/numfmt"
	"github.com/utlx-lang/utlx/udm"
)

// Parse decodes CSV bytes into a udm.Value: an Array of Objects when
// Options.Headers is set (default), otherwise an Array of Arrays.
func Parse(data []byte, raw map[string]any) (*udm.Value, error) {
	opts := NewOptions(raw)

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = opts.Delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, errs.FormatParse("csv", err.Error(), err)
	}

	if opts.SkipEmptyLines {
		records = filterEmpty(records)
	}

	if len(records) == 0 {
		return udm.Array(), nil
	}

	if !opts.Headers {
		return rowsToArrays(records, opts.RegionalFormat), nil
	}

	headers := records[0]
	rows := records[1:]

	items := make([]*udm.Value, 0, len(rows))

	for _, row := range rows {
		obj := udm.Object()

		for i, h := range headers {
			var cell string
			if i < len(row) {
				cell = row[i]
			}

			obj.SetProperty(h, inferScalar(cell, opts.RegionalFormat))
		}

		items = append(items, obj)
	}

	return udm.ArrayOf(items), nil
}

func filterEmpty(records [][]string) [][]string {
	out := make([][]string, 0, len(records))

	for _, r := range records {
		if len(r) == 1 && strings.TrimSpace(r[0]) == "" {
			continue
		}

		out = append(out, r)
	}

	return out
}

func rowsToArrays(records [][]string, regional numfmt.Format) *udm.Value {
	items := make([]*udm.Value, 0, len(records))

	for _, row := range records {
		cells := make([]*udm.Value, len(row))
		for i, c := range row {
			cells[i] = inferScalar(c, regional)
		}

		items = append(items, udm.ArrayOf(cells))
	}

	return udm.ArrayOf(items)
}

// inferScalar applies the unquoted-token type inference rule:
// booleans, null synonyms, numbers, else string. encoding/csv
// does not distinguish quoted from unquoted tokens by the time
// ReadAll returns, so quoted empty-looking tokens are inferred the
// same as unquoted ones; documented as a minor simplification.
func inferScalar(s string, regional numfmt.Format) *udm.Value {
	switch strings.ToLower(s) {
	case "":
		return udm.Null()
	case "null", "nil", "n/a":
		return udm.Null()
	case "true":
		return udm.Bool(true)
	case "false":
		return udm.Bool(false)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return udm.Int(i)
	}

	// Under a declared regional dialect the dialect's reading wins
	// over the plain one ("1.234" is one thousand two hundred
	// thirty-four in european, not a fraction). Tokens with no
	// decimal separator stay integral.
	if regional != numfmt.None && regional != "" && looksRegionalNumeric(s) {
		if f, err := numfmt.Parse(s, regional); err == nil {
			_, decimal, _ := numfmt.Separators(regional)
			if !strings.Contains(s, decimal) && f == float64(int64(f)) {
				return udm.Int(int64(f))
			}

			return udm.Float(f)
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return udm.Float(f)
	}

	return udm.String(s)
}

// looksRegionalNumeric rejects tokens with letters or other
// non-numeric shapes before handing them to numfmt.Parse, which would
// otherwise happily strip separators out of ordinary prose.
func looksRegionalNumeric(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == ',' || r == '\'' || r == ' ':
		case r == '-' && i == 0:
		default:
			return false
		}
	}

	return true
}

package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

// Parse decodes JSON bytes into a udm.Value, preserving object
// property insertion order by walking the token stream directly
// rather than decoding into a Go map (which does not preserve key
// order).
func Parse(data []byte, _ map[string]any) (*udm.Value, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return nil, errs.FormatParse("json", err.Error(), err)
	}

	return v, nil
}

func parseValue(dec *json.Decoder) (*udm.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return tokenToValue(dec, tok)
}

func tokenToValue(dec *json.Decoder, tok json.Token) (*udm.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return udm.String(t), nil
	case bool:
		return udm.Bool(t), nil
	case nil:
		return udm.Null(), nil
	case json.Number:
		return numberToValue(t), nil
	default:
		return nil, fmt.Errorf("unsupported JSON token %v", tok)
	}
}

func numberToValue(n json.Number) *udm.Value {
	s := string(n)

	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return udm.Int(i)
		}
	}

	f, _ := n.Float64()

	return udm.Float(f)
}

func parseObject(dec *json.Decoder) (*udm.Value, error) {
	obj := udm.Object()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}

		if strings.HasPrefix(key, "@") && len(key) > 1 {
			if s, ok := val.StringValue(); ok {
				obj.SetAttribute(key[1:], s)

				continue
			}
		}

		obj.SetProperty(key, val)
	}

	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func parseArray(dec *json.Decoder) (*udm.Value, error) {
	var items []*udm.Value

	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}

		items = append(items, val)
	}

	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return udm.ArrayOf(items), nil
}

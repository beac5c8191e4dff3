package yaml

import (
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

// Parse decodes the first (or only) YAML document in data into a
// udm.Value. Multi-document streams are split on "---"; a document
// beyond the first is discarded here — use [ParseDocuments] (the
// implementation behind the `yamlSplitDocuments` stdlib function) to
// recover every document.
func Parse(data []byte, _ map[string]any) (*udm.Value, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, errs.FormatParse("yaml", err.Error(), err)
	}

	if len(file.Docs) == 0 {
		return udm.Null(), nil
	}

	return nodeToUDM(file.Docs[0].Body), nil
}

// ParseDocuments decodes every document in a "---"-separated YAML
// stream into an ordered slice of udm.Value; it backs the
// `yamlSplitDocuments` stdlib function.
func ParseDocuments(data []byte) ([]*udm.Value, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, errs.FormatParse("yaml", err.Error(), err)
	}

	docs := make([]*udm.Value, 0, len(file.Docs))
	for _, d := range file.Docs {
		docs = append(docs, nodeToUDM(d.Body))
	}

	return docs, nil
}

func nodeToUDM(n ast.Node) *udm.Value {
	n = unwrap(n)
	if n == nil {
		return udm.Null()
	}

	switch v := n.(type) {
	case *ast.NullNode:
		return udm.Null()
	case *ast.BoolNode:
		return udm.Bool(v.Value)
	case *ast.IntegerNode:
		return integerToUDM(v)
	case *ast.FloatNode:
		return udm.Float(v.Value)
	case *ast.InfinityNode:
		if v.Value < 0 {
			return udm.Float(negInf)
		}

		return udm.Float(posInf)
	case *ast.NanNode:
		return udm.Float(nan)
	case *ast.StringNode:
		return stringScalar(v.Value)
	case *ast.LiteralNode:
		if v.Value != nil {
			return udm.String(v.Value.Value)
		}

		return udm.String("")
	case *ast.SequenceNode:
		items := make([]*udm.Value, 0, len(v.Values))
		for _, el := range v.Values {
			items = append(items, nodeToUDM(el))
		}

		return udm.ArrayOf(items)
	case *ast.MappingNode:
		return mappingToUDM(v.Values)
	case *ast.MappingValueNode:
		return mappingToUDM([]*ast.MappingValueNode{v})
	default:
		return stringScalar(strings.TrimSpace(n.String()))
	}
}

// stringScalar maps the text `null`, `~` and the empty string to Null
// and `true`/`false` to Bool; every other text, numeric-looking or
// not, stays a String (numeric YAML scalars are handled earlier, as
// integer/float nodes).
func stringScalar(s string) *udm.Value {
	switch s {
	case "null", "~", "":
		return udm.Null()
	case "true":
		return udm.Bool(true)
	case "false":
		return udm.Bool(false)
	}

	return udm.String(s)
}

func integerToUDM(v *ast.IntegerNode) *udm.Value {
	switch i := v.Value.(type) {
	case int64:
		return udm.Int(i)
	case uint64:
		return udm.Int(int64(i))
	case int:
		return udm.Int(int64(i))
	default:
		if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return udm.Int(n)
		}

		return udm.Int(0)
	}
}

func mappingToUDM(values []*ast.MappingValueNode) *udm.Value {
	obj := udm.Object()

	for _, mv := range values {
		if mv == nil {
			continue
		}

		key := keyString(mv.Key)
		obj.SetProperty(key, nodeToUDM(mv.Value))
	}

	return obj
}

func keyString(n ast.Node) string {
	switch k := unwrap(n).(type) {
	case *ast.StringNode:
		return k.Value
	case nil:
		return ""
	default:
		return strings.Trim(k.String(), `"'`)
	}
}

func unwrap(n ast.Node) ast.Node {
	for {
		switch t := n.(type) {
		case *ast.TagNode:
			n = t.Value
		case *ast.AnchorNode:
			n = t.Value
		case *ast.AliasNode:
			n = t.Value
		default:
			return n
		}
	}
}

var (
	posInf = mustFloat("+Inf")
	negInf = mustFloat("-Inf")
	nan    = mustFloat("NaN")
)

func mustFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)

	return f
}

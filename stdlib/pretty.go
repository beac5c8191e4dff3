package stdlib

import (
	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/format/csv"
	"github.com/utlx-lang/utlx/format/json"
	"github.com/utlx-lang/utlx/format/xml"
	"github.com/utlx-lang/utlx/format/yaml"
	"github.com/utlx-lang/utlx/udm"
)

// prettyPrint renders a UDM value through the named format's
// serializer with its default pretty options, for scripts that want
// to embed a formatted sub-document as a string value.
func init() {
	register(&Func{Name: "prettyPrint", MinArity: 2, MaxArity: 2, Call: fnPrettyPrint})
}

func fnPrettyPrint(args []*udm.Value) (*udm.Value, error) {
	format, err := argString("prettyPrint", args, 1)
	if err != nil {
		return nil, err
	}

	var b []byte

	switch format {
	case "json":
		b, err = json.Serialize(args[0], json.Options{Pretty: true, Indent: 2})
	case "xml":
		b, err = xml.Serialize(args[0], xml.DefaultSerializeOptions())
	case "csv":
		b, err = csv.Serialize(args[0], csv.NewOptions(nil))
	case "yaml":
		b, err = yaml.Serialize(args[0], yaml.NewOptions(nil))
	default:
		return nil, errs.TypeOrArgument("prettyPrint", "unsupported format: "+format)
	}

	if err != nil {
		return nil, err
	}

	return udm.String(string(b)), nil
}

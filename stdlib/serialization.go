package stdlib

import (
	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/format/csv"
	"github.com/utlx-lang/utlx/format/json"
	"github.com/utlx-lang/utlx/format/xml"
	"github.com/utlx-lang/utlx/format/yaml"
	"github.com/utlx-lang/utlx/udm"
)

// Serialization parse/render functions let a script embed or extract
// a foreign-format sub-document as a plain string value, independent
// of the script's own declared input/output formats.
func init() {
	register(&Func{Name: "parseJson", MinArity: 1, MaxArity: 1, Call: fnParseJSON})
	register(&Func{Name: "renderJson", MinArity: 1, MaxArity: 1, Call: fnRenderJSON})
	register(&Func{Name: "parseXml", MinArity: 1, MaxArity: 1, Call: fnParseXML})
	register(&Func{Name: "renderXml", MinArity: 1, MaxArity: 1, Call: fnRenderXML})
	register(&Func{Name: "parseCsv", MinArity: 1, MaxArity: 1, Call: fnParseCSV})
	register(&Func{Name: "renderCsv", MinArity: 1, MaxArity: 1, Call: fnRenderCSV})
	register(&Func{Name: "parseYaml", MinArity: 1, MaxArity: 1, Call: fnParseYAML})
	register(&Func{Name: "renderYaml", MinArity: 1, MaxArity: 1, Call: fnRenderYAML})
	register(&Func{Name: "yamlSplitDocuments", MinArity: 1, MaxArity: 1, Call: fnYAMLSplitDocuments})
}

func fnParseJSON(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("parseJson", args, 0)
	if err != nil {
		return nil, err
	}

	return json.Parse(b, nil)
}

func fnRenderJSON(args []*udm.Value) (*udm.Value, error) {
	b, err := json.Serialize(args[0], json.Options{Pretty: true, Indent: 2})
	if err != nil {
		return nil, err
	}

	return udm.String(string(b)), nil
}

func fnParseXML(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("parseXml", args, 0)
	if err != nil {
		return nil, err
	}

	return xml.Parse(b, nil)
}

func fnRenderXML(args []*udm.Value) (*udm.Value, error) {
	b, err := xml.Serialize(args[0], xml.DefaultSerializeOptions())
	if err != nil {
		return nil, err
	}

	return udm.String(string(b)), nil
}

func fnParseCSV(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("parseCsv", args, 0)
	if err != nil {
		return nil, err
	}

	return csv.Parse(b, nil)
}

func fnRenderCSV(args []*udm.Value) (*udm.Value, error) {
	b, err := csv.Serialize(args[0], csv.NewOptions(nil))
	if err != nil {
		return nil, err
	}

	return udm.String(string(b)), nil
}

func fnParseYAML(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("parseYaml", args, 0)
	if err != nil {
		return nil, err
	}

	return yaml.Parse(b, nil)
}

func fnRenderYAML(args []*udm.Value) (*udm.Value, error) {
	b, err := yaml.Serialize(args[0], yaml.NewOptions(nil))
	if err != nil {
		return nil, err
	}

	return udm.String(string(b)), nil
}

// fnYAMLSplitDocuments splits a "---"-separated YAML stream into an
// Array of parsed UDM documents, in stream order.
func fnYAMLSplitDocuments(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("yamlSplitDocuments", args, 0)
	if err != nil {
		return nil, err
	}

	docs, perr := yaml.ParseDocuments(b)
	if perr != nil {
		return nil, perr
	}

	if len(docs) == 0 {
		return nil, errs.TypeOrArgument("yamlSplitDocuments", "no YAML documents found")
	}

	return udm.ArrayOf(docs), nil
}

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/engine"
)

// End-to-end transformations through Compile/Transform, one per
// supported adapter pairing.

func TestXSDArrayHintThenAttributeAccess(t *testing.T) {
	script := `%utlx 1.0
input xsd { arrays: ["xs:element"] }
output json
---
{ names: map($input["xs:element"], e => e["@name"]) }
`
	input := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="customer"/>
  <xs:element name="order"/>
</xs:schema>`

	eng, err := engine.Compile(script)
	require.NoError(t, err)

	out, err := eng.Transform([]byte(input), nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"names":["customer","order"]}`, string(out))
}

func TestXMLToJSONNestedAttribute(t *testing.T) {
	script := "%utlx 1.0\ninput xml\noutput json\n---\n{ id: $input.@id, customer: $input.Customer }\n"
	input := `<Order id="12345"><Customer>Alice</Customer></Order>`

	eng, err := engine.Compile(script)
	require.NoError(t, err)

	out, err := eng.Transform([]byte(input), nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"12345","customer":"Alice"}`, string(out))
}

func TestCSVHeaderedParseRegionalRender(t *testing.T) {
	script := `%utlx 1.0
input csv
output csv { regionalFormat: european, decimals: 2 }
---
$input
`
	input := "name,amount\nAlice,1234.5\nBob,10\n"

	eng, err := engine.Compile(script)
	require.NoError(t, err)

	out, err := eng.Transform([]byte(input), nil)
	require.NoError(t, err)

	assert.Contains(t, string(out), "Alice,1.234,50")
	assert.Contains(t, string(out), "Bob,10,00")
}

func TestYAMLMultiDocumentSplit(t *testing.T) {
	script := `%utlx 1.0
input yaml
output json
---
yamlSplitDocuments($input)
`
	input := "a: 1\n---\nb: 2\n"

	eng, err := engine.Compile(script)
	require.NoError(t, err)

	out, err := eng.Transform([]byte(input), nil)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"a":1},{"b":2}]`, string(out))
}

func TestTemplateApplyDispatch(t *testing.T) {
	script := `%utlx 1.0
input xml
output json
---
template match="Items" { { items: apply(Item) } }
template match="Item" { { sku: @sku } }
let doc = { Items: $input };
apply(doc.Items)
`
	input := `<Items><Item sku="A"/><Item sku="B"/></Items>`

	eng, err := engine.Compile(script)
	require.NoError(t, err)

	out, err := eng.Transform([]byte(input), nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"items":[{"sku":"A"},{"sku":"B"}]}`, string(out))
}

func TestGzipStdlibRoundTrip(t *testing.T) {
	script := `%utlx 1.0
input json
output json
---
{ ok: isGzipped(gzip($input.blob)), roundTrip: gunzip(gzip($input.blob)) }
`
	input := `{"blob":"hello world"}`

	eng, err := engine.Compile(script)
	require.NoError(t, err)

	out, err := eng.Transform([]byte(input), nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"ok":true,"roundTrip":"aGVsbG8gd29ybGQ="}`, string(out))
}

func TestCompileCachesBySourceHash(t *testing.T) {
	script := "%utlx 1.0\ninput json\noutput json\n---\n$input\n"

	first, err := engine.Compile(script)
	require.NoError(t, err)

	second, err := engine.Compile(script)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestTransformRejectsMultiOutputScript(t *testing.T) {
	script := `%utlx 1.0
input json
output { a: json, b: json }
---
{ a: { x: 1 }, b: { y: 2 } }
`
	eng, err := engine.Compile(script)
	require.NoError(t, err)

	_, err = eng.Transform([]byte(`{}`), nil)
	assert.ErrorIs(t, err, engine.ErrSingleOutput)
}

func TestTransformMultiProducesNamedOutputs(t *testing.T) {
	script := `%utlx 1.0
input json
output { a: json, b: json }
---
{ a: { x: 1 }, b: { y: 2 } }
`
	eng, err := engine.Compile(script)
	require.NoError(t, err)

	result, err := eng.TransformMulti(map[string][]byte{"": []byte(`{}`)}, nil)
	require.NoError(t, err)

	rendered, ok := result.(map[string][]byte)
	require.True(t, ok)

	assert.JSONEq(t, `{"x":1}`, string(rendered["a"]))
	assert.JSONEq(t, `{"y":2}`, string(rendered["b"]))
}

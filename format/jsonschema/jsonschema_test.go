package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/format/jsonschema"
)

func TestParseDetectsDraft202012ViaSchemaURI(t *testing.T) {
	src := `{"$schema":"https://json-schema.org/draft/2020-12/schema","$defs":{"x":{"type":"string"}}}`

	v, err := jsonschema.Parse([]byte(src), nil)
	require.NoError(t, err)

	meta := v.GetProperty("__metadata")

	draft, _ := meta.GetProperty("draft").StringValue()
	assert.Equal(t, "2020-12", draft)

	usesDefs, _ := meta.GetProperty("usesDefs").BoolValue()
	assert.True(t, usesDefs)

	usesDefinitions, _ := meta.GetProperty("usesDefinitions").BoolValue()
	assert.False(t, usesDefinitions)
}

func TestParseDetectsDraft07ViaDefinitions(t *testing.T) {
	src := `{"definitions":{"x":{"type":"string"}}}`

	v, err := jsonschema.Parse([]byte(src), nil)
	require.NoError(t, err)

	meta := v.GetProperty("__metadata")

	draft, _ := meta.GetProperty("draft").StringValue()
	assert.Equal(t, "draft-07", draft)
}

func TestToSubSchemaConvertsPropertySubtree(t *testing.T) {
	src := `{"properties":{"name":{"type":"string"}}}`

	v, err := jsonschema.Parse([]byte(src), nil)
	require.NoError(t, err)

	sub := jsonschema.ToSubSchema(v.GetProperty("properties").GetProperty("name"))
	require.NotNil(t, sub)
}

func TestTrueAndFalseSchema(t *testing.T) {
	assert.Nil(t, jsonschema.TrueSchema().Not)
	assert.NotNil(t, jsonschema.FalseSchema().Not)
}

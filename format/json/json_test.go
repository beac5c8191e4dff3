package json_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/format/json"
	"github.com/utlx-lang/utlx/stringtest"
	"github.com/utlx-lang/utlx/udm"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  *udm.Value
	}{
		"object with string and number": {
			input: `{"name":"Ada","age":36}`,
			want: func() *udm.Value {
				obj := udm.Object()
				obj.SetProperty("name", udm.String("Ada"))
				obj.SetProperty("age", udm.Int(36))

				return obj
			}(),
		},
		"integer stays an integer": {
			input: `1`,
			want:  udm.Int(1),
		},
		"decimal literal becomes a float": {
			input: `1.5`,
			want:  udm.Float(1.5),
		},
		"exponent literal becomes a float": {
			input: `1e3`,
			want:  udm.Float(1000),
		},
		"array of mixed scalars": {
			input: `[1,"two",true,null]`,
			want:  udm.Array(udm.Int(1), udm.String("two"), udm.Bool(true), udm.Null()),
		},
		"@-prefixed key becomes an attribute": {
			input: `{"@id":"42","name":"Ada"}`,
			want: func() *udm.Value {
				obj := udm.Object()
				obj.SetAttribute("id", "42")
				obj.SetProperty("name", udm.String("Ada"))

				return obj
			}(),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Parse([]byte(tc.input), nil)
			require.NoError(t, err)
			assert.True(t, udm.Equal(tc.want, got), "got %#v, want %#v", got, tc.want)
		})
	}
}

func TestParse_PreservesPropertyOrder(t *testing.T) {
	t.Parallel()

	got, err := json.Parse([]byte(`{"z":1,"a":2,"m":3}`), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, got.PropertyKeys())
}

func TestParse_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := json.Parse([]byte(`{not json`), nil)
	require.Error(t, err)
}

func TestSerialize_Pretty(t *testing.T) {
	t.Parallel()

	obj := udm.Object()
	obj.SetProperty("name", udm.String("Ada"))
	obj.SetProperty("tags", udm.Array(udm.String("math"), udm.String("code")))

	got, err := json.Serialize(obj, json.Options{Pretty: true, Indent: 2})
	require.NoError(t, err)

	want := stringtest.JoinLF(
		`{`,
		`  "name": "Ada",`,
		`  "tags": [`,
		`    "math",`,
		`    "code"`,
		`  ]`,
		`}`,
	)

	assert.Equal(t, want, string(got))
}

func TestSerialize_Compact(t *testing.T) {
	t.Parallel()

	obj := udm.Object()
	obj.SetProperty("a", udm.Int(1))
	obj.SetProperty("b", udm.Bool(false))

	got, err := json.Serialize(obj, json.Options{Pretty: false})
	require.NoError(t, err)

	assert.Equal(t, `{"a":1,"b":false}`, string(got))
}

func TestSerialize_AttributesBeforeProperties(t *testing.T) {
	t.Parallel()

	obj := udm.Object()
	obj.SetProperty("name", udm.String("Ada"))
	obj.SetAttribute("id", "42")

	got, err := json.Serialize(obj, json.Options{Pretty: false})
	require.NoError(t, err)

	assert.Equal(t, `{"@id":"42","name":"Ada"}`, string(got))
}

func TestSerialize_EscapesControlCharacters(t *testing.T) {
	t.Parallel()

	got, err := json.Serialize(udm.String("line1\nline2\ttab"), json.Options{})
	require.NoError(t, err)

	assert.Equal(t, `"line1\nline2\ttab"`, string(got))

	// Control characters without a short escape take the four-digit
	// \u form.
	got, err = json.Serialize(udm.String("a\bb\x1fc"), json.Options{})
	require.NoError(t, err)

	assert.Equal(t, `"a\u0008b\u001Fc"`, string(got))
}

func TestSerialize_BinaryAsBase64(t *testing.T) {
	t.Parallel()

	got, err := json.Serialize(udm.Binary([]byte("hello world")), json.Options{})
	require.NoError(t, err)

	assert.Equal(t, `"aGVsbG8gd29ybGQ="`, string(got))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinLF(
		`{"title":"Example","count":3,"active":true,"ratio":0.5}`,
	)

	v, err := json.Parse([]byte(in), nil)
	require.NoError(t, err)

	out, err := json.Serialize(v, json.Options{Pretty: false})
	require.NoError(t, err)

	assert.JSONEq(t, in, string(out))
}

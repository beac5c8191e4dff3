package csv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/format/csv"
	"github.com/utlx-lang/utlx/stringtest"
	"github.com/utlx-lang/utlx/udm"
)

func TestParse_HeadersIntoObjects(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinCRLF(
		`name,age,active`,
		`Ada,36,true`,
		`Alan,41,false`,
	)

	got, err := csv.Parse([]byte(in), nil)
	require.NoError(t, err)

	require.Equal(t, udm.KindArray, got.Kind())
	require.Len(t, got.Items(), 2)

	first := got.Items()[0]
	name, _ := first.GetProperty("name").StringValue()
	assert.Equal(t, "Ada", name)

	age, _ := first.GetProperty("age").IntValue()
	assert.Equal(t, int64(36), age)

	active, _ := first.GetProperty("active").BoolValue()
	assert.True(t, active)
}

func TestParse_NullSynonymsAndEmptyCells(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinCRLF(
		`a,b,c`,
		`null,N/A,`,
	)

	got, err := csv.Parse([]byte(in), nil)
	require.NoError(t, err)

	row := got.Items()[0]
	assert.True(t, row.GetProperty("a").IsNull())
	assert.True(t, row.GetProperty("b").IsNull())
	assert.True(t, row.GetProperty("c").IsNull())
}

func TestParse_NoHeadersYieldsArrayOfArrays(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinCRLF(`1,2,3`, `4,5,6`)

	got, err := csv.Parse([]byte(in), map[string]any{"headers": false})
	require.NoError(t, err)

	require.Len(t, got.Items(), 2)
	assert.Equal(t, udm.KindArray, got.Items()[0].Kind())

	first := got.Items()[0].Items()
	v, _ := first[0].IntValue()
	assert.Equal(t, int64(1), v)
}

func TestParse_EmptyInputYieldsEmptyArray(t *testing.T) {
	t.Parallel()

	got, err := csv.Parse([]byte(""), nil)
	require.NoError(t, err)

	assert.Equal(t, udm.KindArray, got.Kind())
	assert.Empty(t, got.Items())
}

func TestSerialize_ObjectsShape(t *testing.T) {
	t.Parallel()

	first := udm.Object()
	first.SetProperty("name", udm.String("Ada"))
	first.SetProperty("age", udm.Int(36))

	second := udm.Object()
	second.SetProperty("name", udm.String("Alan"))
	second.SetProperty("age", udm.Int(41))

	got, err := csv.Serialize(udm.Array(first, second), csv.NewOptions(nil))
	require.NoError(t, err)

	want := stringtest.JoinCRLF(`name,age`, `Ada,36`, `Alan,41`, ``)
	assert.Equal(t, want, string(got))
}

func TestSerialize_ExplicitHeadersAndRows(t *testing.T) {
	t.Parallel()

	obj := udm.Object()
	obj.SetProperty("headers", udm.Array(udm.String("x"), udm.String("y")))
	obj.SetProperty("rows", udm.Array(
		udm.Array(udm.Int(1), udm.Int(2)),
		udm.Array(udm.Int(3), udm.Int(4)),
	))

	got, err := csv.Serialize(obj, csv.NewOptions(nil))
	require.NoError(t, err)

	want := stringtest.JoinCRLF(`x,y`, `1,2`, `3,4`, ``)
	assert.Equal(t, want, string(got))
}

func TestSerialize_RejectsNonArrayNonTabular(t *testing.T) {
	t.Parallel()

	_, err := csv.Serialize(udm.String("x"), csv.NewOptions(nil))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinCRLF(`name,score`, `Ada,100`, `Alan,95`)

	v, err := csv.Parse([]byte(in), nil)
	require.NoError(t, err)

	out, err := csv.Serialize(v, csv.NewOptions(nil))
	require.NoError(t, err)

	assert.Equal(t, in+"\r\n", string(out))
}

func TestParse_RegionalFormatReadsDialectNumbers(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinCRLF(
		`name;amount;count`,
		`Alice;1.234,50;1.234`,
		`Bob;10,00;7`,
	)

	got, err := csv.Parse([]byte(in), map[string]any{
		"delimiter":      ";",
		"regionalFormat": "european",
	})
	require.NoError(t, err)
	require.Len(t, got.Items(), 2)

	alice := got.Items()[0]
	amount, _ := alice.GetProperty("amount").FloatValue()
	assert.InDelta(t, 1234.5, amount, 0.001)

	// No decimal comma, so the dot is a thousands separator and the
	// value stays integral.
	count, _ := alice.GetProperty("count").IntValue()
	assert.Equal(t, int64(1234), count)

	bob := got.Items()[1]
	bobAmount, _ := bob.GetProperty("amount").FloatValue()
	assert.InDelta(t, 10.0, bobAmount, 0.001)

	bobCount, _ := bob.GetProperty("count").IntValue()
	assert.Equal(t, int64(7), bobCount)
}

func TestParse_RegionalFormatLeavesProseAlone(t *testing.T) {
	t.Parallel()

	in := stringtest.JoinCRLF(
		`note`,
		`one. two`,
	)

	got, err := csv.Parse([]byte(in), map[string]any{"regionalFormat": "european"})
	require.NoError(t, err)

	note, ok := got.Items()[0].GetProperty("note").StringValue()
	require.True(t, ok)
	assert.Equal(t, "one. two", note)
}

// Numbers rendered under a regional dialect parse back to the same
// values when the matching dialect is declared on the way in. The
// semicolon delimiter keeps every dialect's separators out of the
// field separator's way, as regional CSV files do.
func TestRegionalRoundTrip(t *testing.T) {
	t.Parallel()

	row := udm.Object()
	row.SetProperty("amount", udm.Float(1234567.89))

	for _, region := range []string{"usa", "european", "french", "swiss"} {
		rawOpts := map[string]any{"regionalFormat": region, "delimiter": ";"}

		out, err := csv.Serialize(udm.Array(row), csv.NewOptions(rawOpts))
		require.NoError(t, err, region)

		back, err := csv.Parse(out, rawOpts)
		require.NoError(t, err, region)
		require.Len(t, back.Items(), 1, region)

		amount, ok := back.Items()[0].GetProperty("amount").FloatValue()
		require.True(t, ok, region)
		assert.InDelta(t, 1234567.89, amount, 0.005, region)
	}
}

func TestSerialize_BinaryAsBase64(t *testing.T) {
	t.Parallel()

	row := udm.Object()
	row.SetProperty("blob", udm.Binary([]byte("hello world")))

	got, err := csv.Serialize(udm.Array(row), csv.NewOptions(nil))
	require.NoError(t, err)

	want := stringtest.JoinCRLF(`blob`, `aGVsbG8gd29ybGQ=`, ``)
	assert.Equal(t, want, string(got))
}

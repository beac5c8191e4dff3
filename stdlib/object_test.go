package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/udm"
)

func orderObj() *udm.Value {
	o := udm.Object()
	o.SetProperty("name", udm.String("Alice"))
	o.SetProperty("total", udm.Int(3))
	o.SetAttribute("id", "12345")

	return o
}

// keys, values, and entries view the properties namespace only;
// attributes never leak into them.
func TestKeysExcludeAttributes(t *testing.T) {
	t.Parallel()

	got, err := call(t, "keys", orderObj())
	require.NoError(t, err)

	keys := make([]string, 0, got.Len())
	for _, k := range got.Items() {
		s, _ := k.StringValue()
		keys = append(keys, s)
	}

	assert.Equal(t, []string{"name", "total"}, keys)
	assert.NotContains(t, keys, "id")
}

func TestValuesFollowPropertyOrder(t *testing.T) {
	t.Parallel()

	got, err := call(t, "values", orderObj())
	require.NoError(t, err)

	require.Equal(t, 2, got.Len())

	name, _ := got.Items()[0].StringValue()
	assert.Equal(t, "Alice", name)

	total, _ := got.Items()[1].IntValue()
	assert.Equal(t, int64(3), total)
}

func TestEntriesRoundTripThroughFromEntries(t *testing.T) {
	t.Parallel()

	entries, err := call(t, "entries", orderObj())
	require.NoError(t, err)
	require.Equal(t, 2, entries.Len())

	first := entries.Items()[0]
	key, _ := first.GetProperty("key").StringValue()
	assert.Equal(t, "name", key)

	back, err := call(t, "fromEntries", entries)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "total"}, back.PropertyKeys())
}

func TestHasKeyTestsPropertiesNotAttributes(t *testing.T) {
	t.Parallel()

	obj := orderObj()

	got, err := call(t, "hasKey", obj, udm.String("name"))
	require.NoError(t, err)

	b, _ := got.BoolValue()
	assert.True(t, b)

	// The attribute `id` is not a property key, with or without the
	// `@` sigil.
	for _, probe := range []string{"id", "@id"} {
		got, err = call(t, "hasKey", obj, udm.String(probe))
		require.NoError(t, err)

		b, _ = got.BoolValue()
		assert.False(t, b, probe)
	}
}

func TestMergeLaterKeysWin(t *testing.T) {
	t.Parallel()

	a := udm.Object()
	a.SetProperty("x", udm.Int(1))
	a.SetProperty("y", udm.Int(2))

	b := udm.Object()
	b.SetProperty("y", udm.Int(20))
	b.SetAttribute("tag", "b")

	got, err := call(t, "merge", a, b)
	require.NoError(t, err)

	y, _ := got.GetProperty("y").IntValue()
	assert.Equal(t, int64(20), y)

	x, _ := got.GetProperty("x").IntValue()
	assert.Equal(t, int64(1), x)

	tag, _ := got.GetAttribute("tag").StringValue()
	assert.Equal(t, "b", tag)
}

func TestKeysRejectsNonObject(t *testing.T) {
	t.Parallel()

	_, err := call(t, "keys", udm.Array())
	assert.Error(t, err)
}

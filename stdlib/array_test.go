package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/udm"
)

// fnLambda adapts a plain Go function into a [udm.Lambda] so stdlib
// higher-order functions can be exercised without going through the
// parser.
type fnLambda struct {
	arity int
	fn    func(args []*udm.Value) (*udm.Value, error)
}

func (l *fnLambda) Arity() (min, max int) { return l.arity, l.arity }

func (l *fnLambda) String() string { return "lambda/test" }

func (l *fnLambda) Call(args []*udm.Value) (*udm.Value, error) { return l.fn(args) }

func lambda1(fn func(v *udm.Value) *udm.Value) *udm.Value {
	return udm.NewLambda(&fnLambda{arity: 1, fn: func(args []*udm.Value) (*udm.Value, error) {
		return fn(args[0]), nil
	}})
}

func lambda2(fn func(a, b *udm.Value) *udm.Value) *udm.Value {
	return udm.NewLambda(&fnLambda{arity: 2, fn: func(args []*udm.Value) (*udm.Value, error) {
		return fn(args[0], args[1]), nil
	}})
}

func ints(ns ...int64) *udm.Value {
	items := make([]*udm.Value, len(ns))
	for i, n := range ns {
		items[i] = udm.Int(n)
	}

	return udm.ArrayOf(items)
}

func TestMapIdentityLawAndOrder(t *testing.T) {
	t.Parallel()

	arr := ints(3, 1, 2)

	got, err := call(t, "map", arr, lambda1(func(v *udm.Value) *udm.Value { return v }))
	require.NoError(t, err)

	assert.True(t, udm.Equal(arr, got))
}

func TestFilterAlwaysTrueLawAndOrder(t *testing.T) {
	t.Parallel()

	arr := ints(3, 1, 2)

	got, err := call(t, "filter", arr, lambda1(func(*udm.Value) *udm.Value { return udm.Bool(true) }))
	require.NoError(t, err)

	assert.True(t, udm.Equal(arr, got))
}

func TestReduceSumLaw(t *testing.T) {
	t.Parallel()

	arr := ints(1, 2, 3, 4)

	add := lambda2(func(a, b *udm.Value) *udm.Value {
		v, err := udm.Add(a, b)
		if err != nil {
			return udm.Null()
		}

		return v
	})

	reduced, err := call(t, "reduce", arr, add, udm.Int(0))
	require.NoError(t, err)

	summed, err := call(t, "sum", arr)
	require.NoError(t, err)

	assert.True(t, udm.Equal(reduced, summed))

	i, _ := reduced.IntValue()
	assert.Equal(t, int64(10), i)
}

func TestReduceIsLeftFold(t *testing.T) {
	t.Parallel()

	arr := udm.Array(udm.String("a"), udm.String("b"), udm.String("c"))

	concat := lambda2(func(a, b *udm.Value) *udm.Value {
		as, _ := a.StringValue()
		bs, _ := b.StringValue()

		return udm.String(as + bs)
	})

	got, err := call(t, "reduce", arr, concat, udm.String(""))
	require.NoError(t, err)

	s, _ := got.StringValue()
	assert.Equal(t, "abc", s)
}

func TestSortByIsStable(t *testing.T) {
	t.Parallel()

	entry := func(key int64, tag string) *udm.Value {
		o := udm.Object()
		o.SetProperty("key", udm.Int(key))
		o.SetProperty("tag", udm.String(tag))

		return o
	}

	arr := udm.Array(
		entry(2, "first-two"),
		entry(1, "one"),
		entry(2, "second-two"),
	)

	got, err := call(t, "sortBy", arr, lambda1(func(v *udm.Value) *udm.Value {
		return v.GetProperty("key")
	}))
	require.NoError(t, err)

	tags := make([]string, 0, 3)
	for _, it := range got.Items() {
		s, _ := it.GetProperty("tag").StringValue()
		tags = append(tags, s)
	}

	assert.Equal(t, []string{"one", "first-two", "second-two"}, tags)
}

func TestFlattenDescendsExactlyOneLevel(t *testing.T) {
	t.Parallel()

	nested := udm.Array(
		udm.Array(udm.Int(1), udm.Array(udm.Int(2))),
		udm.Int(3),
	)

	got, err := call(t, "flatten", nested)
	require.NoError(t, err)

	items := got.Items()
	require.Len(t, items, 3)

	i0, _ := items[0].IntValue()
	assert.Equal(t, int64(1), i0)

	// The inner [2] stays an array: flatten is one level, not deep.
	assert.Equal(t, udm.KindArray, items[1].Kind())

	i2, _ := items[2].IntValue()
	assert.Equal(t, int64(3), i2)
}

func TestFlatMapIsFlattenOfMap(t *testing.T) {
	t.Parallel()

	arr := ints(1, 2)

	pair := lambda1(func(v *udm.Value) *udm.Value {
		return udm.Array(v, v)
	})

	got, err := call(t, "flatMap", arr, pair)
	require.NoError(t, err)

	assert.True(t, udm.Equal(ints(1, 1, 2, 2), got))
}

func TestDistinctKeepsFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	got, err := call(t, "distinct", ints(2, 1, 2, 3, 1))
	require.NoError(t, err)

	assert.True(t, udm.Equal(ints(2, 1, 3), got))
}

func TestSumPreservesIntegerWhenAllInts(t *testing.T) {
	t.Parallel()

	got, err := call(t, "sum", ints(1, 2, 3))
	require.NoError(t, err)

	require.Equal(t, udm.ScalarInt, got.ScalarKind())

	got, err = call(t, "sum", udm.Array(udm.Int(1), udm.Float(2.5)))
	require.NoError(t, err)

	require.Equal(t, udm.ScalarFloat, got.ScalarKind())

	f, _ := got.FloatValue()
	assert.InDelta(t, 3.5, f, 0.0001)
}

func TestMapRejectsNonArrayArgument(t *testing.T) {
	t.Parallel()

	_, err := call(t, "map", udm.String("not an array"), lambda1(func(v *udm.Value) *udm.Value { return v }))
	assert.Error(t, err)
}

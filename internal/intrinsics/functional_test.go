package intrinsics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartquery/smartquery/internal/value"
)

func double() value.Callable {
	return func(args []value.Value) (value.Value, error) {
		n := args[0].Number()
		return value.Number(n.Add(n)), nil
	}
}

func TestMapFnOverList(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	v, err := mapFn([]value.Value{l, value.Func(double())})
	require.NoError(t, err)
	items := v.List()
	require.Len(t, items, 3)
	assert.Equal(t, "2", items[0].Number().String())
	assert.Equal(t, "6", items[2].Number().String())
}

func TestMapFnOverDictPassesKeyAndValue(t *testing.T) {
	m := value.NewMap()
	m.Set("a", num("1"))
	f := value.Callable(func(args []value.Value) (value.Value, error) {
		require.Len(t, args, 2)
		return value.String(args[0].Str() + "=" + args[1].Number().String()), nil
	})
	v, err := mapFn([]value.Value{value.MapVal(m), value.Func(f)})
	require.NoError(t, err)
	items := v.List()
	require.Len(t, items, 1)
	assert.Equal(t, "a=1", items[0].Str())
}

func TestFilterFnKeepsTruthyElements(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("0"), num("2")})
	isTruthy := value.Callable(func(args []value.Value) (value.Value, error) {
		return value.Bool(value.Truthy(args[0])), nil
	})
	v, err := filterFn([]value.Value{l, value.Func(isTruthy)})
	require.NoError(t, err)
	items := v.List()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].Number().String())
	assert.Equal(t, "2", items[1].Number().String())
}

func TestReduceFnSumsWithoutInitialValue(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	add := value.Callable(func(args []value.Value) (value.Value, error) {
		return value.Number(args[0].Number().Add(args[1].Number())), nil
	})
	v, err := reduceFn([]value.Value{l, value.Func(add)})
	require.NoError(t, err)
	assert.Equal(t, "6", v.Number().String())
}

func TestReduceFnErrorsOnEmptyIterable(t *testing.T) {
	l := value.List(nil)
	add := value.Callable(func(args []value.Value) (value.Value, error) {
		return args[0], nil
	})
	_, err := reduceFn([]value.Value{l, value.Func(add)})
	require.Error(t, err)
}

func TestToIterableOverMapYieldsKeyValuePairs(t *testing.T) {
	m := value.NewMap()
	m.Set("a", num("1"))
	m.Set("b", num("2"))
	items, err := toIterable(value.MapVal(m))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].List()[0].Str())
	assert.Equal(t, "b", items[1].List()[0].Str())
}

package intrinsics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartquery/smartquery/internal/value"
)

func TestMapKeysValuesItems(t *testing.T) {
	m := value.NewMap()
	m.Set("a", num("1"))
	m.Set("b", num("2"))

	keys, err := mapKeys([]value.Value{value.MapVal(m)})
	require.NoError(t, err)
	require.Len(t, keys.List(), 2)
	assert.Equal(t, "a", keys.List()[0].Str())

	vals, err := mapValues([]value.Value{value.MapVal(m)})
	require.NoError(t, err)
	require.Len(t, vals.List(), 2)
	assert.Equal(t, "1", vals.List()[0].Number().String())

	items, err := mapItems([]value.Value{value.MapVal(m)})
	require.NoError(t, err)
	require.Len(t, items.List(), 2)
	pair := items.List()[0].List()
	assert.Equal(t, "a", pair[0].Str())
	assert.Equal(t, "1", pair[1].Number().String())
}

func TestMapGetReturnsDefaultWhenAbsent(t *testing.T) {
	m := value.NewMap()
	v, err := mapGet([]value.Value{value.MapVal(m), value.String("missing"), value.String("fallback")})
	require.NoError(t, err)
	assert.Equal(t, "fallback", v.Str())
}

func TestMapGetReturnsNullDefaultWhenOmitted(t *testing.T) {
	m := value.NewMap()
	v, err := mapGet([]value.Value{value.MapVal(m), value.String("missing")})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestMapGetOnListWithNegativeIndex(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	v, err := mapGet([]value.Value{l, num("-1")})
	require.NoError(t, err)
	assert.Equal(t, "3", v.Number().String())
}

func TestMapGetOnListOutOfRangeReturnsDefault(t *testing.T) {
	l := value.List([]value.Value{num("1")})
	v, err := mapGet([]value.Value{l, num("9"), value.String("fallback")})
	require.NoError(t, err)
	assert.Equal(t, "fallback", v.Str())
}

func TestSumValuesOverList(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	v, err := sumValues([]value.Value{l})
	require.NoError(t, err)
	assert.Equal(t, "6", v.Number().String())
}

func TestSumValuesPassesThroughNonList(t *testing.T) {
	v, err := sumValues([]value.Value{value.String("x")})
	require.NoError(t, err)
	assert.Equal(t, "x", v.Str())
}

package intrinsics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

func num(s string) value.Value {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return value.Number(d)
}

func TestGetItemListNegativeIndex(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	v, err := getItem([]value.Value{l, num("-1")})
	require.NoError(t, err)
	assert.Equal(t, "3", v.Number().String())
}

func TestGetItemListOutOfRange(t *testing.T) {
	l := value.List([]value.Value{num("1")})
	_, err := getItem([]value.Value{l, num("5")})
	require.Error(t, err)
	sqErr, ok := err.(*sqerr.Error)
	require.True(t, ok)
	assert.Equal(t, sqerr.KeyError, sqErr.Kind)
}

func TestGetItemMapCoercesNumericKeyToString(t *testing.T) {
	m := value.NewMap()
	m.Set("1", value.String("a"))
	v, err := getItem([]value.Value{value.MapVal(m), num("1")})
	require.NoError(t, err)
	assert.Equal(t, "a", v.Str())
}

func TestGetItemStringSingleChar(t *testing.T) {
	v, err := getItem([]value.Value{value.String("hello"), num("-1")})
	require.NoError(t, err)
	assert.Equal(t, "o", v.Str())
}

func TestDelItemListOutOfRangeIsSilentNoOp(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2")})
	_, err := delItem([]value.Value{l, num("10")})
	require.NoError(t, err)
	assert.Len(t, l.List(), 2)
}

func TestDelItemListInRangeRemoves(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	_, err := delItem([]value.Value{l, num("1")})
	require.NoError(t, err)
	items := l.List()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].Number().String())
	assert.Equal(t, "3", items[1].Number().String())
}

func TestDelItemMapDeletesKeyIfPresent(t *testing.T) {
	m := value.NewMap()
	m.Set("a", num("1"))
	_, err := delItem([]value.Value{value.MapVal(m), value.String("a")})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestSetItemOverwritesInRangeListElement(t *testing.T) {
	l := value.List([]value.Value{num("1")})
	_, err := setItem([]value.Value{l, num("0"), num("9")})
	require.NoError(t, err)
	assert.Equal(t, "9", l.List()[0].Number().String())
}

func TestSetItemDeepCopiesStoredValue(t *testing.T) {
	inner := value.List([]value.Value{num("1")})
	outer := value.List([]value.Value{num("0")})
	_, err := setItem([]value.Value{outer, num("0"), inner})
	require.NoError(t, err)
	inner.ListAppend(num("2"))
	assert.Len(t, outer.List()[0].List(), 1)
}

func TestSetItemWithOpReturnsRHSNotUpdatedEntry(t *testing.T) {
	m := value.NewMap()
	m.Set("x", num("10"))
	result, err := setItemWithOp([]value.Value{value.MapVal(m), value.String("x"), value.String("+="), num("5")})
	require.NoError(t, err)
	assert.Equal(t, "5", result.Number().String())
	v, _ := m.Get("x")
	assert.Equal(t, "15", v.Number().String())
}

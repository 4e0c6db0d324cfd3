package intrinsics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartquery/smartquery/internal/value"
)

func TestPushAppendsAndReturnsNull(t *testing.T) {
	l := value.List([]value.Value{num("1")})
	v, err := push([]value.Value{l, num("2")})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.Len(t, l.List(), 2)
}

func TestPushStoresByReferenceNotByValue(t *testing.T) {
	b := value.NewMap()
	a := value.List(nil)
	_, err := push([]value.Value{a, value.MapVal(b)})
	require.NoError(t, err)
	b.Set("x", num("1"))
	v, ok := a.List()[0].Map().Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", v.Number().String())
}

func TestInsertStoresByReferenceNotByValue(t *testing.T) {
	b := value.NewMap()
	a := value.List([]value.Value{num("0")})
	_, err := insert([]value.Value{a, num("0"), value.MapVal(b)})
	require.NoError(t, err)
	b.Set("x", num("1"))
	v, ok := a.List()[0].Map().Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", v.Number().String())
}

func TestPopDefaultsToLastElement(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	v, err := pop([]value.Value{l})
	require.NoError(t, err)
	assert.Equal(t, "3", v.Number().String())
	assert.Len(t, l.List(), 2)
}

func TestPopWithNegativeIndex(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	v, err := pop([]value.Value{l, num("-2")})
	require.NoError(t, err)
	assert.Equal(t, "2", v.Number().String())
}

func TestPopOutOfRangeErrors(t *testing.T) {
	l := value.List([]value.Value{num("1")})
	_, err := pop([]value.Value{l, num("9")})
	require.Error(t, err)
}

func TestInsertClampsOutOfRangeIndex(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2")})
	_, err := insert([]value.Value{l, num("99"), num("3")})
	require.NoError(t, err)
	items := l.List()
	require.Len(t, items, 3)
	assert.Equal(t, "3", items[2].Number().String())
}

func TestRemoveListSilentlyNoOpsIfAbsent(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2")})
	v, err := remove([]value.Value{l, num("99")})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
	assert.Len(t, l.List(), 2)
}

func TestRemoveListRemovesFirstMatch(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("1")})
	_, err := remove([]value.Value{l, num("1")})
	require.NoError(t, err)
	items := l.List()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].Number().String())
	assert.Equal(t, "1", items[1].Number().String())
}

func TestRemoveMapDeletesByKeyIfPresent(t *testing.T) {
	m := value.NewMap()
	m.Set("a", num("1"))
	_, err := remove([]value.Value{value.MapVal(m), value.String("a")})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestSortedListDefaultOrder(t *testing.T) {
	l := value.List([]value.Value{num("3"), num("1"), num("2")})
	v, err := sortedFn([]value.Value{l})
	require.NoError(t, err)
	items := v.List()
	assert.Equal(t, "1", items[0].Number().String())
	assert.Equal(t, "3", items[2].Number().String())
}

func TestSortedListReverse(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	v, err := sortedFn([]value.Value{l, value.Null(), value.Bool(true)})
	require.NoError(t, err)
	items := v.List()
	assert.Equal(t, "3", items[0].Number().String())
}

func TestSortedDictByKey(t *testing.T) {
	m := value.NewMap()
	m.Set("b", num("2"))
	m.Set("a", num("1"))
	v, err := sortedFn([]value.Value{value.MapVal(m)})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v.Map().Keys())
}

func TestReversedStringAndList(t *testing.T) {
	s, err := reversedFn([]value.Value{value.String("abc")})
	require.NoError(t, err)
	assert.Equal(t, "cba", s.Str())

	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	v, err := reversedFn([]value.Value{l})
	require.NoError(t, err)
	items := v.List()
	assert.Equal(t, "3", items[0].Number().String())
}

func TestEnumerateProducesIndexValuePairs(t *testing.T) {
	l := value.List([]value.Value{value.String("a"), value.String("b")})
	v, err := enumerateFn([]value.Value{l})
	require.NoError(t, err)
	items := v.List()
	require.Len(t, items, 2)
	assert.Equal(t, "0", items[0].List()[0].Number().String())
	assert.Equal(t, "a", items[0].List()[1].Str())
}

func TestShuffleLeavesOriginalUntouched(t *testing.T) {
	orig := []value.Value{num("1"), num("2"), num("3"), num("4"), num("5")}
	l := value.List(orig)
	_, err := shuffleFn([]value.Value{l})
	require.NoError(t, err)
	assert.Len(t, l.List(), 5)
	assert.Equal(t, "1", l.List()[0].Number().String())
}

func TestIndexOfReturnsNullWhenAbsent(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2")})
	v, err := indexOf([]value.Value{l, num("9")})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestIndexOfReturnsFirstMatchIndex(t *testing.T) {
	l := value.List([]value.Value{num("5"), num("6"), num("6")})
	v, err := indexOf([]value.Value{l, num("6")})
	require.NoError(t, err)
	assert.Equal(t, "1", v.Number().String())
}

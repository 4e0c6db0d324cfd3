package intrinsics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartquery/smartquery/internal/value"
)

func TestRoundDefaultsToZeroPlacesBankersRounding(t *testing.T) {
	v, err := round([]value.Value{num("2.5")})
	require.NoError(t, err)
	assert.Equal(t, "2", v.Number().String())
}

func TestRoundWithPlaces(t *testing.T) {
	v, err := round([]value.Value{num("3.14159"), num("2")})
	require.NoError(t, err)
	assert.Equal(t, "3.14", v.Number().String())
}

func TestFloorCeilAbs(t *testing.T) {
	f, err := floorFn([]value.Value{num("1.9")})
	require.NoError(t, err)
	assert.Equal(t, "1", f.Number().String())

	c, err := ceilFn([]value.Value{num("1.1")})
	require.NoError(t, err)
	assert.Equal(t, "2", c.Number().String())

	a, err := absFn([]value.Value{num("-5")})
	require.NoError(t, err)
	assert.Equal(t, "5", a.Number().String())
}

func TestMinMaxOverScalarArgs(t *testing.T) {
	mn, err := minFn([]value.Value{num("3"), num("1"), num("2")})
	require.NoError(t, err)
	assert.Equal(t, "1", mn.Number().String())

	mx, err := maxFn([]value.Value{num("3"), num("1"), num("2")})
	require.NoError(t, err)
	assert.Equal(t, "3", mx.Number().String())
}

func TestMinMaxOverSingleIterableArg(t *testing.T) {
	l := value.List([]value.Value{num("3"), num("1"), num("2")})
	mn, err := minFn([]value.Value{l})
	require.NoError(t, err)
	assert.Equal(t, "1", mn.Number().String())
}

func TestRandZeroArgsReturnsUnitInterval(t *testing.T) {
	v, err := randFn(nil)
	require.NoError(t, err)
	f, _ := v.Number().Float64()
	assert.True(t, f >= 0 && f < 1)
}

func TestRandOneListArgChoosesElement(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2"), num("3")})
	v, err := randFn([]value.Value{l})
	require.NoError(t, err)
	assert.Contains(t, []string{"1", "2", "3"}, v.Number().String())
}

func TestRandTwoArgsInclusiveRange(t *testing.T) {
	v, err := randFn([]value.Value{num("5"), num("5")})
	require.NoError(t, err)
	assert.Equal(t, "5", v.Number().String())
}

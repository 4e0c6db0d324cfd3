package intrinsics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartquery/smartquery/internal/value"
)

func TestPrettyGroupsPositiveAndNegativeNumbers(t *testing.T) {
	v, err := pretty([]value.Value{num("12345")})
	require.NoError(t, err)
	assert.Equal(t, "12 345", v.Str())

	v2, err := pretty([]value.Value{num("-123456789")})
	require.NoError(t, err)
	assert.Equal(t, "-123 456 789", v2.Str())
}

func TestPrettyLeavesShortNumbersUnchanged(t *testing.T) {
	v, err := pretty([]value.Value{num("123")})
	require.NoError(t, err)
	assert.Equal(t, "123", v.Str())
}

func TestPrettyListJoinsWithDefaultSeparator(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2")})
	v, err := pretty([]value.Value{l})
	require.NoError(t, err)
	assert.Equal(t, "1, 2", v.Str())
}

func TestPrettyDictJoinsKeyValueLines(t *testing.T) {
	m := value.NewMap()
	m.Set("a", num("1"))
	m.Set("b", value.String("x"))
	v, err := pretty([]value.Value{value.MapVal(m)})
	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb: x", v.Str())
}

func TestPrettyCustomSeparator(t *testing.T) {
	l := value.List([]value.Value{num("1"), num("2")})
	v, err := pretty([]value.Value{l, value.String(" | ")})
	require.NoError(t, err)
	assert.Equal(t, "1 | 2", v.Str())
}

func TestGroupDigitsChunksWholeStringIncludingDecimalPoint(t *testing.T) {
	// Grouped from the right in blocks of three over the *entire* string,
	// decimal point included, not just the integer part.
	assert.Equal(t, "123 4.5 678", groupDigits("1234.5678", " "))
}

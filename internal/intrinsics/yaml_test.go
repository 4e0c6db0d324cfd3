package intrinsics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartquery/smartquery/internal/value"
)

func TestFromYAMLParsesMapAndList(t *testing.T) {
	v, err := fromYAML([]value.Value{value.String("a: 1\nb:\n  - x\n  - y\n")})
	require.NoError(t, err)
	require.Equal(t, value.KindMap, v.Kind)
	a, ok := v.Map().Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", a.Number().String())
	b, ok := v.Map().Get("b")
	require.True(t, ok)
	items := b.List()
	require.Len(t, items, 2)
	assert.Equal(t, "x", items[0].Str())
}

func TestToYAMLRoundTripsThroughFromYAML(t *testing.T) {
	m := value.NewMap()
	m.Set("name", value.String("sq"))
	m.Set("count", num("3"))

	encoded, err := toYAML([]value.Value{value.MapVal(m)})
	require.NoError(t, err)
	require.Equal(t, value.KindString, encoded.Kind)

	decoded, err := fromYAML([]value.Value{encoded})
	require.NoError(t, err)
	name, ok := decoded.Map().Get("name")
	require.True(t, ok)
	assert.Equal(t, "sq", name.Str())
}

package smartquery_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartquery/smartquery/pkg/cache"
	"github.com/smartquery/smartquery/pkg/smartquery"
)

func decimalOf(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEvaluateAgainstHostNames(t *testing.T) {
	p := smartquery.New()
	v, err := p.Evaluate("x + y", map[string]smartquery.Value{
		"x": smartquery.Number(decimalOf("2")),
		"y": smartquery.Number(decimalOf("3")),
	}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "5", v.Number().String())
}

func TestListNamesReturnsFreeNamesInFirstSeenOrder(t *testing.T) {
	p := smartquery.New()
	names, err := p.ListNames("a + b * a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestHostNamesShadowIntrinsicsOfTheSameSpelling(t *testing.T) {
	p := smartquery.New()
	v, err := p.Evaluate("len(1)", map[string]smartquery.Value{
		"len": smartquery.Func(func(args []smartquery.Value) (smartquery.Value, error) {
			return smartquery.String("shadowed"), nil
		}),
	}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "shadowed", v.Str())
}

func TestAstNamesAreEvaluatedAndBoundBeforeTheProgram(t *testing.T) {
	p := smartquery.New()
	doubled, err := p.Parse("x * 2")
	require.NoError(t, err)

	v, err := p.Evaluate("doubled + 1", map[string]smartquery.Value{
		"x": smartquery.Number(decimalOf("10")),
	}, map[string]smartquery.Node{"doubled": doubled}, 0)
	require.NoError(t, err)
	assert.Equal(t, "21", v.Number().String())
}

func TestEvaluateRespectsOpLimit(t *testing.T) {
	p := smartquery.New()
	_, err := p.Evaluate("1 + 1 + 1 + 1 + 1 + 1 + 1 + 1 + 1 + 1", nil, nil, 2)
	require.Error(t, err)
}

func TestParserWithMemoryCacheReturnsEquivalentAST(t *testing.T) {
	c := cache.NewMemory()
	p := smartquery.NewWithCache(c)
	source := "1 + 2"

	first, err := p.Parse(source)
	require.NoError(t, err)
	_, hit := c.Get(source)
	require.True(t, hit)

	second, err := p.Parse(source)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}


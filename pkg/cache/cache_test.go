package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartquery/smartquery/internal/parser"
	"github.com/smartquery/smartquery/pkg/cache"
)

func TestMemoryMissThenHit(t *testing.T) {
	c := cache.NewMemory()

	_, hit := c.Get("1 + 2")
	assert.False(t, hit)

	n, err := parser.Parse("1 + 2", c)
	require.NoError(t, err)

	cached, hit := c.Get("1 + 2")
	require.True(t, hit)
	assert.Equal(t, n, cached)
}

func TestMemoryOverwritesOnSecondPut(t *testing.T) {
	c := cache.NewMemory()
	n1, err := parser.Parse("1", c)
	require.NoError(t, err)
	n2, err := parser.Parse("1", nil)
	require.NoError(t, err)
	c.Put("1", n2)

	got, hit := c.Get("1")
	require.True(t, hit)
	assert.NotSame(t, n1, n2)
	assert.Equal(t, n2, got)
}

func TestSQLitePersistsASTAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parse_cache.db")

	c1, err := cache.OpenSQLite(path)
	require.NoError(t, err)

	_, err = parser.Parse("1 + 2 * 3", c1)
	require.NoError(t, err)
	require.NoError(t, c1.Close())

	c2, err := cache.OpenSQLite(path)
	require.NoError(t, err)
	defer c2.Close()

	n, hit := c2.Get("1 + 2 * 3")
	require.True(t, hit)
	assert.NotNil(t, n)
}

func TestSQLiteMissReturnsFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parse_cache.db")
	c, err := cache.OpenSQLite(path)
	require.NoError(t, err)
	defer c.Close()

	_, hit := c.Get("never parsed")
	assert.False(t, hit)
}


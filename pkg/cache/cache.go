// Package cache provides ready-made implementations of
// internal/parser.Cache (re-exported by pkg/smartquery as Cache): an
// in-memory map for a single process's lifetime, and a sqlite-backed
// store that survives restarts (SPEC_FULL.md's pluggable-cache domain
// wiring for spec.md §4.2's "may memoize in a user-supplied cache").
package cache

import (
	"sync"

	"github.com/smartquery/smartquery/internal/ast"
)

// Memory is a process-lifetime, concurrency-safe map[source]AST cache.
type Memory struct {
	mu sync.RWMutex
	m  map[string]ast.Node
}

// NewMemory constructs an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]ast.Node)}
}

func (c *Memory) Get(source string) (ast.Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.m[source]
	return n, ok
}

func (c *Memory) Put(source string, n ast.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[source] = n
}

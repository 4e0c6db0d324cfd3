// Package vmstate carries the per-evaluation mutable state threaded
// through every node visit: the scoped name table and the op-count
// sandbox budget (§3.5, §5).
package vmstate

import (
	"github.com/google/uuid"

	"github.com/smartquery/smartquery/internal/config"
	"github.com/smartquery/smartquery/internal/scope"
	"github.com/smartquery/smartquery/internal/sqerr"
)

// State is one evaluation's VM state. It is never shared between
// concurrent evaluations — a host wanting concurrency constructs one per
// evaluation (§5).
type State struct {
	Names        *scope.Scope
	OpsEvaluated int
	MaxOps       int

	// EvalID correlates diagnostics for a single evaluation across host
	// logs; an ambient-stack addition beyond the Python original's
	// VMState, which carries no id.
	EvalID uuid.UUID
}

// New constructs a State with the given scope and op budget. maxOps <= 0
// falls back to config.DefaultMaxOps.
func New(names *scope.Scope, maxOps int) *State {
	if maxOps <= 0 {
		maxOps = config.DefaultMaxOps
	}
	return &State{Names: names, MaxOps: maxOps, EvalID: uuid.New()}
}

// Tick increments the op counter and fails once it would reach MaxOps.
// Every node's Eval must call this before doing any work (§3.5 invariant
// (a), §5) so that no node can skip the accounting.
func (s *State) Tick() error {
	s.OpsEvaluated++
	if s.OpsEvaluated >= s.MaxOps {
		return sqerr.OpLimitExceeded(s.MaxOps)
	}
	return nil
}

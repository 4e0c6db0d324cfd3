// Package config carries the tunable constants SmartQuery's evaluator and
// intrinsics are sandboxed by, named here instead of scattered through the
// evaluator as magic numbers.
package config

import "time"

const (
	// DefaultMaxOps is the default op-count budget (§5) a VMState is
	// constructed with when the host does not override it.
	DefaultMaxOps = 100

	// MaxArraySize is the container-growth cap enforced by __setitem__,
	// __setitem_with_op__, push, and insert (§4.5, §5).
	MaxArraySize = 10000

	// RegexTimeout bounds match/match_groups/match_all (§5, §6.3).
	RegexTimeout = 50 * time.Millisecond

	// PrettyGroupSeparator is the default digit-grouping separator for
	// the pretty intrinsic's decimal formatting (§6.4).
	PrettyGroupSeparator = " "
)

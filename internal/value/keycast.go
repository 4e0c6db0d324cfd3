package value

import "github.com/smartquery/smartquery/internal/sqerr"

// DictKeyCast implements the mapping-key rule (§3.2): any value used as a
// mapping key is coerced to its string display form. This is invariant —
// {1: "a"}["1"] succeeds, and {1: "a"}[1] also succeeds because the lookup
// key undergoes the same coercion.
func DictKeyCast(v Value) string {
	return ToDisplayString(v)
}

// ListIndexCast implements the list-index rule (§3.3): a decimal index is
// truncated toward zero. Negative indices are returned as-is; the caller
// resolves end-relative semantics.
func ListIndexCast(v Value) (int, error) {
	if v.Kind != KindNumber {
		return 0, sqerr.Runtimef("list index must be a number, got %s", v.TypeName())
	}
	return int(v.n.IntPart()), nil
}

// OptionalInt converts a slice-field value (possibly null) to *int per the
// list-index rule, for use by Slice's Start/Stop/Step (§3.4, §4.3).
func OptionalInt(v Value) (*int, error) {
	if v.IsNull() {
		return nil, nil
	}
	i, err := ListIndexCast(v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

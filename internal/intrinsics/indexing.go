package intrinsics

import (
	"github.com/smartquery/smartquery/internal/ops"
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

// getItem mirrors functions.py::_get_item: single-key lookup on a map
// (string-cast key) or list (decimal-truncated, Python-style negative
// index), or a Slice key producing a sub-list/substring (§3.2, §3.3).
func getItem(args []value.Value) (value.Value, error) {
	if err := arity("__getitem__", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	container, key := args[0], args[1]

	if key.Kind == value.KindSlice {
		switch container.Kind {
		case value.KindList:
			out, err := value.SliceList(container.List(), key.SliceDescriptor())
			if err != nil {
				return value.Value{}, err
			}
			return value.List(out), nil
		case value.KindString:
			out, err := value.SliceString(container.Str(), key.SliceDescriptor())
			if err != nil {
				return value.Value{}, err
			}
			return value.String(out), nil
		}
		return value.Value{}, sqerr.Runtimef("%s object is not sliceable", container.TypeName())
	}

	switch container.Kind {
	case value.KindMap:
		v, ok := container.Map().Get(value.DictKeyCast(key))
		if !ok {
			return value.Value{}, sqerr.KeyErrorf("key %q", value.DictKeyCast(key))
		}
		return v, nil
	case value.KindList:
		idx, err := resolveListIndex(container.List(), key)
		if err != nil {
			return value.Value{}, err
		}
		return container.List()[idx], nil
	case value.KindString:
		idx, err := value.ListIndexCast(key)
		if err != nil {
			return value.Value{}, err
		}
		runes := []rune(container.Str())
		if idx < 0 {
			idx += len(runes)
		}
		if idx < 0 || idx >= len(runes) {
			return value.Value{}, sqerr.KeyErrorf("string index out of range")
		}
		return value.String(string(runes[idx])), nil
	}
	return value.Value{}, sqerr.Runtimef("%s object is not subscriptable", container.TypeName())
}

// resolveListIndex truncates key per §3.3, resolves Python-style negative
// indexing, and bounds-checks the result.
func resolveListIndex(items []value.Value, key value.Value) (int, error) {
	idx, err := value.ListIndexCast(key)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx += len(items)
	}
	if idx < 0 || idx >= len(items) {
		return 0, sqerr.KeyErrorf("list index out of range")
	}
	return idx, nil
}

// delItem mirrors functions.py::_del: deletes a map key if present,
// silently no-ops on a missing list index (matching the original's
// "if len(container) > key: del" bounds guard rather than raising).
func delItem(args []value.Value) (value.Value, error) {
	if err := arity("__delitem__", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	container, key := args[0], args[1]

	switch container.Kind {
	case value.KindMap:
		container.Map().Delete(value.DictKeyCast(key))
		return value.Null(), nil
	case value.KindList:
		idx, err := value.ListIndexCast(key)
		if err != nil {
			return value.Value{}, err
		}
		items := container.List()
		if idx < 0 {
			idx += len(items)
		}
		// Silent no-op out of range, mirroring functions.py::_del's
		// "if len(container) > key" bounds guard rather than raising.
		if idx >= 0 && idx < len(items) {
			container.ListRemoveAt(idx)
		}
		return value.Null(), nil
	}
	return value.Value{}, sqerr.Runtimef("%s object doesn't support item deletion", container.TypeName())
}

// setItem mirrors functions.py::_set: checks the container-size cap
// unconditionally (matching the original's unconditional call, so it
// also rejects overwriting an existing map key or list element once the
// container is at the cap; only a new map key grows anything), casts the
// key, deep-copies the stored value, and returns the value that was
// stored (§4.5 "set").
func setItem(args []value.Value) (value.Value, error) {
	if err := arity("__setitem__", args, 3, 3); err != nil {
		return value.Value{}, err
	}
	container, key, v := args[0], args[1], args[2]
	stored := value.DeepCopy(v)

	switch container.Kind {
	case value.KindMap:
		if err := checkArraySize(container.Map().Len()); err != nil {
			return value.Value{}, err
		}
		container.Map().Set(value.DictKeyCast(key), stored)
		return v, nil
	case value.KindList:
		if err := checkArraySize(len(container.List())); err != nil {
			return value.Value{}, err
		}
		idx, err := resolveListIndex(container.List(), key)
		if err != nil {
			return value.Value{}, err
		}
		container.ListSet(idx, stored)
		return v, nil
	}
	return value.Value{}, sqerr.Runtimef("%s object does not support item assignment", container.TypeName())
}

// setItemWithOp mirrors functions.py::_set_with_op: read-modify-write via
// the same operator semantics as ShortOp, returning the RHS value — not
// the updated entry, preserving the asymmetry with top-level ShortOp
// (which returns null) per spec.md's open question.
func setItemWithOp(args []value.Value) (value.Value, error) {
	if err := arity("__setitem_with_op__", args, 4, 4); err != nil {
		return value.Value{}, err
	}
	container, key, opVal, rhs := args[0], args[1], args[2], args[3]
	if opVal.Kind != value.KindString {
		return value.Value{}, sqerr.Runtimef("__setitem_with_op__ op must be a string")
	}
	rhs = value.DeepCopy(rhs)

	current, err := getItem([]value.Value{container, key})
	if err != nil {
		return value.Value{}, err
	}
	updated, err := ops.ApplyShortOp(opVal.Str(), current, rhs)
	if err != nil {
		return value.Value{}, err
	}
	if _, err := setItem([]value.Value{container, key, updated}); err != nil {
		return value.Value{}, err
	}
	return rhs, nil
}

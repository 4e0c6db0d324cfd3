package intrinsics

import (
	"github.com/shopspring/decimal"

	"github.com/smartquery/smartquery/internal/numeric"
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

func mapKeys(args []value.Value) (value.Value, error) {
	if err := arity("keys", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	if args[0].Kind != value.KindMap {
		return value.Value{}, sqerr.Runtimef("keys() argument must be a map, got %s", args[0].TypeName())
	}
	ks := args[0].Map().Keys()
	out := make([]value.Value, len(ks))
	for i, k := range ks {
		out[i] = value.String(k)
	}
	return value.List(out), nil
}

func mapValues(args []value.Value) (value.Value, error) {
	if err := arity("values", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	if args[0].Kind != value.KindMap {
		return value.Value{}, sqerr.Runtimef("values() argument must be a map, got %s", args[0].TypeName())
	}
	var out []value.Value
	args[0].Map().Each(func(_ string, v value.Value) {
		out = append(out, v)
	})
	return value.List(out), nil
}

func mapItems(args []value.Value) (value.Value, error) {
	if err := arity("items", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	if args[0].Kind != value.KindMap {
		return value.Value{}, sqerr.Runtimef("items() argument must be a map, got %s", args[0].TypeName())
	}
	var out []value.Value
	args[0].Map().Each(func(k string, v value.Value) {
		out = append(out, value.List([]value.Value{value.String(k), v}))
	})
	return value.List(out), nil
}

// mapGet mirrors functions.py::_get: a three-argument getter with a
// default, casting its key the same way indexing does (§4.5 "get").
func mapGet(args []value.Value) (value.Value, error) {
	if err := arity("get", args, 2, 3); err != nil {
		return value.Value{}, err
	}
	container := args[0]
	key := args[1]
	def := value.Null()
	if len(args) == 3 {
		def = args[2]
	}

	switch container.Kind {
	case value.KindMap:
		v, ok := container.Map().Get(value.DictKeyCast(key))
		if !ok {
			return def, nil
		}
		return v, nil
	case value.KindList:
		idx, err := value.ListIndexCast(key)
		if err != nil {
			return value.Value{}, err
		}
		items := container.List()
		if idx < 0 {
			idx += len(items)
		}
		if idx < 0 || idx >= len(items) {
			return def, nil
		}
		return items[idx], nil
	}
	return value.Value{}, sqerr.Runtimef("get() argument must be a map or list, got %s", container.TypeName())
}

// sumValues mirrors functions.py::_sum, which special-cases lists (via
// Python's builtin sum(), numeric-only) — anything else passes through
// unchanged.
func sumValues(args []value.Value) (value.Value, error) {
	if err := arity("sum", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	if args[0].Kind != value.KindList {
		return args[0], nil
	}
	total := decimal.Zero
	for i, v := range args[0].List() {
		if v.Kind != value.KindNumber {
			return value.Value{}, sqerr.Runtimef("sum() can't sum non-numbers (element %d is %s)", i, v.TypeName())
		}
		total = numeric.Add(total, v.Number())
	}
	return value.Number(total), nil
}

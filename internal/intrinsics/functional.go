package intrinsics

import (
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

// mapFn mirrors functions.py::_map: a list or string maps element-wise,
// while a dict calls f(k, v) per entry — the callable's arity differs by
// container shape rather than being fixed (§4.5 "map").
func mapFn(args []value.Value) (value.Value, error) {
	if err := arity("map", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	container := args[0]
	f, err := callableArg(args, 1, "map")
	if err != nil {
		return value.Value{}, err
	}

	switch container.Kind {
	case value.KindList:
		items := container.List()
		out := make([]value.Value, len(items))
		for i, v := range items {
			r, err := f([]value.Value{v})
			if err != nil {
				return value.Value{}, err
			}
			out[i] = r
		}
		return value.List(out), nil
	case value.KindString:
		runes := []rune(container.Str())
		out := make([]value.Value, len(runes))
		for i, r := range runes {
			v, err := f([]value.Value{value.String(string(r))})
			if err != nil {
				return value.Value{}, err
			}
			out[i] = v
		}
		return value.List(out), nil
	case value.KindMap:
		var out []value.Value
		var mapErr error
		container.Map().Each(func(k string, v value.Value) {
			if mapErr != nil {
				return
			}
			r, err := f([]value.Value{value.String(k), v})
			if err != nil {
				mapErr = err
				return
			}
			out = append(out, r)
		})
		if mapErr != nil {
			return value.Value{}, mapErr
		}
		return value.List(out), nil
	}
	return value.Value{}, sqerr.Runtimef("map() first argument must be a string, list or dict, got %s", container.TypeName())
}

// filterFn mirrors functions.py::_filter: list-only, keeping elements for
// which f returns a truthy value.
func filterFn(args []value.Value) (value.Value, error) {
	if err := arity("filter", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	items, err := listArg(args, 0, "filter")
	if err != nil {
		return value.Value{}, err
	}
	f, err := callableArg(args, 1, "filter")
	if err != nil {
		return value.Value{}, err
	}

	var out []value.Value
	for _, v := range items {
		keep, err := f([]value.Value{v})
		if err != nil {
			return value.Value{}, err
		}
		if value.Truthy(keep) {
			out = append(out, v)
		}
	}
	return value.List(out), nil
}

// reduceFn mirrors functions.py::_reduce (functools.reduce with no
// initial value): the first element seeds the accumulator, f(acc, v)
// folds the rest. Works over lists, strings (rune-by-rune), and maps
// (entry-by-entry as [key, value] pairs), matching Python's
// functools.reduce accepting any Iterable.
func reduceFn(args []value.Value) (value.Value, error) {
	if err := arity("reduce", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	f, err := callableArg(args, 1, "reduce")
	if err != nil {
		return value.Value{}, err
	}

	items, err := toIterable(args[0])
	if err != nil {
		return value.Value{}, err
	}
	if len(items) == 0 {
		return value.Value{}, sqerr.Runtimef("reduce() of empty iterable with no initial value")
	}

	acc := items[0]
	for _, v := range items[1:] {
		acc, err = f([]value.Value{acc, v})
		if err != nil {
			return value.Value{}, err
		}
	}
	return acc, nil
}

// toIterable normalizes a container to a slice of element Values for the
// functions that need to walk it generically (reduce, enumerate, and
// single-argument min/max).
func toIterable(v value.Value) ([]value.Value, error) {
	switch v.Kind {
	case value.KindList:
		out := make([]value.Value, len(v.List()))
		copy(out, v.List())
		return out, nil
	case value.KindString:
		runes := []rune(v.Str())
		out := make([]value.Value, len(runes))
		for i, r := range runes {
			out[i] = value.String(string(r))
		}
		return out, nil
	case value.KindMap:
		var out []value.Value
		v.Map().Each(func(k string, val value.Value) {
			out = append(out, value.List([]value.Value{value.String(k), val}))
		})
		return out, nil
	}
	return nil, sqerr.Runtimef("%s object is not iterable", v.TypeName())
}

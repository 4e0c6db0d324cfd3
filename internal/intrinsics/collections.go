package intrinsics

import (
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

// push mirrors functions.py::_push: appends in place, checking the
// container-size cap first, and returns null (list.append returns None).
func push(args []value.Value) (value.Value, error) {
	if err := arity("push", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	items, err := listArg(args, 0, "push")
	if err != nil {
		return value.Value{}, err
	}
	if err := checkArraySize(len(items)); err != nil {
		return value.Value{}, err
	}
	args[0].ListAppend(args[1])
	return value.Null(), nil
}

// pop mirrors functions.py::_pop: pops the last element, or the element
// at index i if given (supporting Python-style negative indices),
// erroring if the list is empty or the index is out of range.
func pop(args []value.Value) (value.Value, error) {
	if err := arity("pop", args, 1, 2); err != nil {
		return value.Value{}, err
	}
	items, err := listArg(args, 0, "pop")
	if err != nil {
		return value.Value{}, err
	}
	idx := len(items) - 1
	if len(args) == 2 && !args[1].IsNull() {
		idx, err = value.ListIndexCast(args[1])
		if err != nil {
			return value.Value{}, err
		}
		if idx < 0 {
			idx += len(items)
		}
	}
	if idx < 0 || idx >= len(items) {
		return value.Value{}, sqerr.KeyErrorf("pop index out of range")
	}
	v := items[idx]
	args[0].ListRemoveAt(idx)
	return v, nil
}

// insert mirrors functions.py::_insert: checks the size cap, then inserts
// v at index i (clamped to the list's bounds, matching Python's
// list.insert).
func insert(args []value.Value) (value.Value, error) {
	if err := arity("insert", args, 3, 3); err != nil {
		return value.Value{}, err
	}
	items, err := listArg(args, 0, "insert")
	if err != nil {
		return value.Value{}, err
	}
	if err := checkArraySize(len(items)); err != nil {
		return value.Value{}, err
	}
	idx, err := value.ListIndexCast(args[1])
	if err != nil {
		return value.Value{}, err
	}
	if idx < 0 {
		idx += len(items)
	}
	args[0].ListInsert(idx, args[2])
	return value.Null(), nil
}

// remove mirrors functions.py::_remove's dual semantics: a list silently
// no-ops if the value isn't present (matching "container.remove(v) if v
// in container else None"); a map deletes by key if present (§9 Open
// Question, resolved by following the original unchanged).
func remove(args []value.Value) (value.Value, error) {
	if err := arity("remove", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	container, v := args[0], args[1]
	switch container.Kind {
	case value.KindList:
		items := container.List()
		for i, e := range items {
			if value.Equal(e, v) {
				container.ListRemoveAt(i)
				break
			}
		}
		return value.Null(), nil
	case value.KindMap:
		key := value.DictKeyCast(v)
		if _, ok := container.Map().Get(key); ok {
			container.Map().Delete(key)
		}
		return value.Null(), nil
	}
	return value.Value{}, sqerr.Runtimef("remove() argument must be a list or map, got %s", container.TypeName())
}

// sortedFn mirrors functions.py::_sorted: a dict sorts its (key, value)
// pairs back into a dict (by an optional (k, v) => ... key callable, or
// by key-then-value if key is omitted); a list sorts its elements (by an
// optional single-arg key callable).
func sortedFn(args []value.Value) (value.Value, error) {
	if err := arity("sorted", args, 1, 3); err != nil {
		return value.Value{}, err
	}
	var keyFn value.Callable
	if len(args) > 1 && !args[1].IsNull() {
		var err error
		keyFn, err = callableArg(args, 1, "sorted")
		if err != nil {
			return value.Value{}, err
		}
	}
	reverse := false
	if len(args) > 2 {
		reverse = value.Truthy(args[2])
	}

	switch args[0].Kind {
	case value.KindMap:
		type pair struct {
			k string
			v value.Value
		}
		var pairs []pair
		args[0].Map().Each(func(k string, v value.Value) {
			pairs = append(pairs, pair{k, v})
		})
		var sortErr error
		sort.SliceStable(pairs, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			less, err := pairLess(pairs[i].k, pairs[i].v, pairs[j].k, pairs[j].v, keyFn)
			if err != nil {
				sortErr = err
				return false
			}
			return less
		})
		if sortErr != nil {
			return value.Value{}, sortErr
		}
		if reverse {
			for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
				pairs[i], pairs[j] = pairs[j], pairs[i]
			}
		}
		out := value.NewMap()
		for _, p := range pairs {
			out.Set(p.k, p.v)
		}
		return value.MapVal(out), nil

	case value.KindList:
		items := append([]value.Value(nil), args[0].List()...)
		var sortErr error
		sort.SliceStable(items, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			less, err := elemLess(items[i], items[j], keyFn)
			if err != nil {
				sortErr = err
				return false
			}
			return less
		})
		if sortErr != nil {
			return value.Value{}, sortErr
		}
		if reverse {
			for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
				items[i], items[j] = items[j], items[i]
			}
		}
		return value.List(items), nil
	}
	return value.Value{}, sqerr.Runtimef("sorted() argument must be a list or map, got %s", args[0].TypeName())
}

func elemLess(a, b value.Value, keyFn value.Callable) (bool, error) {
	if keyFn != nil {
		ka, err := keyFn([]value.Value{a})
		if err != nil {
			return false, err
		}
		kb, err := keyFn([]value.Value{b})
		if err != nil {
			return false, err
		}
		a, b = ka, kb
	}
	cmp, err := value.Compare(a, b)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

func pairLess(ak string, av value.Value, bk string, bv value.Value, keyFn value.Callable) (bool, error) {
	if keyFn != nil {
		ka, err := keyFn([]value.Value{value.String(ak), av})
		if err != nil {
			return false, err
		}
		kb, err := keyFn([]value.Value{value.String(bk), bv})
		if err != nil {
			return false, err
		}
		cmp, err := value.Compare(ka, kb)
		if err != nil {
			return false, err
		}
		return cmp < 0, nil
	}
	return ak < bk, nil
}

// reversedFn mirrors functions.py::_reversed: a string reverses by rune,
// a list reverses by element.
func reversedFn(args []value.Value) (value.Value, error) {
	if err := arity("reversed", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	switch args[0].Kind {
	case value.KindString:
		runes := []rune(args[0].Str())
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return value.String(string(runes)), nil
	case value.KindList:
		items := args[0].List()
		out := make([]value.Value, len(items))
		for i, v := range items {
			out[len(items)-1-i] = v
		}
		return value.List(out), nil
	}
	return value.Value{}, sqerr.Runtimef("reversed() argument must be a string or list, got %s", args[0].TypeName())
}

// enumerateFn mirrors functions.py::_enumerate: list(enumerate(x)), one
// [index, element] pair per element of a list or string.
func enumerateFn(args []value.Value) (value.Value, error) {
	if err := arity("enumerate", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	items, err := toIterable(args[0])
	if err != nil {
		return value.Value{}, err
	}
	out := make([]value.Value, len(items))
	for i, v := range items {
		out[i] = value.List([]value.Value{value.Number(decimal.NewFromInt(int64(i))), v})
	}
	return value.List(out), nil
}

// shuffleFn mirrors functions.py::_shuffle: shuffles a copy, leaving the
// original list untouched (copy.copy(container) before random.shuffle).
func shuffleFn(args []value.Value) (value.Value, error) {
	items, err := listArg(args, 0, "shuffle")
	if err != nil {
		return value.Value{}, err
	}
	out := append([]value.Value(nil), items...)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return value.List(out), nil
}

// indexOf mirrors functions.py::_index_of: the first matching index, or
// null if absent (list.index raising ValueError is caught and turned
// into None, not an error, in the original).
func indexOf(args []value.Value) (value.Value, error) {
	if err := arity("index_of", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	items, err := listArg(args, 0, "index_of")
	if err != nil {
		return value.Value{}, err
	}
	for i, v := range items {
		if value.Equal(v, args[1]) {
			return value.Number(decimal.NewFromInt(int64(i))), nil
		}
	}
	return value.Null(), nil
}

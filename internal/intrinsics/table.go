package intrinsics

import "github.com/smartquery/smartquery/internal/value"

// Table builds the base scope frame: one value.Func-wrapped Go function
// per entry in functions.py::FUNCTIONS, plus the from_yaml/to_yaml
// supplement. pkg/smartquery installs this as the bottommost frame so
// host-supplied names of the same spelling take priority over it (the
// scope chain is read top-down), per the host-override-priority rule.
func Table() map[string]value.Value {
	fns := map[string]value.Callable{
		"len":   length,
		"int":   toInt,
		"float": toFloat,
		"str":   toStr,
		"dict":  toDict,
		"list":  toList,

		"startswith": strStartswith,
		"endswith":   strEndswith,
		"lower":      strLower,
		"upper":      strUpper,
		"strip":      strStrip,
		"replace":    strReplace,
		"split":      strSplit,
		"join":       strJoin,

		"match":        reMatch,
		"match_groups": reMatchGroups,
		"match_all":    reMatchAll,

		"pretty": pretty,
		"keys":   mapKeys,
		"values": mapValues,
		"items":  mapItems,
		"sum":    sumValues,
		"get":    mapGet,

		"__getitem__":         getItem,
		"__delitem__":         delItem,
		"__setitem__":         setItem,
		"__setitem_with_op__": setItemWithOp,

		"map":    mapFn,
		"filter": filterFn,
		"reduce": reduceFn,

		"round": round,
		"floor": floorFn,
		"ceil":  ceilFn,
		"abs":   absFn,
		"min":   minFn,
		"max":   maxFn,
		"rand":  randFn,

		"push":      push,
		"pop":       pop,
		"insert":    insert,
		"remove":    remove,
		"sorted":    sortedFn,
		"reversed":  reversedFn,
		"enumerate": enumerateFn,
		"shuffle":   shuffleFn,
		"index_of":  indexOf,

		"from_yaml": fromYAML,
		"to_yaml":   toYAML,
	}

	out := make(map[string]value.Value, len(fns))
	for name, fn := range fns {
		out[name] = value.Func(fn)
	}
	return out
}

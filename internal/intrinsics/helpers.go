// Package intrinsics builds the base scope frame of built-in callables
// (§4.5): one Go function per entry in the Python original's FUNCTIONS
// table, operating on value.Value instead of native Python objects.
package intrinsics

import (
	"github.com/shopspring/decimal"

	"github.com/smartquery/smartquery/internal/config"
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

func arity(name string, args []value.Value, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		if min == max {
			return sqerr.Runtimef("%s() takes %d argument(s), got %d", name, min, len(args))
		}
		return sqerr.Runtimef("%s() takes between %d and %d argument(s), got %d", name, min, max, len(args))
	}
	return nil
}

func numArg(args []value.Value, i int, name string) (decimal.Decimal, error) {
	if args[i].Kind != value.KindNumber {
		return decimal.Decimal{}, sqerr.Runtimef("%s() argument %d must be a number, got %s", name, i+1, args[i].TypeName())
	}
	return args[i].Number(), nil
}

func strArg(args []value.Value, i int, name string) (string, error) {
	if args[i].Kind != value.KindString {
		return "", sqerr.Runtimef("%s() argument %d must be a string, got %s", name, i+1, args[i].TypeName())
	}
	return args[i].Str(), nil
}

func listArg(args []value.Value, i int, name string) ([]value.Value, error) {
	if args[i].Kind != value.KindList {
		return nil, sqerr.Runtimef("%s() argument %d must be a list, got %s", name, i+1, args[i].TypeName())
	}
	return args[i].List(), nil
}

func callableArg(args []value.Value, i int, name string) (value.Callable, error) {
	if args[i].Kind != value.KindCallable {
		return nil, sqerr.Runtimef("%s() argument %d must be callable, got %s", name, i+1, args[i].TypeName())
	}
	return args[i].Callable(), nil
}

func intArgDefault(args []value.Value, i int, def int) (int, error) {
	if i >= len(args) || args[i].IsNull() {
		return def, nil
	}
	if args[i].Kind != value.KindNumber {
		return 0, sqerr.Runtimef("argument %d must be a number", i+1)
	}
	return int(args[i].Number().IntPart()), nil
}

// checkArraySize mirrors functions.py::_check_array_size: mutation
// intrinsics reject growth once a container is already at the cap, so the
// container can briefly sit at exactly MaxArraySize but never cross it.
func checkArraySize(n int) error {
	if n >= config.MaxArraySize {
		return sqerr.ArrayOverflow(config.MaxArraySize)
	}
	return nil
}

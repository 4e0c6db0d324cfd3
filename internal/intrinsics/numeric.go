package intrinsics

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

// round mirrors the FUNCTIONS table's round lambda: Python's round()
// rounds to even (banker's rounding) at the given number of decimal
// places, defaulting to zero places.
func round(args []value.Value) (value.Value, error) {
	if err := arity("round", args, 1, 2); err != nil {
		return value.Value{}, err
	}
	n, err := numArg(args, 0, "round")
	if err != nil {
		return value.Value{}, err
	}
	places, err := intArgDefault(args, 1, 0)
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(n.RoundBank(int32(places))), nil
}

func floorFn(args []value.Value) (value.Value, error) {
	if err := arity("floor", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	n, err := numArg(args, 0, "floor")
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(n.Floor()), nil
}

func ceilFn(args []value.Value) (value.Value, error) {
	if err := arity("ceil", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	n, err := numArg(args, 0, "ceil")
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(n.Ceil()), nil
}

func absFn(args []value.Value) (value.Value, error) {
	if err := arity("abs", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	n, err := numArg(args, 0, "abs")
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(n.Abs()), nil
}

// minFn/maxFn mirror Python's builtin min/max: either a single iterable
// argument, or two-or-more scalar arguments to compare directly.
func minFn(args []value.Value) (value.Value, error) {
	return minMax(args, "min", -1)
}

func maxFn(args []value.Value) (value.Value, error) {
	return minMax(args, "max", 1)
}

func minMax(args []value.Value, name string, want int) (value.Value, error) {
	items := args
	if len(args) == 1 {
		iterable, err := toIterable(args[0])
		if err != nil {
			return value.Value{}, err
		}
		items = iterable
	}
	if len(items) == 0 {
		return value.Value{}, sqerr.Runtimef("%s() arg is an empty sequence", name)
	}
	best := items[0]
	for _, v := range items[1:] {
		cmp, err := value.Compare(v, best)
		if err != nil {
			return value.Value{}, err
		}
		if (want < 0 && cmp < 0) || (want > 0 && cmp > 0) {
			best = v
		}
	}
	return best, nil
}

// rand mirrors functions.py::_rand: zero args returns a uniform [0, 1)
// decimal, one list argument returns a random element, two numeric
// arguments return a random integer in [min, max] inclusive.
func randFn(args []value.Value) (value.Value, error) {
	switch {
	case len(args) == 0:
		return value.Number(decimal.NewFromFloat(rand.Float64())), nil
	case len(args) == 1:
		items, err := listArg(args, 0, "rand")
		if err != nil {
			return value.Value{}, err
		}
		if len(items) == 0 {
			return value.Value{}, sqerr.Runtimef("rand() can't choose from an empty list")
		}
		return items[rand.Intn(len(items))], nil
	case len(args) == 2:
		lo, err := numArg(args, 0, "rand")
		if err != nil {
			return value.Value{}, err
		}
		hi, err := numArg(args, 1, "rand")
		if err != nil {
			return value.Value{}, err
		}
		loI, hiI := lo.IntPart(), hi.IntPart()
		if hiI < loI {
			return value.Value{}, sqerr.Runtimef("rand() max must be >= min")
		}
		n := loI + rand.Int63n(hiI-loI+1)
		return value.Number(decimal.NewFromInt(n)), nil
	}
	return value.Value{}, sqerr.Runtimef("rand() takes 0, 1, or 2 arguments, got %d", len(args))
}

package intrinsics

import (
	"github.com/shopspring/decimal"

	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

// length reports len() for string, list, or map (§4.5 "len").
func length(args []value.Value) (value.Value, error) {
	if err := arity("len", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	n, err := sizeOf(args[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(decimal.NewFromInt(int64(n))), nil
}

func sizeOf(v value.Value) (int, error) {
	switch v.Kind {
	case value.KindString:
		return len([]rune(v.Str())), nil
	case value.KindList:
		return len(v.List()), nil
	case value.KindMap:
		return v.Map().Len(), nil
	}
	return 0, sqerr.Runtimef("object of type %q has no len()", v.TypeName())
}

// toInt implements the "int" intrinsic: truncates a number toward zero,
// or parses a numeric string (§4.5).
func toInt(args []value.Value) (value.Value, error) {
	if err := arity("int", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	switch args[0].Kind {
	case value.KindNumber:
		return value.Number(decimal.NewFromInt(args[0].Number().IntPart())), nil
	case value.KindString:
		d, err := decimal.NewFromString(args[0].Str())
		if err != nil {
			return value.Value{}, sqerr.Runtimef("invalid literal for int(): %q", args[0].Str())
		}
		return value.Number(decimal.NewFromInt(d.IntPart())), nil
	case value.KindBool:
		if args[0].Bool() {
			return value.Number(decimal.NewFromInt(1)), nil
		}
		return value.Number(decimal.Zero), nil
	}
	return value.Value{}, sqerr.Runtimef("int() argument must be a number or string, got %s", args[0].TypeName())
}

// toFloat implements "float" — same decimal representation as int(), just
// without truncation (§3.1: there is only one numeric kind).
func toFloat(args []value.Value) (value.Value, error) {
	if err := arity("float", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	switch args[0].Kind {
	case value.KindNumber:
		return args[0], nil
	case value.KindString:
		d, err := decimal.NewFromString(args[0].Str())
		if err != nil {
			return value.Value{}, sqerr.Runtimef("could not convert string to float: %q", args[0].Str())
		}
		return value.Number(d), nil
	}
	return value.Value{}, sqerr.Runtimef("float() argument must be a number or string, got %s", args[0].TypeName())
}

// toStr implements "str": the canonical display form (§3.1/format.go).
func toStr(args []value.Value) (value.Value, error) {
	if err := arity("str", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	return value.String(value.ToDisplayString(args[0])), nil
}

// toDict implements "dict": with no arguments, an empty map (the only
// construction the grammar reaches — dict literals parse directly to
// Dict nodes, not to a dict() call).
func toDict(args []value.Value) (value.Value, error) {
	if err := arity("dict", args, 0, 0); err != nil {
		return value.Value{}, err
	}
	return value.MapVal(value.NewMap()), nil
}

// toList implements "list": the desugared form of list literals, so it
// must accept any number of already-evaluated elements (§4.2 lowering).
func toList(args []value.Value) (value.Value, error) {
	items := make([]value.Value, len(args))
	copy(items, args)
	return value.List(items), nil
}

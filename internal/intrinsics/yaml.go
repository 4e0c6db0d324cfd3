package intrinsics

import (
	"gopkg.in/yaml.v3"

	"github.com/shopspring/decimal"

	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

// fromYAML and toYAML are supplemented intrinsics with no equivalent in
// the original function table: in-memory YAML transforms, exercising
// gopkg.in/yaml.v3 the way the host language's config layer does,
// without touching the filesystem or network (§SPEC_FULL domain stack).

func fromYAML(args []value.Value) (value.Value, error) {
	if err := arity("from_yaml", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "from_yaml")
	if err != nil {
		return value.Value{}, err
	}
	var raw any
	if err := yaml.Unmarshal([]byte(s), &raw); err != nil {
		return value.Value{}, sqerr.Runtimef("from_yaml: %s", err)
	}
	return goToValue(raw), nil
}

func toYAML(args []value.Value) (value.Value, error) {
	if err := arity("to_yaml", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	out, err := yaml.Marshal(valueToGo(args[0]))
	if err != nil {
		return value.Value{}, sqerr.Runtimef("to_yaml: %s", err)
	}
	return value.String(string(out)), nil
}

func goToValue(x any) value.Value {
	switch t := x.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(t)
	case string:
		return value.String(t)
	case int:
		return value.Number(decimal.NewFromInt(int64(t)))
	case int64:
		return value.Number(decimal.NewFromInt(t))
	case float64:
		return value.Number(decimal.NewFromFloat(t))
	case []any:
		out := make([]value.Value, len(t))
		for i, e := range t {
			out[i] = goToValue(e)
		}
		return value.List(out)
	case map[string]any:
		m := value.NewMap()
		for k, v := range t {
			m.Set(k, goToValue(v))
		}
		return value.MapVal(m)
	default:
		return value.String(value.ToDisplayString(value.Null()))
	}
}

func valueToGo(v value.Value) any {
	switch v.Kind {
	case value.KindNull:
		return nil
	case value.KindBool:
		return v.Bool()
	case value.KindNumber:
		f, _ := v.Number().Float64()
		return f
	case value.KindString:
		return v.Str()
	case value.KindList:
		items := v.List()
		out := make([]any, len(items))
		for i, e := range items {
			out[i] = valueToGo(e)
		}
		return out
	case value.KindMap:
		out := make(map[string]any)
		v.Map().Each(func(k string, val value.Value) {
			out[k] = valueToGo(val)
		})
		return out
	default:
		return value.ToDisplayString(v)
	}
}

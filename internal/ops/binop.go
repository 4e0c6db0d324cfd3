// Package ops holds the binary-operator dispatch shared between the
// evaluator's BinOp/ShortOp rules and the __setitem_with_op__ intrinsic,
// so both apply identical arithmetic semantics to already-evaluated
// operands without evaluator and intrinsics importing each other.
package ops

import (
	"github.com/smartquery/smartquery/internal/numeric"
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

// Apply applies a non-short-circuiting binary operator to two
// already-evaluated operands (§4.3 "BinOp"). "and"/"or" are not handled
// here since they short-circuit on the unevaluated right operand; callers
// needing that behavior decide from the left operand before evaluating
// the right one.
func Apply(op string, left, right value.Value) (value.Value, error) {
	switch op {
	case "+":
		return Add(left, right)
	case "-":
		if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
			return value.Value{}, sqerr.Runtimef("unsupported operand types for -: %s and %s", left.TypeName(), right.TypeName())
		}
		return value.Number(numeric.Sub(left.Number(), right.Number())), nil
	case "*":
		if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
			return value.Value{}, sqerr.Runtimef("can't multiply non-numbers")
		}
		return value.Number(numeric.Mul(left.Number(), right.Number())), nil
	case "**":
		if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
			return value.Value{}, sqerr.Runtimef("unsupported operand types for **: %s and %s", left.TypeName(), right.TypeName())
		}
		return value.Number(numeric.Pow(left.Number(), right.Number())), nil
	case "/":
		if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
			return value.Value{}, sqerr.Runtimef("unsupported operand types for /: %s and %s", left.TypeName(), right.TypeName())
		}
		d, err := numeric.Div(left.Number(), right.Number())
		if err != nil {
			return value.Value{}, sqerr.Runtimef("%s", err.Error())
		}
		return value.Number(d), nil

	case "==":
		return value.Bool(value.Equal(left, right)), nil
	case "!=":
		return value.Bool(!value.Equal(left, right)), nil
	case ">", "<", ">=", "<=":
		return Ordering(op, left, right)

	case "in":
		ok, err := value.Contains(left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(ok), nil
	case "not in":
		ok, err := value.Contains(left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(!ok), nil
	}

	return value.Value{}, sqerr.Runtimef("unsupported binary operation: %s", op)
}

// Add concatenates strings (stringifying a non-string right operand,
// §4.3) or adds two numbers.
func Add(left, right value.Value) (value.Value, error) {
	if left.Kind == value.KindString {
		r := right.Str()
		if right.Kind != value.KindString {
			r = value.ToDisplayString(right)
		}
		return value.String(left.Str() + r), nil
	}
	if left.Kind == value.KindNumber && right.Kind == value.KindNumber {
		return value.Number(numeric.Add(left.Number(), right.Number())), nil
	}
	return value.Value{}, sqerr.Runtimef("unsupported operand types for +: %s and %s", left.TypeName(), right.TypeName())
}

func Ordering(op string, left, right value.Value) (value.Value, error) {
	cmp, err := value.Compare(left, right)
	if err != nil {
		return value.Value{}, err
	}
	switch op {
	case ">":
		return value.Bool(cmp > 0), nil
	case "<":
		return value.Bool(cmp < 0), nil
	case ">=":
		return value.Bool(cmp >= 0), nil
	case "<=":
		return value.Bool(cmp <= 0), nil
	}
	return value.Value{}, sqerr.Runtimef("unsupported relational operator: %s", op)
}

// ApplyShortOp applies a compound-assignment operator (+= -= *= /=) to an
// already-read current value and a deep-copied RHS (§4.3 "ShortOp",
// functions.py::_set_with_op).
func ApplyShortOp(op string, current, rhs value.Value) (value.Value, error) {
	switch op {
	case "+=":
		return Add(current, rhs)
	case "-=":
		return Apply("-", current, rhs)
	case "*=":
		return Apply("*", current, rhs)
	case "/=":
		return Apply("/", current, rhs)
	}
	return value.Value{}, sqerr.Runtimef("unsupported short op: %s", op)
}

package evaluator

import (
	"github.com/smartquery/smartquery/internal/ast"
	"github.com/smartquery/smartquery/internal/ops"
	"github.com/smartquery/smartquery/internal/value"
	"github.com/smartquery/smartquery/internal/vmstate"
)

// evalBinOp evaluates a binary operation (§4.3 "BinOp"). and/or
// short-circuit: the right operand is only evaluated when needed, so
// "False and 1/0" never divides.
func evalBinOp(n *ast.BinOpNode, st *vmstate.State) (value.Value, error) {
	left, err := Eval(n.L, st)
	if err != nil {
		return value.Value{}, err
	}

	switch n.Op {
	case "and":
		if !value.Truthy(left) {
			return left, nil
		}
		return Eval(n.R, st)
	case "or":
		if value.Truthy(left) {
			return left, nil
		}
		return Eval(n.R, st)
	}

	right, err := Eval(n.R, st)
	if err != nil {
		return value.Value{}, err
	}

	return ops.Apply(n.Op, left, right)
}

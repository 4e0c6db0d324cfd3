package evaluator

import (
	"github.com/smartquery/smartquery/internal/ast"
	"github.com/smartquery/smartquery/internal/numeric"
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
	"github.com/smartquery/smartquery/internal/vmstate"
)

func evalUnaryOp(n *ast.UnaryOpNode, st *vmstate.State) (value.Value, error) {
	x, err := Eval(n.X, st)
	if err != nil {
		return value.Value{}, err
	}

	switch n.Op {
	case "-":
		if x.Kind != value.KindNumber {
			return value.Value{}, sqerr.Runtimef("bad operand type for unary -: %s", x.TypeName())
		}
		return value.Number(numeric.Neg(x.Number())), nil
	case "not":
		return value.Bool(!value.Truthy(x)), nil
	}

	return value.Value{}, sqerr.Runtimef("unsupported unary operation: %s", n.Op)
}

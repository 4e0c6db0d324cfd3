package evaluator

import (
	"github.com/smartquery/smartquery/internal/ast"
	"github.com/smartquery/smartquery/internal/ops"
	"github.com/smartquery/smartquery/internal/value"
	"github.com/smartquery/smartquery/internal/vmstate"
)

// evalShortOp reads the current binding (via scoped lookup, any frame),
// deep-copies the RHS, applies the compound update, and writes the result
// to the topmost scope frame — even if the name was only previously bound
// in an outer frame, mirroring ScopedDict.__setitem__ always writing the
// top of the stack (§4.3 "ShortOp"). It returns null; the asymmetric
// return-the-RHS behavior belongs only to __setitem_with_op__.
func evalShortOp(n *ast.ShortOpNode, st *vmstate.State) (value.Value, error) {
	rhs, err := Eval(n.Expr, st)
	if err != nil {
		return value.Value{}, err
	}
	rhs = value.DeepCopy(rhs)

	current, err := st.Names.MustGet(n.Name)
	if err != nil {
		return value.Value{}, err
	}

	updated, err := ops.ApplyShortOp(n.Op, current, rhs)
	if err != nil {
		return value.Value{}, err
	}

	st.Names.Set(n.Name, updated)
	return value.Null(), nil
}

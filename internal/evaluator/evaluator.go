// Package evaluator tree-walks a parsed AST against a vmstate.State
// (§4.3). Every node visit ticks the op-count budget first, so no node
// type can be evaluated for free.
package evaluator

import (
	"github.com/smartquery/smartquery/internal/ast"
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
	"github.com/smartquery/smartquery/internal/vmstate"
)

// Eval evaluates node against st, returning its value or the first error
// encountered (syntax errors never reach here; only runtime/op-limit/
// key/overflow/timeout errors do).
func Eval(node ast.Node, st *vmstate.State) (value.Value, error) {
	if err := st.Tick(); err != nil {
		return value.Value{}, err
	}

	switch n := node.(type) {
	case *ast.ValueNode:
		return n.V, nil

	case *ast.NoOpNode:
		return value.Null(), nil

	case *ast.NameNode:
		return st.Names.MustGet(n.Name)

	case *ast.CodeNode:
		return evalCode(n, st)

	case *ast.BinOpNode:
		return evalBinOp(n, st)

	case *ast.UnaryOpNode:
		return evalUnaryOp(n, st)

	case *ast.AssignNode:
		return evalAssign(n, st)

	case *ast.ShortOpNode:
		return evalShortOp(n, st)

	case *ast.IfNode:
		return evalIf(n, st)

	case *ast.SliceNode:
		return evalSlice(n, st)

	case *ast.CallNode:
		return evalCall(n, st)

	case *ast.DictNode:
		return evalDict(n, st)

	case *ast.LambdaNode:
		return evalLambda(n, st)
	}

	return value.Value{}, sqerr.Runtimef("internal error: unhandled node type %T", node)
}

// evalCode evaluates every line in order, returning the last line's
// value, or null for an empty program (§4.3 "Code").
func evalCode(n *ast.CodeNode, st *vmstate.State) (value.Value, error) {
	result := value.Null()
	for _, line := range n.Lines {
		v, err := Eval(line, st)
		if err != nil {
			return value.Value{}, err
		}
		result = v
	}
	return result, nil
}

func evalIf(n *ast.IfNode, st *vmstate.State) (value.Value, error) {
	cond, err := Eval(n.Cond, st)
	if err != nil {
		return value.Value{}, err
	}
	if value.Truthy(cond) {
		return Eval(n.Then, st)
	}
	return Eval(n.Else, st)
}

func evalAssign(n *ast.AssignNode, st *vmstate.State) (value.Value, error) {
	v, err := Eval(n.Expr, st)
	if err != nil {
		return value.Value{}, err
	}
	st.Names.Set(n.Name, value.DeepCopy(v))
	return value.Null(), nil
}

func evalDict(n *ast.DictNode, st *vmstate.State) (value.Value, error) {
	m := value.NewMap()
	for _, pair := range n.Pairs {
		k, err := Eval(pair.Key, st)
		if err != nil {
			return value.Value{}, err
		}
		v, err := Eval(pair.Value, st)
		if err != nil {
			return value.Value{}, err
		}
		m.Set(value.DictKeyCast(k), v)
	}
	return value.MapVal(m), nil
}

// evalSlice evaluates a slice descriptor's optional start/stop/step parts
// (§3.3). A nil sub-node means that part is absent.
func evalSlice(n *ast.SliceNode, st *vmstate.State) (value.Value, error) {
	start, err := evalOptionalInt(n.Start, st)
	if err != nil {
		return value.Value{}, err
	}
	stop, err := evalOptionalInt(n.Stop, st)
	if err != nil {
		return value.Value{}, err
	}
	step, err := evalOptionalInt(n.Step, st)
	if err != nil {
		return value.Value{}, err
	}
	return value.SliceVal(value.Slice{Start: start, Stop: stop, Step: step}), nil
}

func evalOptionalInt(n ast.Node, st *vmstate.State) (*int, error) {
	if n == nil {
		return nil, nil
	}
	v, err := Eval(n, st)
	if err != nil {
		return nil, err
	}
	return value.OptionalInt(v)
}

func evalLambda(n *ast.LambdaNode, st *vmstate.State) (value.Value, error) {
	params := append([]string(nil), n.Params...)
	body := n.Body
	names := st.Names

	return value.Func(func(args []value.Value) (value.Value, error) {
		if len(args) != len(params) {
			return value.Value{}, sqerr.Runtimef("lambda expects %d argument(s), got %d", len(params), len(args))
		}
		frame := make(map[string]value.Value, len(params))
		for i, p := range params {
			frame[p] = args[i]
		}
		defer names.Guard(frame)()
		return Eval(body, st)
	}), nil
}

func evalCall(n *ast.CallNode, st *vmstate.State) (value.Value, error) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(a, st)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}
	callable, err := st.Names.MustGet(n.Name)
	if err != nil {
		return value.Value{}, sqerr.Runtimef("undefined function %q", n.Name)
	}
	if callable.Kind != value.KindCallable {
		return value.Value{}, sqerr.Runtimef("%q is not callable", n.Name)
	}
	return callable.Callable()(args)
}

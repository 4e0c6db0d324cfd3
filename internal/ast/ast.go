// Package ast defines SmartQuery's AST node types (§3.4). The tree is
// treated as immutable by the evaluator; every node is a plain struct
// implementing the Node marker interface so the evaluator can type-switch
// on concrete types.
package ast

import "github.com/smartquery/smartquery/internal/value"

// Node is the base interface every AST node implements.
type Node interface {
	node()
}

// Value is a literal (§3.4).
type ValueNode struct {
	V value.Value
}

// Name is a variable lookup.
type NameNode struct {
	Name string
}

// Code is a sequence of statements; result is the last line's value, or
// null if empty.
type CodeNode struct {
	Lines []Node
}

// NoOp produces null. The parser does not build it: empty and
// comment-only statements are dropped from Code.Lines instead.
type NoOpNode struct{}

// BinOp is an arithmetic/comparison/membership/logical binary operation.
type BinOpNode struct {
	Op string
	L  Node
	R  Node
}

// UnaryOp is unary minus or logical not.
type UnaryOpNode struct {
	Op string
	X  Node
}

// Assign binds Name in the innermost scope; result is null.
type AssignNode struct {
	Name string
	Expr Node
}

// ShortOp is an in-place update (+=, -=, *=, /=).
type ShortOpNode struct {
	Name string
	Op   string
	Expr Node
}

// If is a ternary expression: Then if Cond else Else.
type IfNode struct {
	Cond Node
	Then Node
	Else Node
}

// Slice's Start/Stop/Step each produce an optional int.
type SliceNode struct {
	Start Node
	Stop  Node
	Step  Node
}

// Call looks up a callable in scope by Name and applies it to Args.
type CallNode struct {
	Name string
	Args []Node
}

// DictPair is one key/value pair of a Dict literal.
type DictPair struct {
	Key   Node
	Value Node
}

// Dict is a list of key/value pairs evaluated in source order.
type DictNode struct {
	Pairs []DictPair
}

// Note: there is no dedicated list-literal node. "[1, 2]" parses to a Call
// of the "list" intrinsic with the elements as arguments, matching the
// original grammar's desugaring of list literals into a plain call.

// Lambda is a closure over the defining scope.
type LambdaNode struct {
	Params []string
	Body   Node
}

func (*ValueNode) node()   {}
func (*NameNode) node()    {}
func (*CodeNode) node()    {}
func (*NoOpNode) node()    {}
func (*BinOpNode) node()   {}
func (*UnaryOpNode) node() {}
func (*AssignNode) node()  {}
func (*ShortOpNode) node() {}
func (*IfNode) node()      {}
func (*SliceNode) node()   {}
func (*CallNode) node()    {}
func (*DictNode) node()    {}
func (*LambdaNode) node()  {}

// Package smartquery is the embedding surface for the SmartQuery
// expression language (§6.1): parse source into an AST, list the free
// names it references, or evaluate it directly against a host-supplied
// set of names and an op-count budget.
package smartquery

import (
	"github.com/smartquery/smartquery/internal/ast"
	"github.com/smartquery/smartquery/internal/evaluator"
	"github.com/smartquery/smartquery/internal/intrinsics"
	"github.com/smartquery/smartquery/internal/parser"
	"github.com/smartquery/smartquery/internal/scope"
	"github.com/smartquery/smartquery/internal/value"
	"github.com/smartquery/smartquery/internal/vmstate"
)

// Re-exported so callers never need to import the internal packages
// themselves (Go's internal/ visibility rule would block that anyway).
type (
	Node     = ast.Node
	Value    = value.Value
	Cache    = parser.Cache
	Callable = value.Callable
)

// Value constructors a host uses to build the `names` map passed to
// Evaluate.
var (
	Null     = value.Null
	Bool     = value.Bool
	Number   = value.Number
	String   = value.String
	List     = value.List
	MapVal   = value.MapVal
	Func     = value.Func
)

// Parser parses and evaluates SmartQuery source text, optionally
// memoizing ASTs in a host-supplied Cache (§4.2 "Parse cache").
type Parser struct {
	cache Cache
}

// New constructs a Parser with no parse cache.
func New() *Parser {
	return &Parser{}
}

// NewWithCache constructs a Parser backed by cache (see pkg/cache for
// ready-made implementations).
func NewWithCache(cache Cache) *Parser {
	return &Parser{cache: cache}
}

// Parse parses source into an AST (§6.1 "Parser.parse").
func (p *Parser) Parse(source string) (Node, error) {
	return parser.Parse(source, p.cache)
}

// ListNames returns the text of every NAME token in source, in source
// order, repeats included (§6.1 "Parser.list_names"); useful for a host
// deciding which fields of a record need to be resolved before
// evaluating. Lambda parameters and intrinsic names are NAME tokens too.
func (p *Parser) ListNames(source string) ([]string, error) {
	return parser.ListNames(source)
}

// Evaluate parses source, constructs a scope whose bottom frame is the
// intrinsic table, pushes a frame holding names, evaluates each entry of
// astNames (compiled ASTs — typically lambdas prepared once and reused
// across many Evaluate calls) in that scope and binds its result under
// the same name, then evaluates the program (§6.1 "Parser.evaluate").
// maxOps <= 0 uses the evaluator's default budget.
func (p *Parser) Evaluate(source string, names map[string]Value, astNames map[string]Node, maxOps int) (Value, error) {
	node, err := p.Parse(source)
	if err != nil {
		return value.Value{}, err
	}
	return p.EvalNode(node, names, astNames, maxOps)
}

// EvalNode evaluates an already-parsed AST (e.g. one cached by a caller
// ahead of time) against names/astNames/maxOps, without re-parsing.
func (p *Parser) EvalNode(node Node, names map[string]Value, astNames map[string]Node, maxOps int) (Value, error) {
	sc := scope.New(intrinsics.Table())
	sc.Push(map[string]value.Value{})
	for k, v := range names {
		sc.Set(k, v)
	}
	st := vmstate.New(sc, maxOps)

	for name, n := range astNames {
		v, err := evaluator.Eval(n, st)
		if err != nil {
			return value.Value{}, err
		}
		sc.Set(name, v)
	}

	return evaluator.Eval(node, st)
}

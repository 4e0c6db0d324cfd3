// Package parser implements SmartQuery's precedence parser (§4.2): a
// hand-written parser following the precedence table in spec §4.2, rather
// than a table-driven LALR(1) parser (spec §9 allows either; either one
// must pass the same testable properties). It pre-tokenizes its input so
// that ambiguous constructs (is "(x)" a grouped expression or the start of
// a lambda's parameter list?) can be resolved by backtracking over a
// token slice instead of needing arbitrary lexer lookahead.
package parser

import (
	"strings"

	"github.com/smartquery/smartquery/internal/ast"
	"github.com/smartquery/smartquery/internal/lexer"
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/token"
	"github.com/smartquery/smartquery/internal/value"
)

// Cache memoizes source text to AST, matching the pluggable parse cache
// Parser.parse may be handed per §4.2/§6.1. Implementations live in
// pkg/cache.
type Cache interface {
	Get(source string) (ast.Node, bool)
	Put(source string, n ast.Node)
}

// Parser parses one SmartQuery program's token stream into an AST.
type Parser struct {
	toks []token.Token
	pos  int
}

func newParser(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses source into an AST, consulting and populating cache if
// non-nil (§4.2 "Parse cache"). Trailing whitespace is trimmed before
// either the cache lookup or lexing, matching the Python original's
// `expr.rstrip()` in sq_parser.py::parse.
func Parse(source string, cache Cache) (ast.Node, error) {
	source = strings.TrimRight(source, " \t\r\n")

	if cache != nil {
		if n, ok := cache.Get(source); ok {
			return n, nil
		}
	}

	toks, err := lexer.TokenizeAll(source)
	if err != nil {
		return nil, err
	}

	p := newParser(toks)
	n, err := p.parseProgram()
	if err != nil {
		return nil, err
	}

	if cache != nil {
		cache.Put(source, n)
	}
	return n, nil
}

// ListNames returns every NAME token in source order (§4.6).
func ListNames(source string) ([]string, error) {
	return lexer.Names(source)
}

func (p *Parser) cur() token.Token  { return p.toks[p.pos] }
func (p *Parser) at(i int) token.Token {
	idx := p.pos + i
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[idx]
}
func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}
func (p *Parser) save() int       { return p.pos }
func (p *Parser) restore(pos int) { p.pos = pos }

func (p *Parser) expect(tt token.Type) (token.Token, error) {
	if p.cur().Type != tt {
		return token.Token{}, p.syntaxErrorHere()
	}
	return p.advance(), nil
}

func (p *Parser) syntaxErrorHere() *sqerr.Error {
	t := p.cur()
	text := t.Lexeme
	if t.Type == token.EOF {
		text = "EOF"
	}
	return sqerr.Syntaxf(t.Line, t.Column, "syntax error: %s", text)
}

func (p *Parser) atStatementEnd() bool {
	return p.cur().Type == token.NEWLINE || p.cur().Type == token.EOF
}

// parseProgram parses "code : line | code NEWLINE line" (§4.2), building
// a single Code node whose Lines holds only the non-empty statements.
func (p *Parser) parseProgram() (ast.Node, error) {
	var lines []ast.Node

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if stmt != nil {
		lines = append(lines, stmt)
	}

	for p.cur().Type == token.NEWLINE {
		p.advance()
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			lines = append(lines, stmt)
		}
	}

	if p.cur().Type != token.EOF {
		return nil, p.syntaxErrorHere()
	}

	return &ast.CodeNode{Lines: lines}, nil
}

// parseStatement parses one statement: empty, a name/index assignment, a
// del, or a bare expression (§4.2).
func (p *Parser) parseStatement() (ast.Node, error) {
	if p.atStatementEnd() {
		return nil, nil
	}

	if err := p.rejectReservedUnused(); err != nil {
		return nil, err
	}

	if p.cur().Type == token.DEL {
		return p.parseDel()
	}

	if p.cur().Type == token.NAME {
		if p.at(1).Type == token.ASSIGN {
			name := p.advance().Lexeme
			p.advance() // '='
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.requireStatementEnd(); err != nil {
				return nil, err
			}
			return &ast.AssignNode{Name: name, Expr: expr}, nil
		}
		if p.at(1).Type == token.SHORT_OP {
			name := p.advance().Lexeme
			opTok := p.advance()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.requireStatementEnd(); err != nil {
				return nil, err
			}
			return &ast.ShortOpNode{Name: name, Op: opTok.Lexeme, Expr: expr}, nil
		}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	switch p.cur().Type {
	case token.ASSIGN:
		getItem, ok := asGetItem(expr)
		if !ok {
			return nil, p.syntaxErrorHere()
		}
		p.advance()
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.requireStatementEnd(); err != nil {
			return nil, err
		}
		return &ast.CallNode{Name: "__setitem__", Args: []ast.Node{getItem.container, getItem.key, rhs}}, nil

	case token.SHORT_OP:
		getItem, ok := asGetItem(expr)
		if !ok {
			return nil, p.syntaxErrorHere()
		}
		opTok := p.advance()
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.requireStatementEnd(); err != nil {
			return nil, err
		}
		return &ast.CallNode{
			Name: "__setitem_with_op__",
			Args: []ast.Node{getItem.container, getItem.key, opLiteral(opTok.Lexeme), rhs},
		}, nil
	}

	if err := p.requireStatementEnd(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) requireStatementEnd() error {
	if !p.atStatementEnd() {
		return p.syntaxErrorHere()
	}
	return nil
}

// parseDel parses `del expression LBRACKET expression RBRACKET` (§6.2):
// the final bracketed index is split off the parsed expression, which may
// itself already be an index expression (so "del a[1][1]" deletes the
// inner a[1][1], not a[1]).
func (p *Parser) parseDel() (ast.Node, error) {
	p.advance() // 'del'
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	getItem, ok := asGetItem(expr)
	if !ok {
		return nil, p.syntaxErrorHere()
	}
	if err := p.requireStatementEnd(); err != nil {
		return nil, err
	}
	return &ast.CallNode{Name: "__delitem__", Args: []ast.Node{getItem.container, getItem.key}}, nil
}

type getItemShape struct {
	container ast.Node
	key       ast.Node
}

func asGetItem(n ast.Node) (getItemShape, bool) {
	call, ok := n.(*ast.CallNode)
	if !ok || call.Name != "__getitem__" || len(call.Args) != 2 {
		return getItemShape{}, false
	}
	return getItemShape{container: call.Args[0], key: call.Args[1]}, true
}

func opLiteral(lexeme string) ast.Node {
	return &ast.ValueNode{V: value.String(lexeme)}
}

func (p *Parser) rejectReservedUnused() error {
	t := p.cur()
	if token.ReservedUnused[t.Type] {
		return sqerr.Syntaxf(t.Line, t.Column, "%s is a reserved keyword", t.Lexeme)
	}
	return nil
}

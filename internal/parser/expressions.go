package parser

import (
	"github.com/shopspring/decimal"

	"github.com/smartquery/smartquery/internal/ast"
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/token"
	"github.com/smartquery/smartquery/internal/value"
)

// parseExpression is the entry point for any expression context, covering
// the full precedence table of §4.2 from loosest (ternary) to tightest
// (indexing).
func (p *Parser) parseExpression() (ast.Node, error) {
	return p.parseTernary()
}

// parseTernary parses "then if cond else other", right-associative, lower
// precedence than or/and (§4.2 "if/else ternary" sits above logical ops).
func (p *Parser) parseTernary() (ast.Node, error) {
	then, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur().Type != token.IF {
		return then, nil
	}
	p.advance()
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ELSE); err != nil {
		return nil, err
	}
	other, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return &ast.IfNode{Cond: cond, Then: then, Else: other}, nil
}

func (p *Parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.OR {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOpNode{Op: "or", L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.AND {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOpNode{Op: "and", L: left, R: right}
	}
	return left, nil
}

// parseNot handles a leading "not" applied to a relational expression
// (e.g. "not a == b"), distinct from "not in" which binds inside parseRel.
func (p *Parser) parseNot() (ast.Node, error) {
	if p.cur().Type == token.NOT && p.at(1).Type != token.IN {
		p.advance()
		x, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOpNode{Op: "not", X: x}, nil
	}
	return p.parseRel()
}

// parseRel parses a single, non-associative relational/membership
// comparison (§4.2: chained comparisons like "a < b < c" are not part of
// the grammar).
func (p *Parser) parseRel() (ast.Node, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	switch p.cur().Type {
	case token.EQ, token.NE, token.GT, token.LT, token.GTE, token.LTE:
		opTok := p.advance()
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		return &ast.BinOpNode{Op: opTok.Lexeme, L: left, R: right}, nil
	case token.IN:
		p.advance()
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		return &ast.BinOpNode{Op: "in", L: left, R: right}, nil
	case token.NOT:
		if p.at(1).Type != token.IN {
			return nil, p.syntaxErrorHere()
		}
		p.advance()
		p.advance()
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		return &ast.BinOpNode{Op: "not in", L: left, R: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAddSub() (ast.Node, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.PLUS || p.cur().Type == token.MINUS {
		opTok := p.advance()
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOpNode{Op: opTok.Lexeme, L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseMulDiv() (ast.Node, error) {
	left, err := p.parsePow()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.TIMES || p.cur().Type == token.DIVIDE {
		opTok := p.advance()
		right, err := p.parsePow()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOpNode{Op: opTok.Lexeme, L: left, R: right}
	}
	return left, nil
}

// parsePow is right-associative ("2 ** 3 ** 2" == "2 ** (3 ** 2)").
func (p *Parser) parsePow() (ast.Node, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == token.POWER {
		p.advance()
		right, err := p.parsePow()
		if err != nil {
			return nil, err
		}
		return &ast.BinOpNode{Op: "**", L: left, R: right}, nil
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Node, error) {
	if p.cur().Type == token.MINUS {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOpNode{Op: "-", X: x}, nil
	}
	return p.parseIndexed()
}

// parseIndexed parses a primary followed by any "[...]" suffixes. Indexing
// binds tighter than unary minus: "1 + -a[0]" is 1 + (-(a[0])).
func (p *Parser) parseIndexed() (ast.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == token.LBRACKET {
		left, err = p.parseIndexSuffix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parsePostfix handles dot/pipe method calls, which bind looser than unary
// minus but tighter than "**": "-x | f" is f(-x). Calls and further
// indexing interleave freely after that: "a[0].b|c()[1]".
func (p *Parser) parsePostfix() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Type {
		case token.DOT:
			// Method-call sugar requires parens, even empty ones: "x.f()",
			// never bare "x.f" (only PIPE admits a parenless bare call).
			p.advance()
			nameTok, err := p.expect(token.NAME)
			if err != nil {
				return nil, err
			}
			if p.cur().Type != token.LPAREN {
				return nil, p.syntaxErrorHere()
			}
			more, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			left = &ast.CallNode{Name: nameTok.Lexeme, Args: append([]ast.Node{left}, more...)}
		case token.PIPE:
			p.advance()
			nameTok, err := p.expect(token.NAME)
			if err != nil {
				return nil, err
			}
			args := []ast.Node{left}
			if p.cur().Type == token.LPAREN {
				more, err := p.parseArgList()
				if err != nil {
					return nil, err
				}
				args = append(args, more...)
			}
			left = &ast.CallNode{Name: nameTok.Lexeme, Args: args}
		case token.LBRACKET:
			left, err = p.parseIndexSuffix(left)
			if err != nil {
				return nil, err
			}
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseIndexSuffix(container ast.Node) (ast.Node, error) {
	p.advance() // '['
	if p.cur().Type == token.RBRACKET {
		return nil, p.syntaxErrorHere()
	}
	key, err := p.parseSliceOrExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.CallNode{Name: "__getitem__", Args: []ast.Node{container, key}}, nil
}

// parseSliceOrExpr parses what's between "[" and "]": a plain index
// expression, or a start?:stop?:step? slice (§3.3, §4.2).
func (p *Parser) parseSliceOrExpr() (ast.Node, error) {
	var start, stop, step ast.Node
	var err error

	if p.cur().Type != token.COLON {
		start, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if p.cur().Type != token.COLON {
		return start, nil
	}
	p.advance()
	if p.cur().Type != token.COLON && p.cur().Type != token.RBRACKET {
		stop, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if p.cur().Type == token.COLON {
		p.advance()
		if p.cur().Type != token.RBRACKET {
			step, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
	}
	return &ast.SliceNode{Start: start, Stop: stop, Step: step}, nil
}

// parsePrimary parses the tightest-binding productions: literals, names,
// calls, grouped/lambda parens, and list/dict literals.
func (p *Parser) parsePrimary() (ast.Node, error) {
	if err := p.rejectReservedUnused(); err != nil {
		return nil, err
	}

	if lam, matched, err := p.tryParseLambda(); matched {
		return lam, err
	}

	t := p.cur()
	switch t.Type {
	case token.NUMBER:
		p.advance()
		d, derr := decimal.NewFromString(t.Literal)
		if derr != nil {
			return nil, sqerr.Syntaxf(t.Line, t.Column, "invalid number %q", t.Literal)
		}
		return &ast.ValueNode{V: value.Number(d)}, nil

	case token.STRING:
		p.advance()
		return &ast.ValueNode{V: value.String(t.Literal)}, nil

	case token.TRUE:
		p.advance()
		return &ast.ValueNode{V: value.Bool(true)}, nil

	case token.FALSE:
		p.advance()
		return &ast.ValueNode{V: value.Bool(false)}, nil

	case token.NONE:
		p.advance()
		return &ast.ValueNode{V: value.Null()}, nil

	case token.NOT:
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOpNode{Op: "not", X: x}, nil

	case token.NAME:
		if p.at(1).Type == token.LPAREN {
			name := p.advance().Lexeme
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			return &ast.CallNode{Name: name, Args: args}, nil
		}
		p.advance()
		return &ast.NameNode{Name: t.Lexeme}, nil

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case token.LBRACKET:
		return p.parseListLiteral()

	case token.LBRACE:
		return p.parseDictLiteral()
	}

	return nil, p.syntaxErrorHere()
}

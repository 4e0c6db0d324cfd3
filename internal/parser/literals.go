package parser

import (
	"github.com/smartquery/smartquery/internal/ast"
	"github.com/smartquery/smartquery/internal/token"
)

// parseArgList parses a parenthesized, comma-separated argument list,
// starting at LPAREN, tolerating a trailing comma (§4.2).
func (p *Parser) parseArgList() ([]ast.Node, error) {
	p.advance() // '('
	var args []ast.Node
	for p.cur().Type != token.RPAREN {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur().Type == token.COMMA {
			p.advance()
			if p.cur().Type == token.RPAREN {
				break
			}
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseListLiteral parses "[" (expr ("," expr)* ","?)? "]" into a call to
// the "list" intrinsic, exactly as the original grammar's
// `p_expression_list` desugars a literal into `CallOp(name='list', ...)`
// rather than a dedicated list-literal node.
func (p *Parser) parseListLiteral() (ast.Node, error) {
	p.advance() // '['
	var items []ast.Node
	for p.cur().Type != token.RBRACKET {
		item, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.cur().Type == token.COMMA {
			p.advance()
			if p.cur().Type == token.RBRACKET {
				break
			}
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.CallNode{Name: "list", Args: items}, nil
}

// parseDictLiteral parses "{" (expr ":" expr ("," expr ":" expr)* ","?)? "}".
// Keys are arbitrary expressions; the evaluator casts the evaluated key to
// its display-string form (§3.2). Later duplicate keys overwrite earlier
// ones in insertion order.
func (p *Parser) parseDictLiteral() (ast.Node, error) {
	p.advance() // '{'
	var pairs []ast.DictPair
	for p.cur().Type != token.RBRACE {
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ast.DictPair{Key: key, Value: val})
		if p.cur().Type == token.COMMA {
			p.advance()
			if p.cur().Type == token.RBRACE {
				break
			}
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.DictNode{Pairs: pairs}, nil
}

// tryParseLambda attempts both lambda spellings:
//
//	x => expr                (single bare param, no parens)
//	(a, b, ...) => expr      (one or more parenthesized params)
//
// It backtracks cleanly on failure so the caller can fall through to
// parsing "(...)" as a plain grouped expression instead (§4.2: "(x)" is
// ambiguous with a one-element lambda param list until the "=>" is seen).
func (p *Parser) tryParseLambda() (ast.Node, bool, error) {
	if p.cur().Type == token.NAME && p.at(1).Type == token.LAMBDA_ARR {
		name := p.advance().Lexeme
		p.advance() // '=>'
		body, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		return &ast.LambdaNode{Params: []string{name}, Body: body}, true, nil
	}

	if p.cur().Type != token.LPAREN {
		return nil, false, nil
	}

	start := p.save()
	p.advance() // '('

	// The original grammar's arglist_def requires at least one NAME;
	// "()" alone is not a lambda parameter list (nor a valid grouped
	// expression), so an empty paren pair falls through to the ordinary
	// grouped-expression path and fails there.
	var params []string
	ok := p.cur().Type == token.NAME
	for ok {
		params = append(params, p.advance().Lexeme)
		if p.cur().Type == token.COMMA {
			p.advance()
			if p.cur().Type != token.NAME {
				ok = false
				break
			}
			continue
		}
		break
	}

	if ok && p.cur().Type == token.RPAREN {
		p.advance()
		if p.cur().Type == token.LAMBDA_ARR {
			p.advance()
			body, err := p.parseExpression()
			if err != nil {
				return nil, true, err
			}
			return &ast.LambdaNode{Params: params, Body: body}, true, nil
		}
	}

	p.restore(start)
	return nil, false, nil
}

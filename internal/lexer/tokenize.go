package lexer

import "github.com/smartquery/smartquery/internal/token"

// TokenizeAll scans source completely and returns every token, including a
// trailing EOF. The parser pre-tokenizes so it can backtrack freely when
// disambiguating constructs like "(x) => x" (lambda params) from "(x)"
// (a grouped expression) without needing a streaming-lexer checkpoint.
func TokenizeAll(source string) ([]token.Token, error) {
	l := New(source)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

// Names returns every NAME token's lexeme in source order (§4.6), used by
// hosts to pre-bind required variables before evaluating.
func Names(source string) ([]string, error) {
	toks, err := TokenizeAll(source)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, t := range toks {
		if t.Type == token.NAME {
			names = append(names, t.Lexeme)
		}
	}
	return names, nil
}

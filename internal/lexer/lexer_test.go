package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartquery/smartquery/internal/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		assert.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestBasicArithmetic(t *testing.T) {
	toks := scanAll(t, "5 * 5 + 5 / 5")
	assert.Equal(t, []token.Type{
		token.NUMBER, token.TIMES, token.NUMBER, token.PLUS,
		token.NUMBER, token.DIVIDE, token.NUMBER, token.EOF,
	}, types(toks))
}

func TestNewlineSuppressedInsideBrackets(t *testing.T) {
	toks := scanAll(t, "[\n1,\n2\n]")
	assert.Equal(t, []token.Type{
		token.LBRACKET, token.NUMBER, token.COMMA, token.NUMBER, token.RBRACKET, token.EOF,
	}, types(toks))
}

func TestSemicolonAlwaysEmitsNewline(t *testing.T) {
	toks := scanAll(t, "2 * 2; 5 * 5")
	assert.Contains(t, types(toks), token.NEWLINE)
}

func TestPercentName(t *testing.T) {
	toks := scanAll(t, "%сообщение.test%")
	assert.Equal(t, token.NAME, toks[0].Type)
	assert.Equal(t, "%сообщение.test%", toks[0].Lexeme)
}

func TestShortOpGrouping(t *testing.T) {
	for _, src := range []string{"+=", "-=", "*=", "/="} {
		toks := scanAll(t, "x "+src+" 1")
		assert.Equal(t, token.SHORT_OP, toks[1].Type, src)
	}
}

func TestReservedUnusedTokenizesButIsRejectedLater(t *testing.T) {
	toks := scanAll(t, "raise")
	assert.Equal(t, token.RAISE, toks[0].Type)
}

func TestRawString(t *testing.T) {
	toks := scanAll(t, `r"\d+"`)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, `\d+`, toks[0].Literal)
}

func TestEscapedString(t *testing.T) {
	toks := scanAll(t, `"a\nb"`)
	assert.Equal(t, "a\nb", toks[0].Literal)
}

func TestComment(t *testing.T) {
	toks := scanAll(t, "10 # trailing comment")
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, token.EOF, toks[1].Type)
}

func TestCommentOnlyLineIsEmpty(t *testing.T) {
	toks := scanAll(t, "# just a comment")
	assert.Equal(t, token.EOF, toks[0].Type)
}

func TestIllegalCharacter(t *testing.T) {
	l := New("5 ^ 5")
	_, err := l.NextToken()
	assert.NoError(t, err)
	_, err = l.NextToken()
	assert.Error(t, err)
}

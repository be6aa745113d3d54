package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/pkg/token"
)

func TestLexerBasicTokens(t *testing.T) {
	input := `int count = 0;
if (count != 10) { count = count + 1; }`

	l := NewLexer(input)

	want := []struct {
		typ token.TokenType
		lit string
	}{
		{token.IDENT, "int"},
		{token.IDENT, "count"},
		{token.ASSIGN, "="},
		{token.NUMBER, "0"},
		{token.SEMI, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.IDENT, "count"},
		{token.NE, "!="},
		{token.NUMBER, "10"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "count"},
		{token.ASSIGN, "="},
		{token.IDENT, "count"},
		{token.PLUS, "+"},
		{token.NUMBER, "1"},
		{token.SEMI, ";"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	for i, w := range want {
		tok := l.NextToken()
		assert.Equal(t, w.typ, tok.Type, "token %d type", i)
		assert.Equal(t, w.lit, tok.Literal, "token %d literal", i)
	}
}

func TestLexerTwoCharOperators(t *testing.T) {
	l := NewLexer("== != <= >= && || ! =")
	types := []token.TokenType{
		token.EQ, token.NE, token.LE, token.GE,
		token.AND, token.OR, token.BANG, token.ASSIGN, token.EOF,
	}
	for _, want := range types {
		assert.Equal(t, want, l.NextToken().Type)
	}
}

func TestLexerCollectsComments(t *testing.T) {
	input := `// header
int x; /* inline
spanning */ int y;`

	l := NewLexer(input)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
	}

	require.Len(t, l.Comments, 2)
	assert.Equal(t, token.LineComment, l.Comments[0].Kind)
	assert.Equal(t, "// header", l.Comments[0].Text)
	assert.Equal(t, token.BlockComment, l.Comments[1].Kind)
	assert.Equal(t, "inline\nspanning", l.Comments[1].Body())
	assert.Equal(t, 1, l.Comments[1].Span.End.Line-l.Comments[1].Span.Start.Line)
}

func TestLexerStringLiterals(t *testing.T) {
	l := NewLexer(`"hello" 'c'`)

	tok := l.NextToken()
	assert.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, `"hello"`, tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, `'c'`, tok.Literal)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer(`"oops`)
	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Type)
}

func TestLexerPositions(t *testing.T) {
	l := NewLexer("a\n  b")

	a := l.NextToken()
	assert.Equal(t, 1, a.Pos.Line)
	assert.Equal(t, 1, a.Pos.Column)
	assert.Equal(t, 0, a.Pos.Offset)

	b := l.NextToken()
	assert.Equal(t, 2, b.Pos.Line)
	assert.Equal(t, 3, b.Pos.Column)
	assert.Equal(t, 4, b.Pos.Offset)
}

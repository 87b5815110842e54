package transpile

import (
	"testing"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestTokenize_Basic(t *testing.T) {
	toks, err := Tokenize("SELECT a, 1.5 FROM t WHERE b >= 2", dialect.MustGet("ansi"))
	require.NoError(t, err)
	assert.Equal(t, []token.TokenType{
		token.SELECT, token.IDENT, token.COMMA, token.NUMBER, token.FROM, token.IDENT,
		token.WHERE, token.IDENT, token.GE, token.NUMBER, token.EOF,
	}, types(toks))
	assert.Equal(t, "1.5", toks[3].Literal)
	assert.False(t, toks[0].Spaced)
	assert.False(t, toks[2].Spaced)
	assert.True(t, toks[3].Spaced)
}

func TestTokenize_DialectQuoting(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		input   string
		want    token.Token
	}{
		{"spark backtick identifier", "spark", "`my col`", token.Token{Type: token.IDENT, Literal: "my col", Quoted: true}},
		{"spark double quoted string", "spark", `"abc"`, token.Token{Type: token.STRING, Literal: "abc"}},
		{"spark backslash escape", "spark", `'it\'s'`, token.Token{Type: token.STRING, Literal: "it's"}},
		{"postgres double quoted identifier", "postgres", `"Order"`, token.Token{Type: token.IDENT, Literal: "Order", Quoted: true}},
		{"doubled quote in string", "postgres", `'it''s'`, token.Token{Type: token.STRING, Literal: "it's"}},
		{"escaped quote in identifier", "postgres", `"a""b"`, token.Token{Type: token.IDENT, Literal: `a"b`, Quoted: true}},
		{"dollar quoted string", "postgres", `$$body$$`, token.Token{Type: token.STRING, Literal: "body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input, dialect.MustGet(tt.dialect))
			require.NoError(t, err)
			require.Len(t, toks, 2)
			assert.Equal(t, tt.want.Type, toks[0].Type)
			assert.Equal(t, tt.want.Literal, toks[0].Literal)
			assert.Equal(t, tt.want.Quoted, toks[0].Quoted)
		})
	}
}

func TestTokenize_ParamsAndTemplates(t *testing.T) {
	toks, err := Tokenize("SELECT * FROM {table} WHERE id = $1 AND ds = '{{ ds }}' AND x = ?", dialect.MustGet("spark"))
	require.NoError(t, err)

	var templates, params []string
	for _, tok := range toks {
		switch tok.Type {
		case token.TEMPLATE:
			templates = append(templates, tok.Literal)
		case token.PARAM:
			params = append(params, tok.Literal)
		}
	}
	assert.Equal(t, []string{"{table}"}, templates)
	assert.Equal(t, []string{"$1", "?"}, params)
}

func TestTokenize_Comments(t *testing.T) {
	toks, err := Tokenize("-- lead\nSELECT /* mid */ 1 -- tail", dialect.MustGet("ansi"))
	require.NoError(t, err)
	require.Len(t, toks, 3)

	require.Len(t, toks[0].Comments, 1)
	assert.Equal(t, "-- lead", toks[0].Comments[0].Text)
	require.Len(t, toks[1].Comments, 1)
	assert.Equal(t, "mid", toks[1].Comments[0].Body())
	require.Len(t, toks[2].Comments, 1)
	assert.Equal(t, token.EOF, toks[2].Type)
	assert.Equal(t, "tail", toks[2].Comments[0].Body())
}

func TestTokenize_HashComments(t *testing.T) {
	toks, err := Tokenize("SELECT 1 # note", dialect.MustGet("mysql"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Len(t, toks[2].Comments, 1)
	assert.Equal(t, token.HashComment, toks[2].Comments[0].Kind)
}

func TestTokenize_DynamicKeywords(t *testing.T) {
	toks, err := Tokenize("a ILIKE b OR c regexp d", dialect.MustGet("mysql"))
	require.NoError(t, err)
	assert.Equal(t, dialect.TokenIlike, toks[1].Type)
	assert.Equal(t, dialect.TokenRlike, toks[5].Type)
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		line    int
		column  int
	}{
		{"unterminated string", "SELECT 'abc", errUnterminatedString, 1, 8},
		{"unterminated identifier", "SELECT \"abc", errUnterminatedIdentifier, 1, 8},
		{"unterminated comment", "SELECT 1\n/* open", errUnterminatedComment, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input, dialect.MustGet("ansi"))
			require.Error(t, err)

			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.message, lexErr.Message)
			assert.Equal(t, tt.line, lexErr.Pos.Line)
			assert.Equal(t, tt.column, lexErr.Pos.Column)
		})
	}
}

func TestTokenize_IllegalCharacter(t *testing.T) {
	_, err := Tokenize("SELECT a ! b", dialect.MustGet("ansi"))

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Message, `"!"`)
}

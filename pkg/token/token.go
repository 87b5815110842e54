// Package token defines the lexical tokens shared by the SQL dialects.
//
// Core tokens are constants (IDs 0-999) so switches stay cheap.
// Operator keywords that only some dialects understand (ILIKE, RLIKE,
// QUALIFY...) are registered dynamically via Register().
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // token names mirror SQL spelling
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT    // identifier, quoted or bare
	NUMBER   // 123, 45.67, 1e10
	STRING   // 'hello'
	PARAM    // ?, $1, @name
	TEMPLATE // {name}, {{ expr }}, ${var}

	// Operators
	PLUS        // +
	MINUS       // -
	STAR        // *
	SLASH       // /
	PERCENT     // %
	DPIPE       // ||
	EQ          // = or ==
	NE          // != or <>
	LT          // <
	GT          // >
	LE          // <=
	GE          // >=
	NULLSAFE_EQ // <=>
	DOT         // .
	COMMA       // ,
	SEMICOLON   // ;
	LPAREN      // (
	RPAREN      // )
	LBRACKET    // [
	RBRACKET    // ]
	DCOLON      // ::
	COLON       // :
	ARROW       // ->
	DARROW      // ->>
	FATARROW    // =>
	CARET       // ^
	AMP         // &
	PIPE        // |
	TILDE       // ~

	// Keywords (alphabetical)
	ALL
	ALTER
	AND
	ANY
	AS
	ASC
	BEGIN
	BETWEEN
	BY
	CALL
	CASE
	CAST
	COMMIT
	CREATE
	CROSS
	DELETE
	DESC
	DESCRIBE
	DISTINCT
	DROP
	ELSE
	END
	EXCEPT
	EXISTS
	EXPLAIN
	FALSE
	FETCH
	FIRST
	FROM
	FULL
	GRANT
	GROUP
	HAVING
	IF
	IN
	INNER
	INSERT
	INTERSECT
	INTERVAL
	INTO
	IS
	JOIN
	LATERAL
	LEFT
	LIKE
	LIMIT
	MERGE
	NATURAL
	NEXT
	NOT
	NULL
	NULLS
	OFFSET
	ON
	ONLY
	OR
	ORDER
	OUTER
	OVER
	PARTITION
	RECURSIVE
	REPLACE
	REVOKE
	RIGHT
	ROLLBACK
	ROW
	ROWS
	SELECT
	SET
	SHOW
	TABLE
	THEN
	TRUE
	TRUNCATE
	TRY_CAST
	UNION
	UPDATE
	USE
	USING
	VALUES
	VIEW
	WHEN
	WHERE
	WINDOW
	WITH

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := getDynamicName(t); ok {
		return name
	}
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:    "IDENT",
	NUMBER:   "NUMBER",
	STRING:   "STRING",
	PARAM:    "PARAM",
	TEMPLATE: "TEMPLATE",

	PLUS:        "+",
	MINUS:       "-",
	STAR:        "*",
	SLASH:       "/",
	PERCENT:     "%",
	DPIPE:       "||",
	EQ:          "=",
	NE:          "<>",
	LT:          "<",
	GT:          ">",
	LE:          "<=",
	GE:          ">=",
	NULLSAFE_EQ: "<=>",
	DOT:         ".",
	COMMA:       ",",
	SEMICOLON:   ";",
	LPAREN:      "(",
	RPAREN:      ")",
	LBRACKET:    "[",
	RBRACKET:    "]",
	DCOLON:      "::",
	COLON:       ":",
	ARROW:       "->",
	DARROW:      "->>",
	FATARROW:    "=>",
	CARET:       "^",
	AMP:         "&",
	PIPE:        "|",
	TILDE:       "~",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = map[string]TokenType{}

func init() {
	for t := ALL; t <= WITH; t++ {
		name := keywordNames[t-ALL]
		tokenNames[t] = name
		keywords[strings.ToLower(name)] = t
	}
}

// keywordNames lists keyword spellings in constant order.
var keywordNames = [...]string{
	"ALL", "ALTER", "AND", "ANY", "AS", "ASC", "BEGIN", "BETWEEN", "BY",
	"CALL", "CASE", "CAST", "COMMIT", "CREATE", "CROSS", "DELETE", "DESC",
	"DESCRIBE", "DISTINCT", "DROP", "ELSE", "END", "EXCEPT", "EXISTS",
	"EXPLAIN", "FALSE", "FETCH", "FIRST", "FROM", "FULL", "GRANT", "GROUP",
	"HAVING", "IF", "IN", "INNER", "INSERT", "INTERSECT", "INTERVAL", "INTO",
	"IS", "JOIN", "LATERAL", "LEFT", "LIKE", "LIMIT", "MERGE", "NATURAL",
	"NEXT", "NOT", "NULL", "NULLS", "OFFSET", "ON", "ONLY", "OR", "ORDER",
	"OUTER", "OVER", "PARTITION", "RECURSIVE", "REPLACE", "REVOKE", "RIGHT",
	"ROLLBACK", "ROW", "ROWS", "SELECT", "SET", "SHOW", "TABLE", "THEN",
	"TRUE", "TRUNCATE", "TRY_CAST", "UNION", "UPDATE", "USE", "USING",
	"VALUES", "VIEW", "WHEN", "WHERE", "WINDOW", "WITH",
}

// LookupIdent returns the token type for a lowercase word.
// Builtin keywords win over dynamic ones; anything else is IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if tok, ok := LookupDynamicKeyword(ident); ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a builtin or dynamic keyword.
func IsKeyword(t TokenType) bool {
	return (t >= ALL && t <= WITH) || IsDynamic(t)
}

// IsOperator returns true if the token type is punctuation or an operator.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= TILDE
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string // source text; unescaped value for strings and quoted identifiers
	Quoted  bool   // identifier was written with quote characters
	Spaced  bool   // whitespace or a comment preceded the token
	Span    Span

	// Comments that appeared immediately before the token.
	Comments []*Comment
}

// Pos returns the start position of the token.
func (t Token) Pos() Position {
	return t.Span.Start
}

// Is reports whether the token has type tt.
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}
